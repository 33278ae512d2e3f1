package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	openai "github.com/sashabaranov/go-openai"

	"github.com/leadgenqc/courtier-assistant/internal/api/router"
	appconfig "github.com/leadgenqc/courtier-assistant/internal/config"
	"github.com/leadgenqc/courtier-assistant/internal/conversation"
	"github.com/leadgenqc/courtier-assistant/internal/lead"
	"github.com/leadgenqc/courtier-assistant/internal/leads"
	"github.com/leadgenqc/courtier-assistant/internal/notify"
	"github.com/leadgenqc/courtier-assistant/internal/observability/metrics"
	"github.com/leadgenqc/courtier-assistant/internal/session"
	"github.com/leadgenqc/courtier-assistant/pkg/logging"
	"github.com/leadgenqc/courtier-assistant/web"
)

func main() {
	// Load .env if present; environment variables win in deployment.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting courtier-assistant API server",
		"env", cfg.Env,
		"port", cfg.Port,
		"session_backend", cfg.SessionBackend,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, storeCleanup, err := setupSessionStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("session store setup failed", "error", err)
		os.Exit(1)
	}
	defer storeCleanup()

	leadsRepo, pool := setupLeadsRepo(ctx, cfg, logger)
	if pool != nil {
		defer pool.Close()
	}

	notifier := setupNotifier(cfg, logger)

	if cfg.OpenAIAPIKey == "" {
		logger.Warn("OPENAI_API_KEY not set, chat replies will fall back to the default prompt")
	}
	collaborator := conversation.NewOpenAICollaborator(
		openai.NewClient(cfg.OpenAIAPIKey),
		cfg.OpenAIModel,
		cfg.LLMTimeout,
	)

	qualifier := lead.NewQualifier(lead.BrokerProfile{
		Name:  cfg.BrokerName,
		Phone: cfg.BrokerPhone,
		Email: cfg.BrokerEmail,
	})

	chatMetrics := metrics.NewChatMetrics(prometheus.DefaultRegisterer)

	orchestrator := conversation.NewOrchestrator(conversation.Config{
		Store:        store,
		Qualifier:    qualifier,
		Collaborator: collaborator,
		LeadsRepo:    leadsRepo,
		Notifier:     notifier,
		Metrics:      chatMetrics,
		Logger:       logger,
		Window:       cfg.HistoryWindow,
	})

	r := router.New(&router.Config{
		Logger:             logger,
		ChatHandler:        conversation.NewHandler(orchestrator, logger),
		LeadsHandler:       leads.NewHandler(leadsRepo, logger),
		MetricsHandler:     promhttp.Handler(),
		WidgetJS:           web.WidgetJS,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		AdminToken:         cfg.AdminToken,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
	fmt.Println("Server exited gracefully")
}

// setupSessionStore selects the session backend: in-process memory by default,
// Redis when sessions must survive restarts or be shared across replicas. The
// returned cleanup closes the Redis client when one was opened.
func setupSessionStore(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) (session.Store, func(), error) {
	if cfg.SessionBackend == "redis" {
		opts := &redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		}
		if cfg.RedisTLS {
			opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		client := redis.NewClient(opts)
		pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
		defer pingCancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("redis ping %s: %w", cfg.RedisAddr, err)
		}
		store := session.NewRedisStore(client, conversation.SystemPrompt, cfg.SessionIdleTTL, logger)
		return store, func() { _ = client.Close() }, nil
	}

	memStore := session.NewMemoryStore(conversation.SystemPrompt, session.MemoryStoreOptions{
		IdleTTL:     cfg.SessionIdleTTL,
		MaxSessions: cfg.SessionMaxCount,
	}, logger)
	go memStore.Run(ctx, cfg.SessionSweepInterval)
	return memStore, func() {}, nil
}

// setupLeadsRepo returns a Postgres-backed repository when DATABASE_URL is
// set, an in-memory one otherwise. The pool is non-nil only on the Postgres
// path so the caller can close it.
func setupLeadsRepo(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) (leads.Repository, *pgxpool.Pool) {
	if cfg.DatabaseURL == "" {
		logger.Info("leads repository: in-memory")
		return leads.NewInMemoryRepository(), nil
	}
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to create postgres pool", "error", err)
		os.Exit(1)
	}
	logger.Info("leads repository: postgres")
	return leads.NewPostgresRepository(pool), pool
}

// setupNotifier emails the broker when SendGrid is configured and falls back
// to log-only notifications otherwise.
func setupNotifier(cfg *appconfig.Config, logger *logging.Logger) notify.Notifier {
	// NewSendGridSender returns a typed nil without an API key; assigning it
	// to the interface unconditionally would defeat the nil guard downstream.
	var sender notify.EmailSender
	if sg := notify.NewSendGridSender(notify.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.SendGridFromEmail,
		FromName:  cfg.SendGridFromName,
	}, logger); sg != nil {
		sender = sg
	}
	if emailNotifier := notify.NewEmailNotifier(sender, cfg.NotifyEmail, cfg.BrokerName); emailNotifier != nil {
		logger.Info("lead notifications: email", "to", cfg.NotifyEmail)
		return emailNotifier
	}
	return notify.NewLogNotifier(logger)
}
