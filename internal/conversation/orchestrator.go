package conversation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/leadgenqc/courtier-assistant/internal/lead"
	"github.com/leadgenqc/courtier-assistant/internal/leads"
	"github.com/leadgenqc/courtier-assistant/internal/notify"
	"github.com/leadgenqc/courtier-assistant/internal/observability/metrics"
	"github.com/leadgenqc/courtier-assistant/internal/session"
	"github.com/leadgenqc/courtier-assistant/pkg/logging"
)

// leadSource tags leads captured by the chat flow in the repository.
const leadSource = "chat"

// Orchestrator sequences one chat turn: resolve the session, extract lead
// fields, detect intent, then either advance the qualification flow or
// delegate the window to the language model.
type Orchestrator struct {
	store        session.Store
	locks        *session.KeyedMutex
	qualifier    *lead.Qualifier
	collaborator Collaborator
	leadsRepo    leads.Repository
	notifier     notify.Notifier
	metrics      *metrics.ChatMetrics
	logger       *logging.Logger
	window       int
	tracer       trace.Tracer
}

// Config wires the orchestrator's collaborators.
type Config struct {
	Store        session.Store
	Qualifier    *lead.Qualifier
	Collaborator Collaborator
	LeadsRepo    leads.Repository
	Notifier     notify.Notifier
	Metrics      *metrics.ChatMetrics
	Logger       *logging.Logger
	Window       int
}

// NewOrchestrator creates an orchestrator.
func NewOrchestrator(cfg Config) *Orchestrator {
	if cfg.Store == nil {
		panic("conversation: session store cannot be nil")
	}
	if cfg.Qualifier == nil {
		panic("conversation: qualifier cannot be nil")
	}
	if cfg.Collaborator == nil {
		panic("conversation: collaborator cannot be nil")
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}
	if cfg.Window <= 0 {
		cfg.Window = 16
	}
	return &Orchestrator{
		store:        cfg.Store,
		locks:        session.NewKeyedMutex(),
		qualifier:    cfg.Qualifier,
		collaborator: cfg.Collaborator,
		leadsRepo:    cfg.LeadsRepo,
		notifier:     cfg.Notifier,
		metrics:      cfg.Metrics,
		logger:       cfg.Logger,
		window:       cfg.Window,
		tracer:       otel.Tracer("courtier.internal.conversation"),
	}
}

// Respond handles one visitor message and returns the reply. A blank message
// returns ErrEmptyMessage without touching any session. The whole turn holds
// the session's lock, so concurrent messages for one visitor are serialized.
func (o *Orchestrator) Respond(ctx context.Context, sessionID, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		o.metrics.ObserveTurn("rejected")
		return "", ErrEmptyMessage
	}
	if sessionID = strings.TrimSpace(sessionID); sessionID == "" {
		sessionID = session.DefaultID
	}

	ctx, span := o.tracer.Start(ctx, "conversation.turn")
	defer span.End()
	span.SetAttributes(attribute.String("courtier.session_id", sessionID))

	unlock := o.locks.Lock(sessionID)
	defer unlock()

	sess, created, err := o.store.Resolve(ctx, sessionID)
	if err != nil {
		span.RecordError(err)
		o.metrics.ObserveTurn("error")
		return "", fmt.Errorf("conversation: failed to resolve session: %w", err)
	}
	if created {
		o.metrics.ObserveSessionCreated()
	}

	extracted := lead.Extract(message)

	// A turn belongs to the qualification flow when it carries contact
	// intent, or when a started qualification is still missing fields — the
	// answer to "Quel est votre prénom ?" has no intent marker of its own.
	if lead.IsContactIntent(message) || (sess.Qualifying && !sess.Lead.Complete()) {
		reply := o.qualify(ctx, sess, extracted)
		if err := o.store.Save(ctx, sess); err != nil {
			span.RecordError(err)
			o.metrics.ObserveTurn("error")
			return "", err
		}
		o.metrics.ObserveTurn("qualification")
		return reply, nil
	}

	reply, outcome := o.converse(ctx, sess, message)
	if err := o.store.Save(ctx, sess); err != nil {
		span.RecordError(err)
		o.metrics.ObserveTurn("error")
		return "", err
	}
	o.metrics.ObserveTurn(outcome)
	return reply, nil
}

// qualify advances the state machine one step. Qualification turns are never
// appended to the transcript nor forwarded to the language model.
func (o *Orchestrator) qualify(ctx context.Context, sess *session.Session, extracted lead.Record) string {
	sess.Qualifying = true

	merged, reply := o.qualifier.Advance(sess.Lead, extracted)
	sess.Lead = merged

	if merged.Complete() && !sess.Submitted {
		if o.recordLead(ctx, sess) {
			sess.Submitted = true
		}
	}
	return reply
}

// converse runs the dialogue path: append the user message, hand the bounded
// window to the collaborator, append and return its reply. Collaborator
// failures degrade to the fixed fallback text.
func (o *Orchestrator) converse(ctx context.Context, sess *session.Session, message string) (string, string) {
	sess.Append(session.RoleUser, message)

	outcome := "dialogue"
	start := time.Now()
	reply, err := o.collaborator.Complete(ctx, sess.Window(o.window))
	o.metrics.ObserveLLMLatency(time.Since(start).Seconds())
	if err != nil {
		o.logger.Error("collaborator call failed", "error", err, "session_id", sess.ID)
		outcome = "fallback"
		reply = ""
	}
	if strings.TrimSpace(reply) == "" {
		reply = FallbackReply
		outcome = "fallback"
	}

	sess.Append(session.RoleAssistant, reply)
	return reply, outcome
}

// recordLead persists the completed lead and notifies the broker. Failures
// are logged and retried on the next complete turn; they never affect the
// visitor-facing reply.
func (o *Orchestrator) recordLead(ctx context.Context, sess *session.Session) bool {
	if o.leadsRepo == nil {
		return true
	}

	captured, err := o.leadsRepo.Create(ctx, &leads.CreateLeadRequest{
		SessionID: sess.ID,
		Name:      sess.Lead.Name,
		Phone:     sess.Lead.Phone,
		Email:     sess.Lead.Email,
		Source:    leadSource,
	})
	if err != nil {
		o.logger.Error("failed to record captured lead", "error", err, "session_id", sess.ID)
		return false
	}

	o.metrics.ObserveLeadCaptured()
	o.logger.Info("lead captured", "lead_id", captured.ID, "session_id", sess.ID, "name", captured.Name)

	if o.notifier != nil {
		if err := o.notifier.LeadCaptured(ctx, captured); err != nil {
			o.logger.Error("failed to notify broker of captured lead", "error", err, "lead_id", captured.ID)
		}
	}
	return true
}
