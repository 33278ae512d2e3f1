package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/leadgenqc/courtier-assistant/pkg/logging"
)

// RedisStore persists sessions as JSON values with a per-key TTL, so idle
// sessions expire without a sweep loop and several processes can share the
// same backing store.
type RedisStore struct {
	redis        *redis.Client
	systemPrompt string
	ttl          time.Duration
	logger       *logging.Logger
	tracer       trace.Tracer
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(client *redis.Client, systemPrompt string, ttl time.Duration, logger *logging.Logger) *RedisStore {
	if client == nil {
		panic("session: redis client cannot be nil")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &RedisStore{
		redis:        client,
		systemPrompt: systemPrompt,
		ttl:          ttl,
		logger:       logger,
		tracer:       otel.Tracer("courtier.internal.session"),
	}
}

// Resolve loads the session for id, creating a seeded one when the key is
// absent. A stored value that no longer parses is discarded and replaced by
// a fresh session rather than failing the turn.
func (s *RedisStore) Resolve(ctx context.Context, id string) (*Session, bool, error) {
	ctx, span := s.tracer.Start(ctx, "session.resolve")
	defer span.End()

	data, err := s.redis.Get(ctx, sessionKey(id)).Bytes()
	if err == redis.Nil {
		return New(id, s.systemPrompt), true, nil
	}
	if err != nil {
		span.RecordError(err)
		return nil, false, fmt.Errorf("session: failed to load %s: %w", id, err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		s.logger.Warn("discarding malformed stored session", "session_id", id, "error", err)
		return New(id, s.systemPrompt), true, nil
	}
	sess.LastSeen = time.Now().UTC()
	return &sess, false, nil
}

// Save persists the session and refreshes its TTL.
func (s *RedisStore) Save(ctx context.Context, sess *Session) error {
	ctx, span := s.tracer.Start(ctx, "session.save")
	defer span.End()

	sess.LastSeen = time.Now().UTC()
	data, err := json.Marshal(sess)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("session: failed to marshal %s: %w", sess.ID, err)
	}
	if err := s.redis.Set(ctx, sessionKey(sess.ID), data, s.ttl).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("session: failed to persist %s: %w", sess.ID, err)
	}
	return nil
}

// Delete removes the session key.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.redis.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("session: failed to delete %s: %w", id, err)
	}
	return nil
}

func sessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}
