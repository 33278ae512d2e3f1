package session

import (
	"context"
	"sync"
	"time"

	"github.com/leadgenqc/courtier-assistant/pkg/logging"
)

// MemoryStore keeps sessions in a process-local map. Growth is bounded two
// ways: an idle TTL enforced by the sweep loop and a hard session cap that
// evicts the longest-idle session when a new one is created.
type MemoryStore struct {
	systemPrompt string
	idleTTL      time.Duration
	maxSessions  int
	logger       *logging.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
}

// MemoryStoreOptions configures eviction behavior.
type MemoryStoreOptions struct {
	IdleTTL     time.Duration
	MaxSessions int
}

// NewMemoryStore creates an in-memory store seeding new sessions with
// systemPrompt.
func NewMemoryStore(systemPrompt string, opts MemoryStoreOptions, logger *logging.Logger) *MemoryStore {
	if opts.IdleTTL <= 0 {
		opts.IdleTTL = 24 * time.Hour
	}
	if opts.MaxSessions <= 0 {
		opts.MaxSessions = 10000
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &MemoryStore{
		systemPrompt: systemPrompt,
		idleTTL:      opts.IdleTTL,
		maxSessions:  opts.MaxSessions,
		logger:       logger,
		sessions:     make(map[string]*Session),
	}
}

// Resolve returns the stored session or creates one.
func (s *MemoryStore) Resolve(ctx context.Context, id string) (*Session, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[id]; ok {
		sess.LastSeen = time.Now().UTC()
		return sess, false, nil
	}

	if len(s.sessions) >= s.maxSessions {
		s.evictOldestLocked()
	}

	sess := New(id, s.systemPrompt)
	s.sessions[id] = sess
	return sess, true, nil
}

// Save refreshes the idle timestamp. Mutations happen in place on the
// pointer handed out by Resolve.
func (s *MemoryStore) Save(ctx context.Context, sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess.LastSeen = time.Now().UTC()
	s.sessions[sess.ID] = sess
	return nil
}

// Delete removes a session.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// Len returns the number of live sessions.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Run sweeps idle sessions on a fixed interval until ctx is cancelled.
func (s *MemoryStore) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if evicted := s.Sweep(); evicted > 0 {
				s.logger.Info("swept idle sessions", "evicted", evicted, "live", s.Len())
			}
		}
	}
}

// Sweep removes every session idle longer than the TTL and returns how many
// were evicted.
func (s *MemoryStore) Sweep() int {
	cutoff := time.Now().UTC().Add(-s.idleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, sess := range s.sessions {
		if sess.LastSeen.Before(cutoff) {
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted
}

func (s *MemoryStore) evictOldestLocked() {
	var oldestID string
	var oldestSeen time.Time
	for id, sess := range s.sessions {
		if oldestID == "" || sess.LastSeen.Before(oldestSeen) {
			oldestID = id
			oldestSeen = sess.LastSeen
		}
	}
	if oldestID != "" {
		delete(s.sessions, oldestID)
		s.logger.Warn("session cap reached, evicting longest-idle session", "session_id", oldestID)
	}
}
