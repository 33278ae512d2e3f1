package session

import (
	"time"

	"github.com/leadgenqc/courtier-assistant/internal/lead"
)

// DefaultID is used when a caller supplies no session identifier.
const DefaultID = "default"

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one entry of a session transcript. Order is meaningful: the
// history is replayed to the language model as-is.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Session is the conversational context for one visitor identifier. The lead
// record lives on its own typed field, never inside the transcript.
type Session struct {
	ID      string      `json:"id"`
	History []Message   `json:"history"`
	Lead    lead.Record `json:"lead"`

	// Qualifying is set once contact intent is first detected, so the
	// qualification flow keeps collecting fields across turns even when a
	// follow-up answer ("Marc Dubois", "514-555-1234") carries no intent
	// marker of its own.
	Qualifying bool `json:"qualifying"`

	// Submitted guards against recording the same completed lead twice when
	// the visitor re-asks for the contact details.
	Submitted bool `json:"submitted"`

	LastSeen time.Time `json:"last_seen"`
}

// New creates a session whose history is seeded with the system instruction.
func New(id, systemPrompt string) *Session {
	return &Session{
		ID:       id,
		History:  []Message{{Role: RoleSystem, Content: systemPrompt}},
		LastSeen: time.Now().UTC(),
	}
}

// Append adds a message to the end of the transcript.
func (s *Session) Append(role, content string) {
	s.History = append(s.History, Message{Role: role, Content: content})
}

// Window returns the trailing n messages of the transcript. The seeding
// system instruction is retained even when it falls outside the trailing
// slice, so the returned window never exceeds n+1 messages.
func (s *Session) Window(n int) []Message {
	if n <= 0 || len(s.History) <= n {
		window := make([]Message, len(s.History))
		copy(window, s.History)
		return window
	}

	tail := s.History[len(s.History)-n:]
	window := make([]Message, 0, n+1)
	if s.History[0].Role == RoleSystem {
		window = append(window, s.History[0])
	}
	return append(window, tail...)
}
