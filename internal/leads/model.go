package leads

import (
	"strings"
	"time"
)

// Lead is a fully qualified sales prospect captured from a conversation.
type Lead struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateLeadRequest carries the fields of a completed qualification.
type CreateLeadRequest struct {
	SessionID string `json:"session_id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Source    string `json:"source"`
}

// Validate rejects partially filled requests: only complete qualifications
// are recorded.
func (r *CreateLeadRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrInvalidName
	}
	if strings.TrimSpace(r.Phone) == "" || strings.TrimSpace(r.Email) == "" {
		return ErrMissingContact
	}
	return nil
}
