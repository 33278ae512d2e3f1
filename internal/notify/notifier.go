package notify

import (
	"context"
	"fmt"

	"github.com/leadgenqc/courtier-assistant/internal/leads"
	"github.com/leadgenqc/courtier-assistant/pkg/logging"
)

// Notifier announces newly captured leads to the broker. Failures must never
// reach the visitor: callers log and move on.
type Notifier interface {
	LeadCaptured(ctx context.Context, lead *leads.Lead) error
}

// EmailNotifier emails the broker inbox for every captured lead.
type EmailNotifier struct {
	sender EmailSender
	to     string
	toName string
}

// NewEmailNotifier creates a notifier targeting the broker inbox. Returns nil
// when no sender is available, which callers treat as notifications disabled.
func NewEmailNotifier(sender EmailSender, to, toName string) *EmailNotifier {
	if sender == nil || to == "" {
		return nil
	}
	return &EmailNotifier{sender: sender, to: to, toName: toName}
}

// LeadCaptured emails the lead summary.
func (n *EmailNotifier) LeadCaptured(ctx context.Context, lead *leads.Lead) error {
	body := fmt.Sprintf(
		"Nouveau lead qualifié via le chat du site.\n\nNom : %s\nTéléphone : %s\nEmail : %s\nSession : %s\n",
		lead.Name, lead.Phone, lead.Email, lead.SessionID,
	)
	return n.sender.Send(ctx, EmailMessage{
		To:      n.to,
		ToName:  n.toName,
		Subject: fmt.Sprintf("Nouveau lead : %s", lead.Name),
		Body:    body,
	})
}

// LogNotifier records captured leads in the application log. Used when email
// is not configured.
type LogNotifier struct {
	logger *logging.Logger
}

// NewLogNotifier creates a log-only notifier.
func NewLogNotifier(logger *logging.Logger) *LogNotifier {
	if logger == nil {
		logger = logging.Default()
	}
	return &LogNotifier{logger: logger}
}

// LeadCaptured logs the lead.
func (n *LogNotifier) LeadCaptured(ctx context.Context, lead *leads.Lead) error {
	n.logger.Info("lead captured",
		"lead_id", lead.ID,
		"session_id", lead.SessionID,
		"name", lead.Name,
	)
	return nil
}
