package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/leadgenqc/courtier-assistant/internal/leads"
	"github.com/leadgenqc/courtier-assistant/pkg/logging"
)

type recordingSender struct {
	sent []EmailMessage
}

func (r *recordingSender) Send(ctx context.Context, msg EmailMessage) error {
	r.sent = append(r.sent, msg)
	return nil
}

func TestEmailNotifier_LeadCaptured(t *testing.T) {
	sender := &recordingSender{}
	notifier := NewEmailNotifier(sender, "mario@marioconte.com", "Mario Conte")
	require.NotNil(t, notifier)

	err := notifier.LeadCaptured(context.Background(), &leads.Lead{
		ID:        "id-1",
		SessionID: "sess-1",
		Name:      "Marc Dubois",
		Phone:     "514-555-1234",
		Email:     "marc@example.com",
	})
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	require.Equal(t, "mario@marioconte.com", msg.To)
	require.Contains(t, msg.Subject, "Marc Dubois")
	require.Contains(t, msg.Body, "514-555-1234")
	require.Contains(t, msg.Body, "marc@example.com")
}

func TestNewEmailNotifier_NilWhenUnconfigured(t *testing.T) {
	require.Nil(t, NewEmailNotifier(nil, "mario@marioconte.com", ""))
	require.Nil(t, NewEmailNotifier(&recordingSender{}, "", ""))
}

func TestNewSendGridSender_NilWithoutAPIKey(t *testing.T) {
	require.Nil(t, NewSendGridSender(SendGridConfig{}, logging.Default()))
}

func TestLogNotifier_NeverFails(t *testing.T) {
	notifier := NewLogNotifier(logging.Default())
	require.NoError(t, notifier.LeadCaptured(context.Background(), &leads.Lead{Name: "Marc"}))
}
