package conversation

import (
	"context"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/leadgenqc/courtier-assistant/internal/session"
)

// Collaborator produces the assistant reply for a transcript window.
type Collaborator interface {
	Complete(ctx context.Context, window []session.Message) (string, error)
}

type chatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAICollaborator calls the OpenAI chat completion API. A response with no
// choices or empty content yields an empty reply without an error; the
// orchestrator substitutes the fallback text.
type OpenAICollaborator struct {
	client  chatClient
	model   string
	timeout time.Duration
	tracer  trace.Tracer
}

// NewOpenAICollaborator wraps an OpenAI-compatible chat client.
func NewOpenAICollaborator(client chatClient, model string, timeout time.Duration) *OpenAICollaborator {
	if client == nil {
		panic("conversation: chat client cannot be nil")
	}
	if model == "" {
		model = "gpt-4.1-mini"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &OpenAICollaborator{
		client:  client,
		model:   model,
		timeout: timeout,
		tracer:  otel.Tracer("courtier.internal.conversation.openai"),
	}
}

// Complete replays the window and returns the assistant's text.
func (c *OpenAICollaborator) Complete(ctx context.Context, window []session.Message) (string, error) {
	ctx, span := c.tracer.Start(ctx, "conversation.openai")
	defer span.End()
	span.SetAttributes(
		attribute.String("courtier.openai.model", c.model),
		attribute.Int("courtier.openai.window", len(window)),
	)

	messages := make([]openai.ChatCompletionMessage, 0, len(window))
	for _, msg := range window {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
