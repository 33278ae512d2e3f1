package conversation

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/require"

	"github.com/leadgenqc/courtier-assistant/internal/session"
)

type stubChatClient struct {
	response openai.ChatCompletionResponse
	err      error
	request  openai.ChatCompletionRequest
}

func (s *stubChatClient) CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	s.request = request
	return s.response, s.err
}

func TestOpenAICollaborator_ReplaysWindowInOrder(t *testing.T) {
	client := &stubChatClient{
		response: openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: "  Bien sûr !  "}},
			},
		},
	}
	collab := NewOpenAICollaborator(client, "gpt-4.1-mini", 0)

	window := []session.Message{
		{Role: session.RoleSystem, Content: SystemPrompt},
		{Role: session.RoleUser, Content: "Bonjour"},
		{Role: session.RoleAssistant, Content: "Bonjour !"},
		{Role: session.RoleUser, Content: "Parlez-moi de Rosemont"},
	}
	reply, err := collab.Complete(context.Background(), window)
	require.NoError(t, err)
	require.Equal(t, "Bien sûr !", reply, "reply must be trimmed")

	require.Equal(t, "gpt-4.1-mini", client.request.Model)
	require.Len(t, client.request.Messages, 4)
	require.Equal(t, openai.ChatMessageRoleSystem, client.request.Messages[0].Role)
	require.Equal(t, "Parlez-moi de Rosemont", client.request.Messages[3].Content)
}

func TestOpenAICollaborator_NoChoicesYieldsEmptyReply(t *testing.T) {
	collab := NewOpenAICollaborator(&stubChatClient{}, "", 0)

	reply, err := collab.Complete(context.Background(), []session.Message{{Role: session.RoleUser, Content: "Bonjour"}})
	require.NoError(t, err, "a choice-less response is tolerated, not an error")
	require.Empty(t, reply)
}

func TestOpenAICollaborator_PropagatesAPIError(t *testing.T) {
	client := &stubChatClient{err: errors.New("rate limited")}
	collab := NewOpenAICollaborator(client, "", 0)

	_, err := collab.Complete(context.Background(), []session.Message{{Role: session.RoleUser, Content: "Bonjour"}})
	require.Error(t, err)
}
