package conversation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/leadgenqc/courtier-assistant/pkg/logging"
)

// Responder is the orchestrator surface the handler needs.
type Responder interface {
	Respond(ctx context.Context, sessionID, message string) (string, error)
}

// Handler wires the chat HTTP surface to the orchestrator.
type Handler struct {
	responder Responder
	logger    *logging.Logger
}

// NewHandler creates a chat handler.
func NewHandler(responder Responder, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		responder: responder,
		logger:    logger,
	}
}

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
}

// ChatReply is the body of every chat response, success or failure.
type ChatReply struct {
	Reply string `json:"reply"`
}

// Chat handles POST /chat.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeReply(w, http.StatusBadRequest, EmptyMessageReply)
		return
	}

	reply, err := h.responder.Respond(r.Context(), req.SessionID, req.Message)
	if err != nil {
		if errors.Is(err, ErrEmptyMessage) {
			h.writeReply(w, http.StatusBadRequest, EmptyMessageReply)
			return
		}
		h.logger.Error("chat turn failed", "error", err)
		h.writeReply(w, http.StatusInternalServerError, ServerErrorReply)
		return
	}

	h.writeReply(w, http.StatusOK, reply)
}

// Live handles GET /, the liveness probe.
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Chatbot backend OK"))
}

// Health handles GET /health for load balancer checks.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status": "ok",
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(response)
}

func (h *Handler) writeReply(w http.ResponseWriter, status int, reply string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(ChatReply{Reply: reply}); err != nil {
		h.logger.Error("failed to write JSON response", "error", err)
	}
}
