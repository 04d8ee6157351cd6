package chat

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"

	"github.com/Vovarama1992/jannu-assistant/internal/assistant"
	"github.com/Vovarama1992/jannu-assistant/internal/httpx"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type chatPayload struct {
	Message   string               `json:"message"`
	Persona   string               `json:"persona"`
	Tone      string               `json:"tone"`
	SessionID string               `json:"session_id"`
	Cart      []assistant.CartLine `json:"cart"`
}

type chatResponse struct {
	Reply     string           `json:"reply"`
	Source    Source           `json:"source"`
	Intent    assistant.Intent `json:"intent,omitempty"`
	SessionID string           `json:"session_id"`
}

// HandleChat answers through the remote model and falls back to the local assistant.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var p chatPayload
	if err := httpx.DecodeJSON(r, &p); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	res, err := h.svc.HandleIncoming(r.Context(), Request{
		SessionID: p.SessionID,
		Message:   p.Message,
		Persona:   p.Persona,
		Tone:      p.Tone,
		Cart:      p.Cart,
	})
	if errors.Is(err, ErrEmptyMessage) {
		httpx.Error(w, http.StatusBadRequest, ErrEmptyMessage.Error())
		return
	}
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "processing error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, chatResponse{
		Reply:     res.Reply,
		Source:    res.Source,
		Intent:    res.Intent,
		SessionID: res.SessionID,
	})
}

type assistantPayload struct {
	Message string `json:"message"`
	Context struct {
		Cart []assistant.CartLine `json:"cart"`
	} `json:"context"`
}

// HandleAssistantReply is the offline responder; it never calls out and
// accepts an empty message.
func (h *Handler) HandleAssistantReply(w http.ResponseWriter, r *http.Request) {
	var p assistantPayload
	if err := httpx.DecodeJSON(r, &p); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, h.svc.Offline(assistant.Request{
		Message: p.Message,
		Cart:    p.Context.Cart,
	}))
}

func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.svc.History(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "history unavailable")
		return
	}
	if msgs == nil {
		msgs = []Message{}
	}
	httpx.WriteJSON(w, http.StatusOK, msgs)
}
