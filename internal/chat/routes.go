package chat

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/ai/chat", h.HandleChat)
	r.Get("/ai/chat/{sessionID}", h.HandleHistory)
	r.Post("/assistant/reply", h.HandleAssistantReply)
}
