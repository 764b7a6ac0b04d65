package assistant

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the chat endpoints on the given router.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/api/chat", h.HandleChat)
	r.Get("/api/chat/ws", h.HandleWS)
}
