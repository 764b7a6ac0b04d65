package assistant

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
)

// fallbackSessionID is the shared session used in "shared" anonymous mode.
// Every headerless client then shares one failure counter and history,
// which is why "random" is the default.
const fallbackSessionID = "anonymous"

// Handler serves the chat endpoints.
type Handler struct {
	engine *Engine
	// sharedAnonymous funnels headerless requests into fallbackSessionID
	// instead of minting a fresh id per request.
	sharedAnonymous bool
}

// NewHandler creates the HTTP/WS handler for the engine.
func NewHandler(engine *Engine, sharedAnonymous bool) *Handler {
	return &Handler{engine: engine, sharedAnonymous: sharedAnonymous}
}

// chatRequest is the POST /api/chat body.
type chatRequest struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// HandleChat answers one chat turn. The session is correlated by the
// X-Session-Id request header; the id in use (minted if absent) is echoed
// in the response header so the widget can persist it.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	sessionID := h.sessionID(r.Header.Get("X-Session-Id"))
	w.Header().Set("X-Session-Id", sessionID)

	reply, err := h.engine.HandleMessage(r.Context(), sessionID, req.Message)
	if err != nil {
		if errors.Is(err, ErrEmptyMessage) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "message is required"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "something went wrong, please try again or contact support"})
		return
	}

	writeJSON(w, http.StatusOK, reply)
}

func (h *Handler) sessionID(header string) string {
	if header != "" {
		return header
	}
	if h.sharedAnonymous {
		return fallbackSessionID
	}
	return uuid.New().String()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
