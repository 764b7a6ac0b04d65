package assistant

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsRequest is the incoming WebSocket message format.
type wsRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"` // empty for new sessions
}

// wsResponse is the outgoing WebSocket message format: the Reply plus the
// session id so the widget can keep the conversation going.
type wsResponse struct {
	Reply
	SessionID string `json:"session_id"`
	Err       string `json:"error,omitempty"`
}

// HandleWS runs a chat conversation over a WebSocket. Each frame is one
// turn; the session id from the first reply should be echoed on later
// frames.
func (h *Handler) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("assistant: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("assistant: websocket read: %v", err)
			}
			return
		}

		var req wsRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			h.sendWS(conn, wsResponse{SessionID: req.SessionID, Err: "invalid message format"})
			continue
		}

		sessionID := h.sessionID(req.SessionID)

		reply, err := h.engine.HandleMessage(r.Context(), sessionID, req.Message)
		if err != nil {
			h.sendWS(conn, wsResponse{SessionID: sessionID, Err: "message is required"})
			continue
		}

		h.sendWS(conn, wsResponse{Reply: reply, SessionID: sessionID})
	}
}

func (h *Handler) sendWS(conn *websocket.Conn, resp wsResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("assistant: websocket write: %v", err)
	}
}
