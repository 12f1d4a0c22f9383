package server

import (
	"net/http"

	"github.com/Artyom17/webxr-input-profiles/internal/hub"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // local use only
	},
}

func handleWebSocket(log *zap.Logger, h *hub.Hub, b *hub.Broadcaster, session *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Warn("websocket upgrade failed", zap.Error(err))
			return
		}

		client := hub.NewClient(h, conn)
		h.Register(client)

		go client.WritePump()

		// A fresh client gets the profile list and the current node state
		// before the command loop starts.
		client.Reply(hub.NewProfilesMessage(session.Profiles()))
		b.SendInitialState(client)

		go client.ReadPump(session)
	}
}
