package hub

import (
	"encoding/json"

	"github.com/Artyom17/webxr-input-profiles/internal/viewer"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Session is the viewer surface a client's commands act on.
type Session interface {
	Profiles() []ProfileSummary
	SelectProfile(profileID, handedness string) (*ProfileInfo, error)
	LoadModel(nodes json.RawMessage) ([]viewer.MarkerPlacement, error)
	SetInput(componentID string, in viewer.Input) error
	Clear()
}

// Client represents a connected WebSocket client.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// NewClient creates a new Client attached to the hub.
func NewClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, 256),
	}
}

// WritePump sends messages from the send channel to the WebSocket connection.
func (c *Client) WritePump() {
	defer func() {
		c.conn.Close()
	}()

	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

// ReadPump reads commands from the WebSocket and applies them to the session.
func (c *Client) ReadPump(session Session) {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			break
		}

		var cmd ClientMessage
		if err := json.Unmarshal(message, &cmd); err != nil {
			c.hub.log.Warn("malformed client message", zap.Error(err))
			continue
		}

		switch cmd.Type {
		case "select":
			info, err := session.SelectProfile(cmd.ProfileID, cmd.Handedness)
			if err != nil {
				c.Reply(NewErrorMessage(err))
				continue
			}
			c.Reply(NewProfileMessage(info))
			c.hub.log.Info("profile selected",
				zap.String("profile", cmd.ProfileID),
				zap.String("handedness", cmd.Handedness))

		case "model":
			markers, err := session.LoadModel(cmd.Nodes)
			if err != nil {
				c.Reply(NewErrorMessage(err))
				continue
			}
			c.Reply(NewModelMessage(markers))

		case "input":
			if cmd.Input == nil {
				continue
			}
			if err := session.SetInput(cmd.ComponentID, *cmd.Input); err != nil {
				c.Reply(NewErrorMessage(err))
			}

		case "clear":
			session.Clear()

		default:
			c.hub.log.Warn("unknown client command", zap.String("type", cmd.Type))
		}
	}
}

// Reply queues a message for this client only, dropping it if the client
// cannot keep up.
func (c *Client) Reply(msg *ServerMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		c.hub.log.Error("marshal reply", zap.Error(err))
		return
	}
	select {
	case c.send <- data:
	default:
	}
}
