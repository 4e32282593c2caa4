package websocket

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/gorilla/websocket"

	"pawmatch/pkg/logger"
)

// Event names shared with clients.
const (
	EventJoinMatch  = "joinMatch"
	EventLeaveMatch = "leaveMatch"
	EventNewMessage = "newMessage"
	EventError      = "error"
)

var errNotParticipant = errors.New("not a participant in this match")

// Event is the envelope for every frame in both directions.
type Event struct {
	Event   string      `json:"event"`
	MatchID string      `json:"match_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// HandleClientMessage dispatches one inbound frame from a connection.
func (m *Manager) HandleClientMessage(client *Client, raw []byte) {
	var event Event
	if err := json.Unmarshal(raw, &event); err != nil {
		m.sendError(client, "Invalid event format")
		return
	}

	switch event.Event {
	case EventJoinMatch:
		if event.MatchID == "" {
			m.sendError(client, "match_id is required")
			return
		}
		if err := m.JoinRoom(context.Background(), client, event.MatchID); err != nil {
			if errors.Is(err, errNotParticipant) {
				m.sendError(client, "Not a participant in this match")
				return
			}
			logger.Error("Join room failed for %s: %v", client.UserID, err)
			m.sendError(client, "Failed to join match")
			return
		}
		logger.Debug("Client %s joined room %s", client.UserID, event.MatchID)

	case EventLeaveMatch:
		if event.MatchID == "" {
			m.sendError(client, "match_id is required")
			return
		}
		m.LeaveRoom(client, event.MatchID)

	default:
		m.sendError(client, "Unknown event type")
	}
}

func (m *Manager) sendError(client *Client, message string) {
	payload, err := json.Marshal(Event{Event: EventError, Data: map[string]string{"message": message}})
	if err != nil {
		return
	}
	client.trySend(payload)
}

// ReadPump reads frames from the connection until it closes.
func (c *Client) ReadPump(m *Manager) {
	defer func() {
		m.Unregister <- c
		c.Conn.Close()
	}()

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("WebSocket read error for %s: %v", c.UserID, err)
			}
			break
		}
		m.HandleClientMessage(c, raw)
	}
}

// WritePump drains the send channel into the connection.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			logger.Warn("WebSocket write error for %s: %v", c.UserID, err)
			return
		}
	}
}
