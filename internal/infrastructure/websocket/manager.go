package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"pawmatch/pkg/logger"
)

// MembershipChecker reports whether a user participates in a match. The
// manager consults it before letting a connection join a room.
type MembershipChecker interface {
	IsParticipant(ctx context.Context, matchID, userID string) (bool, error)
}

// Client is one live WebSocket connection.
type Client struct {
	UserID string
	Conn   *websocket.Conn
	Send   chan []byte

	mu     sync.Mutex
	closed bool
}

// trySend queues a payload unless the client is closed or its buffer is
// full. The mutex orders sends against closeSend so a send can never hit a
// closed channel.
func (c *Client) trySend(payload []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.Send <- payload:
		return true
	default:
		return false
	}
}

// closeSend closes the send channel exactly once.
func (c *Client) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.Send)
}

// Manager owns the room table: one room per match id, holding every
// connection that joined it. A single instance is created at process start
// and injected where needed.
type Manager struct {
	clients    map[*Client]bool
	rooms      map[string]map[*Client]bool
	Register   chan *Client
	Unregister chan *Client
	membership MembershipChecker
	mutex      sync.RWMutex
}

func NewManager(membership MembershipChecker) *Manager {
	return &Manager{
		clients:    make(map[*Client]bool),
		rooms:      make(map[string]map[*Client]bool),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		membership: membership,
	}
}

// Start runs the register/unregister loop until the context is cancelled.
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				m.clients[client] = true
				m.mutex.Unlock()
				logger.Info("WebSocket client connected: %s", client.UserID)

			case client := <-m.Unregister:
				m.removeClient(client)
				logger.Info("WebSocket client disconnected: %s", client.UserID)

			case <-ctx.Done():
				return
			}
		}
	}()
}

func (m *Manager) removeClient(client *Client) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, ok := m.clients[client]; !ok {
		return
	}
	delete(m.clients, client)
	for roomID, members := range m.rooms {
		delete(members, client)
		if len(members) == 0 {
			delete(m.rooms, roomID)
		}
	}
	client.closeSend()
}

// JoinRoom adds the client to the match room after verifying the caller owns
// one of the two dogs in the match.
func (m *Manager) JoinRoom(ctx context.Context, client *Client, matchID string) error {
	ok, err := m.membership.IsParticipant(ctx, matchID, client.UserID)
	if err != nil {
		return err
	}
	if !ok {
		return errNotParticipant
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.rooms[matchID] == nil {
		m.rooms[matchID] = make(map[*Client]bool)
	}
	m.rooms[matchID][client] = true
	return nil
}

func (m *Manager) LeaveRoom(client *Client, matchID string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if members, ok := m.rooms[matchID]; ok {
		delete(members, client)
		if len(members) == 0 {
			delete(m.rooms, matchID)
		}
	}
}

// BroadcastToRoom sends an event to every connection currently in the room.
// Slow consumers are dropped rather than blocking the sender.
func (m *Manager) BroadcastToRoom(roomID string, event string, data interface{}) {
	payload, err := json.Marshal(Event{Event: event, Data: data})
	if err != nil {
		logger.Error("Failed to marshal %s event for room %s: %v", event, roomID, err)
		return
	}

	m.mutex.RLock()
	members := make([]*Client, 0, len(m.rooms[roomID]))
	for client := range m.rooms[roomID] {
		members = append(members, client)
	}
	m.mutex.RUnlock()

	for _, client := range members {
		if !client.trySend(payload) {
			m.removeClient(client)
		}
	}
}

// RoomSize reports how many connections are in a room.
func (m *Manager) RoomSize(roomID string) int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.rooms[roomID])
}
