package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type staticMembership struct {
	participants map[string]bool
}

func (s *staticMembership) IsParticipant(ctx context.Context, matchID, userID string) (bool, error) {
	return s.participants[matchID+"/"+userID], nil
}

func newTestManager(t *testing.T, participants map[string]bool) (*Manager, context.CancelFunc) {
	t.Helper()
	m := NewManager(&staticMembership{participants: participants})
	ctx, cancel := context.WithCancel(context.Background())
	m.Start(ctx)
	return m, cancel
}

func newTestClient(userID string) *Client {
	return &Client{UserID: userID, Send: make(chan []byte, 4)}
}

func register(t *testing.T, m *Manager, client *Client) {
	t.Helper()
	m.Register <- client
	assert.Eventually(t, func() bool {
		m.mutex.RLock()
		defer m.mutex.RUnlock()
		return m.clients[client]
	}, time.Second, time.Millisecond)
}

func TestJoinRoomRequiresMembership(t *testing.T) {
	m, cancel := newTestManager(t, map[string]bool{"match-1/user-1": true})
	defer cancel()

	member := newTestClient("user-1")
	register(t, m, member)
	stranger := newTestClient("user-3")
	register(t, m, stranger)

	assert.NoError(t, m.JoinRoom(context.Background(), member, "match-1"))
	assert.Equal(t, 1, m.RoomSize("match-1"))

	err := m.JoinRoom(context.Background(), stranger, "match-1")
	assert.ErrorIs(t, err, errNotParticipant)
	assert.Equal(t, 1, m.RoomSize("match-1"))
}

func TestBroadcastToRoom(t *testing.T) {
	m, cancel := newTestManager(t, map[string]bool{
		"match-1/user-1": true,
		"match-1/user-2": true,
	})
	defer cancel()

	a := newTestClient("user-1")
	register(t, m, a)
	b := newTestClient("user-2")
	register(t, m, b)
	outside := newTestClient("user-1")
	register(t, m, outside)

	assert.NoError(t, m.JoinRoom(context.Background(), a, "match-1"))
	assert.NoError(t, m.JoinRoom(context.Background(), b, "match-1"))

	m.BroadcastToRoom("match-1", EventNewMessage, map[string]string{"content": "hello"})

	for _, client := range []*Client{a, b} {
		select {
		case payload := <-client.Send:
			var event Event
			assert.NoError(t, json.Unmarshal(payload, &event))
			assert.Equal(t, EventNewMessage, event.Event)
		case <-time.After(time.Second):
			t.Fatal("expected a broadcast payload")
		}
	}

	// A registered client that never joined the room hears nothing.
	select {
	case <-outside.Send:
		t.Fatal("client outside the room received a broadcast")
	default:
	}
}

func TestBroadcastDropsSlowConsumer(t *testing.T) {
	m, cancel := newTestManager(t, map[string]bool{"match-1/user-1": true})
	defer cancel()

	slow := &Client{UserID: "user-1", Send: make(chan []byte)}
	register(t, m, slow)
	assert.NoError(t, m.JoinRoom(context.Background(), slow, "match-1"))

	// Nobody reads slow.Send, so the broadcast must evict it instead of
	// blocking.
	m.BroadcastToRoom("match-1", EventNewMessage, map[string]string{"content": "hello"})

	assert.Equal(t, 0, m.RoomSize("match-1"))
	_, open := <-slow.Send
	assert.False(t, open)
}

func TestBroadcastConcurrentWithEviction(t *testing.T) {
	m, cancel := newTestManager(t, map[string]bool{"match-1/user-1": true})
	defer cancel()

	// A big room where several members fill up mid-broadcast, so concurrent
	// broadcasts race their evictions against each other's sends.
	for i := 0; i < 32; i++ {
		client := &Client{UserID: "user-1", Send: make(chan []byte, 2)}
		register(t, m, client)
		assert.NoError(t, m.JoinRoom(context.Background(), client, "match-1"))
	}
	slow := &Client{UserID: "user-1", Send: make(chan []byte)}
	register(t, m, slow)
	assert.NoError(t, m.JoinRoom(context.Background(), slow, "match-1"))

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				m.BroadcastToRoom("match-1", EventNewMessage, map[string]string{
					"content": fmt.Sprintf("%d-%d", g, i),
				})
			}
		}(g)
	}
	wg.Wait()

	// Every full client was evicted without any send hitting its closed
	// channel, and a post-eviction error frame is a quiet no-op.
	assert.Equal(t, 0, m.RoomSize("match-1"))
	m.sendError(slow, "too slow")
}

func TestLeaveRoom(t *testing.T) {
	m, cancel := newTestManager(t, map[string]bool{"match-1/user-1": true})
	defer cancel()

	client := newTestClient("user-1")
	register(t, m, client)
	assert.NoError(t, m.JoinRoom(context.Background(), client, "match-1"))
	assert.Equal(t, 1, m.RoomSize("match-1"))

	m.LeaveRoom(client, "match-1")
	assert.Equal(t, 0, m.RoomSize("match-1"))

	// Leaving a room twice, or a room never joined, is harmless.
	m.LeaveRoom(client, "match-1")
	m.LeaveRoom(client, "match-9")
}

func TestUnregisterRemovesFromAllRooms(t *testing.T) {
	m, cancel := newTestManager(t, map[string]bool{
		"match-1/user-1": true,
		"match-2/user-1": true,
	})
	defer cancel()

	client := newTestClient("user-1")
	register(t, m, client)
	assert.NoError(t, m.JoinRoom(context.Background(), client, "match-1"))
	assert.NoError(t, m.JoinRoom(context.Background(), client, "match-2"))

	m.Unregister <- client
	assert.Eventually(t, func() bool {
		return m.RoomSize("match-1") == 0 && m.RoomSize("match-2") == 0
	}, time.Second, time.Millisecond)

	_, open := <-client.Send
	assert.False(t, open)
}
