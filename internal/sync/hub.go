// Package sync broadcasts encounter state to connected player-view
// clients over WebSocket. The display is read-only: client messages
// are drained and discarded, and the reader exists only to notice
// disconnects.
package sync

import (
	"log/slog"
	"net/http"
	gosync "sync"

	"github.com/gorilla/websocket"

	"github.com/dmgrid/encounter-api/internal/entities"
)

// SyncMessage is the envelope pushed to every connected client after a
// state change.
type SyncMessage struct {
	Type         string                  `json:"type"`
	Participants []*entities.Participant `json:"participants"`
	CurrentIndex int                     `json:"currentIndex"`
	Round        int                     `json:"round"`
}

// MessageTypeSync identifies a full state push.
const MessageTypeSync = "SYNC"

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// client wraps a connection with a write lock. gorilla/websocket allows
// only one concurrent writer per connection, and both the late-joiner
// replay and Publish target the same conn.
type client struct {
	conn *websocket.Conn
	mu   gosync.Mutex
}

func (c *client) write(msg *SyncMessage) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(msg)
}

// Hub tracks connected clients and pushes state to all of them. Safe
// for concurrent use.
type Hub struct {
	mu      gosync.Mutex
	clients map[*client]struct{}
	last    *SyncMessage
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
	}
}

// Handle upgrades an HTTP request to a WebSocket connection, registers
// it, and immediately sends the most recent state so late joiners do
// not wait for the next mutation.
func (h *Hub) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err, "remote", r.RemoteAddr)
		return
	}
	slog.Info("player view connected", "remote", r.RemoteAddr)

	c := &client{conn: conn}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	last := h.last
	h.mu.Unlock()

	if last != nil {
		if err := c.write(last); err != nil {
			slog.Warn("websocket write failed", "error", err)
			h.drop(c)
			return
		}
	}

	go h.reader(c)
}

// Publish pushes a snapshot to every connected client and keeps it for
// late joiners. Failed writes drop the client.
func (h *Hub) Publish(snap *entities.Snapshot) {
	msg := &SyncMessage{
		Type:         MessageTypeSync,
		Participants: snap.Participants,
		CurrentIndex: snap.CurrentIndex,
		Round:        snap.Round,
	}

	h.mu.Lock()
	h.last = msg
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		if err := c.write(msg); err != nil {
			slog.Warn("websocket write failed", "error", err)
			h.drop(c)
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.clients = make(map[*client]struct{})
	h.mu.Unlock()

	for _, c := range clients {
		_ = c.conn.Close()
	}
}

func (h *Hub) reader(c *client) {
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			h.drop(c)
			return
		}
	}
}

func (h *Hub) drop(c *client) {
	h.mu.Lock()
	_, present := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()

	if present {
		slog.Info("player view disconnected")
	}
	_ = c.conn.Close()
}
