// Package web serves a read-only WebSocket feed of running sessions so
// spectators can watch a game from a browser or another tool.
package web

import (
	"context"
	"encoding/json"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/finsurf/internal/games/surf"
)

// Hub maintains the set of connected spectators and fans out snapshots.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mu         sync.RWMutex
	logger     *log.Logger
}

// NewHub creates a new Hub. logger may be nil.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run starts the hub's main loop. It disconnects every client and returns
// when ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.Info("spectator connected", "client", client.ID)

		case client := <-h.unregister:
			h.remove(client)
			h.logger.Info("spectator disconnected", "client", client.ID)

		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			return
		}
	}
}

// join registers a client unless the hub has stopped.
func (h *Hub) join(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

// leave unregisters a client unless the hub has stopped.
func (h *Hub) leave(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
}

// Broadcast sends raw data to all connected clients. Slow clients drop
// messages instead of blocking the caller.
func (h *Hub) Broadcast(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			h.logger.Debug("spectator send buffer full", "client", client.ID)
		}
	}
}

// Publish broadcasts a snapshot of s. It is shaped to be used as a
// controller's OnTick hook.
func (h *Hub) Publish(session string, s surf.State) {
	if h.ClientCount() == 0 {
		return
	}
	data, err := json.Marshal(NewSnapshot(session, s))
	if err != nil {
		h.logger.Error("failed to marshal snapshot", "error", err)
		return
	}
	h.Broadcast(data)
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
