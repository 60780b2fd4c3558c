package ws

import (
	"context"
	"log/slog"
	"sync"
)

// Hub tracks connected players and funnels their messages to a single goroutine.
type Hub struct {
	Clients    map[*Client]bool
	Register   chan *Client
	Unregister chan *Client
	Incoming   chan *ClientMessage
	mu         sync.RWMutex
	done       chan struct{}

	// OnMessage is called for each incoming client message.
	OnMessage func(cm *ClientMessage)
	// OnDisconnect is called before the client's Send channel is closed.
	OnDisconnect func(client *Client)
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*Client]bool),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Incoming:   make(chan *ClientMessage, 256),
		done:       make(chan struct{}),
	}
}

// Run processes registrations and messages until ctx is cancelled.
// On return every remaining client is disconnected.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			h.Clients[client] = true
			h.mu.Unlock()
			slog.Info("client connected", "client", client.ID)

		case client := <-h.Unregister:
			h.drop(client)

		case cm := <-h.Incoming:
			if h.OnMessage != nil {
				h.OnMessage(cm)
			}

		case <-ctx.Done():
			h.mu.RLock()
			remaining := make([]*Client, 0, len(h.Clients))
			for c := range h.Clients {
				remaining = append(remaining, c)
			}
			h.mu.RUnlock()
			for _, c := range remaining {
				h.drop(c)
			}
			return
		}
	}
}

// Done is closed once Run has returned.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

func (h *Hub) drop(client *Client) {
	h.mu.Lock()
	_, ok := h.Clients[client]
	delete(h.Clients, client)
	h.mu.Unlock()
	if !ok {
		return
	}

	// the session stops writing before Send is closed
	if h.OnDisconnect != nil {
		h.OnDisconnect(client)
	}
	close(client.Send)
	slog.Info("client disconnected", "client", client.ID)
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.Clients)
}
