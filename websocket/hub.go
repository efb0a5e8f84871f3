// Package websocket pushes friend-lifecycle events to connected clients.
// The channel is server-push only; clients may only ping.
package websocket

import (
	"encoding/json"
	"sync"
)

type Hub struct {
	userConns  map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

func NewHub() *Hub {
	return &Hub{
		userConns:  make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.userConns[client.UserID] == nil {
				h.userConns[client.UserID] = make(map[*Client]bool)
			}
			h.userConns[client.UserID][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if h.userConns[client.UserID] != nil && h.userConns[client.UserID][client] {
				delete(h.userConns[client.UserID], client)
				if len(h.userConns[client.UserID]) == 0 {
					delete(h.userConns, client.UserID)
				}
				close(client.Send)
			}
			h.mu.Unlock()
		}
	}
}

// Notify satisfies the friends engine's notifier port.
func (h *Hub) Notify(userID, event string, payload interface{}) {
	data, err := json.Marshal(&Message{Event: event, Data: payload})
	if err != nil {
		return
	}

	h.mu.RLock()
	clients := make([]*Client, 0, len(h.userConns[userID]))
	for client := range h.userConns[userID] {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	for _, client := range clients {
		select {
		case client.Send <- data:
		default:
			h.unregister <- client
		}
	}
}

func (h *Hub) IsOnline(userID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.userConns[userID]) > 0
}
