package server

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/jsphweid/chordflow/model"
)

// Hub tracks connected websocket clients. A failed write drops the client;
// the frontend reconnects on its own.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]bool)}
}

func (h *Hub) Add(ws *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[ws] = true
}

func (h *Hub) Remove(ws *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, ws)
}

func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) Broadcast(msg model.ChordMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ws := range h.clients {
		if err := ws.WriteJSON(msg); err != nil {
			log.Printf("dropping websocket client: %v", err)
			ws.Close()
			delete(h.clients, ws)
		}
	}
}
