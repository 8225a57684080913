package socket

import (
	"context"
	"encoding/json"
	"sync"

	"demoapps/pkg/logger"
)

const (
	CountType = "COUNT" // Counter value after a visit

	broadcastBuffer = 64
)

type WSMessage struct {
	Type     string          `json:"type"`
	ClientID string          `json:"client_id,omitempty"`
	Payload  json.RawMessage `json:"payload,omitempty"`
}

type CountPayload struct {
	Count int `json:"count"`
}

// CountSource reports the value sent to a client when it subscribes.
type CountSource func() (int, error)

// Hub fans counter updates out to every subscribed websocket client.
// All registration and delivery happens on the Run goroutine.
type Hub struct {
	Broadcast  chan WSMessage
	Register   chan *Client
	Unregister chan *Client

	current CountSource
	done    chan struct{}
	mu      sync.Mutex
	clients map[*Client]bool
}

func NewHub(current CountSource) *Hub {
	return &Hub{
		Broadcast:  make(chan WSMessage, broadcastBuffer),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		current:    current,
		done:       make(chan struct{}),
		clients:    make(map[*Client]bool),
	}
}

// Run serves the hub until ctx is cancelled, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.closeAll()
			return

		case client := <-h.Register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			logger.Sugar.Debugf("Feed client %s subscribed", client.ID)
			h.sendCurrent(client)

		case client := <-h.Unregister:
			h.remove(client)

		case msg := <-h.Broadcast:
			payload, err := json.Marshal(msg)
			if err != nil {
				logger.Sugar.Errorf("Error marshalling broadcast message: %v", err)
				continue
			}
			for _, client := range h.snapshot() {
				select {
				case client.Send <- payload:
				default:
					logger.Sugar.Warnf("Client %s's send buffer is full. Unregistering.", client.ID)
					h.remove(client)
				}
			}
		}
	}
}

// PublishCount queues a count update. It never blocks the caller: when the
// queue is full the update is dropped, since a later one supersedes it.
func (h *Hub) PublishCount(count int) {
	payload, err := json.Marshal(CountPayload{Count: count})
	if err != nil {
		logger.Sugar.Errorf("Error marshalling count payload: %v", err)
		return
	}
	select {
	case h.Broadcast <- WSMessage{Type: CountType, Payload: payload}:
	default:
		logger.Sugar.Warnf("Broadcast queue full, dropping count %d", count)
	}
}

// leave unregisters client unless the hub has already stopped.
func (h *Hub) leave(client *Client) {
	select {
	case h.Unregister <- client:
	case <-h.done:
	}
}

// Clients returns the number of subscribed clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) sendCurrent(client *Client) {
	if h.current == nil {
		return
	}
	count, err := h.current()
	if err != nil {
		logger.Sugar.Errorf("Failed to read current count for client %s: %v", client.ID, err)
		return
	}
	payload, _ := json.Marshal(CountPayload{Count: count})
	msg, _ := json.Marshal(WSMessage{Type: CountType, ClientID: client.ID, Payload: payload})
	select {
	case client.Send <- msg:
	default:
		logger.Sugar.Warnf("Client %s's send buffer was full on subscribe.", client.ID)
	}
}

func (h *Hub) snapshot() []*Client {
	h.mu.Lock()
	defer h.mu.Unlock()
	clients := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	return clients
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.Send)
		logger.Sugar.Debugf("Feed client %s unsubscribed", client.ID)
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		delete(h.clients, client)
		close(client.Send)
	}
}
