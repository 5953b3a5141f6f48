package ws

import (
	"encoding/json"
	"sync"
	"time"

	"talent-match/internal/domain/notification"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const eventNotification = "notification"

// Event is the frame written to connected clients.
type Event struct {
	Type         string                     `json:"type"`
	Notification *notification.Notification `json:"notification,omitempty"`
	Timestamp    string                     `json:"timestamp"`
}

type directMessage struct {
	userID  uuid.UUID
	payload []byte
}

// Hub tracks open connections per user and fans notifications out to them.
type Hub struct {
	clients    map[uuid.UUID]map[*Client]bool
	direct     chan directMessage
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mutex      sync.RWMutex
	logger     *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		clients:    make(map[uuid.UUID]map[*Client]bool),
		direct:     make(chan directMessage, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run serves the hub until Stop is called.
func (h *Hub) Run() {
	for {
		select {
		case <-h.done:
			h.closeAll()
			return

		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			set, ok := h.clients[client.userID]
			if !ok {
				set = make(map[*Client]bool)
				h.clients[client.userID] = set
			}
			set[client] = true
			total := len(set)
			h.mutex.Unlock()
			h.logger.Debug("ws connected", zap.String("user_id", client.userID.String()), zap.Int("user_clients", total))

		case client := <-h.unregister:
			h.remove(client)

		case msg := <-h.direct:
			h.mutex.RLock()
			targets := make([]*Client, 0, len(h.clients[msg.userID]))
			for c := range h.clients[msg.userID] {
				targets = append(targets, c)
			}
			h.mutex.RUnlock()

			for _, client := range targets {
				select {
				case client.send <- msg.payload:
				default:
					h.remove(client)
				}
			}
		}
	}
}

func (h *Hub) Stop() {
	if h == nil {
		return
	}
	select {
	case <-h.done:
	default:
		close(h.done)
	}
}

func (h *Hub) remove(client *Client) {
	if client == nil {
		return
	}
	h.mutex.Lock()
	defer h.mutex.Unlock()
	set, ok := h.clients[client.userID]
	if !ok || !set[client] {
		return
	}
	delete(set, client)
	close(client.send)
	if len(set) == 0 {
		delete(h.clients, client.userID)
	}
	h.logger.Debug("ws disconnected", zap.String("user_id", client.userID.String()))
}

func (h *Hub) closeAll() {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	for id, set := range h.clients {
		for c := range set {
			close(c.send)
		}
		delete(h.clients, id)
	}
}

// Register adds client to the hub. Once the hub is stopped the client's send
// channel is closed instead, so its write pump hangs up.
func (h *Hub) Register(client *Client) {
	if h == nil || client == nil {
		return
	}
	select {
	case <-h.done:
		close(client.send)
		return
	default:
	}
	select {
	case h.register <- client:
	case <-h.done:
		close(client.send)
	}
}

// Unregister never blocks after Stop; closeAll has already released the client.
func (h *Hub) Unregister(client *Client) {
	if h == nil || client == nil {
		return
	}
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Push queues n for every open connection of userID. It never blocks; the
// notification is already stored and clients catch up by listing.
func (h *Hub) Push(userID uuid.UUID, n notification.Notification) {
	if h == nil {
		return
	}
	b, err := json.Marshal(Event{
		Type:         eventNotification,
		Notification: &n,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		h.logger.Warn("ws encode failed", zap.Error(err))
		return
	}
	select {
	case h.direct <- directMessage{userID: userID, payload: b}:
	default:
		h.logger.Warn("ws push dropped", zap.String("reason", "buffer_full"))
	}
}

func (h *Hub) ClientCount(userID uuid.UUID) int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients[userID])
}
