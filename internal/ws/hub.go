package ws

import (
	"sync"

	"applyflow/internal/pkg/logger"

	"github.com/google/uuid"
)

type delivery struct {
	userID  uuid.UUID
	message []byte
}

// Hub fans pipeline notifications out to a user's live connections. Each
// client is keyed by the user it authenticated as; deliveries only reach that
// user's connections.
type Hub struct {
	clients    map[*Client]bool
	deliver    chan delivery
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
	logger     *logger.Logger
}

func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		deliver:    make(chan delivery, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		logger:     log,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mutex.Unlock()
			h.logger.Debug("ws connected", "user_id", client.userID, "total_clients", total)

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			total := len(h.clients)
			h.mutex.Unlock()
			h.logger.Debug("ws disconnected", "user_id", client.userID, "total_clients", total)

		case d := <-h.deliver:
			h.mutex.RLock()
			targets := make([]*Client, 0, len(h.clients))
			for c := range h.clients {
				if c.userID == d.userID {
					targets = append(targets, c)
				}
			}
			h.mutex.RUnlock()

			for _, client := range targets {
				select {
				case client.send <- d.message:
				default:
					h.unregister <- client
				}
			}
		}
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	h.unregister <- client
}

// Send queues a message for every connection of userID. Dropped when the hub
// buffer is full.
func (h *Hub) Send(userID uuid.UUID, message []byte) {
	if h == nil {
		return
	}
	select {
	case h.deliver <- delivery{userID: userID, message: message}:
	default:
		h.logger.Warn("ws delivery dropped", "reason", "buffer_full", "user_id", userID)
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}
