// Package realtime pushes store change notifications to open dashboards
// over websockets so they can recompute their derived views.
package realtime

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"ukkm-backend/internal/timeutil"
)

// Event describes one successful mutation
type Event struct {
	Kind   string    `json:"kind"`
	Action string    `json:"action"`
	ID     int       `json:"id"`
	At     time.Time `json:"at"`
}

const writeWait = 5 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type Hub struct {
	clients    map[*websocket.Conn]bool
	clientsMux sync.Mutex
	broadcast  chan Event
	logger     *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		clients:   make(map[*websocket.Conn]bool),
		broadcast: make(chan Event, 64),
		logger:    logger,
	}
}

// Publish queues an event. When the queue is full the event is dropped.
func (h *Hub) Publish(kind, action string, id int) {
	evt := Event{Kind: kind, Action: action, ID: id, At: timeutil.Now()}
	select {
	case h.broadcast <- evt:
	default:
		h.logger.Warn("change feed full, dropping event", zap.String("kind", kind), zap.Int("id", id))
	}
}

// Run fans queued events out to every client until ctx is done, then
// disconnects all clients.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case evt := <-h.broadcast:
			h.send(evt)
		}
	}
}

func (h *Hub) send(evt Event) {
	h.clientsMux.Lock()
	defer h.clientsMux.Unlock()
	for client := range h.clients {
		client.SetWriteDeadline(time.Now().Add(writeWait))
		if err := client.WriteJSON(evt); err != nil {
			client.Close()
			delete(h.clients, client)
		}
	}
}

func (h *Hub) closeAll() {
	h.clientsMux.Lock()
	defer h.clientsMux.Unlock()
	for client := range h.clients {
		client.Close()
		delete(h.clients, client)
	}
}

// Clients is the number of connected sockets
func (h *Hub) Clients() int {
	h.clientsMux.Lock()
	defer h.clientsMux.Unlock()
	return len(h.clients)
}

// ServeWS upgrades the request and holds the socket until the peer leaves
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Debug("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	h.clientsMux.Lock()
	h.clients[conn] = true
	h.clientsMux.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.clientsMux.Lock()
			delete(h.clients, conn)
			h.clientsMux.Unlock()
			return
		}
	}
}
