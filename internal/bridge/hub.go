// Package bridge exposes a game session over websockets. Clients receive
// every session event and periodic snapshots, and send commands back.
package bridge

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"go-scanner-defense/internal/event"
	"go-scanner-defense/internal/interfaces"
)

const sendBuffer = 64

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Message is one outbound frame.
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

type client struct {
	id   string
	conn *websocket.Conn
	send chan Message
}

// Hub owns the session lock. The simulation tick and every client command
// run under it, so the session itself stays single-threaded.
type Hub struct {
	mu            sync.Mutex
	game          interfaces.Game
	clients       map[*client]struct{}
	snapshotEvery time.Duration
}

// NewHub wraps a session. Register the hub as a listener on the session's
// dispatcher (SubscribeAll) to forward events.
func NewHub(game interfaces.Game, snapshotEvery time.Duration) *Hub {
	return &Hub{
		game:          game,
		clients:       make(map[*client]struct{}),
		snapshotEvery: snapshotEvery,
	}
}

// OnEvent forwards a session event to every client. It runs inside Tick.
func (h *Hub) OnEvent(e event.Event) {
	h.broadcast(Message{Type: string(e.Type), Data: e.Data})
}

// Tick advances the session.
func (h *Hub) Tick(deltaTime float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.game.Update(deltaTime)
}

// Run ticks the session at rate until ctx is done.
func (h *Hub) Run(ctx context.Context, rate time.Duration) {
	ticker := time.NewTicker(rate)
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			h.Tick(now.Sub(last).Seconds())
			last = now
		}
	}
}

// Clients reports connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) snapshot() Message {
	h.mu.Lock()
	defer h.mu.Unlock()
	return Message{Type: "snapshot", Data: h.game.Snapshot()}
}

// broadcast must be called with h.mu held. Slow clients drop frames.
func (h *Hub) broadcast(msg Message) {
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
		}
	}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
}

// ServeHTTP upgrades the request and serves one client until it leaves.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Bridge] upgrade: %v", err)
		return
	}
	c := &client{id: uuid.NewString(), conn: conn, send: make(chan Message, sendBuffer)}
	h.register(c)
	log.Printf("[Bridge] client %s connected from %s", c.id, r.RemoteAddr)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	go func() {
		defer cancel()
		for {
			var cmd Command
			if err := conn.ReadJSON(&cmd); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("[Bridge] read: %v", err)
				}
				return
			}
			res := h.Handle(cmd)
			select {
			case c.send <- Message{Type: "result", Data: res}:
			case <-ctx.Done():
				return
			}
		}
	}()

	h.writeLoop(ctx, c)

	h.unregister(c)
	conn.Close()
	log.Printf("[Bridge] client %s left", c.id)
}

func (h *Hub) writeLoop(ctx context.Context, c *client) {
	if err := c.conn.WriteJSON(h.snapshot()); err != nil {
		return
	}
	ticker := time.NewTicker(h.snapshotEvery)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-c.send:
			if err := c.conn.WriteJSON(msg); err != nil {
				log.Printf("[Bridge] write: %v", err)
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteJSON(h.snapshot()); err != nil {
				log.Printf("[Bridge] write: %v", err)
				return
			}
		}
	}
}
