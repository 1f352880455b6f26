// Package realtime pushes events to browsers over websockets.
//
// Every connection belongs to the group of the user that opened it. Broadcasts reach
// every connection, targeted events only the connections of one user. Sends never
// block the publisher: a connection whose buffer is full is dropped.
package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"logistics/internal/core/ports"

	"github.com/gorilla/websocket"
)

const (
	defaultSendBuffer = 32
	defaultPongWait   = 90 * time.Second
	writeWait         = 10 * time.Second
	maxMessageSize    = 4 << 10
)

// GroupName is the group every connection of userID joins.
func GroupName(userID string) string {
	return "user:" + userID
}

type Option func(*Hub)

// WithSendBuffer sets how many frames may queue per connection before it is dropped.
func WithSendBuffer(n int) Option {
	return func(h *Hub) {
		if n > 0 {
			h.sendBuffer = n
		}
	}
}

// WithPongWait sets how long a silent connection is kept. It must exceed the ping
// interval.
func WithPongWait(d time.Duration) Option {
	return func(h *Hub) {
		if d > 0 {
			h.pongWait = d
		}
	}
}

// WithAllowedOrigin restricts upgrades to requests from origin. Requests without an
// Origin header are always accepted.
func WithAllowedOrigin(origin string) Option {
	return func(h *Hub) {
		h.allowedOrigin = origin
	}
}

type Hub struct {
	mu     sync.Mutex
	groups map[string]map[*client]struct{}

	upgrader      websocket.Upgrader
	allowedOrigin string
	sendBuffer    int
	pongWait      time.Duration
	logger        *slog.Logger
}

var _ ports.EventPublisher = (*Hub)(nil)

func NewHub(logger *slog.Logger, opts ...Option) *Hub {
	h := &Hub{
		groups:     make(map[string]map[*client]struct{}),
		sendBuffer: defaultSendBuffer,
		pongWait:   defaultPongWait,
		logger:     logger.With("component", "realtime_hub"),
	}
	for _, opt := range opts {
		opt(h)
	}

	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}
	return h
}

type client struct {
	conn   *websocket.Conn
	group  string
	send   chan []byte
	closed bool
}

// Serve upgrades the request and joins the connection to the group of userID. The
// caller must have authenticated userID already. Serve returns once the connection is
// registered; reading and writing continue in the background.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, userID string) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return fmt.Errorf("upgrade websocket: %w", err)
	}

	c := &client{
		conn:  conn,
		group: GroupName(userID),
		send:  make(chan []byte, h.sendBuffer),
	}
	h.register(c)

	h.logger.InfoContext(r.Context(), "realtime connection opened", "group", c.group)

	go h.writePump(c)
	go h.readPump(c)

	return nil
}

func (h *Hub) PublishToAll(_ context.Context, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, members := range h.groups {
		for c := range members {
			h.enqueueLocked(c, payload)
		}
	}
	return nil
}

func (h *Hub) PublishToUser(_ context.Context, userID string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.groups[GroupName(userID)] {
		h.enqueueLocked(c, payload)
	}
	return nil
}

// Ping sends a ping frame to every connection and drops the ones that fail. It
// returns how many connections are still open.
func (h *Hub) Ping(ctx context.Context) int {
	deadline := time.Now().Add(writeWait)

	for _, c := range h.snapshot() {
		if err := c.conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
			h.logger.DebugContext(ctx, "ping failed, dropping connection", "group", c.group, "error", err)
			h.unregister(c)
			_ = c.conn.Close()
		}
	}

	return h.ConnectionCount()
}

func (h *Hub) ConnectionCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	n := 0
	for _, members := range h.groups {
		n += len(members)
	}
	return n
}

// Close drops every connection.
func (h *Hub) Close() {
	for _, c := range h.snapshot() {
		h.unregister(c)
	}
}

func (h *Hub) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || h.allowedOrigin == "" || h.allowedOrigin == "*" {
		return true
	}
	return origin == h.allowedOrigin
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	members, ok := h.groups[c.group]
	if !ok {
		members = make(map[*client]struct{})
		h.groups[c.group] = members
	}
	members[c] = struct{}{}
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.removeLocked(c)
}

// removeLocked closes c.send exactly once; the write pump then closes the socket.
func (h *Hub) removeLocked(c *client) {
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)

	members := h.groups[c.group]
	delete(members, c)
	if len(members) == 0 {
		delete(h.groups, c.group)
	}
}

func (h *Hub) enqueueLocked(c *client, payload []byte) {
	select {
	case c.send <- payload:
	default:
		h.logger.Warn("slow realtime connection dropped", "group", c.group)
		h.removeLocked(c)
	}
}

func (h *Hub) snapshot() []*client {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients := make([]*client, 0)
	for _, members := range h.groups {
		for c := range members {
			clients = append(clients, c)
		}
	}
	return clients
}

// readPump discards inbound frames. It only exists to process control frames and to
// notice when the peer goes away.
func (h *Hub) readPump(c *client) {
	defer func() {
		h.unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(h.pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(h.pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("realtime connection read failed", "group", c.group, "error", err)
			}
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	defer func() {
		_ = c.conn.Close()
		h.logger.Info("realtime connection closed", "group", c.group)
	}()

	for payload := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.unregister(c)
			return
		}
	}

	_ = c.conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait),
	)
}
