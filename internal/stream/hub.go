// Package stream publishes flock snapshots to websocket clients and forwards their
// tracking and overlay commands back to the simulation.
package stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	golog "github.com/tochemey/goakt/v3/log"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pb"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
)

const writeTimeout = 2 * time.Second

// ErrUnknownMessage is returned for client messages with an unsupported type.
var ErrUnknownMessage = errors.New("unknown message type")

// Controller is the part of the simulation that clients can drive.
// *simulation.Simulation implements it.
type Controller interface {
	SetTracked(ctx context.Context, id flock.AgentID, tracked bool) error
	ToggleRuleVisual(ctx context.Context, rule flock.Rule) error
	Snapshot(ctx context.Context) (*pb.FlockSnapshot, error)
}

// ClientMessage is a command sent by a websocket client, e.g.
//
//	{"type":"track","id":3,"tracked":true}
//	{"type":"toggle","rule":"RULE_COHESION"}
type ClientMessage struct {
	Type    string `json:"type"`
	ID      uint32 `json:"id,omitempty"`
	Tracked bool   `json:"tracked,omitempty"`
	Rule    string `json:"rule,omitempty"`
}

// Reply acknowledges a ClientMessage.
type Reply struct {
	Type  string `json:"type"` // "ack" or "error"
	Error string `json:"error,omitempty"`
}

type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) write(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.conn.WriteMessage(messageType, data)
}

func (c *client) writeJSON(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.write(websocket.TextMessage, b)
}

// Hub fans snapshots out to every connected client.
type Hub struct {
	ctrl     Controller
	logger   golog.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
	latest  []byte // last broadcast snapshot, protojson
}

// NewHub creates a hub. Any origin may connect.
func NewHub(ctrl Controller, logger golog.Logger) *Hub {
	return &Hub{
		ctrl:     ctrl,
		logger:   logger,
		upgrader: websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
		clients:  make(map[*client]struct{}),
	}
}

// Handler serves GET /ws and GET /snapshot.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ws", h.serveWS)
	mux.HandleFunc("GET /snapshot", h.serveSnapshot)
	return mux
}

// Run broadcasts every snapshot received on snapshots until ctx is done or the channel is closed.
func (h *Hub) Run(ctx context.Context, snapshots <-chan *pb.FlockSnapshot) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case snap, ok := <-snapshots:
			if !ok {
				h.closeAll()
				return
			}
			if err := h.Broadcast(snap); err != nil {
				h.logger.Errorf("broadcast: %v", err)
			}
		}
	}
}

// Broadcast sends snap to every client. Clients that fail to receive it are dropped.
func (h *Hub) Broadcast(snap *pb.FlockSnapshot) error {
	b, err := protojson.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	h.mu.Lock()
	h.latest = b
	list := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		list = append(list, c)
	}
	h.mu.Unlock()

	for _, c := range list {
		if err := c.write(websocket.TextMessage, b); err != nil {
			h.logger.Warnf("client send error: %v", err)
			h.drop(c)
		}
	}
	return nil
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warnf("upgrade: %v", err)
		return
	}
	c := &client{conn: conn}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	h.logger.Infof("client %s connected", conn.RemoteAddr())

	for {
		var msg ClientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			break
		}
		reply := Reply{Type: "ack"}
		if err := h.handle(r.Context(), msg); err != nil {
			reply = Reply{Type: "error", Error: err.Error()}
		}
		if err := c.writeJSON(reply); err != nil {
			break
		}
	}
	h.drop(c)
	h.logger.Infof("client %s disconnected", conn.RemoteAddr())
}

func (h *Hub) handle(ctx context.Context, msg ClientMessage) error {
	switch msg.Type {
	case "track":
		return h.ctrl.SetTracked(ctx, flock.AgentID(msg.ID), msg.Tracked)
	case "toggle":
		value, ok := pb.Rule_value[msg.Rule]
		if !ok {
			return fmt.Errorf("unknown rule %q", msg.Rule)
		}
		rule, err := flock.RuleFromProto(pb.Rule(value))
		if err != nil {
			return err
		}
		return h.ctrl.ToggleRuleVisual(ctx, rule)
	}
	return fmt.Errorf("%w: %q", ErrUnknownMessage, msg.Type)
}

func (h *Hub) serveSnapshot(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	b := h.latest
	h.mu.Unlock()

	if b == nil {
		snap, err := h.ctrl.Snapshot(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		if b, err = protojson.Marshal(snap); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(b)
}

func (h *Hub) drop(c *client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()
	if ok {
		_ = c.conn.Close()
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	list := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		list = append(list, c)
	}
	h.mu.Unlock()
	for _, c := range list {
		h.drop(c)
	}
}
