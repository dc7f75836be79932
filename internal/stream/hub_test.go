package stream

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	golog "github.com/tochemey/goakt/v3/log"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pb"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
)

type fakeController struct {
	mu       sync.Mutex
	tracked  map[flock.AgentID]bool
	toggled  []flock.Rule
	snapshot *pb.FlockSnapshot
}

func newFakeController() *fakeController {
	return &fakeController{
		tracked:  make(map[flock.AgentID]bool),
		snapshot: &pb.FlockSnapshot{RunId: "fake", Tick: 7},
	}
}

func (f *fakeController) SetTracked(_ context.Context, id flock.AgentID, tracked bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tracked[id] = tracked
	return nil
}

func (f *fakeController) ToggleRuleVisual(_ context.Context, rule flock.Rule) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.toggled = append(f.toggled, rule)
	return nil
}

func (f *fakeController) Snapshot(context.Context) (*pb.FlockSnapshot, error) {
	if f.snapshot == nil {
		return nil, errors.New("no snapshot")
	}
	return f.snapshot, nil
}

func startHub(t *testing.T, ctrl Controller) (*Hub, *httptest.Server) {
	t.Helper()
	hub := NewHub(ctrl, golog.DiscardLogger)
	srv := httptest.NewServer(hub.Handler())
	t.Cleanup(srv.Close)
	return hub, srv
}

func dial(t *testing.T, hub *Hub, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)
	return conn
}

func readReply(t *testing.T, conn *websocket.Conn) Reply {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var r Reply
	require.NoError(t, conn.ReadJSON(&r))
	return r
}

func TestHub_BroadcastsSnapshots(t *testing.T) {
	hub, srv := startHub(t, newFakeController())
	conn := dial(t, hub, srv)

	snap := &pb.FlockSnapshot{
		RunId: "run",
		Tick:  42,
		Agents: []*pb.AgentState{
			{Id: 3, Position: &pb.Vector2D{X: 1.5, Y: 2}, Tracked: true, Perceived: []uint32{4}},
		},
	}
	require.NoError(t, hub.Broadcast(snap))

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var got pb.FlockSnapshot
	require.NoError(t, protojson.Unmarshal(data, &got))
	assert.Equal(t, uint64(42), got.GetTick())
	require.Len(t, got.GetAgents(), 1)
	assert.Equal(t, uint32(3), got.GetAgents()[0].GetId())
	assert.Equal(t, []uint32{4}, got.GetAgents()[0].GetPerceived())
}

func TestHub_ClientCommands(t *testing.T) {
	ctrl := newFakeController()
	hub, srv := startHub(t, ctrl)
	conn := dial(t, hub, srv)

	require.NoError(t, conn.WriteJSON(ClientMessage{Type: "track", ID: 9, Tracked: true}))
	assert.Equal(t, Reply{Type: "ack"}, readReply(t, conn))

	require.NoError(t, conn.WriteJSON(ClientMessage{Type: "toggle", Rule: "RULE_SEPARATION"}))
	assert.Equal(t, Reply{Type: "ack"}, readReply(t, conn))

	require.NoError(t, conn.WriteJSON(ClientMessage{Type: "toggle", Rule: "RULE_UNSPECIFIED"}))
	assert.Equal(t, "error", readReply(t, conn).Type)

	require.NoError(t, conn.WriteJSON(ClientMessage{Type: "toggle", Rule: "wrap"}))
	assert.Equal(t, "error", readReply(t, conn).Type)

	require.NoError(t, conn.WriteJSON(ClientMessage{Type: "explode"}))
	r := readReply(t, conn)
	assert.Equal(t, "error", r.Type)
	assert.Contains(t, r.Error, "unknown message type")

	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	assert.Equal(t, map[flock.AgentID]bool{9: true}, ctrl.tracked)
	assert.Equal(t, []flock.Rule{flock.RuleSeparation}, ctrl.toggled)
}

func TestHub_HandleRejectsUnknownType(t *testing.T) {
	hub := NewHub(newFakeController(), golog.DiscardLogger)
	err := hub.handle(context.Background(), ClientMessage{Type: "spawn"})
	assert.ErrorIs(t, err, ErrUnknownMessage)
}

func TestHub_Snapshot(t *testing.T) {
	hub, srv := startHub(t, newFakeController())

	get := func() *pb.FlockSnapshot {
		resp, err := http.Get(srv.URL + "/snapshot")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		var snap pb.FlockSnapshot
		require.NoError(t, protojson.Unmarshal(body, &snap))
		return &snap
	}

	assert.Equal(t, uint64(7), get().GetTick(), "falls back to the controller before any broadcast")

	require.NoError(t, hub.Broadcast(&pb.FlockSnapshot{Tick: 8}))
	assert.Equal(t, uint64(8), get().GetTick())
}

func TestHub_SnapshotUnavailable(t *testing.T) {
	ctrl := newFakeController()
	ctrl.snapshot = nil
	_, srv := startHub(t, ctrl)

	resp, err := http.Get(srv.URL + "/snapshot")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestHub_RunStopsWithContext(t *testing.T) {
	hub, srv := startHub(t, newFakeController())
	conn := dial(t, hub, srv)

	ctx, cancel := context.WithCancel(context.Background())
	snapshots := make(chan *pb.FlockSnapshot, 1)
	done := make(chan struct{})
	go func() {
		hub.Run(ctx, snapshots)
		close(done)
	}()

	snapshots <- &pb.FlockSnapshot{Tick: 1}
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.True(t, json.Valid(data))

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Equal(t, 0, hub.ClientCount())
}
