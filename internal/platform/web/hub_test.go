package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vovakirdan/finsurf/internal/games/surf"
)

func startHub(t *testing.T) (*Hub, string, context.CancelFunc) {
	t.Helper()
	hub := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	t.Cleanup(func() {
		cancel()
		srv.Close()
	})
	return hub, "ws" + strings.TrimPrefix(srv.URL, "http"), cancel
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial() failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() != n {
		if time.Now().After(deadline) {
			t.Fatalf("client count = %d, expected %d", hub.ClientCount(), n)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func testState() surf.State {
	c := surf.NewController(surf.ControllerConfig{
		Difficulty: "hard",
		Width:      1080,
		Height:     1920,
		Random:     constSource(0.5),
	})
	c.Trigger()
	return c.Tick()
}

func TestHubPublishesSnapshots(t *testing.T) {
	hub, url, _ := startHub(t)
	conn := dial(t, url)
	waitForClients(t, hub, 1)

	state := testState()
	hub.Publish("abc", state)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage() failed: %v", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("invalid snapshot JSON: %v", err)
	}
	if snap.Session != "abc" || snap.Difficulty != "hard" || snap.Tick != 1 {
		t.Errorf("snapshot header = %+v", snap)
	}
	if snap.Lives != surf.MaxLives || !snap.Flier.Flapping {
		t.Errorf("snapshot state = lives %d flapping %v", snap.Lives, snap.Flier.Flapping)
	}
	if len(snap.Hazards) != surf.HazardCount || snap.Hazards[2].Kind != "penalty" {
		t.Errorf("snapshot hazards = %+v", snap.Hazards)
	}
	if snap.Flier.Y != state.Flier.Y {
		t.Errorf("flier y = %v, expected %v", snap.Flier.Y, state.Flier.Y)
	}
}

func TestHubIgnoresSpectatorInput(t *testing.T) {
	hub, url, _ := startHub(t)
	conn := dial(t, url)
	waitForClients(t, hub, 1)

	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"flap":true}`)); err != nil {
		t.Fatalf("WriteMessage() failed: %v", err)
	}

	hub.Publish("s", testState())
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := conn.ReadMessage(); err != nil {
		t.Fatalf("connection should stay open after input: %v", err)
	}
}

func TestHubUnregistersOnClose(t *testing.T) {
	hub, url, _ := startHub(t)
	conn := dial(t, url)
	waitForClients(t, hub, 1)

	conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	conn.Close()

	waitForClients(t, hub, 0)
}

func TestHubShutdownClosesClients(t *testing.T) {
	hub, url, cancel := startHub(t)
	conn := dial(t, url)
	waitForClients(t, hub, 1)

	cancel()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("expected the connection to close on hub shutdown")
	}
	if hub.ClientCount() != 0 {
		t.Errorf("client count = %d after shutdown", hub.ClientCount())
	}
}

func TestPublishWithoutClients(t *testing.T) {
	hub := NewHub(nil)
	hub.Publish("s", testState()) // Must not block without a running loop
}

// constSource returns the same draw every time.
type constSource float64

func (c constSource) Float64() float64 { return float64(c) }
