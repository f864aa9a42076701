package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestHub_BroadcastReachesClients(t *testing.T) {
	hub := NewHub(nil, "humanize_events")
	srv := httptest.NewServer(http.HandlerFunc(hub.HandleWebSocket))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	waitFor(t, func() bool { return hub.Count() == 1 })

	payload := `{"type":"rewrite","payload":{"style":"academic"}}`
	hub.Broadcast([]byte(payload))

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(msg) != payload {
		t.Errorf("expected %q, got %q", payload, msg)
	}
}

func TestHub_UnregistersOnDisconnect(t *testing.T) {
	hub := NewHub(nil, "humanize_events")
	srv := httptest.NewServer(http.HandlerFunc(hub.HandleWebSocket))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}

	waitFor(t, func() bool { return hub.Count() == 1 })
	conn.Close()
	waitFor(t, func() bool { return hub.Count() == 0 })
}

func TestHub_DropsStalledClient(t *testing.T) {
	hub := NewHub(nil, "humanize_events")
	hub.writeWait = 100 * time.Millisecond
	srv := httptest.NewServer(http.HandlerFunc(hub.HandleWebSocket))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")

	// Never reads, so the socket buffers fill and writes start timing out.
	stalled, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer stalled.Close()
	waitFor(t, func() bool { return hub.Count() == 1 })

	chunk := []byte(strings.Repeat("x", 1<<20))
	for i := 0; i < 256 && hub.Count() > 0; i++ {
		start := time.Now()
		hub.Broadcast(chunk)
		if elapsed := time.Since(start); elapsed > 2*time.Second {
			t.Fatalf("broadcast blocked for %v", elapsed)
		}
	}
	if hub.Count() != 0 {
		t.Fatal("expected the stalled client to be dropped")
	}

	// The hub keeps serving clients that connect afterwards.
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()
	waitFor(t, func() bool { return hub.Count() == 1 })

	hub.Broadcast([]byte(`{"type":"rewrite"}`))
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, msg, err := conn.ReadMessage(); err != nil || string(msg) != `{"type":"rewrite"}` {
		t.Errorf("expected the broadcast, got %q (%v)", msg, err)
	}
}
