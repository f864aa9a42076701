package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"humanize-backend/internal/events"
	"humanize-backend/internal/models"
)

func newRedisClient(t *testing.T, addr string) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{Addr: addr, Protocol: 2})
	t.Cleanup(func() { client.Close() })
	return client
}

func TestHub_RelaysPublishedEventsToClients(t *testing.T) {
	const channel = "humanize_events"
	mr := miniredis.RunT(t)

	hub := NewHub(newRedisClient(t, mr.Addr()), channel)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(done)
	}()

	srv := httptest.NewServer(http.HandlerFunc(hub.HandleWebSocket))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	waitFor(t, func() bool { return hub.Count() == 1 })
	waitFor(t, func() bool { return mr.PubSubNumSub(channel)[channel] == 1 })

	publisher := events.NewRedisPublisher(newRedisClient(t, mr.Addr()), channel)
	event := models.RewriteEvent{
		RequestID:   "req-7",
		Style:       "academic",
		Status:      models.EventStatusSucceeded,
		InputChars:  23,
		OutputChars: 56,
		DurationMS:  812,
	}
	if err := publisher.Publish(context.Background(), event); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, raw, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	var msg struct {
		Type    string              `json:"type"`
		Payload models.RewriteEvent `json:"payload"`
	}
	if err := json.Unmarshal(raw, &msg); err != nil {
		t.Fatalf("failed to decode %s: %v", raw, err)
	}
	if msg.Type != "rewrite" {
		t.Errorf("expected type rewrite, got %q", msg.Type)
	}
	if msg.Payload.RequestID != "req-7" || msg.Payload.Style != "academic" {
		t.Errorf("unexpected payload %+v", msg.Payload)
	}
	if msg.Payload.Status != models.EventStatusSucceeded || msg.Payload.OutputChars != 56 {
		t.Errorf("unexpected payload %+v", msg.Payload)
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	if hub.Count() != 0 {
		t.Errorf("expected connections to be closed on shutdown, got %d", hub.Count())
	}
}
