package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/cloch-fhada/internal/games/cloch"
)

func gameOverSnapshot() cloch.Snapshot {
	return cloch.Snapshot{
		Status:    cloch.StatusGameOver.String(),
		Score:     1230,
		LastEvent: &cloch.OutcomeSummary{GameOver: true},
	}
}

func fillQueue(c *Connection) {
	for len(c.send) < cap(c.send) {
		c.send <- []byte(`{}`)
	}
}

func TestPublishDropsWhenQueueFull(t *testing.T) {
	c := newConnection(nil, log.New(io.Discard))
	fillQueue(c)

	done := make(chan struct{})
	go func() {
		c.publish(cloch.Snapshot{Status: cloch.StatusRunning.String()})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full queue")
	}
	if len(c.send) != cap(c.send) {
		t.Errorf("queue length = %d, expected %d", len(c.send), cap(c.send))
	}
}

func TestPublishKeepsGameOverSnapshot(t *testing.T) {
	c := newConnection(nil, log.New(io.Discard))
	fillQueue(c)

	// A slow client frees one slot after a while.
	go func() {
		time.Sleep(30 * time.Millisecond)
		<-c.send
	}()
	c.publish(gameOverSnapshot())

	var last []byte
	for len(c.send) > 0 {
		last = <-c.send
	}
	var snap cloch.Snapshot
	if err := json.Unmarshal(last, &snap); err != nil {
		t.Fatalf("decode last message: %v", err)
	}
	if snap.Status != "game_over" || snap.LastEvent == nil || !snap.LastEvent.GameOver {
		t.Errorf("last message = %s, expected the game over snapshot", last)
	}
}

func TestPublishClosesStalledClientOnGameOver(t *testing.T) {
	upgrader := websocket.Upgrader{}
	serverConns := make(chan *websocket.Conn, 1)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		serverConns <- ws
	}))
	defer ts.Close()

	client, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer client.Close()

	c := newConnection(<-serverConns, log.New(io.Discard))
	c.finalWait = 20 * time.Millisecond
	fillQueue(c)

	c.publish(gameOverSnapshot())

	if err := client.SetReadDeadline(time.Now().Add(2 * time.Second)); err != nil {
		t.Fatalf("SetReadDeadline: %v", err)
	}
	if _, _, err := client.ReadMessage(); err == nil {
		t.Error("expected the stalled connection to be closed")
	}
}
