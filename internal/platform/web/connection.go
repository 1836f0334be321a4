package web

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/cloch-fhada/internal/core"
	"github.com/vovakirdan/cloch-fhada/internal/driver"
	"github.com/vovakirdan/cloch-fhada/internal/games/cloch"
)

const (
	sendBuffer     = 64
	maxMessageSize = 512
	finalWait      = 5 * time.Second
)

// clientMessage is what the browser sends: {"action":"left"}.
type clientMessage struct {
	Action string `json:"action"`
}

// Connection wraps a websocket with an outgoing message queue.
type Connection struct {
	ws        *websocket.Conn
	send      chan []byte
	logger    *log.Logger
	finalWait time.Duration
}

func newConnection(ws *websocket.Conn, logger *log.Logger) *Connection {
	return &Connection{
		ws:        ws,
		send:      make(chan []byte, sendBuffer),
		logger:    logger,
		finalWait: finalWait,
	}
}

// readPump forwards client actions to the driver until the socket fails
// or the driver stops.
func (c *Connection) readPump(ctx context.Context, d *driver.Driver) {
	defer c.ws.Close()
	c.ws.SetReadLimit(maxMessageSize)

	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("read failed", "error", err)
			}
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			c.logger.Debug("malformed message", "error", err)
			continue
		}
		action := core.ParseAction(msg.Action)
		if action == core.ActionNone {
			c.logger.Debug("unknown action", "action", msg.Action)
			continue
		}

		if err := d.Send(ctx, action); err != nil {
			if !errors.Is(err, driver.ErrStopped) && !errors.Is(err, context.Canceled) {
				c.logger.Warn("send failed", "error", err)
			}
			return
		}
	}
}

// writePump writes queued messages until the queue is closed.
func (c *Connection) writePump() {
	defer c.ws.Close()

	for message := range c.send {
		w, err := c.ws.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		if _, err := w.Write(message); err != nil {
			return
		}
		if err := w.Close(); err != nil {
			return
		}
	}
	//nolint:errcheck // Best-effort close frame
	c.ws.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// publish queues a snapshot. It runs on the driver goroutine, so a full
// queue drops the snapshot instead of blocking; the next one supersedes it.
// The game over snapshot is the last one, so it waits up to finalWait for
// room and closes the connection if the client still lags.
func (c *Connection) publish(snap cloch.Snapshot) {
	data, err := json.Marshal(snap)
	if err != nil {
		c.logger.Error("encode snapshot", "error", err)
		return
	}

	if snap.LastEvent != nil && snap.LastEvent.GameOver {
		timer := time.NewTimer(c.finalWait)
		defer timer.Stop()
		select {
		case c.send <- data:
		case <-timer.C:
			c.logger.Warn("client too slow for final snapshot, closing")
			c.ws.Close()
		}
		return
	}

	select {
	case c.send <- data:
	default:
		c.logger.Debug("client too slow, snapshot dropped")
	}
}

// close ends the write pump. Only the driver goroutine publishes, so it
// must have returned before close is called.
func (c *Connection) close() {
	close(c.send)
}
