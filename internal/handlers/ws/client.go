package ws

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// writeWait is the deadline for a single write to the peer
	writeWait = 10 * time.Second

	// pongWait is how long the peer has to answer a ping
	pongWait = 60 * time.Second

	// pingPeriod must be shorter than pongWait
	pingPeriod = (pongWait * 9) / 10

	// maxMessageSize caps inbound frames
	maxMessageSize = 4096

	// sendBufferSize is how many outbound events may queue before a
	// slow client starts losing them
	sendBufferSize = 64
)

// client wraps a websocket connection with a buffered outbound queue. It
// implements registry.Conn: Send marshals the event immediately, so the
// snapshot on the wire reflects the session at the moment the engine
// emitted it, and never blocks the engine.
type client struct {
	conn *websocket.Conn
	send chan []byte

	closeOnce sync.Once
	done      chan struct{}
}

func newClient(conn *websocket.Conn) *client {
	return &client{
		conn: conn,
		send: make(chan []byte, sendBufferSize),
		done: make(chan struct{}),
	}
}

// Send serializes v and queues it for the write pump. Events for a
// client that cannot keep up are dropped, not retried.
func (c *client) Send(v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	select {
	case <-c.done:
		return nil
	case c.send <- data:
		return nil
	default:
		log.Printf("Dropping event for slow client %s", c.conn.RemoteAddr())
		return nil
	}
}

// Close signals the write pump to shut the connection down
func (c *client) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}

// writePump drains the send queue to the peer and keeps the connection
// alive with pings. Runs in its own goroutine, one per connection; it is
// the only writer to the underlying socket.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.done:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}
