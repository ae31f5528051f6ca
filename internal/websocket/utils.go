package websocket

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Conn wraps a gorilla connection with a write lock. gorilla supports at
// most one concurrent writer, and the chat stream writes from both its
// read loop and the pub/sub relay goroutine.
type Conn struct {
	mu sync.Mutex
	ws *websocket.Conn
}

// NewConn wraps an upgraded connection.
func NewConn(ws *websocket.Conn) *Conn {
	return &Conn{ws: ws}
}

// Close closes the underlying connection.
func (c *Conn) Close() error {
	return c.ws.Close()
}

// WriteTyped sends a strongly-typed event payload over the WebSocket.
func (c *Conn) WriteTyped(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ws.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return c.ws.WriteJSON(v)
}

// WriteRaw sends an already-encoded JSON frame over the WebSocket.
func (c *Conn) WriteRaw(payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ws.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return c.ws.WriteMessage(websocket.TextMessage, payload)
}

// WriteError sends a typed ErrorResponse over the WebSocket.
func (c *Conn) WriteError(reason string) error {
	return c.WriteTyped(ErrorResponse{
		Event:  EventError,
		Reason: reason,
	})
}

// ReadJSON reads and decodes a client frame into the provided structure.
// It sets a read deadline so idle connections eventually close. Reads stay
// on a single goroutine and need no lock.
func (c *Conn) ReadJSON(v interface{}) error {
	c.ws.SetReadDeadline(time.Now().Add(5 * time.Minute))
	return c.ws.ReadJSON(v)
}
