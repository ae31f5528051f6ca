package websocket

import "github.com/classhub/classhub-backend/internal/model"

// ─── Actions (Client → Server) ──────────────────────────────────────

type Action string

const (
	ActionPing Action = "ping"
)

// RequestEnvelope is used to peek at the action before full parsing.
type RequestEnvelope struct {
	Action Action `json:"action"`
}

// ─── Events (Server → Client) ───────────────────────────────────────

// The chat stream is read-only: posting stays on the REST path so message
// timestamps are always assigned by the store.

type Event string

const (
	EventMessage Event = "message"
	EventError   Event = "error"
	EventPong    Event = "pong"
)

// MessageEvent carries one class feed message to subscribers.
type MessageEvent struct {
	Event   Event         `json:"event"`
	Message model.Message `json:"message"`
}

// ErrorResponse reports a protocol error to the client.
type ErrorResponse struct {
	Event  Event  `json:"event"`
	Reason string `json:"reason"`
}

// PongResponse answers a client ping.
type PongResponse struct {
	Event Event `json:"event"`
}
