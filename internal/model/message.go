package model

import "time"

// Message is one entry of a class's message feed. The timestamp is always
// assigned at write time so feed ordering cannot be forged by clients.
type Message struct {
	ID         string    `json:"id"`
	ClassID    string    `json:"class_id"`
	SenderID   string    `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	SenderRole Role      `json:"sender_role"`
	Body       string    `json:"message"`
	Timestamp  time.Time `json:"timestamp"`
}

// PostMessageRequest is the payload for posting to a class feed. Sender
// identity comes from the verified JWT, not the payload.
type PostMessageRequest struct {
	ClassID string `json:"class_id" binding:"required,max=50"`
	Body    string `json:"message" binding:"required,min=1,max=2000"`
}
