package model

import "time"

// TutorChatRequest is the payload for the AI tutor passthrough.
type TutorChatRequest struct {
	Question string `json:"question" binding:"required,min=1,max=4000"`
	Context  string `json:"context" binding:"omitempty,max=8000"`
}

// TutorChatResponse carries the tutor's answer (or the degraded fallback).
type TutorChatResponse struct {
	Answer string `json:"answer"`
}

// TutorLog is an audit row of one tutor exchange, persisted asynchronously.
type TutorLog struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}
