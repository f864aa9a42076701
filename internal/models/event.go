package models

import (
	"time"

	"github.com/google/uuid"
)

// WebSocket message types
type WSMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

const (
	EventStatusSucceeded = "succeeded"
	EventStatusFailed    = "failed"
)

// RewriteEvent is published after every rewrite attempt. It never carries
// the input or output text.
type RewriteEvent struct {
	ID          uuid.UUID `json:"id"`
	RequestID   string    `json:"request_id,omitempty"`
	Style       string    `json:"style"`
	Status      string    `json:"status"` // "succeeded" | "failed"
	ErrorKind   string    `json:"error_kind,omitempty"`
	InputChars  int       `json:"input_chars"`
	OutputChars int       `json:"output_chars"`
	DurationMS  int64     `json:"duration_ms"`
	CreatedAt   time.Time `json:"created_at"`
}
