package service

import (
	"context"
	"time"
)

// PositionEvent represents a position update to be processed by the geo worker
type PositionEvent struct {
	RequestID string    `json:"request_id,omitempty"` // For distributed tracing
	UserID    string    `json:"user_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPositionEvent publishes a position event for async processing
	PublishPositionEvent(ctx context.Context, event *PositionEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
