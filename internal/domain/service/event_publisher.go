package service

import (
	"context"
	"time"
)

// OrderPlacedEvent is published after a simulated checkout succeeds, e.g. to send a confirmation email.
type OrderPlacedEvent struct {
	RequestID string    `json:"request_id,omitempty"` // For distributed tracing
	OrderID   string    `json:"order_id"`
	UserID    string    `json:"user_id,omitempty"`
	Email     string    `json:"email"`
	ItemCount int       `json:"item_count"`
	Subtotal  string    `json:"subtotal"`
	Shipping  string    `json:"shipping"`
	Tax       string    `json:"tax"`
	Total     string    `json:"total"`
	PlacedAt  time.Time `json:"placed_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, event *OrderPlacedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
