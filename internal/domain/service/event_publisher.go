package service

import (
	"context"
)

// UserEvent describes a committed user mutation for downstream consumers
type UserEvent struct {
	RequestID  string   `json:"request_id,omitempty"` // For distributed tracing
	EventID    string   `json:"event_id"`
	Type       string   `json:"type"` // One of constants.UserEvent*
	UserID     string   `json:"user_id"`
	Name       string   `json:"name,omitempty"`
	Balance    *float64 `json:"balance,omitempty"`
	OccurredAt string   `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishUserEvent publishes a user change event
	PublishUserEvent(ctx context.Context, event *UserEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
