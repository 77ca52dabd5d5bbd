package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CustomerCreatedEvent announces a newly registered customer to downstream
// consumers (mailers, analytics). Delivery is best effort.
type CustomerCreatedEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	CustomerID uuid.UUID `json:"customer_id"`
	Email      string    `json:"email"`
	Username   string    `json:"username"`
	Tier       int       `json:"tier"`
	CreatedAt  time.Time `json:"created_at"`
}

// EventPublisher defines the interface for publishing events to a message queue.
type EventPublisher interface {
	// PublishCustomerCreated publishes a registration event for async processing.
	PublishCustomerCreated(ctx context.Context, event *CustomerCreatedEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
