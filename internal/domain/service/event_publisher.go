package service

import (
	"context"
)

// DeliveryPushEvent is a push-notification job handed to the async worker so
// the triggering request does not block on notification-service latency.
type DeliveryPushEvent struct {
	RequestID  string            `json:"request_id,omitempty"` // For distributed tracing
	DeliveryID string            `json:"delivery_id"`
	OrderID    string            `json:"order_id"`
	UserID     string            `json:"user_id"` // Recipient user
	Title      string            `json:"title"`
	Body       string            `json:"body"`
	Data       map[string]string `json:"data,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue.
type EventPublisher interface {
	// PublishDeliveryPushEvent publishes a push job for async processing.
	// Fire-and-forget from the caller's perspective: there is no retry
	// pipeline on the publishing side.
	PublishDeliveryPushEvent(ctx context.Context, event *DeliveryPushEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
