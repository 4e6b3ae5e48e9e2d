package service

import "context"

// Broadcaster publishes structured payloads to a named live-tracking topic.
// Delivery is at-most-once and best-effort: no subscriber acknowledgment and
// no replay for subscribers that connect after an event was published.
type Broadcaster interface {
	// Publish fans the payload out to every current subscriber of the topic.
	Publish(ctx context.Context, topic string, payload any) error
}
