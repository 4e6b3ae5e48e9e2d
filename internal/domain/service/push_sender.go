// Package service defines interfaces for external collaborators the core
// invokes but does not build: push transport, broadcast fan-out, queues.
package service

import (
	"context"
)

// PushSender defines the interface for push notification transports.
// Implementations are injected at process start; the core never reaches for
// an ambient global messaging handle.
type PushSender interface {
	// SendNotification sends a titled push message to a single device token.
	SendNotification(ctx context.Context, token, title, body string, data map[string]string) error
}
