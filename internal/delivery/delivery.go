// Package delivery defines the transport surface of the process: every
// server (HTTP API, push worker) implements the same Serve contract so main
// can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport server.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
