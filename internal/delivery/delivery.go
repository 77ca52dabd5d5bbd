// Package delivery defines the contract every transport implementation
// satisfies so the application can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport such as an HTTP server.
type Delivery interface {
	// Serve blocks until the transport stops or fails.
	Serve(ctx context.Context) error
}
