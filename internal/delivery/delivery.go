// Package delivery defines the contract every transport implementation fulfills.
package delivery

import "context"

// Delivery is a serving surface (e.g. an HTTP server) managed by the
// application lifecycle.
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}
