// Package delivery defines the transports that expose the application.
package delivery

import "context"

// Delivery is a long-running transport started by the application lifecycle.
type Delivery interface {
	// Serve blocks until the transport stops. A graceful shutdown is not an error.
	Serve(ctx context.Context) error
}
