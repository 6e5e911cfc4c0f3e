// Package delivery defines the serving surfaces of the application.
package delivery

import "context"

// Delivery is a long-running server surface (HTTP API, worker endpoint).
// Serve blocks until the server stops; shutdown is driven by the fx
// lifecycle hooks each implementation registers.
type Delivery interface {
	Serve(ctx context.Context) error
}
