// Package delivery holds the transports that expose the storefront usecases.
package delivery

import "context"

// Delivery is a long-running transport started by main and stopped through the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
