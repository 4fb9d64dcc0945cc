// Package delivery holds the outer surfaces the engine is reached through.
package delivery

import "context"

// Delivery is a long-running server started by the application after all providers are built.
type Delivery interface {
	Serve(ctx context.Context) error
}
