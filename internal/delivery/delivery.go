// Package delivery defines the contract every transport server fulfils.
package delivery

import "context"

// Delivery is a transport endpoint. Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
