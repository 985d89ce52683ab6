package context

import (
	"context"

	"gameswap/internal/domain/service"
)

// KeyPrincipal is the key for storing the authenticated principal in context.
const KeyPrincipal ContextKey = "principal"

// WithPrincipal returns a new context carrying the verified principal.
func WithPrincipal(ctx context.Context, principal *service.Principal) context.Context {
	return context.WithValue(ctx, KeyPrincipal, principal)
}

// GetPrincipal extracts the verified principal from context.Context.
// Returns nil for unauthenticated requests.
func GetPrincipal(ctx context.Context) *service.Principal {
	if principal, ok := ctx.Value(KeyPrincipal).(*service.Principal); ok {
		return principal
	}

	return nil
}
