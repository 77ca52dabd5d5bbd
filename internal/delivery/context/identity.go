package context

import (
	"context"

	"crm/internal/domain/access"
)

// KeyIdentity is the key for storing the authenticated caller in context.
const KeyIdentity ContextKey = "identity"

// WithIdentity returns a new context carrying the authenticated caller.
func WithIdentity(ctx context.Context, identity access.Identity) context.Context {
	return context.WithValue(ctx, KeyIdentity, identity)
}

// GetIdentity extracts the authenticated caller from context.Context.
// The second return is false on unauthenticated requests.
func GetIdentity(ctx context.Context) (access.Identity, bool) {
	identity, ok := ctx.Value(KeyIdentity).(access.Identity)

	return identity, ok
}
