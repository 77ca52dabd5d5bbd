package service

import "crm/internal/domain/access"

// TokenService resolves a bearer token into a caller identity. Unknown roles
// in the token are dropped rather than rejected.
type TokenService interface {
	ResolveIdentity(tokenString string) (*access.Identity, error)
}
