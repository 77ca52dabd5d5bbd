// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"github.com/golang-jwt/jwt/v5"

	"crm/config"
	"crm/internal/domain/access"
	"crm/internal/domain/entity"
	"crm/internal/domain/service"
	"crm/internal/errors"
)

// jwtService resolves Keycloak-issued bearer tokens into caller identities.
// Verification uses the HS256 shared secret in SecretKey.Access; the realm
// must be configured to sign access tokens with that HMAC key, since RS256
// realm keys are not supported here.
type jwtService struct {
	accessSecret string
}

// realmAccess mirrors the realm_access claim carrying the realm roles.
type realmAccess struct {
	Roles []string `json:"roles"`
}

// keycloakClaims is the subset of the Keycloak access token we rely on.
type keycloakClaims struct {
	PreferredUsername string      `json:"preferred_username"`
	RealmAccess       realmAccess `json:"realm_access"`
	jwt.RegisteredClaims
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{accessSecret: cfg.SecretKey.Access}, nil
}

// ResolveIdentity validates the token and extracts username and realm roles.
// Role strings outside the known set are dropped, so a token carrying only
// foreign roles yields an authenticated caller with no permissions.
func (s *jwtService) ResolveIdentity(tokenString string) (*access.Identity, error) {
	claims := &keycloakClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.accessSecret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse access token")
	}
	if !token.Valid {
		return nil, errors.New("access token is not valid")
	}

	if claims.PreferredUsername == "" {
		return nil, errors.New("access token carries no username")
	}

	return &access.Identity{
		Username: claims.PreferredUsername,
		Roles:    entity.RolesFromStrings(claims.RealmAccess.Roles),
	}, nil
}
