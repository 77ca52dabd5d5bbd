// Package service declares the ports to external collaborators the use
// cases depend on.
package service

import (
	"context"

	"crm/internal/domain/entity"
)

// AccountProfile is the slice of customer data mirrored into the identity
// provider.
type AccountProfile struct {
	Username  string
	FirstName string
	LastName  string
	Email     string
}

// TokenPair is the token set issued on a successful login.
type TokenPair struct {
	AccessToken      string `json:"access_token"`
	ExpiresIn        int    `json:"expires_in"`
	RefreshToken     string `json:"refresh_token"`
	RefreshExpiresIn int    `json:"refresh_expires_in"`
	TokenType        string `json:"token_type"`
}

// IdentityProvider is the port to the external account system. Account state
// there mirrors the customer aggregate; any failure aborts the surrounding
// mutation.
type IdentityProvider interface {
	// Login exchanges credentials for a token pair.
	Login(ctx context.Context, username, password string) (*TokenPair, error)

	// CreateAccount registers a new account and returns its provider ID.
	CreateAccount(ctx context.Context, profile AccountProfile, password string) (string, error)

	// AssignRole grants role to the account identified by accountID.
	AssignRole(ctx context.Context, accountID string, role entity.Role) error

	// UpdateAccount synchronizes profile changes for username.
	UpdateAccount(ctx context.Context, username string, profile AccountProfile) error

	// ResetPassword sets a new password for username.
	ResetPassword(ctx context.Context, username, newPassword string) error

	// DeleteAccount removes the account for username.
	DeleteAccount(ctx context.Context, username string) error
}
