package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crm/config"
	"crm/internal/domain/entity"
	"crm/internal/domain/service"
)

const testSecret = "test-secret-key"

func newTestService(t *testing.T) service.TokenService {
	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})

	assert.Error(t, err)
}

func TestResolveIdentity_Success(t *testing.T) {
	svc := newTestService(t)

	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"preferred_username": "maxmuster",
		"realm_access":       map[string]any{"roles": []string{"ADMIN", "BASIC"}},
		"exp":                time.Now().Add(time.Hour).Unix(),
	})

	identity, err := svc.ResolveIdentity(tokenString)

	require.NoError(t, err)
	assert.Equal(t, "maxmuster", identity.Username)
	assert.Equal(t, entity.Roles{entity.RoleAdmin, entity.RoleBasic}, identity.Roles)
}

func TestResolveIdentity_DropsUnknownRoles(t *testing.T) {
	svc := newTestService(t)

	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"preferred_username": "maxmuster",
		"realm_access":       map[string]any{"roles": []string{"offline_access", "ELITE", "uma_authorization"}},
		"exp":                time.Now().Add(time.Hour).Unix(),
	})

	identity, err := svc.ResolveIdentity(tokenString)

	require.NoError(t, err)
	assert.Equal(t, entity.Roles{entity.RoleElite}, identity.Roles)
}

func TestResolveIdentity_WrongSecret(t *testing.T) {
	svc := newTestService(t)

	tokenString := signToken(t, "other-secret", jwt.MapClaims{
		"preferred_username": "maxmuster",
		"exp":                time.Now().Add(time.Hour).Unix(),
	})

	identity, err := svc.ResolveIdentity(tokenString)

	assert.Nil(t, identity)
	assert.Error(t, err)
}

func TestResolveIdentity_Expired(t *testing.T) {
	svc := newTestService(t)

	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"preferred_username": "maxmuster",
		"exp":                time.Now().Add(-time.Minute).Unix(),
	})

	identity, err := svc.ResolveIdentity(tokenString)

	assert.Nil(t, identity)
	assert.Error(t, err)
}

func TestResolveIdentity_MissingUsername(t *testing.T) {
	svc := newTestService(t)

	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	identity, err := svc.ResolveIdentity(tokenString)

	assert.Nil(t, identity)
	assert.Error(t, err)
}

func TestResolveIdentity_Garbage(t *testing.T) {
	svc := newTestService(t)

	identity, err := svc.ResolveIdentity("not.a.token")

	assert.Nil(t, identity)
	assert.Error(t, err)
}
