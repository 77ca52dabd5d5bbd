package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/access"
	"crm/internal/domain/entity"
	"crm/internal/errors"
	mockSvc "crm/internal/mocks/service"
)

func runAuthMiddleware(t *testing.T, tokenSvc *mockSvc.MockTokenService, authHeader string) (*httptest.ResponseRecorder, *access.Identity) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/customers/1", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *access.Identity
	next := func(c echo.Context) error {
		if identity, ok := deliverycontext.GetIdentity(c.Request().Context()); ok {
			seen = &identity
		}

		return c.NoContent(http.StatusOK)
	}

	err := NewAuthMiddleware(tokenSvc).Authenticate(next)(c)
	require.NoError(t, err)

	return rec, seen
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ResolveIdentity("good-token").Return(&access.Identity{
		Username: "maxmuster",
		Roles:    entity.Roles{entity.RoleBasic},
	}, nil)

	rec, identity := runAuthMiddleware(t, tokenSvc, "Bearer good-token")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, identity)
	assert.Equal(t, "maxmuster", identity.Username)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	rec, identity := runAuthMiddleware(t, tokenSvc, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, identity)
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	rec, identity := runAuthMiddleware(t, tokenSvc, "Basic dXNlcjpwYXNz")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, identity)
}

func TestAuthMiddleware_RejectedToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ResolveIdentity("bad-token").Return(nil, errors.New("signature invalid"))

	rec, identity := runAuthMiddleware(t, tokenSvc, "Bearer bad-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, identity)
}
