package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	deliverycontext "crm/internal/delivery/context"
	"crm/internal/delivery/http/response"
	"crm/internal/domain/service"
)

// AuthMiddleware resolves the bearer token into a caller identity and stores
// it in the request context.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		identity, err := m.tokenSvc.ResolveIdentity(tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		ctx := deliverycontext.WithIdentity(c.Request().Context(), *identity)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
