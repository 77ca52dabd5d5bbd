package impl

import (
	"context"
	"log/slog"
	"strings"

	"go.uber.org/fx"

	deliverycontext "crm/internal/delivery/context"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/service"
	"crm/internal/usecase"
)

// authService implements the AuthUsecase interface by delegating to the
// identity provider.
type authService struct {
	idp    service.IdentityProvider
	logger *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	IdP    service.IdentityProvider
	Logger *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		idp:    params.IdP,
		logger: params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login exchanges credentials for a token pair. Every provider rejection is
// reported as an authentication failure without distinguishing the cause.
func (srv *authService) Login(ctx context.Context, username, password string) (*service.TokenPair, error) {
	username = strings.ToLower(username)

	tokens, err := srv.idp.Login(ctx, username, password)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("username", username))

		return nil, domainerrors.ErrUnauthorized.WrapMessage(err)
	}

	srv.log(ctx).Debug("Login succeeded", slog.String("username", username))

	return tokens, nil
}
