package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/service"
	"crm/internal/errors"
	mockSvc "crm/internal/mocks/service"
)

func TestAuthService_Login_Success(t *testing.T) {
	idp := mockSvc.NewMockIdentityProvider(t)
	svc := NewAuthService(AuthServiceParams{IdP: idp, Logger: newDiscardLogger()})

	ctx := context.Background()
	tokens := &service.TokenPair{AccessToken: "at", TokenType: "Bearer", ExpiresIn: 300}

	idp.EXPECT().Login(ctx, "maxmuster", "Str0ng!Pass").Return(tokens, nil)

	result, err := svc.Login(ctx, "MaxMuster", "Str0ng!Pass")

	require.NoError(t, err)
	assert.Equal(t, tokens, result)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	idp := mockSvc.NewMockIdentityProvider(t)
	svc := NewAuthService(AuthServiceParams{IdP: idp, Logger: newDiscardLogger()})

	ctx := context.Background()

	idp.EXPECT().Login(ctx, "maxmuster", "wrong").Return(nil, errors.New("invalid_grant"))

	result, err := svc.Login(ctx, "maxmuster", "wrong")

	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}
