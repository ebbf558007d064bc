package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bank-dashboard/internal/dto"
	"bank-dashboard/pkg/config"
	apperrors "bank-dashboard/pkg/errors"
	"bank-dashboard/pkg/service"
	"bank-dashboard/pkg/utils"
)

func newAuthService(t *testing.T, hash string) (AuthServiceInterface, service.JWTService) {
	t.Helper()
	jwtSvc := service.NewJWTService("test-secret", time.Hour)
	cfg := config.AuthConfig{Username: "admin", PasswordHash: hash}
	return NewAuthService(cfg, jwtSvc, zap.NewNop()), jwtSvc
}

func TestAuthService_Login(t *testing.T) {
	hash, err := utils.HashPassword("s3cret-pass")
	require.NoError(t, err)
	svc, jwtSvc := newAuthService(t, hash)

	token, err := svc.Login(context.Background(), dto.LoginDTO{Login: "admin", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, "admin", token.Username)

	claims, err := jwtSvc.ValidateToken(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
}

func TestAuthService_WrongCredentials(t *testing.T) {
	hash, err := utils.HashPassword("s3cret-pass")
	require.NoError(t, err)
	svc, _ := newAuthService(t, hash)

	_, err = svc.Login(context.Background(), dto.LoginDTO{Login: "admin", Password: "wrong-pass"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), dto.LoginDTO{Login: "root", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_DisabledWithoutHash(t *testing.T) {
	svc, _ := newAuthService(t, "")

	assert.False(t, svc.Enabled())
	_, err := svc.Login(context.Background(), dto.LoginDTO{Login: "admin", Password: "whatever"})
	assert.Equal(t, 400, apperrors.StatusOf(err))
}
