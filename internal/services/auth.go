package services

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"bank-dashboard/internal/dto"
	"bank-dashboard/pkg/config"
	apperrors "bank-dashboard/pkg/errors"
	"bank-dashboard/pkg/service"
	"bank-dashboard/pkg/utils"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenDTO, error)
	Enabled() bool
}

type AuthService struct {
	cfg    config.AuthConfig
	jwt    service.JWTService
	logger *zap.Logger
}

func NewAuthService(cfg config.AuthConfig, jwtSvc service.JWTService, logger *zap.Logger) AuthServiceInterface {
	return &AuthService{cfg: cfg, jwt: jwtSvc, logger: logger}
}

// Enabled - false, если хеш пароля администратора не задан.
func (s *AuthService) Enabled() bool {
	return s.cfg.PasswordHash != ""
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenDTO, error) {
	if !s.Enabled() {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "Авторизация отключена: ADMIN_PASSWORD_HASH не задан", nil, nil)
	}

	logger := s.logger.With(zap.String("login", payload.Login))
	if payload.Login != s.cfg.Username {
		logger.Warn("Попытка входа с неизвестным логином")
		return nil, apperrors.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(s.cfg.PasswordHash, payload.Password); err != nil {
		logger.Warn("Неверный пароль администратора")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwt.GenerateToken(payload.Login)
	if err != nil {
		logger.Error("Не удалось создать токен", zap.Error(err))
		return nil, err
	}
	logger.Info("Администратор вошёл в систему")
	return &dto.TokenDTO{AccessToken: token, ExpiresAt: expiresAt, Username: payload.Login}, nil
}
