// Package auth содержит бизнес-логику регистрации и аутентификации аккаунтов.
package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/magabrotheeeer/streaming-platform/internal/lib/jwt"
	"github.com/magabrotheeeer/streaming-platform/internal/lib/password"
	"github.com/magabrotheeeer/streaming-platform/internal/models"
)

// AccountRepository описывает контракт для работы с аккаунтами в базе данных.
type AccountRepository interface {
	// RegisterAccount сохраняет новый аккаунт и возвращает его UID.
	RegisterAccount(ctx context.Context, account models.Account) (string, error)

	// GetAccountByEmail возвращает аккаунт по email или models.ErrNotFound.
	GetAccountByEmail(ctx context.Context, email string) (*models.Account, error)
}

// AuthService отвечает за регистрацию, вход и валидацию JWT.
type AuthService struct {
	accounts AccountRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(accounts AccountRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		accounts: accounts,
		jwtMaker: jwtMaker,
	}
}

// Register создает новый аккаунт с хэшированием пароля и возвращает его UID.
// Пустые email или пароль отклоняются с models.ErrInvalidInput,
// повторная регистрация email — с models.ErrAccountExists.
func (s *AuthService) Register(ctx context.Context, email, rawPassword string) (string, error) {
	if strings.TrimSpace(email) == "" || rawPassword == "" {
		return "", fmt.Errorf("%w: email and password are required", models.ErrInvalidInput)
	}
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", err
	}
	account := models.Account{
		Email:        email,
		PasswordHash: hashed,
	}
	return s.accounts.RegisterAccount(ctx, account)
}

// Login проверяет пароль аккаунта и возвращает подписанный JWT.
// Неизвестный email и неверный пароль неразличимы для вызывающего:
// оба случая дают models.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (string, error) {
	account, err := s.accounts.GetAccountByEmail(ctx, email)
	if err != nil {
		return "", models.ErrInvalidCredentials
	}
	if err := password.CompareHash(account.PasswordHash, rawPassword); err != nil {
		return "", models.ErrInvalidCredentials
	}
	return s.jwtMaker.GenerateToken(account.UID, account.Email)
}

// ValidateToken проверяет JWT и возвращает данные аккаунта из claims.
func (s *AuthService) ValidateToken(_ context.Context, token string) (*models.TokenInfo, error) {
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, err
	}
	return &models.TokenInfo{
		AccountUID: claims.AccountUID,
		Email:      claims.Email,
	}, nil
}
