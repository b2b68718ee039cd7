// File: services/admin/auth.go
package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrUnauthorized is returned for a wrong password or an invalid token.
var ErrUnauthorized = errors.New("unauthorized admin access")

// AuthService manages the admin login session.
type AuthService interface {
	// Login verifies the password and, on success, issues a fresh token that
	// replaces any previously issued one.
	Login(ctx context.Context, password string) (string, error)
	// Authorize checks a presented token against the currently active one.
	Authorize(ctx context.Context, token string) error
}

// DefaultAuthService implements AuthService against a bcrypt password hash
// and a TokenStore.
type DefaultAuthService struct {
	Store        TokenStore
	PasswordHash string
}

func (s *DefaultAuthService) Login(ctx context.Context, password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(s.PasswordHash), []byte(password)); err != nil {
		return "", ErrUnauthorized
	}

	token := uuid.New().String()
	if err := s.Store.Set(ctx, token); err != nil {
		return "", fmt.Errorf("failed to issue admin token: %w", err)
	}
	return token, nil
}

func (s *DefaultAuthService) Authorize(ctx context.Context, token string) error {
	current, err := s.Store.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to check admin token: %w", err)
	}
	if current == "" || token != current {
		return ErrUnauthorized
	}
	return nil
}

// HashPassword bcrypt-hashes a plaintext admin password. Used at startup when
// only ADMIN_PASSWORD (not ADMIN_PASSWORD_HASH) is configured.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash admin password: %w", err)
	}
	return string(hash), nil
}
