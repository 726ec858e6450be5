// Package auth handles account credentials: bcrypt hashing at rest and
// username/password verification.
package auth

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/stockroomhq/stockroom/internal/storage"
	"github.com/stockroomhq/stockroom/pkg/model"
)

// Service verifies and manages user credentials.
type Service struct {
	store storage.Storage
	log   *zap.Logger
}

// NewService creates an auth service.
func NewService(store storage.Storage, log *zap.Logger) *Service {
	return &Service{store: store, log: log}
}

// Authenticate returns the user when the username exists, the account is
// active, and the password verifies against the stored hash. Every
// failure mode returns ErrNotFound so callers cannot probe which part
// was wrong.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	u, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load user %q: %w", username, err)
	}
	if !u.Active {
		return nil, model.ErrNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, model.ErrNotFound
	}
	return u, nil
}

// SaveUser persists the account, hashing the given plaintext password
// when one is supplied. An empty password on an existing account leaves
// the stored hash unchanged; on a new account it is rejected.
func (s *Service) SaveUser(ctx context.Context, u *model.User, password string) error {
	if u.Username == "" {
		return fmt.Errorf("user has no username: %w", model.ErrValidation)
	}
	if password == "" && u.ID == 0 {
		return fmt.Errorf("new user needs a password: %w", model.ErrValidation)
	}
	if u.Role == "" {
		u.Role = model.RoleUser
	}

	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		u.PasswordHash = string(hash)
	} else {
		u.PasswordHash = ""
	}

	if err := s.store.SaveUser(ctx, u); err != nil {
		return err
	}
	s.log.Info("user saved", zap.Int64("user_id", u.ID), zap.String("username", u.Username))
	return nil
}

// DeactivateUser disables the account; the row is kept.
func (s *Service) DeactivateUser(ctx context.Context, id int64) error {
	if err := s.store.DeactivateUser(ctx, id); err != nil {
		return err
	}
	s.log.Info("user deactivated", zap.Int64("user_id", id))
	return nil
}
