package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"microfeed/internal/feed/domain"
	"microfeed/internal/feed/store"
	"microfeed/pkg/cryptox"
)

var (
	ErrUsernameTaken      = errors.New("username_taken")
	ErrInvalidCredentials = errors.New("invalid_credentials")
)

type UserService struct {
	Store store.Store
}

// Register creates a new account with a hashed password. Usernames are
// matched case-sensitively; a duplicate yields ErrUsernameTaken and leaves
// the collection untouched. Empty passwords are accepted, matching the
// original behavior of this endpoint.
func (s *UserService) Register(ctx context.Context, username, password string) (domain.User, error) {
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	u := domain.User{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.Store.Users().Create(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrUsernameTaken
		}
		return domain.User{}, err
	}

	return u, nil
}

// Authenticate verifies a username/password pair and returns the identity.
// The failure is uniform for unknown usernames and wrong passwords so the
// endpoint cannot be used to enumerate accounts.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (string, error) {
	u, err := s.Store.Users().GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	return u.Username, nil
}

// List returns every account without password hashes.
func (s *UserService) List(ctx context.Context) ([]domain.Account, error) {
	users, err := s.Store.Users().List(ctx)
	if err != nil {
		return nil, err
	}

	accounts := make([]domain.Account, 0, len(users))
	for _, u := range users {
		accounts = append(accounts, u.Public())
	}
	return accounts, nil
}
