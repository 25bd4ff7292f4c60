package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/coffeeshops/pkg/logger"
)

// PasswordAuthenticator defines username/password registration and login.
type PasswordAuthenticator interface {
	Register(ctx context.Context, username, password string) error
	Authenticate(ctx context.Context, username, password string) error
}

// PasswordStorage persists credentials keyed by username.
// CreateCredential must return ErrUsernameTaken when the username exists;
// GetPasswordHash must return ErrUserNotFound for unknown usernames.
type PasswordStorage interface {
	CreateCredential(ctx context.Context, username string, hash []byte) error
	GetPasswordHash(ctx context.Context, username string) ([]byte, error)
}

type passwordService struct {
	storage    PasswordStorage
	bcryptCost int
	logger     *slog.Logger
}

type PasswordOption func(*passwordService)

// WithPasswordLogger sets a custom logger for the service
func WithPasswordLogger(logger *slog.Logger) PasswordOption {
	return func(s *passwordService) {
		s.logger = logger
	}
}

// WithBcryptCost sets the bcrypt cost for password hashing.
// Values outside bcrypt's accepted range fall back to bcrypt.DefaultCost.
func WithBcryptCost(cost int) PasswordOption {
	return func(s *passwordService) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			s.bcryptCost = cost
		}
	}
}

// NewPasswordService creates a new password authentication service
func NewPasswordService(storage PasswordStorage, opts ...PasswordOption) PasswordAuthenticator {
	s := &passwordService{
		storage:    storage,
		bcryptCost: bcrypt.DefaultCost,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Register hashes password and stores a credential for username.
// Uniqueness is left to the storage so two concurrent signups cannot both win.
func (s *passwordService) Register(ctx context.Context, username, password string) error {
	if strings.TrimSpace(username) == "" {
		return ErrUsernameRequired
	}
	if password == "" {
		return ErrPasswordRequired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.storage.CreateCredential(ctx, username, hash); err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("failed to create credential: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered", logger.Username(username), logger.Component("auth"))
	return nil
}

// Authenticate verifies username and password.
// Unknown usernames and wrong passwords both yield ErrInvalidCredentials;
// any other storage failure is returned as is.
func (s *passwordService) Authenticate(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return ErrInvalidCredentials
	}

	hash, err := s.storage.GetPasswordHash(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("failed to load credential: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		s.logger.DebugContext(ctx, "password mismatch", logger.Username(username), logger.Component("auth"))
		return ErrInvalidCredentials
	}

	return nil
}
