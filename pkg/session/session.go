package session

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Session is the server-side state behind a session cookie.
// A session exists only for a logged-in visitor.
type Session struct {
	ID             uuid.UUID `json:"id"`
	Token          string    `json:"token"`
	Username       string    `json:"username"`
	ExpiresAt      time.Time `json:"expires_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewSession creates a session for username that expires after ttl.
func NewSession(token, username string, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:             uuid.New(),
		Token:          token,
		Username:       username,
		ExpiresAt:      now.Add(ttl),
		LastActivityAt: now,
		CreatedAt:      now,
	}
}

// IsAuthenticated reports whether the session belongs to a user.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.Username != ""
}

func (s *Session) IsExpired() bool {
	return s != nil && time.Now().After(s.ExpiresAt)
}

// Store persists sessions keyed by token. Get returns ErrSessionNotFound
// for unknown tokens.
type Store interface {
	Create(ctx context.Context, session *Session) error
	Get(ctx context.Context, token string) (*Session, error)
	Update(ctx context.Context, session *Session) error
	Delete(ctx context.Context, token string) error
}
