package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"
	"time"
)

// Manager handles the session life-cycle: login, lookup, sliding expiry and logout.
type Manager struct {
	store     Store
	transport Transport
	config    Config
	loginPath string
}

// New creates a session manager with the given options.
// It panics when no cookie manager is supplied.
func New(opts ...Option) *Manager {
	m := &Manager{
		config:    DefaultConfig(),
		loginPath: "/login",
	}

	b := &builder{}
	for _, opt := range opts {
		opt(m, b)
	}

	if m.store == nil {
		m.store = NewMemoryStore(m.config.CleanupInterval)
	}

	if b.cookieManager == nil {
		panic("session: cookie manager is required")
	}
	m.transport = NewCookieTransport(b.cookieManager, m.config.CookieName, m.config.SecureCookies, b.cookieOptions...)

	return m
}

// NewFromConfig creates a Manager from cfg. Store and cookie manager come via opts.
func NewFromConfig(cfg Config, opts ...Option) *Manager {
	return New(append([]Option{WithConfig(cfg)}, opts...)...)
}

// Get returns the session referenced by the request, if any.
func (m *Manager) Get(ctx context.Context, r *http.Request) (*Session, error) {
	token, err := m.transport.GetToken(r)
	if err != nil {
		return nil, err
	}

	session, err := m.store.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if session.IsExpired() {
		return nil, ErrSessionExpired
	}
	return session, nil
}

// Authenticate starts a fresh session for username. Any session the request
// already carried is discarded so a token issued before login is never reused.
func (m *Manager) Authenticate(ctx context.Context, w http.ResponseWriter, r *http.Request, username string) (*Session, error) {
	if username == "" {
		return nil, ErrInvalidSession
	}

	if old, err := m.transport.GetToken(r); err == nil {
		_ = m.store.Delete(ctx, old)
	}

	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session := NewSession(token, username, m.expiry(now, now).Sub(now))
	if err := m.store.Create(ctx, session); err != nil {
		return nil, err
	}

	if err := m.transport.SetToken(w, token, m.config.IdleTimeout); err != nil {
		_ = m.store.Delete(ctx, token)
		return nil, err
	}
	return session, nil
}

// Destroy deletes the session and clears the cookie.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if token, err := m.transport.GetToken(r); err == nil {
		_ = m.store.Delete(ctx, token)
	}
	return m.transport.ClearToken(w)
}

// Refresh slides the idle expiry forward once ActivityUpdateThreshold has
// passed since the last extension. The absolute MaxLifetime is never exceeded.
func (m *Manager) Refresh(ctx context.Context, w http.ResponseWriter, session *Session) error {
	now := time.Now()
	if now.Sub(session.LastActivityAt) < m.config.ActivityUpdateThreshold {
		return nil
	}

	session.ExpiresAt = m.expiry(session.CreatedAt, now)
	session.LastActivityAt = now
	if err := m.store.Update(ctx, session); err != nil {
		return err
	}
	return m.transport.SetToken(w, session.Token, m.config.IdleTimeout)
}

// expiry returns the earlier of the idle deadline and the absolute deadline.
func (m *Manager) expiry(createdAt, now time.Time) time.Time {
	idle := now.Add(m.config.IdleTimeout)
	hard := createdAt.Add(m.config.MaxLifetime)
	if hard.Before(idle) {
		return hard
	}
	return idle
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
