package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sessions in process memory. Everything is lost on restart,
// so it suits development and tests.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]Session

	stop     chan struct{}
	stopOnce sync.Once
}

// NewMemoryStore creates an in-memory store. With a positive sweep interval a
// background goroutine evicts expired sessions until Close is called.
func NewMemoryStore(sweep time.Duration) *MemoryStore {
	s := &MemoryStore{
		items: make(map[string]Session),
		stop:  make(chan struct{}),
	}
	if sweep > 0 {
		go s.sweepEvery(sweep)
	}
	return s
}

func (s *MemoryStore) Create(_ context.Context, sess *Session) error {
	if sess == nil || sess.Token == "" {
		return ErrInvalidSession
	}
	s.put(*sess)
	return nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.items[token]
	s.mu.RUnlock()

	switch {
	case !ok:
		return nil, ErrSessionNotFound
	case sess.IsExpired():
		s.remove(token)
		return nil, ErrSessionExpired
	}
	return &sess, nil
}

func (s *MemoryStore) Update(_ context.Context, sess *Session) error {
	if sess == nil || sess.Token == "" {
		return ErrInvalidSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[sess.Token]; !ok {
		return ErrSessionNotFound
	}
	s.items[sess.Token] = *sess
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.remove(token)
	return nil
}

// DeleteExpired drops every session whose expiry has passed.
func (s *MemoryStore) DeleteExpired(context.Context) error {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	for token, sess := range s.items {
		if now.After(sess.ExpiresAt) {
			delete(s.items, token)
		}
	}
	return nil
}

// Len reports how many sessions are held, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Close stops the sweeper. It is safe to call more than once.
func (s *MemoryStore) Close() error {
	s.stopOnce.Do(func() { close(s.stop) })
	return nil
}

func (s *MemoryStore) put(sess Session) {
	s.mu.Lock()
	s.items[sess.Token] = sess
	s.mu.Unlock()
}

func (s *MemoryStore) remove(token string) {
	s.mu.Lock()
	delete(s.items, token)
	s.mu.Unlock()
}

func (s *MemoryStore) sweepEvery(interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-t.C:
			_ = s.DeleteExpired(context.Background())
		}
	}
}
