package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps sessions in Redis as JSON with a TTL matching ExpiresAt,
// so expired sessions disappear without a cleanup loop.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) key(token string) string {
	return s.prefix + token
}

func (s *RedisStore) Create(ctx context.Context, session *Session) error {
	return s.save(ctx, session)
}

func (s *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	raw, err := s.client.Get(ctx, s.key(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	var session Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if session.IsExpired() {
		_ = s.Delete(ctx, token)
		return nil, ErrSessionExpired
	}
	return &session, nil
}

// Update overwrites the session only if it still exists. The write is a
// single SET XX, so a concurrent Delete cannot be undone by a refresh.
func (s *RedisStore) Update(ctx context.Context, session *Session) error {
	raw, ttl, err := encode(session)
	if err != nil {
		return err
	}
	ok, err := s.client.SetXX(ctx, s.key(session.Token), raw, ttl).Result()
	if errors.Is(err, redis.Nil) || (err == nil && !ok) {
		return ErrSessionNotFound
	}
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *RedisStore) save(ctx context.Context, session *Session) error {
	raw, ttl, err := encode(session)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key(session.Token), raw, ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// encode returns the stored form of session and the TTL left until it expires.
func encode(session *Session) ([]byte, time.Duration, error) {
	if session == nil || session.Token == "" {
		return nil, 0, ErrInvalidSession
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return nil, 0, ErrSessionExpired
	}

	raw, err := json.Marshal(session)
	if err != nil {
		return nil, 0, fmt.Errorf("encode session: %w", err)
	}
	return raw, ttl, nil
}
