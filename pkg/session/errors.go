package session

import "errors"

var (
	ErrInvalidSession  = errors.New("session: no owner")
	ErrSessionExpired  = errors.New("session: expired")
	ErrSessionNotFound = errors.New("session: not found")
	ErrTokenGeneration = errors.New("session: token generation failed")

	// ErrUnknownStore is returned by NewStore for an unsupported SESSION_STORE.
	ErrUnknownStore = errors.New("session: unknown store")
)
