package auth

import "errors"

// Storage implementations return ErrUserNotFound and ErrUsernameTaken so the
// service can tell a missing account from a backend failure.
var (
	ErrUserNotFound       = errors.New("auth: user not found")
	ErrUsernameTaken      = errors.New("auth: username taken")
	ErrInvalidCredentials = errors.New("auth: invalid username or password")
	ErrUsernameRequired   = errors.New("auth: username required")
	ErrPasswordRequired   = errors.New("auth: password required")
)
