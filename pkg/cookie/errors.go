package cookie

import "errors"

var (
	ErrNoSecret       = errors.New("cookie: no signing secret")
	ErrSecretTooShort = errors.New("cookie: signing secret too short")

	// ErrInvalidSignature means the value was tampered with or signed by a retired secret.
	ErrInvalidSignature = errors.New("cookie: invalid signature")
	ErrCookieNotFound   = errors.New("cookie: not found")
	ErrInvalidFormat    = errors.New("cookie: malformed signed value")
)
