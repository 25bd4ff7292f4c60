package coffeeshop

import (
	"errors"

	"github.com/dmitrymomot/coffeeshops/pkg/auth"
)

var (
	ErrNotFound  = errors.New("coffeeshop: not found")
	ErrInvalidID = errors.New("coffeeshop: invalid id")

	// ErrUsernameTaken is returned by credential storage on a unique index violation.
	ErrUsernameTaken = auth.ErrUsernameTaken
)
