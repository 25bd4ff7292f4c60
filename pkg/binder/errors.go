package binder

import "errors"

var (
	// ErrBinderNotApplicable signals that a binder has nothing to read from
	// this request. Callers chaining binders skip it and move on.
	ErrBinderNotApplicable  = errors.New("binder not applicable")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidForm          = errors.New("failed to parse form data")
	ErrInvalidQuery         = errors.New("failed to parse query parameters")
	ErrInvalidPath          = errors.New("failed to parse path parameters")
)
