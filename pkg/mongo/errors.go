package mongo

import "errors"

var (
	ErrConnect = errors.New("mongo: connect failed")
	ErrPing    = errors.New("mongo: ping failed")
)
