package config

import "errors"

var (
	ErrParsingConfig  = errors.New("config: parse environment")
	ErrLoadingEnvFile = errors.New("config: load env file")
	ErrNilPointer     = errors.New("config: nil target")
)
