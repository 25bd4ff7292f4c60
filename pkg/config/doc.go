// Package config loads application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` (optional .env files) and
// `github.com/caarlos0/env/v11` (struct-tag driven parsing). Each package that
// needs settings exposes its own Config struct with `env` tags; the binary
// composes them into one struct and calls Load once at startup.
//
// # Usage
//
//	if err := config.LoadEnv(); err != nil { // optional .env
//		log.Fatal(err)
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// # Error Handling
//
// Errors wrap the sentinels ErrParsingConfig, ErrLoadingEnvFile and
// ErrNilPointer and can be checked with errors.Is.
package config
