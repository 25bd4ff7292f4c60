package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// LoadEnv loads variables from the given .env files into the process
// environment. Variables that are already set are never overwritten.
// With no arguments the default ".env" in the working directory is tried
// and silently skipped when absent.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return errors.Join(ErrLoadingEnvFile, err)
		}
		return nil
	}

	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			return errors.Join(ErrLoadingEnvFile, fmt.Errorf("%s: %w", f, err))
		}
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load parses the process environment into v using `env` and `envDefault`
// struct tags. Nested structs are parsed recursively, so an application
// config can embed the per-package configs (mongo.Config, session.Config…).
//
//	type Config struct {
//		Mongo   mongo.Config
//		Session session.Config
//		Port    int `env:"PORT" envDefault:"5000"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
