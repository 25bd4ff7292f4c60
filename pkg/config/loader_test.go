package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/coffeeshops/pkg/config"
)

type nestedConfig struct {
	Timeout time.Duration `env:"TEST_NESTED_TIMEOUT" envDefault:"5s"`
}

type testConfig struct {
	Name   string `env:"TEST_NAME" envDefault:"default_value"`
	Port   int    `env:"TEST_PORT" envDefault:"5000"`
	Flag   bool   `env:"TEST_FLAG" envDefault:"false"`
	Nested nestedConfig
}

type requiredConfig struct {
	Required string `env:"TEST_REQUIRED_VALUE,required"`
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		var cfg testConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "default_value", cfg.Name)
		assert.Equal(t, 5000, cfg.Port)
		assert.False(t, cfg.Flag)
		assert.Equal(t, 5*time.Second, cfg.Nested.Timeout)
	})

	t.Run("reads environment", func(t *testing.T) {
		t.Setenv("TEST_NAME", "coffee")
		t.Setenv("TEST_PORT", "8080")
		t.Setenv("TEST_FLAG", "true")
		t.Setenv("TEST_NESTED_TIMEOUT", "1m")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "coffee", cfg.Name)
		assert.Equal(t, 8080, cfg.Port)
		assert.True(t, cfg.Flag)
		assert.Equal(t, time.Minute, cfg.Nested.Timeout)
	})

	t.Run("missing required value", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *testConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("loads file without overriding existing variables", func(t *testing.T) {
		t.Setenv("TEST_FILE_PRESET", "from-env")
		t.Setenv("TEST_FILE_VALUE", "")
		require.NoError(t, os.Unsetenv("TEST_FILE_VALUE"))

		require.NoError(t, config.LoadEnv("testdata/.env.test"))
		assert.Equal(t, "from-file", os.Getenv("TEST_FILE_VALUE"))
		assert.Equal(t, "from-env", os.Getenv("TEST_FILE_PRESET"))
	})

	t.Run("missing explicit file", func(t *testing.T) {
		err := config.LoadEnv("testdata/does-not-exist.env")
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})
}

func TestParseEnvironment(t *testing.T) {
	t.Parallel()
	tests := map[string]config.Environment{
		"production":  config.Production,
		"prod":        config.Production,
		" Staging ":   config.Staging,
		"stage":       config.Staging,
		"development": config.Development,
		"":            config.Development,
		"whatever":    config.Development,
	}
	for in, want := range tests {
		assert.Equal(t, want, config.ParseEnvironment(in), in)
	}
	assert.True(t, config.Production.IsProduction())
	assert.False(t, config.Staging.IsProduction())
}
