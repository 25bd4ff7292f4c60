package session

import "time"

// Config holds session configuration
type Config struct {
	// Store selects the backend: "memory" or "redis"
	Store string `env:"SESSION_STORE" envDefault:"memory"`

	// CookieName is the name of the session cookie
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"sid"`

	IdleTimeout time.Duration `env:"SESSION_IDLE_TIMEOUT" envDefault:"2h"`
	MaxLifetime time.Duration `env:"SESSION_MAX_LIFETIME" envDefault:"720h"`

	// ActivityUpdateThreshold is the minimum time between expiry extensions
	ActivityUpdateThreshold time.Duration `env:"SESSION_ACTIVITY_UPDATE_THRESHOLD" envDefault:"5m"`

	// CleanupInterval for expired sessions in the memory store (0 to disable)
	CleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"5m"`

	// SecureCookies enables the Secure flag on session cookies
	SecureCookies bool `env:"SESSION_SECURE_COOKIES" envDefault:"false"`

	// RedisPrefix namespaces session keys in Redis
	RedisPrefix string `env:"SESSION_REDIS_PREFIX" envDefault:"session:"`
}

// DefaultConfig returns default session configuration
func DefaultConfig() Config {
	return Config{
		Store:                   "memory",
		CookieName:              "sid",
		IdleTimeout:             2 * time.Hour,
		MaxLifetime:             30 * 24 * time.Hour,
		ActivityUpdateThreshold: 5 * time.Minute,
		CleanupInterval:         5 * time.Minute,
		RedisPrefix:             "session:",
	}
}
