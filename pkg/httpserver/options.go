package httpserver

import (
	"log/slog"
	"time"
)

// Option configures the HTTP server. Zero or negative values are ignored.
type Option func(*config)

// WithAddr sets the listen address. Port 0 picks a free port; see Server.Addr.
func WithAddr(addr string) Option {
	return func(c *config) {
		if addr != "" {
			c.addr = addr
		}
	}
}

func WithReadTimeout(d time.Duration) Option {
	return func(c *config) { c.readTimeout = positive(d, c.readTimeout) }
}

func WithWriteTimeout(d time.Duration) Option {
	return func(c *config) { c.writeTimeout = positive(d, c.writeTimeout) }
}

func WithIdleTimeout(d time.Duration) Option {
	return func(c *config) { c.idleTimeout = positive(d, c.idleTimeout) }
}

// WithShutdownTimeout bounds how long in-flight requests may take to finish.
func WithShutdownTimeout(d time.Duration) Option {
	return func(c *config) { c.shutdownTimeout = positive(d, c.shutdownTimeout) }
}

// WithLogger sets the logger for lifecycle events.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func positive(d, fallback time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return fallback
}
