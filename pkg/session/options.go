package session

import "github.com/dmitrymomot/coffeeshops/pkg/cookie"

// builder collects construction-only settings.
type builder struct {
	cookieManager *cookie.Manager
	cookieOptions []cookie.Option
}

// Option is a functional option for configuring the Manager
type Option func(*Manager, *builder)

// WithStore sets the session store
func WithStore(store Store) Option {
	return func(m *Manager, _ *builder) { m.store = store }
}

// WithConfig sets custom configuration
func WithConfig(config Config) Option {
	return func(m *Manager, _ *builder) { m.config = config }
}

// WithLoginPath sets where RequireAuth sends anonymous visitors
func WithLoginPath(path string) Option {
	return func(m *Manager, _ *builder) { m.loginPath = path }
}

// WithCookieManager sets the cookie manager that carries the session token
func WithCookieManager(cookieMgr *cookie.Manager, opts ...cookie.Option) Option {
	return func(_ *Manager, b *builder) {
		b.cookieManager = cookieMgr
		b.cookieOptions = opts
	}
}
