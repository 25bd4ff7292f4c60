package session

import (
	"context"
	"net/http"
)

type ctxKey struct{}

// WithSession stores sess in ctx.
func WithSession(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, sess)
}

// FromContext returns the session placed by Middleware or RequireAuth.
func FromContext(ctx context.Context) (*Session, bool) {
	sess, ok := ctx.Value(ctxKey{}).(*Session)
	return sess, ok && sess != nil
}

// UsernameFromContext returns the logged-in username, if any.
func UsernameFromContext(ctx context.Context) (string, bool) {
	sess, ok := FromContext(ctx)
	if !ok || !sess.IsAuthenticated() {
		return "", false
	}
	return sess.Username, true
}

// Middleware puts the request's session, if any, into the context and slides
// its expiry. Requests without a valid session pass through untouched.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := m.Get(r.Context(), r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		_ = m.Refresh(r.Context(), w, sess)
		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
	})
}

// RequireAuth redirects visitors without an authenticated session to the login page.
func (m *Manager) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := FromContext(r.Context())
		if !ok {
			var err error
			if sess, err = m.Get(r.Context(), r); err != nil {
				http.Redirect(w, r, m.loginPath, http.StatusFound)
				return
			}
		}
		if !sess.IsAuthenticated() {
			http.Redirect(w, r, m.loginPath, http.StatusFound)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
	})
}
