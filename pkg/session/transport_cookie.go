package session

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/coffeeshops/pkg/cookie"
)

// Transport moves the session token between the browser and the server.
type Transport interface {
	GetToken(r *http.Request) (string, error)
	SetToken(w http.ResponseWriter, token string, ttl time.Duration) error
	ClearToken(w http.ResponseWriter) error
}

var _ Transport = (*CookieTransport)(nil)

// CookieTransport carries the session token in a signed cookie.
type CookieTransport struct {
	cookieMgr     *cookie.Manager
	cookieName    string
	options       []cookie.Option
	secureCookies bool
}

func NewCookieTransport(cookieMgr *cookie.Manager, cookieName string, secureCookies bool, opts ...cookie.Option) *CookieTransport {
	return &CookieTransport{
		cookieMgr:     cookieMgr,
		cookieName:    cookieName,
		options:       opts,
		secureCookies: secureCookies,
	}
}

func (t *CookieTransport) GetToken(r *http.Request) (string, error) {
	token, err := t.cookieMgr.GetSigned(r, t.cookieName)
	if err != nil || token == "" {
		return "", ErrSessionNotFound
	}
	return token, nil
}

func (t *CookieTransport) SetToken(w http.ResponseWriter, token string, ttl time.Duration) error {
	opts := []cookie.Option{
		cookie.WithMaxAge(int(ttl.Seconds())),
		cookie.WithPath("/"),
		cookie.WithHTTPOnly(true),
		cookie.WithSameSite(http.SameSiteLaxMode),
	}
	if t.secureCookies {
		opts = append(opts, cookie.WithSecure(true))
	}

	t.cookieMgr.SetSigned(w, t.cookieName, token, append(opts, t.options...)...)
	return nil
}

func (t *CookieTransport) ClearToken(w http.ResponseWriter) error {
	t.cookieMgr.Delete(w, t.cookieName)
	return nil
}
