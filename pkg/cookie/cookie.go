package cookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"
)

const (
	minSecretLength = 32
	flashPrefix     = "__flash_"
)

// Manager reads and writes cookies with shared defaults and HMAC signing.
type Manager struct {
	secrets  []string
	defaults Options
}

func New(secrets []string, opts ...Option) (*Manager, error) {
	secrets = slices.DeleteFunc(slices.Clone(secrets), func(s string) bool { return s == "" })
	if len(secrets) == 0 {
		return nil, ErrNoSecret
	}

	for i, s := range secrets {
		if len(s) < minSecretLength {
			return nil, fmt.Errorf("%w: secret %d has %d chars, need at least %d", ErrSecretTooShort, i, len(s), minSecretLength)
		}
	}

	defaults := applyOptions(Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}, opts)

	return &Manager{secrets: secrets, defaults: defaults}, nil
}

func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) {
	o := applyOptions(m.defaults, opts)
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     o.Path,
		Domain:   o.Domain,
		MaxAge:   o.MaxAge,
		Secure:   o.Secure,
		HttpOnly: o.HttpOnly,
		SameSite: o.SameSite,
	})
}

func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return c.Value, nil
}

// Delete expires the cookie on the client.
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     m.defaults.Path,
		Domain:   m.defaults.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: m.defaults.HttpOnly,
		SameSite: m.defaults.SameSite,
		Secure:   m.defaults.Secure,
	})
}

func (m *Manager) SetSigned(w http.ResponseWriter, name, value string, opts ...Option) {
	m.Set(w, name, m.sign(value), opts...)
}

func (m *Manager) GetSigned(r *http.Request, name string) (string, error) {
	signed, err := m.Get(r, name)
	if err != nil {
		return "", err
	}
	return m.verify(signed)
}

// SetFlash stores a one-time message that GetFlash consumes.
func (m *Manager) SetFlash(w http.ResponseWriter, key, message string) {
	m.SetSigned(w, flashPrefix+key, message)
}

// GetFlash returns the flash message for key and deletes it.
// An empty string means there was none or it failed verification.
func (m *Manager) GetFlash(w http.ResponseWriter, r *http.Request, key string) string {
	name := flashPrefix + key
	if _, err := r.Cookie(name); err != nil {
		return ""
	}
	m.Delete(w, name)

	msg, err := m.GetSigned(r, name)
	if err != nil {
		return ""
	}
	return msg
}

func (m *Manager) sign(value string) string {
	return base64.URLEncoding.EncodeToString([]byte(value)) + "|" + mac(m.secrets[0], []byte(value))
}

func (m *Manager) verify(signed string) (string, error) {
	encoded, signature, ok := strings.Cut(signed, "|")
	if !ok {
		return "", ErrInvalidFormat
	}

	value, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return "", ErrInvalidFormat
	}

	// Older secrets stay valid during rotation.
	for _, secret := range m.secrets {
		if hmac.Equal([]byte(signature), []byte(mac(secret, value))) {
			return string(value), nil
		}
	}

	return "", ErrInvalidSignature
}

func mac(secret string, value []byte) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(value)
	return base64.URLEncoding.EncodeToString(h.Sum(nil))
}
