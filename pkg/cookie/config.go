package cookie

import (
	"net/http"
	"strings"
)

// Config holds cookie manager configuration.
// COOKIE_SECRETS is a comma separated list; the first entry signs new cookies,
// the rest are still accepted when verifying so secrets can be rotated.
type Config struct {
	Secrets  string        `env:"COOKIE_SECRETS,required"`
	Path     string        `env:"COOKIE_PATH" envDefault:"/"`
	Domain   string        `env:"COOKIE_DOMAIN" envDefault:""`
	Secure   bool          `env:"COOKIE_SECURE" envDefault:"false"`
	HttpOnly bool          `env:"COOKIE_HTTP_ONLY" envDefault:"true"`
	SameSite http.SameSite `env:"COOKIE_SAME_SITE" envDefault:"2"` // 2 = SameSiteLaxMode
}

func (c Config) parseSecrets() []string {
	var secrets []string
	for s := range strings.SplitSeq(c.Secrets, ",") {
		if s = strings.TrimSpace(s); s != "" {
			secrets = append(secrets, s)
		}
	}
	return secrets
}

// NewFromConfig creates a Manager from cfg. Extra opts are applied last.
func NewFromConfig(cfg Config, opts ...Option) (*Manager, error) {
	configOpts := []Option{
		WithHTTPOnly(cfg.HttpOnly),
		WithSecure(cfg.Secure),
	}
	if cfg.Path != "" {
		configOpts = append(configOpts, WithPath(cfg.Path))
	}
	if cfg.Domain != "" {
		configOpts = append(configOpts, WithDomain(cfg.Domain))
	}
	if cfg.SameSite != 0 {
		configOpts = append(configOpts, WithSameSite(cfg.SameSite))
	}

	return New(cfg.parseSecrets(), append(configOpts, opts...)...)
}
