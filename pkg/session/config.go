package session

import "time"

// Defaults applied by New when no option overrides them. The cookie is
// named "jwt" and tokens stay valid for a day, matching the most common
// deployment of this kind of middleware.
const (
	DefaultCookieName = "jwt"
	DefaultHeaderName = "Authorization"
	DefaultTTL        = 24 * time.Hour
)

// Config holds session middleware configuration
type Config struct {
	// SigningKey is the HMAC secret for session tokens. It is never
	// logged or exposed; an empty key fails construction.
	SigningKey string `env:"SESSION_SIGNING_KEY"`

	// Issuer is placed in the iss claim of issued tokens when set
	Issuer string `env:"SESSION_ISSUER"`

	// TTL is the validity duration of issued tokens
	TTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	// CookieName is the name of the session cookie
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"jwt"`

	// HeaderName is the request header consulted when UseHeader is set
	HeaderName string `env:"SESSION_HEADER_NAME" envDefault:"Authorization"`

	// UseHeader selects the header transport instead of the cookie transport
	UseHeader bool `env:"SESSION_USE_HEADER" envDefault:"false"`

	// SecureCookies enables the Secure flag on session cookies (recommended for production)
	SecureCookies bool `env:"SESSION_SECURE_COOKIES" envDefault:"false"`
}

// DefaultConfig returns default session configuration
func DefaultConfig() Config {
	return Config{
		TTL:        DefaultTTL,
		CookieName: DefaultCookieName,
		HeaderName: DefaultHeaderName,
	}
}

// NewFromConfig creates a Manager from the provided Config.
// Only non-zero values from the config are applied; additional options
// take precedence over the config fields.
func NewFromConfig(cfg Config, opts ...Option) (*Manager, error) {
	configOpts := make([]Option, 0, len(opts)+5)

	if cfg.Issuer != "" {
		configOpts = append(configOpts, WithIssuer(cfg.Issuer))
	}
	if cfg.TTL != 0 {
		configOpts = append(configOpts, WithTTL(cfg.TTL))
	}
	if cfg.CookieName != "" {
		configOpts = append(configOpts, WithCookieName(cfg.CookieName))
	}
	if cfg.SecureCookies {
		configOpts = append(configOpts, WithSecureCookies(true))
	}
	if cfg.UseHeader {
		configOpts = append(configOpts, WithTransport(NewHeaderTransport(cfg.HeaderName)))
	}

	configOpts = append(configOpts, opts...)

	return New(cfg.SigningKey, configOpts...)
}
