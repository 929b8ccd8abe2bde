package session

import (
	"log/slog"
	"time"

	"github.com/sessionkit/sessionkit/pkg/cookie"
)

// Option configures a Manager during construction.
type Option func(*Manager)

// WithTransport replaces the default cookie transport. Use
// NewHeaderTransport for APIs that carry tokens in a request header.
func WithTransport(t Transport) Option {
	return func(m *Manager) {
		if t != nil {
			m.transport = t
		}
	}
}

// WithIssuer stamps issued tokens with an iss claim.
func WithIssuer(issuer string) Option {
	return func(m *Manager) {
		m.issuer = issuer
	}
}

// WithTTL sets the validity window of issued tokens.
func WithTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		m.ttl = ttl
	}
}

// WithCookieName sets the cookie the default transport reads and
// writes. Ignored when a custom transport is installed.
func WithCookieName(name string) Option {
	return func(m *Manager) {
		if name != "" {
			m.cookieName = name
		}
	}
}

// WithCookieOptions sets default cookie attributes for the default
// transport, e.g. cookie.WithDomain. They shape login and logout
// cookies alike. Ignored when a custom transport is installed.
func WithCookieOptions(opts ...cookie.Option) Option {
	return func(m *Manager) {
		m.cookieOptions = append(m.cookieOptions, opts...)
	}
}

// WithSecureCookies marks session cookies Secure so browsers only send
// them over HTTPS. Ignored when a custom transport is installed.
func WithSecureCookies(secure bool) Option {
	return func(m *Manager) {
		m.secureCookies = secure
	}
}

// WithLogger sets the logger for middleware and login diagnostics.
// The default discards everything.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.logger = log
		}
	}
}
