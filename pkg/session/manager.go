package session

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/sessionkit/sessionkit/pkg/cookie"
	"github.com/sessionkit/sessionkit/pkg/jwt"
	"github.com/sessionkit/sessionkit/pkg/logger"
)

// Manager verifies inbound session tokens and mints outbound ones.
// Every field is set during construction and never mutated afterwards,
// so a single Manager is safe for unsynchronized concurrent use across
// request handlers.
type Manager struct {
	codec         *jwt.Service
	transport     Transport
	issuer        string
	ttl           time.Duration
	logger        *slog.Logger
	cookieName    string
	cookieOptions []cookie.Option
	secureCookies bool
	nowFunc       func() time.Time // for testing; defaults to time.Now
}

// New creates a session manager signing tokens with the given key.
// Without options it issues day-long tokens through a cookie named
// "jwt". The key must be non-empty and the TTL positive.
func New(signingKey string, opts ...Option) (*Manager, error) {
	codec, err := jwt.NewFromString(signingKey)
	if err != nil {
		return nil, err
	}

	m := &Manager{
		codec:      codec,
		ttl:        DefaultTTL,
		cookieName: DefaultCookieName,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		nowFunc:    time.Now,
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.ttl <= 0 {
		return nil, ErrInvalidTTL
	}

	if m.transport == nil {
		cookieOpts := m.cookieOptions
		if m.secureCookies {
			cookieOpts = append(cookieOpts, cookie.WithSecure(true))
		}
		// Options become the cookie manager's defaults so that login and
		// logout emit cookies with identical attributes; a logout cookie
		// with a different Path or Domain would not match for deletion.
		m.transport = NewCookieTransport(cookie.New(cookieOpts...), m.cookieName)
	}

	return m, nil
}

// login mints a token for the subject and custom claims, writes it
// through the transport and returns it. Signing and transport failures
// are logged and absorbed; callers observe only the empty string.
func (m *Manager) login(w http.ResponseWriter, subject string, custom map[string]any) string {
	now := m.nowFunc()
	claims := jwt.Claims{
		ID:        uuid.NewString(),
		Issuer:    m.issuer,
		Subject:   subject,
		NotBefore: now.Unix(),
		ExpiresAt: now.Add(m.ttl).Unix(),
		Custom:    custom,
	}

	token, err := m.codec.Sign(claims)
	if err != nil {
		m.logger.Error("failed to sign session token",
			logger.Error(err),
			logger.Component("session"),
		)
		return ""
	}

	if err := m.transport.SetToken(w, token, m.ttl); err != nil {
		m.logger.Error("failed to write session token",
			logger.Error(err),
			logger.Component("session"),
		)
		return ""
	}

	return token
}

// logout instructs the client to drop its token.
func (m *Manager) logout(w http.ResponseWriter) {
	if err := m.transport.ClearToken(w); err != nil {
		m.logger.Error("failed to clear session token",
			logger.Error(err),
			logger.Component("session"),
		)
	}
}
