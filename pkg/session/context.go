package session

import "context"

type sessionContextKey struct{}

type managerContextKey struct{}

// WithSession returns a context carrying the session. Middleware calls
// this on every verified request; tests use it to fake authenticated
// requests without minting tokens.
func WithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, session)
}

// FromContext retrieves the verified session, if any.
func FromContext(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(sessionContextKey{}).(*Session)
	return session, ok
}

// MustFromContext retrieves the session or panics. Use only behind a
// routing layer that guarantees authentication.
func MustFromContext(ctx context.Context) *Session {
	session, ok := FromContext(ctx)
	if !ok {
		panic("session: not found in context")
	}
	return session
}

// SubjectFromContext returns the authenticated subject. The second
// return is false when the request is unauthenticated or the token
// carried no subject.
func SubjectFromContext(ctx context.Context) (string, bool) {
	session, ok := FromContext(ctx)
	if !ok || session.Subject == "" {
		return "", false
	}
	return session.Subject, true
}

// ClaimsFromContext returns the verified custom claims, or the given
// default when the request is unauthenticated.
func ClaimsFromContext(ctx context.Context, def map[string]any) map[string]any {
	session, ok := FromContext(ctx)
	if !ok || session.Claims == nil {
		return def
	}
	return session.Claims
}

// withManager attaches the manager so response-side calls (Login,
// Logout) can reach configuration without re-threading it.
func withManager(ctx context.Context, m *Manager) context.Context {
	return context.WithValue(ctx, managerContextKey{}, m)
}

func managerFromContext(ctx context.Context) (*Manager, bool) {
	m, ok := ctx.Value(managerContextKey{}).(*Manager)
	return m, ok
}
