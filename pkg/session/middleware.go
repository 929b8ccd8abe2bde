package session

import (
	"net/http"

	"github.com/sessionkit/sessionkit/pkg/clientip"
	"github.com/sessionkit/sessionkit/pkg/logger"
)

// Middleware authenticates requests from their session token. The
// manager is attached to the request context first, so Login and
// Logout work downstream whether or not the request carried a token.
//
// A missing token, a token that fails verification and a token outside
// its validity window all leave the request unauthenticated; failures
// are logged and the chain always continues. Rejecting unauthenticated
// requests is the job of downstream handlers.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := withManager(r.Context(), m)
		r = r.WithContext(ctx)

		token, err := m.transport.GetToken(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := m.codec.Verify(token)
		if err != nil {
			m.logger.InfoContext(ctx, "rejected session token",
				logger.Error(err),
				logger.Component("session"),
				"path", r.URL.Path,
			)
			next.ServeHTTP(w, r)
			return
		}

		if err := claims.ValidAt(m.nowFunc()); err != nil {
			m.logger.WarnContext(ctx, "session token outside validity window",
				logger.Error(err),
				logger.Component("session"),
				"path", r.URL.Path,
			)
			next.ServeHTTP(w, r)
			return
		}

		session := &Session{
			Subject: claims.Subject,
			Claims:  claims.Custom,
		}

		m.logger.InfoContext(ctx, "authenticated request",
			logger.Component("session"),
			"subject", claims.Subject,
			"path", r.URL.Path,
			"remote_ip", clientip.GetIP(r),
		)

		next.ServeHTTP(w, r.WithContext(WithSession(ctx, session)))
	})
}

// RequireAuth responds 401 Unauthorized to unauthenticated requests.
// Mount it after Middleware on routes that demand identity.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := FromContext(r.Context()); !ok {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
