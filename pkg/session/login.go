package session

import (
	"log/slog"
	"net/http"

	"github.com/sessionkit/sessionkit/pkg/logger"
)

// Login issues a session token for the subject and delivers it through
// the manager's transport. The minted token is returned so header-mode
// handlers can place it in the response body; cookie-mode handlers can
// ignore it.
//
// Login must run below Middleware: without a manager in the request
// context it logs a warning and returns the empty string. It never
// fails the request.
func Login(w http.ResponseWriter, r *http.Request, subject string) string {
	return LoginWithClaims(w, r, subject, nil)
}

// LoginWithClaims issues a session token carrying the subject plus the
// given custom claims.
func LoginWithClaims(w http.ResponseWriter, r *http.Request, subject string, claims map[string]any) string {
	m, ok := managerFromContext(r.Context())
	if !ok {
		slog.Warn("session login without middleware", logger.Component("session"))
		return ""
	}
	return m.login(w, subject, claims)
}

// LoginClaimsOnly issues a session token with no subject; identity
// travels entirely inside the custom claims.
func LoginClaimsOnly(w http.ResponseWriter, r *http.Request, claims map[string]any) string {
	return LoginWithClaims(w, r, "", claims)
}

// Logout instructs the client to discard its session token. Like
// Login it is a logged no-op when Middleware is not mounted.
func Logout(w http.ResponseWriter, r *http.Request) {
	m, ok := managerFromContext(r.Context())
	if !ok {
		slog.Warn("session logout without middleware", logger.Component("session"))
		return
	}
	m.logout(w)
}
