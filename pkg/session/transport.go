package session

import (
	"net/http"
	"time"
)

// Transport moves session tokens between client and server.
type Transport interface {
	// GetToken extracts the token from the request. It returns
	// ErrNoToken when the request carries none.
	GetToken(r *http.Request) (string, error)

	// SetToken delivers a freshly issued token to the client.
	SetToken(w http.ResponseWriter, token string, ttl time.Duration) error

	// ClearToken instructs the client to discard its token.
	ClearToken(w http.ResponseWriter) error
}
