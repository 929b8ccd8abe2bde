package session

import (
	"net/http"
	"time"
)

// HeaderTransport reads session tokens from a request header. The
// header value is used verbatim: no Bearer prefix or other scheme
// parsing, so clients send the bare token.
//
// Headers are a read-only channel. Login returns the minted token and
// the handler decides how to hand it to the client (typically in the
// response body), so SetToken and ClearToken do nothing.
type HeaderTransport struct {
	headerName string
}

// NewHeaderTransport creates a header-based transport. An empty name
// falls back to DefaultHeaderName.
func NewHeaderTransport(headerName string) *HeaderTransport {
	if headerName == "" {
		headerName = DefaultHeaderName
	}
	return &HeaderTransport{headerName: headerName}
}

// GetToken returns the raw header value, or ErrNoToken when the header
// is absent or empty.
func (t *HeaderTransport) GetToken(r *http.Request) (string, error) {
	value := r.Header.Get(t.headerName)
	if value == "" {
		return "", ErrNoToken
	}
	return value, nil
}

// SetToken is a no-op; header-mode handlers return the token from
// Login themselves.
func (t *HeaderTransport) SetToken(w http.ResponseWriter, token string, ttl time.Duration) error {
	return nil
}

// ClearToken is a no-op; header-mode clients discard their own copy.
func (t *HeaderTransport) ClearToken(w http.ResponseWriter) error {
	return nil
}
