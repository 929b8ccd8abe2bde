package session

import (
	"net/http"
	"time"
)

// CompositeTransport chains transports so one manager can serve
// browser clients on cookies and API clients on headers. Reads take
// the first transport that yields a token; writes fan out to all of
// them.
type CompositeTransport struct {
	transports []Transport
}

// NewCompositeTransport creates a transport that tries the given
// transports in order.
func NewCompositeTransport(transports ...Transport) *CompositeTransport {
	return &CompositeTransport{
		transports: transports,
	}
}

// GetToken returns the token from the first transport carrying one.
func (t *CompositeTransport) GetToken(r *http.Request) (string, error) {
	for _, transport := range t.transports {
		token, err := transport.GetToken(r)
		if err == nil && token != "" {
			return token, nil
		}
	}
	return "", ErrNoToken
}

// SetToken delivers the token through every transport. The last error
// wins; successful transports are not rolled back.
func (t *CompositeTransport) SetToken(w http.ResponseWriter, token string, ttl time.Duration) error {
	var lastErr error
	for _, transport := range t.transports {
		if err := transport.SetToken(w, token, ttl); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// ClearToken clears the token on every transport.
func (t *CompositeTransport) ClearToken(w http.ResponseWriter) error {
	var lastErr error
	for _, transport := range t.transports {
		if err := transport.ClearToken(w); err != nil {
			lastErr = err
		}
	}
	return lastErr
}
