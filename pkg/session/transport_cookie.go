package session

import (
	"net/http"
	"time"

	"github.com/sessionkit/sessionkit/pkg/cookie"
)

// CookieTransport carries session tokens in an HTTP cookie. Tokens are
// stored as-is; they are already signed, so the cookie layer adds no
// crypto of its own.
type CookieTransport struct {
	cookieMgr  *cookie.Manager
	cookieName string
}

// NewCookieTransport creates a cookie-based transport. Cookie attributes
// (Path, SameSite, Secure, ...) come from cookieMgr's defaults, which
// keeps the cookies written by SetToken and ClearToken consistent.
func NewCookieTransport(cookieMgr *cookie.Manager, cookieName string) *CookieTransport {
	return &CookieTransport{
		cookieMgr:  cookieMgr,
		cookieName: cookieName,
	}
}

// GetToken reads the token from the session cookie. Missing and
// present-but-empty cookies both report ErrNoToken.
func (t *CookieTransport) GetToken(r *http.Request) (string, error) {
	token, err := t.cookieMgr.Get(r, t.cookieName)
	if err != nil {
		return "", ErrNoToken
	}
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

// SetToken stores the token in the session cookie. The cookie lives
// exactly as long as the token so browsers drop both together.
func (t *CookieTransport) SetToken(w http.ResponseWriter, token string, ttl time.Duration) error {
	return t.cookieMgr.Set(w, t.cookieName, token, cookie.WithMaxAge(int(ttl.Seconds())))
}

// ClearToken expires the session cookie immediately.
func (t *CookieTransport) ClearToken(w http.ResponseWriter) error {
	t.cookieMgr.Delete(w, t.cookieName)
	return nil
}
