package session

// Session is the verified identity attached to the request context by
// Middleware. It exists only when the request carried a token that
// passed signature and validity checks, lives for that one request and
// is never persisted. Changing a session means issuing a new token
// with Login.
type Session struct {
	// Subject is the authenticated principal from the token's sub
	// claim. Empty for tokens minted with LoginClaimsOnly.
	Subject string

	// Claims holds the token's verified custom claims. Reserved
	// claims (sub, exp, ...) never appear here.
	Claims map[string]any
}

// IsAuthenticated reports whether a verified session exists. Nil-safe,
// so handlers can call it straight off the FromContext result.
func (s *Session) IsAuthenticated() bool {
	return s != nil
}

// Get retrieves a custom claim value.
func (s *Session) Get(key string) (any, bool) {
	if s == nil || s.Claims == nil {
		return nil, false
	}
	val, ok := s.Claims[key]
	return val, ok
}

// GetString retrieves a string custom claim.
func (s *Session) GetString(key string) (string, bool) {
	val, ok := s.Get(key)
	if !ok {
		return "", false
	}
	str, ok := val.(string)
	return str, ok
}

// GetInt retrieves an integer custom claim. Claims decoded from JSON
// arrive as float64, so numeric types are converted.
func (s *Session) GetInt(key string) (int, bool) {
	val, ok := s.Get(key)
	if !ok {
		return 0, false
	}
	switch v := val.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

// GetBool retrieves a boolean custom claim.
func (s *Session) GetBool(key string) (bool, bool) {
	val, ok := s.Get(key)
	if !ok {
		return false, false
	}
	b, ok := val.(bool)
	return b, ok
}
