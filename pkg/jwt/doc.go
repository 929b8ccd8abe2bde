// Package jwt implements the token codec for stateless sessions: signing
// a claim set into a compact JWT string and verifying such a string back
// into a claim set.
//
// The implementation is fixed to the HS256 (HMAC-SHA256) algorithm. The
// Service type wraps signing and verification around a single in-memory
// key. Claims mirrors the registered RFC 7519 fields used for sessions
// and carries arbitrary custom claims flattened into the same top-level
// JSON object.
//
// # Architecture
//
//   - Service – signs and verifies tokens (structure and signature only).
//   - Claims – registered plus custom claims, with ValidAt for the time
//     window, kept separate from Verify so signature checks need no clock.
//   - errors.go – sentinel error values returned by the package.
//
// # Usage
//
//	import "github.com/sessionkit/sessionkit/pkg/jwt"
//
//	svc, err := jwt.NewFromString("super-secret")
//	if err != nil {
//	    // handle error
//	}
//
//	now := time.Now()
//	token, err := svc.Sign(jwt.Claims{
//	    Subject:   "carl",
//	    NotBefore: now.Unix(),
//	    ExpiresAt: now.Add(24 * time.Hour).Unix(),
//	    Custom:    map[string]any{"admin": true},
//	})
//
//	claims, err := svc.Verify(token)
//	if err != nil {
//	    // structurally invalid or tampered token
//	}
//	if err := claims.ValidAt(time.Now()); err != nil {
//	    // outside the [nbf, exp] window
//	}
//
// # Error Handling
//
// Errors such as ErrInvalidSignature or ErrExpiredToken are sentinel
// variables and can be compared using errors.Is. Verify distinguishes
// structural problems (ErrMalformedToken) from cryptographic ones
// (ErrInvalidSignature, ErrUnexpectedSigningMethod).
//
// # Performance Considerations
//
// The package uses only Go standard library cryptography. Signing keys
// are kept in memory only and never logged. No reflection is used during
// normal operation.
package jwt
