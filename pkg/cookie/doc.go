// Package cookie provides a small HTTP cookie manager for Go applications.
//
// It wraps Go's net/http `http.Cookie` type with helpers for writing,
// reading and deleting cookies under a consistent set of default
// attributes. Session tokens written through this package are already
// integrity-protected (they are signed JWTs), so the manager applies no
// cryptography of its own.
//
// # Overview
//
// The `Manager` type is the entry point. It is initialised with a set of
// default cookie `Options` (Path=/, HttpOnly, SameSite=Lax unless
// overridden) that apply to every cookie it writes.
//
//   - Set(), Get() – write and read a cookie by name
//   - Delete() – emit a Set-Cookie with empty value and Max-Age=0 so the
//     client drops the cookie immediately
//
// # Usage
//
//	import "github.com/sessionkit/sessionkit/pkg/cookie"
//
//	man := cookie.New(cookie.WithSecure(true))
//
//	http.HandleFunc("/set", func(w http.ResponseWriter, r *http.Request) {
//	    _ = man.Set(w, "session", token)
//	})
//
//	http.HandleFunc("/get", func(w http.ResponseWriter, r *http.Request) {
//	    token, err := man.Get(r, "session")
//	    _ = token
//	    _ = err
//	})
//
// # Configuration
//
// The `Config` struct allows the manager to be constructed from
// environment variables via github.com/caarlos0/env. Only non-zero
// fields are applied.
//
//	cfg := cookie.DefaultConfig()
//	_ = env.Parse(&cfg)
//	man := cookie.NewFromConfig(cfg)
//
// # Error Handling
//
// `ErrCookieNotFound` is returned when the named cookie is absent from a
// request and can be compared with `errors.Is`.
package cookie
