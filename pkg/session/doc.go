// Package session implements stateless session authentication for Go
// web applications on top of signed JWT tokens. There is no session
// store: each request carries its entire session inside an HMAC-signed
// token, and the middleware turns a valid token into a request-scoped
// Session that handlers read from the context.
//
// Tokens travel through a pluggable Transport. Cookies are the default
// and suit browser apps; a header transport reads tokens from a request
// header for APIs. Custom transports only need the three-method
// Transport interface.
//
// # Architecture
//
// A Manager owns the signing codec, the transport and the token
// lifetime. Its Middleware authenticates every inbound request, and the
// package-level Login / Logout helpers mint or clear tokens on the way
// out using the manager the middleware left in the request context.
//
//	┌────────┐   token    ┌───────────────────┐
//	│ Client │ ─────────► │     Transport     │
//	└────────┘            │ (cookie / header) │
//	     ▲                └───────────────────┘
//	     │                          │
//	     │ Set-Cookie               ▼
//	┌─────────────────────────────────────────┐
//	│                 Manager                 │
//	│  verify ► time window ► Session in ctx  │
//	└─────────────────────────────────────────┘
//
// No state survives the request. Logout tells the client to drop its
// token; the token itself stays valid until it expires, which is the
// usual trade-off of stateless sessions.
//
// # Usage
//
//	import "github.com/sessionkit/sessionkit/pkg/session"
//
//	manager, err := session.New("signing-secret",
//	    session.WithIssuer("myapp"),
//	    session.WithTTL(time.Hour),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	mux := http.NewServeMux()
//	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
//	    // after verifying credentials:
//	    session.Login(w, r, "user-42")
//	})
//	mux.HandleFunc("/me", func(w http.ResponseWriter, r *http.Request) {
//	    subject, ok := session.SubjectFromContext(r.Context())
//	    if !ok {
//	        http.Error(w, "Unauthorized", http.StatusUnauthorized)
//	        return
//	    }
//	    fmt.Fprintf(w, "Logged in as %s", subject)
//	})
//
//	http.ListenAndServe(":8080", manager.Middleware(mux))
//
// Header transport for APIs:
//
//	manager, err := session.New("signing-secret",
//	    session.WithTransport(session.NewHeaderTransport("Authorization")),
//	)
//
// With the header transport, Login returns the minted token and the
// handler ships it to the client itself, typically in a JSON body.
//
// # Configuration
//
// Construction knobs are Option functions (WithTTL, WithCookieName,
// WithSecureCookies, ...). Twelve-factor applications can populate the
// same settings from SESSION_* environment variables by loading a
// Config and passing it to NewFromConfig.
//
// # Error Handling
//
// Errors returned by the package:
//
//   - ErrNoToken    – the request carries no session token
//   - ErrInvalidTTL – the configured token lifetime is not positive
//
// Token verification failures never reach handlers: the middleware
// logs them and lets the request continue unauthenticated. Handlers
// decide what unauthenticated means for their route.
package session
