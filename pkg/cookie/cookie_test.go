package cookie_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sessionkit/sessionkit/pkg/cookie"
)

func TestManager_SetGet(t *testing.T) {
	t.Parallel()
	m := cookie.New()

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"simple", "test", "value"},
		{"empty value", "empty", ""},
		{"token shaped", "jwt", "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiJjYXJsIn0.c2ln"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := httptest.NewRecorder()
			r := &http.Request{Header: http.Header{}}

			err := m.Set(w, tt.key, tt.value)
			if err != nil {
				t.Fatalf("Set() error = %v", err)
			}

			r.Header.Set("Cookie", w.Header().Get("Set-Cookie"))

			got, err := m.Get(r, tt.key)
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}

			if got != tt.value {
				t.Errorf("Get() = %v, want %v", got, tt.value)
			}
		})
	}
}

func TestManager_GetMissing(t *testing.T) {
	t.Parallel()
	m := cookie.New()

	r := &http.Request{Header: http.Header{}}
	_, err := m.Get(r, "nonexistent")
	if !errors.Is(err, cookie.ErrCookieNotFound) {
		t.Errorf("Get() error = %v, want %v", err, cookie.ErrCookieNotFound)
	}
}

func TestManager_GetExactNameMatch(t *testing.T) {
	t.Parallel()
	m := cookie.New()

	r := &http.Request{Header: http.Header{}}
	r.AddCookie(&http.Cookie{Name: "JWT", Value: "upper"})
	r.AddCookie(&http.Cookie{Name: "jwt", Value: "lower"})

	got, err := m.Get(r, "jwt")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "lower" {
		t.Errorf("Get() = %v, want %v", got, "lower")
	}
}

func TestManager_Delete(t *testing.T) {
	t.Parallel()
	m := cookie.New()

	w := httptest.NewRecorder()

	m.Delete(w, "test")

	cookieStr := w.Header().Get("Set-Cookie")
	if cookieStr == "" {
		t.Error("Delete() did not set any cookie")
		return
	}

	// Go serializes a negative MaxAge as Max-Age=0 on the wire.
	if !strings.Contains(cookieStr, "Max-Age=0") {
		t.Errorf("Delete() did not set Max-Age=0, got: %s", cookieStr)
	}
	if !strings.HasPrefix(cookieStr, "test=;") && !strings.HasPrefix(cookieStr, "test=\"\";") {
		t.Errorf("Delete() did not clear the cookie value, got: %s", cookieStr)
	}

	deleted := w.Result().Cookies()[0]
	if deleted.Value != "" {
		t.Errorf("Delete() cookie value = %q, want empty", deleted.Value)
	}
	if deleted.MaxAge != -1 {
		t.Errorf("Delete() cookie MaxAge = %d, want -1", deleted.MaxAge)
	}
}

func TestManager_Options(t *testing.T) {
	t.Parallel()
	m := cookie.New(
		cookie.WithDomain("example.com"),
		cookie.WithPath("/app"),
		cookie.WithSecure(true),
		cookie.WithHTTPOnly(false),
		cookie.WithSameSite(http.SameSiteStrictMode),
	)

	w := httptest.NewRecorder()

	err := m.Set(w, "test", "value", cookie.WithMaxAge(3600))
	if err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	cookieStr := w.Header().Get("Set-Cookie")

	checks := []string{
		"Domain=example.com",
		"Path=/app",
		"Max-Age=3600",
		"Secure",
		"SameSite=Strict",
	}

	for _, check := range checks {
		if !strings.Contains(cookieStr, check) {
			t.Errorf("Cookie missing %s, got: %s", check, cookieStr)
		}
	}

	if strings.Contains(cookieStr, "HttpOnly") {
		t.Error("Cookie should not have HttpOnly")
	}
}

func TestManager_PerCallOptionsDoNotStick(t *testing.T) {
	t.Parallel()
	m := cookie.New()

	w1 := httptest.NewRecorder()
	if err := m.Set(w1, "first", "1", cookie.WithMaxAge(60)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	w2 := httptest.NewRecorder()
	if err := m.Set(w2, "second", "2"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if strings.Contains(w2.Header().Get("Set-Cookie"), "Max-Age") {
		t.Errorf("per-call option leaked into manager defaults: %s", w2.Header().Get("Set-Cookie"))
	}
}

func TestManager_DeleteWithCustomOptions(t *testing.T) {
	t.Parallel()
	m := cookie.New(
		cookie.WithDomain("example.com"),
		cookie.WithPath("/app"),
		cookie.WithSecure(true),
		cookie.WithSameSite(http.SameSiteStrictMode),
	)

	w := httptest.NewRecorder()
	m.Delete(w, "test")

	cookieStr := w.Header().Get("Set-Cookie")

	checks := []string{
		"Domain=example.com",
		"Path=/app",
		"Secure",
		"SameSite=Strict",
		"HttpOnly",
	}

	for _, check := range checks {
		if !strings.Contains(cookieStr, check) {
			t.Errorf("Delete() cookie missing %s, got: %s", check, cookieStr)
		}
	}
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	cfg := cookie.Config{
		Path:     "/api",
		Domain:   "example.com",
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}

	m := cookie.NewFromConfig(cfg)

	w := httptest.NewRecorder()
	if err := m.Set(w, "test", "value"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	cookieStr := w.Header().Get("Set-Cookie")
	for _, check := range []string{"Path=/api", "Domain=example.com", "Secure", "HttpOnly", "SameSite=Strict"} {
		if !strings.Contains(cookieStr, check) {
			t.Errorf("Cookie missing %s, got: %s", check, cookieStr)
		}
	}
}
