package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"talktag_server/lib"
	"talktag_server/structs"
	"testing"

	"github.com/MonkyMars/gecho"
)

func testMiddleware() *Middleware {
	logger := gecho.NewLogger(gecho.NewConfig(gecho.WithLogLevel(gecho.ParseLogLevel("error"))))
	return NewMiddleware(&structs.Config{}, logger, nil, nil)
}

func TestSecurityHeaders(t *testing.T) {
	mw := testMiddleware()
	handler := mw.SecurityHeaders()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", got)
	}

	csp := rec.Header().Get("Content-Security-Policy")
	// Inline QR images are data URIs; the listen page runs an inline script.
	if !strings.Contains(csp, "img-src 'self' data:") {
		t.Errorf("CSP does not allow data images: %q", csp)
	}
	if !strings.Contains(csp, "'unsafe-inline'") {
		t.Errorf("CSP does not allow inline scripts: %q", csp)
	}

	// The scanner page needs the camera.
	if pp := rec.Header().Get("Permissions-Policy"); !strings.Contains(pp, "camera=(self)") {
		t.Errorf("Permissions-Policy blocks the camera: %q", pp)
	}
}

func TestCSRFMiddleware(t *testing.T) {
	mw := testMiddleware()
	var called bool
	handler := mw.CSRFMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	// GET passes untouched.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/products", nil))
	if !called {
		t.Error("GET blocked by CSRF middleware")
	}

	// POST without a token is rejected.
	called = false
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("POST", "/products", nil))
	if called || rec.Code != http.StatusForbidden {
		t.Errorf("POST without token: called=%v status=%d", called, rec.Code)
	}

	// POST with a mismatched header is rejected.
	called = false
	rec = httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/products", nil)
	req.AddCookie(&http.Cookie{Name: lib.CSRFCookieName, Value: "token-a"})
	req.Header.Set("X-CSRF-Token", "token-b")
	handler.ServeHTTP(rec, req)
	if called || rec.Code != http.StatusForbidden {
		t.Errorf("POST with mismatched token: called=%v status=%d", called, rec.Code)
	}

	// POST with cookie and header agreeing passes.
	called = false
	rec = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/products", nil)
	req.AddCookie(&http.Cookie{Name: lib.CSRFCookieName, Value: "token-a"})
	req.Header.Set("X-CSRF-Token", "token-a")
	handler.ServeHTTP(rec, req)
	if !called {
		t.Errorf("POST with valid token blocked: status=%d", rec.Code)
	}
}

func TestGetClientIP(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "10.0.0.1:4242"
	if got := getClientIP(req); got != "10.0.0.1" {
		t.Errorf("RemoteAddr fallback = %q", got)
	}

	req.Header.Set("X-Real-IP", "203.0.113.9")
	if got := getClientIP(req); got != "203.0.113.9" {
		t.Errorf("X-Real-IP = %q", got)
	}

	req.Header.Set("X-Forwarded-For", "198.51.100.7, 10.0.0.1")
	if got := getClientIP(req); got != "198.51.100.7" {
		t.Errorf("X-Forwarded-For = %q", got)
	}
}
