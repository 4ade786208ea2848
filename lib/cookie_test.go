package lib

import (
	"net/http/httptest"
	"testing"
	"time"
)

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *nameValue {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return &nameValue{c.Value, c.MaxAge, !c.Expires.IsZero()}
		}
	}
	t.Fatalf("cookie %s not set", name)
	return nil
}

type nameValue struct {
	value      string
	maxAge     int
	hasExpires bool
}

func TestSetCookieSessionScoped(t *testing.T) {
	rec := httptest.NewRecorder()
	SetCookie(AccessCookieName, "token", time.Time{}, rec)

	c := findCookie(t, rec, AccessCookieName)
	if c.value != "token" {
		t.Errorf("cookie value = %q", c.value)
	}
	// A zero expiry means a session cookie: no Expires, no Max-Age.
	if c.hasExpires || c.maxAge != 0 {
		t.Errorf("session cookie carries expiry: maxAge=%d hasExpires=%v", c.maxAge, c.hasExpires)
	}
}

func TestSetCookiePersistent(t *testing.T) {
	rec := httptest.NewRecorder()
	SetCookie(AccessCookieName, "token", time.Now().Add(time.Hour), rec)

	c := findCookie(t, rec, AccessCookieName)
	if !c.hasExpires || c.maxAge <= 0 {
		t.Errorf("remember-me cookie is not persistent: maxAge=%d hasExpires=%v", c.maxAge, c.hasExpires)
	}
}

func TestClearCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	ClearCookie(AccessCookieName, rec)

	c := findCookie(t, rec, AccessCookieName)
	if c.value != "" || c.maxAge != -1 {
		t.Errorf("clear cookie: value=%q maxAge=%d", c.value, c.maxAge)
	}
}
