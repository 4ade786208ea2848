package lib

import (
	"net/http"
	"talktag_server/config"
	"time"
)

// Cookie names used by the auth flow.
const (
	AccessCookieName = "tt_access"
	CSRFCookieName   = "tt_csrf"
)

func cookieAttrs() (domain string, secure bool, sameSite http.SameSite) {
	sameSite = http.SameSiteLaxMode
	if config.IsProduction() {
		// Required for cross-subdomain cookies (www <-> api)
		sameSite = http.SameSiteNoneMode
		secure = true
		domain = config.GetConfig().Auth.CookieDomain
	}
	return domain, secure, sameSite
}

// SetCookie sets a secure, HttpOnly cookie for authentication usage. A zero
// expiry produces a session cookie, which is how logins without "remember me"
// are scoped to the browser session.
func SetCookie(key, val string, expiry time.Time, w http.ResponseWriter) {
	domain, secure, sameSite := cookieAttrs()

	cookie := &http.Cookie{
		Name:     key,
		Value:    val,
		Path:     "/",
		Domain:   domain,
		Secure:   secure,
		SameSite: sameSite,
		HttpOnly: true,
	}
	if !expiry.IsZero() {
		cookie.Expires = expiry
		cookie.MaxAge = int(time.Until(expiry).Seconds())
	}

	http.SetCookie(w, cookie)
}

func GetCookieValue(key string, r *http.Request) (string, error) {
	cookie, err := r.Cookie(key)
	if err != nil {
		return "", err
	}
	return cookie.Value, nil
}

// ClearCookie removes the cookie from the browser
func ClearCookie(key string, w http.ResponseWriter) {
	domain, secure, sameSite := cookieAttrs()

	cookie := &http.Cookie{
		Name:     key,
		Value:    "",
		Path:     "/",
		Domain:   domain,
		Expires:  time.Now().Add(-time.Hour),
		MaxAge:   -1,
		Secure:   secure,
		SameSite: sameSite,
		HttpOnly: true,
	}

	http.SetCookie(w, cookie)
}

// SetCSRFCookie sets a CSRF token cookie that must be readable by JavaScript
func SetCSRFCookie(val string, expiry time.Time, w http.ResponseWriter) {
	domain, secure, sameSite := cookieAttrs()

	cookie := &http.Cookie{
		Name:     CSRFCookieName,
		Value:    val,
		Expires:  expiry,
		MaxAge:   int(time.Until(expiry).Seconds()),
		Path:     "/",
		Domain:   domain,
		Secure:   secure,
		SameSite: sameSite,
		HttpOnly: false, // Must be readable by JS
	}

	http.SetCookie(w, cookie)
}
