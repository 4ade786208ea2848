package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MonkyMars/gecho"
)

type rateLimit struct {
	limit  int
	window time.Duration
}

// Auth endpoints get a tighter budget than the rest of the API.
func (mw *Middleware) limitForPath(path string) rateLimit {
	if strings.HasPrefix(path, "/auth/") {
		return rateLimit{limit: mw.cfg.RateLimit.AuthLimit, window: mw.cfg.RateLimit.AuthWindow}
	}
	return rateLimit{limit: mw.cfg.RateLimit.GeneralLimit, window: mw.cfg.RateLimit.GeneralWindow}
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		if ip := strings.TrimSpace(parts[0]); ip != "" {
			return ip
		}
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (mw *Middleware) RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if mw.cacheService == nil {
			next.ServeHTTP(w, r)
			return
		}

		rl := mw.limitForPath(r.URL.Path)

		count, err := mw.cacheService.IncrementRateLimit(getClientIP(r), r.URL.Path, rl.window)
		if err != nil {
			// Fail open when the cache is unreachable.
			mw.logger.Warn("Rate limit check failed", gecho.Field("error", err))
			next.ServeHTTP(w, r)
			return
		}

		remaining := rl.limit - count
		if remaining < 0 {
			remaining = 0
		}
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if count > rl.limit {
			w.Header().Set("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
			gecho.TooManyRequests(w, gecho.WithMessage("Rate limit exceeded, slow down"), gecho.Send())
			return
		}

		next.ServeHTTP(w, r)
	})
}
