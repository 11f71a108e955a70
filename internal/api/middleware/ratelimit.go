package middleware

import (
	"net/http"

	"github.com/liveeditor/live-editor/internal/ratelimiter"
)

// RateLimit rejects requests with 429 once lim runs dry.
func RateLimit(lim *ratelimiter.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !lim.Allow() {
				w.Header().Set("Retry-After", "1")
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
