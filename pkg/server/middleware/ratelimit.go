package middleware

import (
	"net/http"

	"golang.org/x/time/rate"
)

// shared budget for the whole api, position updates arrive at 1hz per vehicle
var limiter = rate.NewLimiter(rate.Limit(50), 100)

// Limit rejects requests above the shared rate budget with a 429.
func Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
