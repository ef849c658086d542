package timeout

import (
	"context"
	"net/http"
	"time"
)

// Middleware bounds every request context. Handlers and repositories inherit
// the deadline through ctx; the response writer itself is not wrapped.
func Middleware(limit time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), limit)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
