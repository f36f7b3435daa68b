package api

import (
	"context"
	"net/http"
	"time"
)

// TimeoutMiddleware caps the total request lifetime. Mux-level, so it covers
// every route registered on the subrouter.
func TimeoutMiddleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
