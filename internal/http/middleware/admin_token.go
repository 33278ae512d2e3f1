package middleware

import (
	"crypto/subtle"
	"net/http"
)

// AdminToken guards back-office endpoints with a shared token carried in the
// X-Admin-Token header. With no token configured the endpoints stay closed.
func AdminToken(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				http.Error(w, "admin access disabled", http.StatusUnauthorized)
				return
			}
			got := r.Header.Get("X-Admin-Token")
			if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				http.Error(w, "invalid admin token", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
