package middleware

import (
	"net/http"

	apperrors "jumatrek/pkg/errors"
	httputil "jumatrek/pkg/http"
)

// MaxRequestSize caps request bodies at limit bytes. Declared oversize bodies
// are refused up front; undeclared ones fail when the handler reads past it.
func MaxRequestSize(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limit <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				httputil.WriteError(w, apperrors.RequestTooLarge(limit))
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
