package middleware

import "net/http"

// NewMaxBodySizeHandler returns a middleware that limits incoming request
// bodies to limit bytes. Requests that declare a larger Content-Length are
// rejected with 413 up front; bodies without a declared length are wrapped
// in http.MaxBytesReader, so a handler reading past the limit gets an error
// and the connection is closed.
func NewMaxBodySizeHandler(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
