package transport

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const requestIDHeader = "X-Request-ID"

// RequestIDMiddleware tags every request with an id, keeping the caller's
// one when provided.
func RequestIDMiddleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(requestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(requestIDHeader, id)
			next.ServeHTTP(w, r)
		})
	}
}
