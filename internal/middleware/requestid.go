package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

type ridKey struct{}

// RequestID tags every request so a preview and the rename that follows it
// can be tied together in the log. An inbound header is honored unless it
// is oversized.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rid := r.Header.Get(requestIDHeader)
			if rid == "" || len(rid) > 64 {
				rid = uuid.NewString()
			}
			w.Header().Set(requestIDHeader, rid)
			ctx := context.WithValue(r.Context(), ridKey{}, rid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetRequestID returns the request's id, or "" outside the middleware.
func GetRequestID(r *http.Request) string {
	if v, ok := r.Context().Value(ridKey{}).(string); ok {
		return v
	}
	return ""
}
