// Package middleware provides the HTTP middleware wrapped around the flight
// web action.
package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/teilomillet/flightinfo/errors"
)

// RequestIDHeader carries the invocation request ID.
const RequestIDHeader = "X-Request-ID"

// RequestID stores a request ID in the context and echoes it in the response
// header. A well-formed incoming X-Request-ID is reused, otherwise a new UUID
// is generated.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.New().String()
		}

		w.Header().Set(RequestIDHeader, requestID)

		ctx := errors.WithRequestID(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
