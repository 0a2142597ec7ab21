package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/teilomillet/flightinfo/errors"
	"go.uber.org/zap"
)

// Logging logs request and response details.
func Logging(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			log := logger.With(
				zap.String("request_id", errors.RequestIDFrom(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
			)
			log.Debug("Request started",
				zap.String("remote_addr", r.RemoteAddr),
				zap.String("user_agent", r.UserAgent()),
			)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			log.Info("Request completed",
				zap.Duration("duration", time.Since(start)),
				zap.Int("status", status),
				zap.Int("size", ww.BytesWritten()),
			)
		})
	}
}
