package errors

import (
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"
)

// Body is the error body of a response envelope.
type Body struct {
	Error string    `json:"error"`
	Type  ErrorType `json:"type"`
}

// BodyFor renders err as the caller-facing body: validation errors keep their
// message verbatim, everything else is prefixed as an internal server error.
func BodyFor(err *FunctionError) Body {
	if err.Kind() == ValidationError {
		return Body{Error: err.Message, Type: ValidationError}
	}
	return Body{Error: "Internal server error: " + err.Cause(), Type: ServerError}
}

// StatusFor returns the HTTP status matching the wire kind of err.
func StatusFor(err *FunctionError) int {
	if err.Kind() == ValidationError {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// Recovery wraps an http.Handler and turns panics into a server_error body.
func Recovery(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					requestID := w.Header().Get("X-Request-ID")
					logger.Error("panic recovered",
						zap.Any("error", rec),
						zap.ByteString("stacktrace", debug.Stack()),
						zap.String("request_id", requestID),
					)
					WriteJSON(w, http.StatusInternalServerError, Body{
						Error: "Internal server error: unexpected panic",
						Type:  ServerError,
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// LogError logs an error with its context.
func LogError(logger *zap.Logger, err error, requestID string) {
	if logger == nil {
		logger = DefaultLogger
	}
	if fe, ok := err.(*FunctionError); ok {
		fields := []zap.Field{
			zap.String("error_type", string(fe.Type)),
			zap.String("message", fe.Message),
			zap.Int("code", fe.Code),
			zap.String("request_id", requestID),
		}
		if fe.err != nil {
			fields = append(fields, zap.NamedError("cause", fe.err))
		}
		if len(fe.Details) > 0 {
			fields = append(fields, zap.Any("details", fe.Details))
		}
		logger.Error("Error generating flight information", fields...)
		return
	}
	logger.Error("unexpected error",
		zap.Error(err),
		zap.String("request_id", requestID),
	)
}
