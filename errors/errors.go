// Package errors provides the error kinds returned by the flight function and
// the helpers that turn them into response bodies and log entries.
//
// Every failure of an invocation is reported as a *FunctionError. Callers
// only ever see two kinds on the wire:
//
//   - validation_error: the caller sent bad arguments (HTTP 400)
//   - server_error: configuration, network or agent failures (HTTP 500)
//
// Internally a server error may carry a more precise subkind (config_error,
// agent_error) which is kept for logging.
//
// Basic usage:
//
//	err := errors.NewValidationError(requestID, "fromCity is required", nil)
//	errors.LogError(logger, err, requestID)
package errors

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// DefaultLogger is the logger used by package helpers when no logger is given.
// It can be replaced with SetLogger.
var DefaultLogger *zap.Logger

func init() {
	var err error
	DefaultLogger, err = zap.NewProduction()
	if err != nil {
		DefaultLogger = zap.NewNop()
	}
}

// SetLogger replaces DefaultLogger. A nil logger is ignored.
func SetLogger(logger *zap.Logger) {
	if logger != nil {
		DefaultLogger = logger
	}
}

// ErrorType categorizes a FunctionError.
type ErrorType string

const (
	// ValidationError represents missing or malformed invocation arguments
	ValidationError ErrorType = "validation_error"
	// ServerError represents any failure that is not the caller's fault
	ServerError ErrorType = "server_error"
	// ConfigError represents missing agent credentials or endpoint
	ConfigError ErrorType = "config_error"
	// AgentError represents a failed call to the completion service
	AgentError ErrorType = "agent_error"
)

// FunctionError is the error returned by a flight invocation. It keeps the
// underlying cause for logging while exposing a stable type to callers.
type FunctionError struct {
	// Type categorizes the error
	Type ErrorType `json:"type"`

	// Message is the human-readable description passed back to the caller
	Message string `json:"message"`

	// Code is the HTTP status code (not exposed in JSON)
	Code int `json:"-"`

	// RequestID links the error to a specific invocation
	RequestID string `json:"request_id,omitempty"`

	// Details contains additional error context
	Details map[string]interface{} `json:"details,omitempty"`

	err error
}

// Error combines type, message and the wrapped cause.
func (e *FunctionError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error.
func (e *FunctionError) Unwrap() error {
	return e.err
}

// Is matches on Type only, so errors.Is(err, &FunctionError{Type: ConfigError})
// works regardless of message.
func (e *FunctionError) Is(target error) bool {
	t, ok := target.(*FunctionError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// Kind reports the wire-level kind: ValidationError or ServerError.
func (e *FunctionError) Kind() ErrorType {
	if e.Type == ValidationError {
		return ValidationError
	}
	return ServerError
}

// Cause returns the text shown to callers for a server error: the wrapped
// error when there is one, otherwise the message.
func (e *FunctionError) Cause() string {
	if e.err != nil {
		return e.err.Error()
	}
	return e.Message
}

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		DefaultLogger.Error("failed to encode response", zap.Error(err))
	}
}
