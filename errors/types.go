package errors

import (
	"errors"
	"net/http"
)

// NewError creates a FunctionError with full control over its fields. Prefer
// the specialized constructors below.
func NewError(errType ErrorType, message string, code int, requestID string, details map[string]interface{}, err error) *FunctionError {
	return &FunctionError{
		Type:      errType,
		Message:   message,
		Code:      code,
		RequestID: requestID,
		Details:   details,
		err:       err,
	}
}

// NewValidationError creates an error for bad invocation arguments, such as
// a missing required field. The message is passed back to the caller as is.
//
// Example:
//
//	err := NewValidationError("req_123", "fromCity, toCity, and departureDate are required parameters", map[string]interface{}{
//	    "missing": []string{"toCity"},
//	})
func NewValidationError(requestID, message string, details map[string]interface{}) *FunctionError {
	return &FunctionError{
		Type:      ValidationError,
		Message:   message,
		Code:      http.StatusBadRequest,
		RequestID: requestID,
		Details:   details,
	}
}

// NewConfigError creates an error for missing or unusable agent
// configuration. It is reported to callers as a server error.
func NewConfigError(requestID, message string) *FunctionError {
	return &FunctionError{
		Type:      ConfigError,
		Message:   message,
		Code:      http.StatusInternalServerError,
		RequestID: requestID,
	}
}

// NewAgentError wraps a failed completion call.
func NewAgentError(requestID string, err error) *FunctionError {
	return &FunctionError{
		Type:      AgentError,
		Message:   "completion request failed",
		Code:      http.StatusInternalServerError,
		RequestID: requestID,
		err:       err,
	}
}

// NewServerError wraps any other unexpected failure.
func NewServerError(requestID string, err error) *FunctionError {
	message := "An unexpected error occurred"
	if err != nil {
		message = err.Error()
	}
	return &FunctionError{
		Type:      ServerError,
		Message:   message,
		Code:      http.StatusInternalServerError,
		RequestID: requestID,
		err:       err,
	}
}

// As is a wrapper around errors.As.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// From converts any error into a FunctionError, wrapping non-function errors
// as server errors.
func From(requestID string, err error) *FunctionError {
	if err == nil {
		return nil
	}
	var fe *FunctionError
	if errors.As(err, &fe) {
		return fe
	}
	return NewServerError(requestID, err)
}
