package errors

import (
	"errors"
	"testing"
)

func TestFunctionError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *FunctionError
		want string
	}{
		{
			name: "basic error without wrapped error",
			err: &FunctionError{
				Type:    ValidationError,
				Message: "invalid input",
			},
			want: "validation_error: invalid input",
		},
		{
			name: "error with wrapped error",
			err: &FunctionError{
				Type:    AgentError,
				Message: "completion request failed",
				err:     errors.New("connection refused"),
			},
			want: "agent_error: completion request failed: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("FunctionError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFunctionError_Is(t *testing.T) {
	err1 := &FunctionError{Type: ConfigError, Message: "test1"}
	err2 := &FunctionError{Type: ConfigError, Message: "test2"}
	err3 := &FunctionError{Type: ValidationError, Message: "test3"}

	if !errors.Is(err1, err2) {
		t.Error("Expected errors.Is(err1, err2) to be true for same error type")
	}
	if errors.Is(err1, err3) {
		t.Error("Expected errors.Is(err1, err3) to be false for different error types")
	}
}

func TestFunctionError_Unwrap(t *testing.T) {
	inner := errors.New("inner error")
	err := NewAgentError("req", inner)

	if unwrapped := err.Unwrap(); unwrapped != inner {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, inner)
	}
	if !errors.Is(err, inner) {
		t.Error("expected errors.Is to find the wrapped error")
	}
}

func TestFunctionError_Kind(t *testing.T) {
	tests := []struct {
		errType ErrorType
		want    ErrorType
	}{
		{ValidationError, ValidationError},
		{ServerError, ServerError},
		{ConfigError, ServerError},
		{AgentError, ServerError},
	}
	for _, tt := range tests {
		t.Run(string(tt.errType), func(t *testing.T) {
			err := &FunctionError{Type: tt.errType}
			if got := err.Kind(); got != tt.want {
				t.Errorf("Kind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFrom(t *testing.T) {
	if From("req", nil) != nil {
		t.Fatal("From(nil) should be nil")
	}

	validation := NewValidationError("req", "bad", nil)
	if got := From("req", validation); got != validation {
		t.Errorf("From() should return function errors unchanged")
	}

	plain := errors.New("boom")
	got := From("req", plain)
	if got.Type != ServerError {
		t.Errorf("From() type = %v, want %v", got.Type, ServerError)
	}
	if got.Cause() != "boom" {
		t.Errorf("Cause() = %q, want %q", got.Cause(), "boom")
	}
}
