package failure_test

import (
	"cargobike/shared/failure"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		message string
	}{
		{
			name:    "ForbiddenError",
			failure: failure.ForbiddenError,
			code:    http.StatusForbidden,
			message: "You don't have the required permissions",
		},
		{
			name:    "UnexpectedInputError",
			failure: failure.UnexpectedInputError,
			code:    http.StatusBadRequest,
			message: "unexpected input for the current step",
		},
		{
			name:    "NoActiveSessionError",
			failure: failure.NoActiveSessionError,
			code:    http.StatusConflict,
			message: "no reservation in progress",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}
			if tt.failure.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, tt.failure.Message)
			}
		})
	}
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "with error",
			input:    errors.New("validation failed"),
			expected: &failure.Failure{Code: http.StatusBadRequest, Message: "validation failed"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.BadRequest(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}

				return
			}

			f, ok := result.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", result)
			}

			expectedF := tt.expected.(*failure.Failure)
			if f.Code != expectedF.Code || f.Message != expectedF.Message {
				t.Errorf("expected %+v, got %+v", expectedF, f)
			}
		})
	}
}

func TestStorageUnavailable(t *testing.T) {
	if failure.StorageUnavailable(nil) != nil {
		t.Error("expected nil for nil error")
	}

	err := failure.StorageUnavailable(errors.New("disk full"))
	if failure.GetCode(err) != http.StatusServiceUnavailable {
		t.Errorf("expected code %d, got %d", http.StatusServiceUnavailable, failure.GetCode(err))
	}

	if !failure.IsStorageUnavailable(fmt.Errorf("wrapped: %w", err)) {
		t.Error("expected wrapped error to be recognised as storage unavailable")
	}
}

func TestKindPredicates(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		validation  bool
		malformed   bool
		unavailable bool
	}{
		{
			name:       "validation",
			err:        failure.Validation("missing fields: email"),
			validation: true,
		},
		{
			name:      "malformed record",
			err:       failure.MalformedRecord("bad row"),
			malformed: true,
		},
		{
			name:        "storage unavailable",
			err:         failure.StorageUnavailable(errors.New("read-only file system")),
			unavailable: true,
		},
		{
			name: "plain error",
			err:  errors.New("boom"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.IsValidation(tt.err); got != tt.validation {
				t.Errorf("IsValidation = %v, want %v", got, tt.validation)
			}
			if got := failure.IsMalformedRecord(tt.err); got != tt.malformed {
				t.Errorf("IsMalformedRecord = %v, want %v", got, tt.malformed)
			}
			if got := failure.IsStorageUnavailable(tt.err); got != tt.unavailable {
				t.Errorf("IsStorageUnavailable = %v, want %v", got, tt.unavailable)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: failure.NotFound("bike not found"), want: http.StatusNotFound},
		{name: "conflict", err: failure.Conflict("exists"), want: http.StatusConflict},
		{name: "unauthorized", err: failure.Unauthorized("nope"), want: http.StatusUnauthorized},
		{name: "forbidden", err: failure.Forbidden("nope"), want: http.StatusForbidden},
		{name: "internal", err: failure.InternalError(errors.New("x")), want: http.StatusInternalServerError},
		{name: "non failure", err: errors.New("x"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.want {
				t.Errorf("expected code %d, got %d", tt.want, got)
			}
		})
	}
}
