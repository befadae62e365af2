package validator_test

import (
	"cargobike/shared/failure"
	"cargobike/shared/validator"
	"net/http"
	"strings"
	"testing"
)

type testRequest struct {
	Name  string `json:"name"  validate:"required,notblank,max=20"`
	Size  string `json:"size"  validate:"oneof=S M L XL"`
	Count int    `json:"count" validate:"gte=0,lte=10"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *testRequest
		expectError bool
		message     string
	}{
		{
			name:        "valid struct",
			data:        &testRequest{Name: "Long John", Size: "L", Count: 2},
			expectError: false,
		},
		{
			name:        "missing required field",
			data:        &testRequest{Size: "L"},
			expectError: true,
			message:     "name is required",
		},
		{
			name:        "blank name",
			data:        &testRequest{Name: "   ", Size: "L"},
			expectError: true,
			message:     "name must not be blank",
		},
		{
			name:        "invalid size",
			data:        &testRequest{Name: "Bakfiets", Size: "XXL"},
			expectError: true,
			message:     "size must be one of S M L XL",
		},
		{
			name:        "count out of range",
			data:        &testRequest{Name: "Bakfiets", Size: "M", Count: 11},
			expectError: true,
			message:     "count must be less than or equal to 10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if !tt.expectError {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}

				return
			}

			if err == nil {
				t.Fatal("expected error, got nil")
			}

			if failure.GetCode(err) != http.StatusBadRequest {
				t.Errorf("expected code %d, got %d", http.StatusBadRequest, failure.GetCode(err))
			}

			if err.Error() != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, err.Error())
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{
			name:        "valid body",
			body:        `{"name":"Bakfiets","size":"M","count":1}`,
			expectError: false,
		},
		{
			name:        "malformed json",
			body:        `{"name":`,
			expectError: true,
		},
		{
			name:        "unknown field",
			body:        `{"name":"Bakfiets","size":"M","colour":"red"}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req testRequest

			err := validator.Validate(strings.NewReader(tt.body), &req)
			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("", "required"); err == nil {
		t.Error("expected error for empty required var")
	}

	if err := validator.ValidateVar(int64(3), "gte=0"); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

type sizedRequest struct {
	Size string `json:"size" validate:"required,cargo_size"`
}

func TestRegister(t *testing.T) {
	validator.Register("cargo_size", "{field} must be S, M or L", func(value string) bool {
		return value == "S" || value == "M" || value == "L"
	})

	if err := validator.ValidateStruct(&sizedRequest{Size: "M"}); err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	err := validator.ValidateStruct(&sizedRequest{Size: "XL"})
	if err == nil {
		t.Fatal("expected error for unknown size")
	}

	if err.Error() != "size must be S, M or L" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
