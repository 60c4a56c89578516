// GO TESTING BASICS:
// 1. Test files MUST end in _test.go — Go's tooling auto-discovers them
// 2. Test functions MUST start with "Test" and take *testing.T as the only param
// 3. Same package as the code being tested (so we can access unexported stuff)
// 4. Run with: go test ./internal/apperror/ -v  (-v = verbose, shows each test name)
package apperror

import (
	"errors"
	"testing"
)

// TABLE-DRIVEN TESTS:
// This is Go's idiomatic pattern for testing multiple cases.
// Instead of writing separate test functions, we define a slice of test cases
// and loop over them. Benefits:
// - Adding a new test case = adding one struct to the slice
// - Every case gets a name (shows up in test output)
// - DRY — the assertion logic is written once

func TestErrorsIs(t *testing.T) {
	// Each test case checks that errors.Is() correctly identifies the error type
	tests := []struct {
		name      string // Descriptive name for test output
		err       error  // The error to test
		target    error  // What we expect it to match
		wantMatch bool   // Should errors.Is() return true?
	}{
		{
			name:      "NotFound wraps ErrNotFound",
			err:       NotFound("property", "abc123"),
			target:    ErrNotFound,
			wantMatch: true,
		},
		{
			name:      "ValidationFailed wraps ErrValidation",
			err:       ValidationFailed("title", "title is required"),
			target:    ErrValidation,
			wantMatch: true,
		},
		{
			name:      "InvalidID wraps ErrInvalidID",
			err:       InvalidID("not-an-xid"),
			target:    ErrInvalidID,
			wantMatch: true,
		},
		{
			name:      "StoreFailure wraps ErrStore",
			err:       StoreFailure("listing properties", errors.New("disk full")),
			target:    ErrStore,
			wantMatch: true,
		},
		{
			name:      "NotFound does NOT match ErrValidation",
			err:       NotFound("property", "abc123"),
			target:    ErrValidation,
			wantMatch: false,
		},
		{
			name:      "InvalidID does NOT match ErrNotFound",
			err:       InvalidID("???"),
			target:    ErrNotFound,
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.wantMatch {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", tt.err, tt.target, got, tt.wantMatch)
			}
		})
	}
}

func TestErrorsAs(t *testing.T) {
	// errors.As extracts the *AppError from a wrapped chain — the handler
	// layer relies on this to read the human-readable Message.
	wrapped := NotFound("property", "xyz")

	var appErr *AppError
	if !errors.As(wrapped, &appErr) {
		t.Fatal("errors.As should extract *AppError")
	}
	if appErr.Message != "property not found with id xyz" {
		t.Errorf("Message = %q, want %q", appErr.Message, "property not found with id xyz")
	}
}

func TestValidationFailed_CarriesField(t *testing.T) {
	err := ValidationFailed("price", "price must be zero or greater")
	if err.Field != "price" {
		t.Errorf("Field = %q, want %q", err.Field, "price")
	}
	if err.Error() != "price must be zero or greater" {
		t.Errorf("Error() = %q, want the message", err.Error())
	}
}
