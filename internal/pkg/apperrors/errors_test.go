package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestCustomErrorUnwrap(t *testing.T) {
	err := NewCustomError(ErrStudentNotFound, "student with roll number S999 not found")

	if !errors.Is(err, ErrStudentNotFound) {
		t.Error("wrapped error does not match its sentinel")
	}
	if err.Error() != "student with roll number S999 not found" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestCustomErrorThroughWrapping(t *testing.T) {
	err := fmt.Errorf("looking up student: %w", NewForbiddenError("not authorized"))

	if !errors.Is(err, ErrPermissionDenied) {
		t.Error("sentinel lost through a second wrap")
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"not found", NewNotFoundError("gone"), ErrResourceNotFound},
		{"forbidden", NewForbiddenError("no"), ErrPermissionDenied},
		{"validation", NewValidationError("bad"), ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("%v does not match its sentinel", tt.err)
			}
		})
	}
}
