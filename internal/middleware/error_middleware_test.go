package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/akshat/marksheet/internal/pkg/apperrors"
)

func TestHandleAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{"permission denied", apperrors.NewForbiddenError("not authorized"), http.StatusForbidden},
		{"student not found", apperrors.ErrStudentNotFound, http.StatusNotFound},
		{"marks not found", apperrors.ErrMarksNotFound, http.StatusNotFound},
		{"wrapped not found", apperrors.NewCustomError(apperrors.ErrStudentNotFound, "student with roll number S999 not found"), http.StatusNotFound},
		{"invalid identifier", apperrors.NewCustomError(apperrors.ErrInvalidIdentifier, "invalid student id"), http.StatusBadRequest},
		{"no changes", apperrors.ErrNoChanges, http.StatusBadRequest},
		{"validation failed", apperrors.NewValidationError("bad input"), http.StatusBadRequest},
		{"unrecognized error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tt.err)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d, body %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}
