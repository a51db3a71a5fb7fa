package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/greenroomlab/greenroom/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"validation", services.NewValidationError("target", "required"), http.StatusBadRequest, "invalid_input"},
		{"not found", services.ErrNotFound, http.StatusNotFound, "not_found"},
		{"auth required", services.ErrAuthRequired, http.StatusUnauthorized, "authentication_required"},
		{"session blocked", services.ErrSessionBlocked, http.StatusConflict, "session_blocked"},
		{"session ended", services.ErrSessionEnded, http.StatusBadRequest, "session_ended"},
		{"forbidden", services.ErrForbidden, http.StatusForbidden, "not_a_member"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := mapServiceError(tt.err)
			assert.Equal(t, tt.wantCode, httpErr.Code)
			body, ok := httpErr.Message.(map[string]string)
			assert.True(t, ok)
			assert.Equal(t, tt.wantBody, body["error"])
		})
	}

	t.Run("wrapped errors unwrap", func(t *testing.T) {
		wrapped := errors.Join(errors.New("context"), services.ErrNotFound)
		assert.Equal(t, http.StatusNotFound, mapServiceError(wrapped).Code)
	})
}
