package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/windlassio/windlass/pkg/config"
	"github.com/windlassio/windlass/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "validation error",
			err:      services.NewValidationError("cascade_id", "required"),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "cascade not found",
			err:      config.ErrCascadeNotFound,
			wantCode: http.StatusNotFound,
		},
		{
			name:     "not found",
			err:      services.ErrNotFound,
			wantCode: http.StatusNotFound,
		},
		{
			name:     "already exists",
			err:      services.ErrAlreadyExists,
			wantCode: http.StatusConflict,
		},
		{
			name:     "invalid transition",
			err:      services.ErrInvalidTransition,
			wantCode: http.StatusConflict,
		},
		{
			name:     "unexpected error",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := mapServiceError(tt.err)
			assert.Equal(t, tt.wantCode, he.Code)
		})
	}
}
