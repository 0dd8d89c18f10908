package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"fosfenos/internal/storage"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantKind   Kind
		wantStatus int
	}{
		{"nil", nil, KindInternal, http.StatusInternalServerError},
		{"plain error", errors.New("boom"), KindInternal, http.StatusInternalServerError},
		{"wrapped not found", fmt.Errorf("repo: %w", storage.ErrNotFound), KindNotFound, http.StatusNotFound},
		{"user not found", storage.ErrUserNotFound, KindNotFound, http.StatusNotFound},
		{"unique violation", fmt.Errorf("x: %w", storage.ErrConflict), KindConflict, http.StatusConflict},
		{"invalid sort", storage.ErrInvalidSort, KindValidation, http.StatusBadRequest},
		{"file too large", storage.ErrFileTooLarge, KindValidation, http.StatusBadRequest},
		{"app error wins over cause", Validation("bad input", storage.ErrNotFound), KindValidation, http.StatusBadRequest},
		{"forbidden", fmt.Errorf("gate: %w", Forbidden("nope")), KindForbidden, http.StatusForbidden},
		{"unauthorized", Unauthorized("login"), KindUnauthorized, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind := KindOf(tt.err)
			assert.Equal(t, tt.wantKind, kind)
			assert.Equal(t, tt.wantStatus, kind.Status())
		})
	}
}

func TestErrorMessage(t *testing.T) {
	cause := errors.New("duplicate key")
	err := fmt.Errorf("svc: %w", Conflict("User already exists", cause))

	assert.Equal(t, "User already exists", MessageOf(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "not_found", NotFound("x").Kind.String())
	assert.Empty(t, MessageOf(cause))
}
