package models

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want int
	}{
		{NewInvalidInputError("bad"), http.StatusBadRequest},
		{NewUnauthorizedError("who"), http.StatusUnauthorized},
		{NewForbiddenError("no"), http.StatusForbidden},
		{NewNotFoundError("User", 1), http.StatusNotFound},
		{NewConflictError("dup"), http.StatusConflict},
		{NewUnavailableError(errors.New("boom")), http.StatusServiceUnavailable},
		{errors.New("plain error"), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatus(tt.err), "error: %v", tt.err)
	}
}

func TestKindSurvivesWrapping(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("while toggling: %w", NewNotFoundError("Project", 7))
	assert.True(t, IsNotFound(err))
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestAppError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := NewUnavailableError(cause)
	assert.ErrorIs(t, err, cause)
}
