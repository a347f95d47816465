package common

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	err := NewBadRequestError("invalid payload", errors.New("missing field"))
	assert.Equal(t, "invalid payload: missing field", err.Error())

	bare := NewInternalServerError("something broke")
	assert.Equal(t, "something broke", bare.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	err := NewNotFoundError("config not found", inner)

	assert.True(t, errors.Is(err, inner))
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"bad request", NewBadRequestError("bad", nil), http.StatusBadRequest},
		{"unprocessable", NewUnprocessableError("nope", nil), http.StatusUnprocessableEntity},
		{"not found", NewNotFoundError("missing", nil), http.StatusNotFound},
		{"wrapped app error", fmt.Errorf("outer: %w", NewBadRequestError("bad", nil)), http.StatusBadRequest},
		{"plain error", errors.New("unknown"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFromError(tt.err))
		})
	}
}
