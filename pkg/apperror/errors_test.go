package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetAppError(t *testing.T) {
	wrapped := fmt.Errorf("load invoice: %w", NewNotFoundError("Invoice"))
	got := GetAppError(wrapped)
	assert.Equal(t, http.StatusNotFound, got.Code)
	assert.Equal(t, "Invoice not found", got.Message)

	raw := GetAppError(errors.New("pq: relation does not exist"))
	assert.Equal(t, http.StatusInternalServerError, raw.Code)
	assert.Equal(t, "Internal server error", raw.Message)
}

func TestNewFieldError(t *testing.T) {
	err := NewFieldError("type", "must be one of Sales, Quantity, Price")
	assert.True(t, IsAppError(err))
	assert.Equal(t, http.StatusUnprocessableEntity, err.Code)
	assert.Equal(t, []FieldError{{Field: "type", Message: "must be one of Sales, Quantity, Price"}}, err.Errors)
}

func TestSentinelsSurviveWrapping(t *testing.T) {
	tests := []struct {
		err  *AppError
		code int
	}{
		{ErrInvoiceVoided, http.StatusConflict},
		{ErrPrinterUnavailable, http.StatusServiceUnavailable},
		{ErrInvalidCredentials, http.StatusUnauthorized},
		{ErrAccountDisabled, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.err.Message, func(t *testing.T) {
			wrapped := fmt.Errorf("void invoice INV-1: %w", tt.err)
			assert.True(t, errors.Is(wrapped, tt.err))
			assert.Same(t, tt.err, GetAppError(wrapped))
			assert.Equal(t, tt.code, GetAppError(wrapped).Code)
		})
	}
	assert.False(t, IsAppError(errors.New("plain")))
}
