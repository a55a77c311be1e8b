package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		code   ErrorCode
		status int
	}{
		{CodeBadRequest, http.StatusBadRequest},
		{CodeValidationFailed, http.StatusBadRequest},
		{CodeImportFailed, http.StatusBadRequest},
		{CodeNotFound, http.StatusNotFound},
		{CodeRecipeNotFound, http.StatusNotFound},
		{CodeCategoryNotFound, http.StatusNotFound},
		{CodeCategoryExists, http.StatusConflict},
		{CodeCategoryInUse, http.StatusConflict},
		{CodeServiceUnavailable, http.StatusServiceUnavailable},
		{CodeInternal, http.StatusInternalServerError},
		{CodeDatabaseError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := NewAppError(tt.code, "message", "")
			assert.Equal(t, tt.status, err.StatusCode())
		})
	}
}

func TestWrap(t *testing.T) {
	t.Run("NilError", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, "ignored"))
	})

	t.Run("AppErrorPassesThrough", func(t *testing.T) {
		original := NewRecipeNotFoundError("abc")
		wrapped := Wrap(original, "outer")
		assert.Same(t, original, wrapped)
	})

	t.Run("PlainErrorBecomesInternal", func(t *testing.T) {
		cause := fmt.Errorf("disk full")
		wrapped := Wrap(cause, "could not save")

		assert.Equal(t, CodeInternal, wrapped.Code)
		assert.ErrorIs(t, wrapped, cause)
	})
}

func TestErrorMessage(t *testing.T) {
	err := NewCategoryExistsError("Desserts")

	assert.Contains(t, err.Error(), "CATEGORY_EXISTS")
	assert.Contains(t, err.Error(), `"Desserts"`)
	assert.Equal(t, "Desserts", err.Metadata["name"])
}

func TestIsAndGetCode(t *testing.T) {
	err := NewCategoryInUseError("Mains", 2)

	assert.True(t, Is(err, CodeCategoryInUse))
	assert.False(t, Is(err, CodeCategoryExists))
	assert.Equal(t, CodeCategoryInUse, GetCode(err))
	assert.Equal(t, CodeInternal, GetCode(fmt.Errorf("plain")))
}

func TestToErrorResponse(t *testing.T) {
	err := NewRecipeNotFoundError("deadbeef")

	resp := ToErrorResponse(err, "req-123")

	require.Equal(t, CodeRecipeNotFound, resp.Error.Code)
	assert.Equal(t, "req-123", resp.Error.RequestID)
	assert.NotEmpty(t, resp.Error.Timestamp)
}
