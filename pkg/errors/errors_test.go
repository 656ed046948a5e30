package errors

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundWrapsCause(t *testing.T) {
	err := NotFound("Product", sql.ErrNoRows)

	assert.Equal(t, "Product not found", err.Message)
	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.True(t, errors.Is(err, sql.ErrNoRows))
	assert.True(t, Is(err, "NOT_FOUND"))
}

func TestIsLooksThroughWrapping(t *testing.T) {
	err := fmt.Errorf("listing: %w", Internal("Failed to list products", errors.New("disk I/O error")))

	assert.True(t, Is(err, "INTERNAL_ERROR"))
	assert.False(t, Is(err, "NOT_FOUND"))
	assert.False(t, Is(errors.New("plain"), "INTERNAL_ERROR"))
}

func TestValidationDetails(t *testing.T) {
	err := Validation("name is required", "price must be at least 0")

	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "Validation failed", err.Message)
	assert.Len(t, err.Details, 2)
	assert.Equal(t, "VALIDATION_ERROR: Validation failed", err.Error())
}
