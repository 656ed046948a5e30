package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"catalogapi/internal/adapter/api"
)

func TestValidationMessages(t *testing.T) {
	v := api.NewValidator()

	err := v.Validate(&createProductRequest{Name: " "})

	var details []string
	if assert.Error(t, err) {
		details = validationMessagesFor(t, err)
	}
	assert.ElementsMatch(t, []string{
		"name must be a non-empty string",
		"price is required",
		"quantity is required",
	}, details)
}

func TestValidationMessages_UpdateSkipsAbsentFields(t *testing.T) {
	v := api.NewValidator()

	assert.NoError(t, v.Validate(&updateProductRequest{}))

	quantity := -1
	err := v.Validate(&updateProductRequest{Quantity: &quantity})
	assert.Equal(t, []string{"quantity must be a non-negative integer"}, validationMessagesFor(t, err))
}

func TestBindErrorDetail(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"price type", echo.NewHTTPError(http.StatusBadRequest, "Unmarshal type error: expected=float64, got=string, field=price, offset=10"), "price must be a non-negative number"},
		{"quantity type", echo.NewHTTPError(http.StatusBadRequest, "Unmarshal type error: expected=int, got=number 1.5, field=quantity, offset=30"), "quantity must be a non-negative integer"},
		{"syntax", echo.NewHTTPError(http.StatusBadRequest, "unexpected EOF"), "request body must be valid JSON"},
		{"other", errors.New("boom"), "request body must be valid JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bindErrorDetail(tt.err))
		})
	}
}

func validationMessagesFor(t *testing.T, err error) []string {
	t.Helper()

	var validationErrs validator.ValidationErrors
	if !assert.True(t, errors.As(err, &validationErrs)) {
		return nil
	}
	return validationMessages(validationErrs)
}
