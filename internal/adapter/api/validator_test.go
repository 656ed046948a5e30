package api

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string   `json:"name" validate:"required,notblank"`
	Price *float64 `json:"price" validate:"required,gte=0"`
}

func TestValidatorUsesJSONNames(t *testing.T) {
	err := NewValidator().Validate(&sample{Name: "  "})
	require.Error(t, err)

	var validationErrs validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))

	fields := map[string]string{}
	for _, fe := range validationErrs {
		fields[fe.Field()] = fe.Tag()
	}
	assert.Equal(t, map[string]string{"name": "notblank", "price": "required"}, fields)
}

func TestValidatorAcceptsZeroPrice(t *testing.T) {
	zero := 0.0
	assert.NoError(t, NewValidator().Validate(&sample{Name: "Widget", Price: &zero}))
}
