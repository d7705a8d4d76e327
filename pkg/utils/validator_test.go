package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type topupForm struct {
	Amount float64 `json:"amount" validate:"gt=0"`
	Method string  `json:"payment_method" validate:"required,oneof=cash transfer"`
	Email  string  `form:"email" validate:"omitempty,email"`
}

func TestValidator_Messages(t *testing.T) {
	v := NewValidator()

	err := v.Validate(topupForm{Amount: 0, Method: "gold", Email: "nope"})
	require.Error(t, err)
	msg := ValidationMessage(err)
	assert.Contains(t, msg, "amount must be greater than 0")
	assert.Contains(t, msg, "payment_method must be one of [cash transfer]")
	assert.Contains(t, msg, "email must be a valid email")

	assert.NoError(t, v.Validate(topupForm{Amount: 10, Method: "cash"}))
}

func TestValidator_Required(t *testing.T) {
	err := NewValidator().Validate(topupForm{Amount: 1})
	assert.Equal(t, "payment_method is required", ValidationMessage(err))
}
