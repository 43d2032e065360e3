package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shippingForm struct {
	City    string `json:"city" validate:"required"`
	ZipCode string `json:"zip_code" validate:"required,max=10"`
}

type signupForm struct {
	Email    string       `json:"email" validate:"required,email"`
	Quantity int          `json:"quantity" validate:"gte=1"`
	Shipping shippingForm `json:"shipping"`
}

func TestCustomValidator_Validate_Valid(t *testing.T) {
	v := New()

	err := v.Validate(&signupForm{
		Email:    "reader@example.com",
		Quantity: 1,
		Shipping: shippingForm{City: "Austin", ZipCode: "78701"},
	})

	require.NoError(t, err)
}

func TestCustomValidator_Validate_ReportsJSONNames(t *testing.T) {
	v := New()

	err := v.Validate(&signupForm{Email: "nope", Quantity: 0, Shipping: shippingForm{ZipCode: "12345678901"}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "email must be a valid email")
	assert.Contains(t, err.Error(), "quantity must be at least 1")
	assert.Contains(t, err.Error(), "shipping.city is required")
	assert.Contains(t, err.Error(), "shipping.zip_code must be at most 10")
}
