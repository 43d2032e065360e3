// Package pricing projects a cart snapshot onto catalog prices.
// Every priced view and the checkout total go through Project, so shipping and tax rules live only here.
package pricing

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	// FreeShippingThreshold is the subtotal above which shipping is free.
	FreeShippingThreshold = "5000"
	// FlatShippingFee is charged when the subtotal does not exceed FreeShippingThreshold.
	FlatShippingFee = "499"
	// TaxRate is the flat sales tax applied to the subtotal.
	TaxRate = "0.08"
)

// Policy holds the shipping and tax parameters used by Project.
type Policy struct {
	FreeShippingThreshold decimal.Decimal
	FlatShippingFee       decimal.Decimal
	TaxRate               decimal.Decimal
}

// DefaultPolicy returns the policy built from the package constants.
func DefaultPolicy() Policy {
	return Policy{
		FreeShippingThreshold: decimal.RequireFromString(FreeShippingThreshold),
		FlatShippingFee:       decimal.RequireFromString(FlatShippingFee),
		TaxRate:               decimal.RequireFromString(TaxRate),
	}
}

// NewPolicy parses overrides; empty strings keep the defaults.
func NewPolicy(freeShippingThreshold, flatShippingFee, taxRate string) (Policy, error) {
	policy := DefaultPolicy()

	overrides := []struct {
		name  string
		raw   string
		field *decimal.Decimal
	}{
		{"freeShippingThreshold", freeShippingThreshold, &policy.FreeShippingThreshold},
		{"flatShippingFee", flatShippingFee, &policy.FlatShippingFee},
		{"taxRate", taxRate, &policy.TaxRate},
	}

	for _, o := range overrides {
		if o.raw == "" {
			continue
		}

		value, err := decimal.NewFromString(o.raw)
		if err != nil {
			return Policy{}, errors.Wrapf(err, "invalid pricing %s %q", o.name, o.raw)
		}
		if value.IsNegative() {
			return Policy{}, errors.Errorf("pricing %s must not be negative, got %s", o.name, o.raw)
		}
		*o.field = value
	}

	if policy.TaxRate.GreaterThan(decimal.NewFromInt(1)) {
		return Policy{}, errors.Errorf("pricing taxRate must be a fraction, got %s", policy.TaxRate)
	}

	return policy, nil
}

// Shipping returns the shipping charge for subtotal.
func (p Policy) Shipping(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThan(p.FreeShippingThreshold) {
		return decimal.Zero
	}

	return p.FlatShippingFee
}

// Tax returns the tax on subtotal rounded to cents.
func (p Policy) Tax(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(p.TaxRate).Round(2)
}
