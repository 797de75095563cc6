// Package types - Discount and tax policies
package types

import "github.com/shopspring/decimal"

// DiscountMode selects how a discount value is interpreted
type DiscountMode string

const (
	// DiscountFixedAmount treats the value as a flat currency amount
	DiscountFixedAmount DiscountMode = "fixed_amount"

	// DiscountPercentage treats the value as a percentage of the subtotal
	DiscountPercentage DiscountMode = "percentage"
)

// String returns the string representation
func (m DiscountMode) String() string {
	return string(m)
}

// Valid reports whether the mode is a known one
func (m DiscountMode) Valid() bool {
	return m == DiscountFixedAmount || m == DiscountPercentage
}

// DiscountPolicy is the discount applied to an order subtotal
type DiscountPolicy struct {
	// Mode selects fixed amount vs percentage
	Mode DiscountMode `json:"mode"`

	// Value is a currency amount (fixed) or 0-100 (percentage)
	Value decimal.Decimal `json:"value"`
}

// NoDiscount returns a zero fixed-amount discount
func NoDiscount() DiscountPolicy {
	return DiscountPolicy{Mode: DiscountFixedAmount, Value: decimal.Zero}
}

// TaxPolicy is the tax applied after the discount
type TaxPolicy struct {
	// RatePercent is the tax rate as a percentage, >= 0
	RatePercent decimal.Decimal `json:"rate_percent"`
}

// Totals is the computed pricing breakdown for an order. Values are
// unrounded; display rounding belongs to the presentation boundary.
type Totals struct {
	// Subtotal is the sum of all line totals
	Subtotal decimal.Decimal `json:"subtotal"`

	// DiscountAmount is the deduction derived from the discount policy
	DiscountAmount decimal.Decimal `json:"discount_amount"`

	// AfterDiscount is subtotal minus discount, clamped at zero
	AfterDiscount decimal.Decimal `json:"after_discount"`

	// TaxAmount is the tax on the discounted amount
	TaxAmount decimal.Decimal `json:"tax_amount"`

	// Total is the grand total including tax
	Total decimal.Decimal `json:"total"`
}
