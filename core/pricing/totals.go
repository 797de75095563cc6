// Package pricing - Order totals computation
// ComputeTotals is a pure function over line items and policies. It holds
// no state and the same inputs always produce the same breakdown, so
// callers can recompute after every mutation without side effects.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/VWIP/price-checker/core/types"
	"github.com/VWIP/price-checker/internal/errors"
)

var hundred = decimal.NewFromInt(100)

// ValidateDiscount rejects malformed discount policies before any
// computation happens.
func ValidateDiscount(p types.DiscountPolicy) error {
	if !p.Mode.Valid() {
		return errors.Newf(errors.TypeInvalidArgument, "unknown discount mode %q", p.Mode)
	}
	if p.Value.IsNegative() {
		return errors.InvalidArgument("discount value must not be negative")
	}
	if p.Mode == types.DiscountPercentage && p.Value.GreaterThan(hundred) {
		return errors.InvalidArgument("percentage discount must not exceed 100")
	}
	return nil
}

// ValidateTax rejects negative tax rates.
func ValidateTax(p types.TaxPolicy) error {
	if p.RatePercent.IsNegative() {
		return errors.InvalidArgument("tax rate must not be negative")
	}
	return nil
}

// ComputeTotals computes the pricing breakdown for a set of line items.
//
// The order of operations is fixed: subtotal, discount amount, discounted
// subtotal clamped at zero, tax on the discounted amount, grand total.
// Results are unrounded; display rounding is a formatter concern.
func ComputeTotals(items []types.LineItem, discount types.DiscountPolicy, tax types.TaxPolicy) (types.Totals, error) {
	if err := ValidateDiscount(discount); err != nil {
		return types.Totals{}, err
	}
	if err := ValidateTax(tax); err != nil {
		return types.Totals{}, err
	}

	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal())
	}

	var discountAmount decimal.Decimal
	switch discount.Mode {
	case types.DiscountPercentage:
		discountAmount = subtotal.Mul(discount.Value.Div(hundred))
	default:
		// Fixed amount is flat, independent of the subtotal.
		discountAmount = discount.Value
	}

	afterDiscount := subtotal.Sub(discountAmount)
	if afterDiscount.IsNegative() {
		afterDiscount = decimal.Zero
	}

	taxAmount := afterDiscount.Mul(tax.RatePercent.Div(hundred))

	return types.Totals{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		AfterDiscount:  afterDiscount,
		TaxAmount:      taxAmount,
		Total:          afterDiscount.Add(taxAmount),
	}, nil
}
