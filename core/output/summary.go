// Package output provides order summary formatting.
// Formatters are the only place where monetary values get rounded; the
// core hands them unrounded decimals.
package output

import (
	"io"

	"github.com/VWIP/price-checker/core/pricing"
	"github.com/VWIP/price-checker/core/types"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable terminal table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render writes the order summary
	Render(w io.Writer, summary *OrderSummary) error
}

// OrderSummary is the complete view of an order: its line items, the
// applied policies and the computed breakdown.
type OrderSummary struct {
	// Items are the order's line items in display order
	Items []types.LineItem `json:"items"`

	// Discount is the applied discount policy
	Discount types.DiscountPolicy `json:"discount"`

	// Tax is the applied tax policy
	Tax types.TaxPolicy `json:"tax"`

	// Totals is the computed breakdown
	Totals types.Totals `json:"totals"`

	// Currency is the display currency
	Currency types.Currency `json:"currency"`
}

// BuildSummary computes totals for the items and assembles a summary
func BuildSummary(items []types.LineItem, discount types.DiscountPolicy, tax types.TaxPolicy, currency types.Currency) (*OrderSummary, error) {
	totals, err := pricing.ComputeTotals(items, discount, tax)
	if err != nil {
		return nil, err
	}
	return &OrderSummary{
		Items:    items,
		Discount: discount,
		Tax:      tax,
		Totals:   totals,
		Currency: currency,
	}, nil
}

// ForFormat returns the formatter for a format name
func ForFormat(format Format, noColor bool) Formatter {
	switch format {
	case FormatJSON:
		return NewJSONFormatter()
	default:
		return NewTerminalFormatter(noColor)
	}
}
