// Package types defines the shared order-entry domain types.
package types

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// CatalogRow is one priced combination supplied by the catalog source.
// Length is an opaque numeric key; no unit is assumed and matching is exact.
type CatalogRow struct {
	// Category is the item category (e.g. "Roll")
	Category string `json:"category"`

	// Color is the item color
	Color string `json:"color"`

	// Length is the numeric length key
	Length float64 `json:"length"`

	// UnitPrice is the price for one unit
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Key returns a string form of the (category, color, length) tuple for
// diagnostics and error context.
func (r CatalogRow) Key() string {
	return r.Category + "/" + r.Color + "/" + strconv.FormatFloat(r.Length, 'f', -1, 64)
}

// LineItem is one entry in the active order. The unit price is copied from
// the matched catalog row at add time and never changes afterwards.
type LineItem struct {
	// Category is the item category
	Category string `json:"category"`

	// Color is the item color
	Color string `json:"color"`

	// Length is the numeric length key
	Length float64 `json:"length"`

	// Quantity is the ordered quantity, always >= 1
	Quantity int64 `json:"quantity"`

	// UnitPrice is the price captured at add time
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// LineTotal returns quantity * unit price. It is derived, never stored.
func (li LineItem) LineTotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(li.Quantity))
}

// Key returns a string form of the item's catalog tuple.
func (li LineItem) Key() string {
	return li.Category + "/" + li.Color + "/" + strconv.FormatFloat(li.Length, 'f', -1, 64)
}
