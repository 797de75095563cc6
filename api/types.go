// Package api - Request and response types
package api

import (
	"github.com/shopspring/decimal"
)

// AddItemRequest adds one catalog combination to the order
type AddItemRequest struct {
	Category string  `json:"category"`
	Color    string  `json:"color"`
	Length   float64 `json:"length"`

	// Quantity defaults to 1 when omitted
	Quantity int64 `json:"quantity,omitempty"`
}

// SetQuantityRequest replaces a line item's quantity
type SetQuantityRequest struct {
	Quantity int64 `json:"quantity"`
}

// PolicyRequest sets the session's discount and tax selection
type PolicyRequest struct {
	DiscountMode  string          `json:"discount_mode"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	TaxPercent    decimal.Decimal `json:"tax_percent"`
}

// SessionResponse identifies a newly created session along with the order
// defaults a UI needs to render its discount and tax widgets.
type SessionResponse struct {
	ID string `json:"id"`

	// TaxPercent is the preselected tax rate
	TaxPercent string `json:"tax_percent"`

	// DiscountPresets are the flat discount amounts to offer as buttons
	DiscountPresets []float64 `json:"discount_presets"`

	// Currency is the display currency
	Currency string `json:"currency"`
}

// PriceResponse is the result of a catalog price lookup
type PriceResponse struct {
	Category  string  `json:"category"`
	Color     string  `json:"color"`
	Length    float64 `json:"length"`
	UnitPrice string  `json:"unit_price"`
}

// ListResponse carries a pick-list of values
type ListResponse struct {
	Values []string `json:"values"`
}

// LengthsResponse carries a pick-list of lengths
type LengthsResponse struct {
	Values []float64 `json:"values"`
}

// ErrorResponse is the error envelope
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
