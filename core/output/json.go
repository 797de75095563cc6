// Package output - JSON formatter
package output

import (
	"encoding/json"
	"io"

	"github.com/VWIP/price-checker/core/types"
)

// JSONFormatter renders an order summary as indented JSON with monetary
// values rounded to two decimals.
type JSONFormatter struct{}

// NewJSONFormatter creates a JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

type jsonLineItem struct {
	Category  string  `json:"category"`
	Color     string  `json:"color"`
	Length    float64 `json:"length"`
	Quantity  int64   `json:"quantity"`
	UnitPrice string  `json:"unit_price"`
	LineTotal string  `json:"line_total"`
}

type jsonTotals struct {
	Subtotal       string `json:"subtotal"`
	DiscountAmount string `json:"discount_amount"`
	AfterDiscount  string `json:"after_discount"`
	TaxAmount      string `json:"tax_amount"`
	Total          string `json:"total"`
}

type jsonSummary struct {
	Items    []jsonLineItem       `json:"items"`
	Discount types.DiscountPolicy `json:"discount"`
	Tax      types.TaxPolicy      `json:"tax"`
	Totals   jsonTotals           `json:"totals"`
	Currency string               `json:"currency"`
}

// Render writes the summary as JSON
func (f *JSONFormatter) Render(w io.Writer, summary *OrderSummary) error {
	out := jsonSummary{
		Items:    make([]jsonLineItem, 0, len(summary.Items)),
		Discount: summary.Discount,
		Tax:      summary.Tax,
		Totals: jsonTotals{
			Subtotal:       summary.Totals.Subtotal.StringFixed(2),
			DiscountAmount: summary.Totals.DiscountAmount.StringFixed(2),
			AfterDiscount:  summary.Totals.AfterDiscount.StringFixed(2),
			TaxAmount:      summary.Totals.TaxAmount.StringFixed(2),
			Total:          summary.Totals.Total.StringFixed(2),
		},
		Currency: summary.Currency.String(),
	}
	for _, item := range summary.Items {
		out.Items = append(out.Items, jsonLineItem{
			Category:  item.Category,
			Color:     item.Color,
			Length:    item.Length,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.StringFixed(2),
			LineTotal: item.LineTotal().StringFixed(2),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
