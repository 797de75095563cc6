// Package order - Session order ledger
// The ledger owns the line items of one user session. It is an explicit
// instance handed to whoever drives the session; there is no package-level
// order state. Mutations are all-or-nothing: on error the ledger is
// unchanged.
package order

import (
	"github.com/shopspring/decimal"

	"github.com/VWIP/price-checker/core/types"
	"github.com/VWIP/price-checker/internal/errors"
)

// Ledger is the ordered list of line items for one session.
// Insertion order is display order. Not safe for concurrent use; a session
// is driven by one caller at a time and any outer surface serializes access.
type Ledger struct {
	items []types.LineItem
}

// NewLedger returns an empty ledger
func NewLedger() *Ledger {
	return &Ledger{}
}

// Add appends a new line item with the given unit price. Repeated adds of
// the same (category, color, length) tuple produce separate line items,
// never a merged quantity.
func (l *Ledger) Add(category, color string, length float64, quantity int64, unitPrice decimal.Decimal) error {
	if quantity < 1 {
		return errors.InvalidArgument("quantity must be at least 1")
	}
	if unitPrice.IsNegative() {
		return errors.InvalidArgument("unit price must not be negative")
	}
	l.items = append(l.items, types.LineItem{
		Category:  category,
		Color:     color,
		Length:    length,
		Quantity:  quantity,
		UnitPrice: unitPrice,
	})
	return nil
}

// SetQuantity replaces the quantity of the line item at index
func (l *Ledger) SetQuantity(index int, quantity int64) error {
	if quantity < 1 {
		return errors.InvalidArgument("quantity must be at least 1")
	}
	if index < 0 || index >= len(l.items) {
		return errors.OutOfRange(index, len(l.items))
	}
	l.items[index].Quantity = quantity
	return nil
}

// Remove deletes the line item at index; later items shift down by one
func (l *Ledger) Remove(index int) error {
	if index < 0 || index >= len(l.items) {
		return errors.OutOfRange(index, len(l.items))
	}
	l.items = append(l.items[:index], l.items[index+1:]...)
	return nil
}

// Clear empties the ledger. Clearing an empty ledger is a no-op.
func (l *Ledger) Clear() {
	l.items = nil
}

// Items returns a copy of the line items in display order
func (l *Ledger) Items() []types.LineItem {
	out := make([]types.LineItem, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of line items
func (l *Ledger) Len() int {
	return len(l.items)
}
