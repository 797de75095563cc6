// Package catalog - In-memory price catalog
// The catalog is built once per session from a fully materialized row set
// and is read-only afterwards. Lookups never fail hard; a missing
// combination is an expected condition reported through the ok result.
package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/VWIP/price-checker/core/types"
	"github.com/VWIP/price-checker/internal/errors"
)

// Catalog is an immutable table of priced (category, color, length) rows
type Catalog struct {
	rows []types.CatalogRow
}

// New validates the supplied rows and builds a catalog from them.
// Rows are kept in input order; duplicate tuples are allowed and the
// first occurrence wins on lookup.
func New(rows []types.CatalogRow) (*Catalog, error) {
	for i, row := range rows {
		if row.Category == "" {
			return nil, errors.Newf(errors.TypeInvalidArgument, "catalog row %d: empty category", i)
		}
		if row.Color == "" {
			return nil, errors.Newf(errors.TypeInvalidArgument, "catalog row %d: empty color", i)
		}
		if row.UnitPrice.IsNegative() {
			return nil, errors.Newf(errors.TypeInvalidArgument,
				"catalog row %d (%s): negative unit price %s", i, row.Key(), row.UnitPrice)
		}
	}

	copied := make([]types.CatalogRow, len(rows))
	copy(copied, rows)
	return &Catalog{rows: copied}, nil
}

// FindPrice returns the unit price for an exact (category, color, length)
// match. Matching is case-sensitive and numeric equality on length is
// exact. The second result is false when no row matches.
func (c *Catalog) FindPrice(category, color string, length float64) (decimal.Decimal, bool) {
	for _, row := range c.rows {
		if row.Category == category && row.Color == color && row.Length == length {
			return row.UnitPrice, true
		}
	}
	return decimal.Zero, false
}

// Categories returns the distinct categories in order of first appearance
func (c *Catalog) Categories() []string {
	var out []string
	seen := make(map[string]bool)
	for _, row := range c.rows {
		if !seen[row.Category] {
			seen[row.Category] = true
			out = append(out, row.Category)
		}
	}
	return out
}

// Colors returns the distinct colors available for a category, in order
// of first appearance
func (c *Catalog) Colors(category string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, row := range c.rows {
		if row.Category != category {
			continue
		}
		if !seen[row.Color] {
			seen[row.Color] = true
			out = append(out, row.Color)
		}
	}
	return out
}

// Lengths returns the distinct lengths available for a category and color,
// in order of first appearance
func (c *Catalog) Lengths(category, color string) []float64 {
	var out []float64
	seen := make(map[float64]bool)
	for _, row := range c.rows {
		if row.Category != category || row.Color != color {
			continue
		}
		if !seen[row.Length] {
			seen[row.Length] = true
			out = append(out, row.Length)
		}
	}
	return out
}

// Rows returns a copy of all catalog rows
func (c *Catalog) Rows() []types.CatalogRow {
	out := make([]types.CatalogRow, len(c.rows))
	copy(out, c.rows)
	return out
}

// Len returns the number of rows
func (c *Catalog) Len() int {
	return len(c.rows)
}
