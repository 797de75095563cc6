package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VWIP/price-checker/core/types"
	"github.com/VWIP/price-checker/internal/errors"
)

func row(category, color string, length float64, price string) types.CatalogRow {
	return types.CatalogRow{
		Category:  category,
		Color:     color,
		Length:    length,
		UnitPrice: decimal.RequireFromString(price),
	}
}

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	cat, err := New([]types.CatalogRow{
		row("Roll", "Red", 6, "5.00"),
		row("Roll", "Red", 8, "6.50"),
		row("Roll", "Blue", 6, "5.25"),
		row("Sheet", "White", 12, "2.00"),
		row("Sheet", "Red", 12, "2.10"),
	})
	require.NoError(t, err)
	return cat
}

func TestFindPrice(t *testing.T) {
	cat := testCatalog(t)

	price, ok := cat.FindPrice("Roll", "Red", 6)
	require.True(t, ok)
	assert.True(t, price.Equal(decimal.RequireFromString("5.00")))
}

func TestFindPriceNoMatch(t *testing.T) {
	cat := testCatalog(t)

	// Unknown length for a known category/color pair.
	_, ok := cat.FindPrice("Roll", "Blue", 99)
	assert.False(t, ok)

	// Matching is case-sensitive.
	_, ok = cat.FindPrice("roll", "Red", 6)
	assert.False(t, ok)

	// Exact numeric equality, no tolerance.
	_, ok = cat.FindPrice("Roll", "Red", 6.0001)
	assert.False(t, ok)
}

func TestFindPriceFirstMatchWins(t *testing.T) {
	cat, err := New([]types.CatalogRow{
		row("Roll", "Red", 6, "5.00"),
		row("Roll", "Red", 6, "9.99"),
	})
	require.NoError(t, err)

	price, ok := cat.FindPrice("Roll", "Red", 6)
	require.True(t, ok)
	assert.Equal(t, "5", price.String())
}

func TestCategoriesOrderOfFirstAppearance(t *testing.T) {
	cat := testCatalog(t)
	assert.Equal(t, []string{"Roll", "Sheet"}, cat.Categories())
}

func TestColors(t *testing.T) {
	cat := testCatalog(t)
	assert.Equal(t, []string{"Red", "Blue"}, cat.Colors("Roll"))
	assert.Equal(t, []string{"White", "Red"}, cat.Colors("Sheet"))
	assert.Empty(t, cat.Colors("Tube"))
}

func TestLengths(t *testing.T) {
	cat := testCatalog(t)
	assert.Equal(t, []float64{6, 8}, cat.Lengths("Roll", "Red"))
	assert.Equal(t, []float64{6}, cat.Lengths("Roll", "Blue"))
	assert.Empty(t, cat.Lengths("Roll", "Green"))
}

func TestNewRejectsBadRows(t *testing.T) {
	_, err := New([]types.CatalogRow{row("", "Red", 6, "5.00")})
	assert.True(t, errors.IsType(err, errors.TypeInvalidArgument))

	_, err = New([]types.CatalogRow{row("Roll", "", 6, "5.00")})
	assert.True(t, errors.IsType(err, errors.TypeInvalidArgument))

	_, err = New([]types.CatalogRow{row("Roll", "Red", 6, "-1")})
	assert.True(t, errors.IsType(err, errors.TypeInvalidArgument))
}

func TestRowsReturnsCopy(t *testing.T) {
	cat := testCatalog(t)

	rows := cat.Rows()
	rows[0].Category = "Mutated"

	price, ok := cat.FindPrice("Roll", "Red", 6)
	require.True(t, ok)
	assert.True(t, price.Equal(decimal.RequireFromString("5.00")))
}
