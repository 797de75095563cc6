// Package catalogsource - HCL catalog loader
//
// Catalog files in HCL use one item block per row:
//
//	item {
//	  category   = "Roll"
//	  color      = "Red"
//	  length     = 6
//	  unit_price = 5.00
//	}
package catalogsource

import (
	"context"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/shopspring/decimal"

	"github.com/VWIP/price-checker/core/types"
	"github.com/VWIP/price-checker/internal/errors"
)

type hclItem struct {
	Category  string  `hcl:"category"`
	Color     string  `hcl:"color"`
	Length    float64 `hcl:"length"`
	UnitPrice float64 `hcl:"unit_price"`
}

type hclCatalog struct {
	Items []hclItem `hcl:"item,block"`
}

// HCLFileLoader reads catalog rows from a local HCL file
type HCLFileLoader struct {
	path string
}

// NewHCLFileLoader creates an HCL file loader
func NewHCLFileLoader(path string) *HCLFileLoader {
	return &HCLFileLoader{path: path}
}

// Source describes the loader
func (l *HCLFileLoader) Source() string {
	return "hcl:" + l.path
}

// Load reads and decodes the whole file
func (l *HCLFileLoader) Load(ctx context.Context) ([]types.CatalogRow, error) {
	var file hclCatalog
	if err := hclsimple.DecodeFile(l.path, nil, &file); err != nil {
		return nil, errors.DataSource("cannot decode catalog file", err).WithContext("path", l.path)
	}

	rows := make([]types.CatalogRow, 0, len(file.Items))
	for _, item := range file.Items {
		rows = append(rows, types.CatalogRow{
			Category:  item.Category,
			Color:     item.Color,
			Length:    item.Length,
			UnitPrice: decimal.NewFromFloat(item.UnitPrice),
		})
	}
	return rows, nil
}
