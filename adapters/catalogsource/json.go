// Package catalogsource - JSON catalog loader
package catalogsource

import (
	"context"
	"encoding/json"
	"os"

	"github.com/VWIP/price-checker/core/types"
	"github.com/VWIP/price-checker/internal/errors"
)

// JSONFileLoader reads catalog rows from a local JSON file containing an
// array of row objects.
type JSONFileLoader struct {
	path string
}

// NewJSONFileLoader creates a JSON file loader
func NewJSONFileLoader(path string) *JSONFileLoader {
	return &JSONFileLoader{path: path}
}

// Source describes the loader
func (l *JSONFileLoader) Source() string {
	return "json:" + l.path
}

// Load reads and parses the whole file
func (l *JSONFileLoader) Load(ctx context.Context) ([]types.CatalogRow, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, errors.DataSource("cannot read catalog file", err).WithContext("path", l.path)
	}

	var rows []types.CatalogRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, errors.DataSource("cannot parse catalog file",
			errors.Parsing("invalid JSON", err)).WithContext("path", l.path)
	}
	return rows, nil
}
