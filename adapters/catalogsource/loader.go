// Package catalogsource loads the price catalog from external sources.
// A source either yields the complete row set or fails; callers never see
// a partially loaded catalog. Load failures are fatal to the session by
// contract, so every error here carries the data-source taxonomy.
package catalogsource

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/VWIP/price-checker/core/catalog"
	"github.com/VWIP/price-checker/core/types"
	"github.com/VWIP/price-checker/internal/errors"
	"github.com/VWIP/price-checker/internal/logging"

	"go.uber.org/zap"
)

// Loader produces the fully materialized catalog row set
type Loader interface {
	// Load returns all catalog rows or an error; never a partial set
	Load(ctx context.Context) ([]types.CatalogRow, error)

	// Source describes where the rows come from, for diagnostics
	Source() string
}

// Format identifies a catalog file format
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatHCL  Format = "hcl"
)

// DetectFormat infers the format from a file extension
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	case ".hcl":
		return FormatHCL, nil
	default:
		return "", errors.Newf(errors.TypeConfig, "cannot infer catalog format from %q", path)
	}
}

// ForFile returns the loader for a catalog file, inferring the format from
// the extension when format is empty.
func ForFile(path string, format Format) (Loader, error) {
	if format == "" {
		detected, err := DetectFormat(path)
		if err != nil {
			return nil, err
		}
		format = detected
	}
	switch format {
	case FormatCSV:
		return NewCSVFileLoader(path), nil
	case FormatJSON:
		return NewJSONFileLoader(path), nil
	case FormatHCL:
		return NewHCLFileLoader(path), nil
	default:
		return nil, errors.Newf(errors.TypeConfig, "unknown catalog format %q", format)
	}
}

// Build loads rows through the loader and constructs the catalog. This is
// the single entry point the entrypoints use at session start.
func Build(ctx context.Context, loader Loader) (*catalog.Catalog, error) {
	rows, err := loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	cat, err := catalog.New(rows)
	if err != nil {
		return nil, errors.DataSource("catalog rejected", err).WithContext("source", loader.Source())
	}
	logging.Info("catalog loaded",
		zap.String("source", loader.Source()),
		zap.Int("rows", cat.Len()),
		zap.Int("categories", len(cat.Categories())))
	return cat, nil
}
