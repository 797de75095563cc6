// Package catalogsource - CSV catalog loader
package catalogsource

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/VWIP/price-checker/core/types"
	"github.com/VWIP/price-checker/internal/errors"
)

// csvHeader is the required header row, in order
var csvHeader = []string{"category", "color", "length", "unit_price"}

// CSVFileLoader reads catalog rows from a local CSV file
type CSVFileLoader struct {
	path string
}

// NewCSVFileLoader creates a CSV file loader
func NewCSVFileLoader(path string) *CSVFileLoader {
	return &CSVFileLoader{path: path}
}

// Source describes the loader
func (l *CSVFileLoader) Source() string {
	return "csv:" + l.path
}

// Load reads and parses the whole file
func (l *CSVFileLoader) Load(ctx context.Context) ([]types.CatalogRow, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, errors.DataSource("cannot open catalog file", err).WithContext("path", l.path)
	}
	defer f.Close()

	rows, err := parseCSV(f)
	if err != nil {
		return nil, errors.DataSource("cannot parse catalog file", err).WithContext("path", l.path)
	}
	return rows, nil
}

// parseCSV decodes catalog rows from CSV content. The header row is
// mandatory and must match csvHeader exactly (case-insensitive).
func parseCSV(r io.Reader) ([]types.CatalogRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Parsing("missing header row", err)
	}
	if len(header) != len(csvHeader) {
		return nil, errors.Newf(errors.TypeParsing, "expected %d header columns, got %d", len(csvHeader), len(header))
	}
	for i, want := range csvHeader {
		if !strings.EqualFold(strings.TrimSpace(header[i]), want) {
			return nil, errors.Newf(errors.TypeParsing, "header column %d: expected %q, got %q", i, want, header[i])
		}
	}

	var rows []types.CatalogRow
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, errors.Wrapf(errors.TypeParsing, err, "line %d", line)
		}

		length, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			return nil, errors.Wrapf(errors.TypeParsing, err, "line %d: bad length %q", line, record[2])
		}
		price, err := decimal.NewFromString(strings.TrimSpace(record[3]))
		if err != nil {
			return nil, errors.Wrapf(errors.TypeParsing, err, "line %d: bad unit price %q", line, record[3])
		}

		rows = append(rows, types.CatalogRow{
			Category:  strings.TrimSpace(record[0]),
			Color:     strings.TrimSpace(record[1]),
			Length:    length,
			UnitPrice: price,
		})
	}
	return rows, nil
}
