// Package catalogsource - HTTP catalog fetcher
// Fetches a published sheet URL that serves the catalog as CSV, the role
// the spreadsheet provider plays in the original deployment.
package catalogsource

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/VWIP/price-checker/core/types"
	"github.com/VWIP/price-checker/internal/errors"
)

// HTTPLoader fetches CSV catalog rows from a URL
type HTTPLoader struct {
	url    string
	client *http.Client
}

// NewHTTPLoader creates an HTTP loader with the given fetch timeout
func NewHTTPLoader(url string, timeout time.Duration) *HTTPLoader {
	return &HTTPLoader{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Source describes the loader
func (l *HTTPLoader) Source() string {
	return "http:" + l.url
}

// Load fetches and parses the catalog
func (l *HTTPLoader) Load(ctx context.Context) ([]types.CatalogRow, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, errors.DataSource("cannot build catalog request", err).WithContext("url", l.url)
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, errors.DataSource("cannot fetch catalog", err).WithContext("url", l.url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.DataSource("catalog fetch failed",
			fmt.Errorf("unexpected status %s", resp.Status)).WithContext("url", l.url)
	}

	rows, err := parseCSV(resp.Body)
	if err != nil {
		return nil, errors.DataSource("cannot parse fetched catalog", err).WithContext("url", l.url)
	}
	return rows, nil
}
