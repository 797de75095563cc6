package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VWIP/price-checker/core/catalog"
	"github.com/VWIP/price-checker/core/types"
)

type summaryDoc struct {
	Items []struct {
		Category  string  `json:"category"`
		Color     string  `json:"color"`
		Length    float64 `json:"length"`
		Quantity  int64   `json:"quantity"`
		UnitPrice string  `json:"unit_price"`
		LineTotal string  `json:"line_total"`
	} `json:"items"`
	Totals struct {
		Subtotal       string `json:"subtotal"`
		DiscountAmount string `json:"discount_amount"`
		AfterDiscount  string `json:"after_discount"`
		TaxAmount      string `json:"tax_amount"`
		Total          string `json:"total"`
	} `json:"totals"`
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cat, err := catalog.New([]types.CatalogRow{
		{Category: "Roll", Color: "Red", Length: 6, UnitPrice: decimal.RequireFromString("5.00")},
		{Category: "Roll", Color: "Blue", Length: 8, UnitPrice: decimal.RequireFromString("6.50")},
		{Category: "Sheet", Color: "White", Length: 12, UnitPrice: decimal.RequireFromString("100.00")},
	})
	require.NoError(t, err)

	sessions := NewSessionStore(time.Minute, types.TaxPolicy{RatePercent: decimal.Zero})
	srv := httptest.NewServer(NewServer(cat, sessions, types.CurrencyUSD, []float64{10, 15, 20}))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body interface{}) (*http.Response, []byte) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, buf.Bytes()
}

func createSession(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/sessions", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created SessionResponse
	require.NoError(t, json.Unmarshal(body, &created))
	require.NotEmpty(t, created.ID)
	return created.ID
}

func decodeSummary(t *testing.T, body []byte) summaryDoc {
	t.Helper()
	var doc summaryDoc
	require.NoError(t, json.Unmarshal(body, &doc))
	return doc
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"status":"ok"`)
}

func TestCatalogEndpoints(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/catalog/categories", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list ListResponse
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Equal(t, []string{"Roll", "Sheet"}, list.Values)

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/catalog/colors?category=Roll", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Equal(t, []string{"Red", "Blue"}, list.Values)

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/catalog/lengths?category=Roll&color=Red", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var lengths LengthsResponse
	require.NoError(t, json.Unmarshal(body, &lengths))
	assert.Equal(t, []float64{6}, lengths.Values)

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/catalog/price?category=Roll&color=Red&length=6", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var price PriceResponse
	require.NoError(t, json.Unmarshal(body, &price))
	assert.Equal(t, "5.00", price.UnitPrice)
}

func TestPriceLookupUnknownCombination(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/catalog/price?category=Roll&color=Blue&length=99", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, "NOT_FOUND", errResp.Code)
}

func TestSessionCreateExposesOrderDefaults(t *testing.T) {
	cat, err := catalog.New([]types.CatalogRow{
		{Category: "Roll", Color: "Red", Length: 6, UnitPrice: decimal.RequireFromString("5.00")},
	})
	require.NoError(t, err)

	sessions := NewSessionStore(time.Minute, types.TaxPolicy{RatePercent: decimal.RequireFromString("2.7")})
	srv := httptest.NewServer(NewServer(cat, sessions, types.CurrencyUSD, []float64{10, 15, 20}))
	t.Cleanup(srv.Close)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/sessions", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created SessionResponse
	require.NoError(t, json.Unmarshal(body, &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "2.7", created.TaxPercent)
	assert.Equal(t, []float64{10, 15, 20}, created.DiscountPresets)
	assert.Equal(t, "USD", created.Currency)
}

func TestOrderSessionFlow(t *testing.T) {
	srv := newTestServer(t)
	id := createSession(t, srv)
	base := srv.URL + "/sessions/" + id

	// Add one Roll/Red/6 at quantity 1: subtotal 5.00.
	resp, body := doJSON(t, http.MethodPost, base+"/items", AddItemRequest{Category: "Roll", Color: "Red", Length: 6})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	doc := decodeSummary(t, body)
	require.Len(t, doc.Items, 1)
	assert.Equal(t, int64(1), doc.Items[0].Quantity)
	assert.Equal(t, "5.00", doc.Totals.Subtotal)

	// Raise the quantity to 3: subtotal 15.00.
	resp, body = doJSON(t, http.MethodPut, base+"/items/0", SetQuantityRequest{Quantity: 3})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	doc = decodeSummary(t, body)
	assert.Equal(t, "15.00", doc.Totals.Subtotal)

	// Adding the same combination again appends a second line.
	resp, body = doJSON(t, http.MethodPost, base+"/items", AddItemRequest{Category: "Roll", Color: "Red", Length: 6, Quantity: 2})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	doc = decodeSummary(t, body)
	require.Len(t, doc.Items, 2)
	assert.Equal(t, "25.00", doc.Totals.Subtotal)

	// Remove the first line; the second shifts down.
	resp, body = doJSON(t, http.MethodDelete, base+"/items/0", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	doc = decodeSummary(t, body)
	require.Len(t, doc.Items, 1)
	assert.Equal(t, int64(2), doc.Items[0].Quantity)
	assert.Equal(t, "10.00", doc.Totals.Subtotal)

	// Clear empties the ledger.
	resp, body = doJSON(t, http.MethodDelete, base+"/items", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	doc = decodeSummary(t, body)
	assert.Empty(t, doc.Items)
	assert.Equal(t, "0.00", doc.Totals.Subtotal)
}

func TestPolicyApplication(t *testing.T) {
	srv := newTestServer(t)
	id := createSession(t, srv)
	base := srv.URL + "/sessions/" + id

	resp, _ := doJSON(t, http.MethodPost, base+"/items", AddItemRequest{Category: "Sheet", Color: "White", Length: 12})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// 10% discount and 5% tax on a 100.00 subtotal.
	resp, body := doJSON(t, http.MethodPut, base+"/policy", PolicyRequest{
		DiscountMode:  "percentage",
		DiscountValue: decimal.RequireFromString("10"),
		TaxPercent:    decimal.RequireFromString("5"),
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	doc := decodeSummary(t, body)
	assert.Equal(t, "100.00", doc.Totals.Subtotal)
	assert.Equal(t, "10.00", doc.Totals.DiscountAmount)
	assert.Equal(t, "90.00", doc.Totals.AfterDiscount)
	assert.Equal(t, "4.50", doc.Totals.TaxAmount)
	assert.Equal(t, "94.50", doc.Totals.Total)
}

func TestInvalidQuantityLeavesSessionUnchanged(t *testing.T) {
	srv := newTestServer(t)
	id := createSession(t, srv)
	base := srv.URL + "/sessions/" + id

	resp, _ := doJSON(t, http.MethodPost, base+"/items", AddItemRequest{Category: "Roll", Color: "Red", Length: 6, Quantity: 2})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := doJSON(t, http.MethodPut, base+"/items/0", SetQuantityRequest{Quantity: 0})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, "INVALID_ARGUMENT", errResp.Code)

	resp, body = doJSON(t, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	doc := decodeSummary(t, body)
	assert.Equal(t, int64(2), doc.Items[0].Quantity)

	// A subsequent valid update succeeds.
	resp, _ = doJSON(t, http.MethodPut, base+"/items/0", SetQuantityRequest{Quantity: 1})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestErrorStatusMapping(t *testing.T) {
	srv := newTestServer(t)
	id := createSession(t, srv)
	base := srv.URL + "/sessions/" + id

	// Unknown session.
	resp, _ := doJSON(t, http.MethodGet, srv.URL+"/sessions/nope", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Unknown catalog combination on add.
	resp, _ = doJSON(t, http.MethodPost, base+"/items", AddItemRequest{Category: "Roll", Color: "Green", Length: 6})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Stale index.
	resp, body := doJSON(t, http.MethodDelete, base+"/items/5", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, "OUT_OF_RANGE", errResp.Code)

	// Negative discount.
	resp, _ = doJSON(t, http.MethodPut, base+"/policy", PolicyRequest{
		DiscountMode:  "fixed_amount",
		DiscountValue: decimal.RequireFromString("-1"),
		TaxPercent:    decimal.Zero,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSessionDelete(t *testing.T) {
	srv := newTestServer(t)
	id := createSession(t, srv)

	resp, _ := doJSON(t, http.MethodDelete, fmt.Sprintf("%s/sessions/%s", srv.URL, id), nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/sessions/"+id, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
