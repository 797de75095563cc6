// Package api - HTTP surface for order sessions
// The API layer only routes, serializes payloads and synchronizes access to
// session state; all pricing decisions live in the core packages.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/VWIP/price-checker/core/catalog"
	"github.com/VWIP/price-checker/core/order"
	"github.com/VWIP/price-checker/core/output"
	"github.com/VWIP/price-checker/core/pricing"
	"github.com/VWIP/price-checker/core/types"
	"github.com/VWIP/price-checker/internal/errors"
	"github.com/VWIP/price-checker/internal/logging"
)

// Server serves the order-entry API
type Server struct {
	catalog  *catalog.Catalog
	sessions *SessionStore
	currency types.Currency
	presets  []float64
	router   chi.Router
}

// NewServer creates an API server over a loaded catalog. The presets are
// the flat discount amounts advertised to clients on session creation.
func NewServer(cat *catalog.Catalog, sessions *SessionStore, currency types.Currency, presets []float64) *Server {
	s := &Server{
		catalog:  cat,
		sessions: sessions,
		currency: currency,
		presets:  presets,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Get("/health", s.handleHealth)

	r.Route("/catalog", func(r chi.Router) {
		r.Get("/categories", s.handleCategories)
		r.Get("/colors", s.handleColors)
		r.Get("/lengths", s.handleLengths)
		r.Get("/price", s.handlePrice)
	})

	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", s.handleCreateSession)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetSession)
			r.Delete("/", s.handleDeleteSession)
			r.Put("/policy", s.handleSetPolicy)
			r.Post("/items", s.handleAddItem)
			r.Delete("/items", s.handleClearItems)
			r.Put("/items/{index}", s.handleSetQuantity)
			r.Delete("/items/{index}", s.handleRemoveItem)
		})
	})

	s.router = r
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Listen runs the server on addr until it fails
func (s *Server) Listen(addr string) error {
	logging.Info("api listening", zap.String("addr", addr))
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":       "ok",
		"catalog_rows": s.catalog.Len(),
		"sessions":     s.sessions.Len(),
	})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, ListResponse{Values: s.catalog.Categories()})
}

func (s *Server) handleColors(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		s.writeError(w, errors.InvalidArgument("category is required"))
		return
	}
	s.writeJSON(w, http.StatusOK, ListResponse{Values: s.catalog.Colors(category)})
}

func (s *Server) handleLengths(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	color := r.URL.Query().Get("color")
	if category == "" || color == "" {
		s.writeError(w, errors.InvalidArgument("category and color are required"))
		return
	}
	s.writeJSON(w, http.StatusOK, LengthsResponse{Values: s.catalog.Lengths(category, color)})
}

func (s *Server) handlePrice(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	category := q.Get("category")
	color := q.Get("color")
	length, err := strconv.ParseFloat(q.Get("length"), 64)
	if category == "" || color == "" || err != nil {
		s.writeError(w, errors.InvalidArgument("category, color and numeric length are required"))
		return
	}

	price, ok := s.catalog.FindPrice(category, color, length)
	if !ok {
		s.writeError(w, errors.NotFound("catalog combination", category+"/"+color+"/"+q.Get("length")))
		return
	}
	s.writeJSON(w, http.StatusOK, PriceResponse{
		Category:  category,
		Color:     color,
		Length:    length,
		UnitPrice: price.StringFixed(2),
	})
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	session := s.sessions.Create()

	var taxPercent string
	_ = session.Do(func(ledger *order.Ledger, discount *types.DiscountPolicy, tax *types.TaxPolicy) error {
		taxPercent = tax.RatePercent.String()
		return nil
	})

	logging.Info("session created", zap.String("session_id", session.ID))
	s.writeJSON(w, http.StatusCreated, SessionResponse{
		ID:              session.ID,
		TaxPercent:      taxPercent,
		DiscountPresets: s.presets,
		Currency:        s.currency.String(),
	})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(ledger *order.Ledger, discount *types.DiscountPolicy, tax *types.TaxPolicy) error {
		return nil
	})
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	s.sessions.Delete(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Parsing("invalid request body", err))
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	price, ok := s.catalog.FindPrice(req.Category, req.Color, req.Length)
	if !ok {
		s.writeError(w, errors.NotFound("catalog combination",
			req.Category+"/"+req.Color+"/"+strconv.FormatFloat(req.Length, 'f', -1, 64)))
		return
	}

	s.withSession(w, r, func(ledger *order.Ledger, discount *types.DiscountPolicy, tax *types.TaxPolicy) error {
		return ledger.Add(req.Category, req.Color, req.Length, req.Quantity, price)
	})
}

func (s *Server) handleSetQuantity(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		s.writeError(w, errors.InvalidArgument("item index must be an integer"))
		return
	}
	var req SetQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Parsing("invalid request body", err))
		return
	}

	s.withSession(w, r, func(ledger *order.Ledger, discount *types.DiscountPolicy, tax *types.TaxPolicy) error {
		return ledger.SetQuantity(index, req.Quantity)
	})
}

func (s *Server) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		s.writeError(w, errors.InvalidArgument("item index must be an integer"))
		return
	}

	s.withSession(w, r, func(ledger *order.Ledger, discount *types.DiscountPolicy, tax *types.TaxPolicy) error {
		return ledger.Remove(index)
	})
}

func (s *Server) handleClearItems(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(ledger *order.Ledger, discount *types.DiscountPolicy, tax *types.TaxPolicy) error {
		ledger.Clear()
		return nil
	})
}

func (s *Server) handleSetPolicy(w http.ResponseWriter, r *http.Request) {
	var req PolicyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Parsing("invalid request body", err))
		return
	}

	newDiscount := types.DiscountPolicy{
		Mode:  types.DiscountMode(req.DiscountMode),
		Value: req.DiscountValue,
	}
	newTax := types.TaxPolicy{RatePercent: req.TaxPercent}
	if err := pricing.ValidateDiscount(newDiscount); err != nil {
		s.writeError(w, err)
		return
	}
	if err := pricing.ValidateTax(newTax); err != nil {
		s.writeError(w, err)
		return
	}

	s.withSession(w, r, func(ledger *order.Ledger, discount *types.DiscountPolicy, tax *types.TaxPolicy) error {
		*discount = newDiscount
		*tax = newTax
		return nil
	})
}

// withSession resolves the session, applies the mutation under the session
// lock and responds with the recomputed order summary. On error the
// session state is untouched and the error envelope is returned instead.
func (s *Server) withSession(w http.ResponseWriter, r *http.Request, fn func(*order.Ledger, *types.DiscountPolicy, *types.TaxPolicy) error) {
	session, err := s.sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	var summary *output.OrderSummary
	err = session.Do(func(ledger *order.Ledger, discount *types.DiscountPolicy, tax *types.TaxPolicy) error {
		if err := fn(ledger, discount, tax); err != nil {
			return err
		}
		built, err := output.BuildSummary(ledger.Items(), *discount, *tax, s.currency)
		if err != nil {
			return err
		}
		summary = built
		return nil
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := output.NewJSONFormatter().Render(w, summary); err != nil {
		logging.Error("render summary failed", zap.Error(err))
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error("write response failed", zap.Error(err))
	}
}

// writeError maps the error taxonomy to HTTP status codes
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := string(errors.TypeInternal)
	message := err.Error()

	if domainErr, ok := err.(*errors.Error); ok {
		code = string(domainErr.Type)
		message = domainErr.Message
		switch domainErr.Type {
		case errors.TypeNotFound, errors.TypeOutOfRange:
			status = http.StatusNotFound
		case errors.TypeInvalidArgument, errors.TypeParsing:
			status = http.StatusBadRequest
		case errors.TypeDataSource:
			status = http.StatusServiceUnavailable
		}
	}

	s.writeJSON(w, status, ErrorResponse{Code: code, Message: message})
}
