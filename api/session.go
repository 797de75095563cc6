// Package api - In-memory session registry
// Each order session owns one ledger plus its discount and tax selection.
// Sessions live only in process memory and are evicted after sitting idle
// for the configured TTL; nothing is persisted across restarts.
package api

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/VWIP/price-checker/core/order"
	"github.com/VWIP/price-checker/core/types"
	"github.com/VWIP/price-checker/internal/errors"
	"github.com/VWIP/price-checker/internal/logging"
)

// Session is one user's active order
type Session struct {
	// ID is the session identifier handed to the client
	ID string

	mu       sync.Mutex
	ledger   *order.Ledger
	discount types.DiscountPolicy
	tax      types.TaxPolicy
	lastSeen time.Time
}

// Do runs fn while holding the session lock. The ledger itself is not
// concurrency-aware; serializing access is this layer's job.
func (s *Session) Do(fn func(ledger *order.Ledger, discount *types.DiscountPolicy, tax *types.TaxPolicy) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
	return fn(s.ledger, &s.discount, &s.tax)
}

// SessionStore holds the active sessions
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	defaults types.TaxPolicy
}

// NewSessionStore creates a session store. New sessions start with the
// given default tax policy and no discount.
func NewSessionStore(ttl time.Duration, defaultTax types.TaxPolicy) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		defaults: defaultTax,
	}
}

// Create starts a new empty session
func (st *SessionStore) Create() *Session {
	s := &Session{
		ID:       uuid.NewString(),
		ledger:   order.NewLedger(),
		discount: types.NoDiscount(),
		tax:      st.defaults,
		lastSeen: time.Now(),
	}

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Get returns a session by ID
func (st *SessionStore) Get(id string) (*Session, error) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, errors.NotFound("session", id)
	}
	return s, nil
}

// Delete removes a session; deleting an unknown ID is a no-op
func (st *SessionStore) Delete(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

// Len returns the number of live sessions
func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// StartSweeper evicts idle sessions until the context is cancelled
func (st *SessionStore) StartSweeper(ctx context.Context) {
	if st.ttl <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(st.ttl / 2)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				st.sweep()
			}
		}
	}()
}

func (st *SessionStore) sweep() {
	cutoff := time.Now().Add(-st.ttl)
	var evicted int

	st.mu.Lock()
	for id, s := range st.sessions {
		s.mu.Lock()
		idle := s.lastSeen.Before(cutoff)
		s.mu.Unlock()
		if idle {
			delete(st.sessions, id)
			evicted++
		}
	}
	st.mu.Unlock()

	if evicted > 0 {
		logging.Info("evicted idle sessions", zap.Int("count", evicted))
	}
}
