package api

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VWIP/price-checker/core/order"
	"github.com/VWIP/price-checker/core/types"
	"github.com/VWIP/price-checker/internal/errors"
)

func TestSessionStoreLifecycle(t *testing.T) {
	st := NewSessionStore(time.Minute, types.TaxPolicy{RatePercent: decimal.RequireFromString("2.7")})

	s := st.Create()
	require.NotEmpty(t, s.ID)
	assert.Equal(t, 1, st.Len())

	got, err := st.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	st.Delete(s.ID)
	_, err = st.Get(s.ID)
	assert.True(t, errors.IsType(err, errors.TypeNotFound))

	// Deleting again is a no-op.
	st.Delete(s.ID)
}

func TestSessionStartsWithDefaults(t *testing.T) {
	st := NewSessionStore(time.Minute, types.TaxPolicy{RatePercent: decimal.RequireFromString("2.7")})
	s := st.Create()

	err := s.Do(func(ledger *order.Ledger, discount *types.DiscountPolicy, tax *types.TaxPolicy) error {
		assert.Equal(t, 0, ledger.Len())
		assert.Equal(t, types.DiscountFixedAmount, discount.Mode)
		assert.True(t, discount.Value.IsZero())
		assert.Equal(t, "2.7", tax.RatePercent.String())
		return nil
	})
	require.NoError(t, err)
}

func TestSweepEvictsIdleSessions(t *testing.T) {
	st := NewSessionStore(10*time.Millisecond, types.TaxPolicy{})

	stale := st.Create()
	stale.mu.Lock()
	stale.lastSeen = time.Now().Add(-time.Second)
	stale.mu.Unlock()

	fresh := st.Create()

	st.sweep()

	_, err := st.Get(stale.ID)
	assert.True(t, errors.IsType(err, errors.TypeNotFound))
	_, err = st.Get(fresh.ID)
	assert.NoError(t, err)
}
