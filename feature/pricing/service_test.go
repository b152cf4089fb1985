package pricing

import (
	"context"
	"math"
	"testing"

	"feather/core/snapshot"
	"feather/feature/catalog"
	"feather/feature/exchange"
	"feather/feature/market"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testSnapshot(t *testing.T, strict bool) *Snapshot {
	formats, err := exchange.DefaultFormats()
	require.NoError(t, err)
	rates := &exchange.Rates{ConversionRates: map[string]float64{"USD": 1, "EUR": 0.5}}

	items := testCatalog()
	ak := items["skin-1"]
	ak.Name = "AK-47 | Redline"
	ak.Rarity = &catalog.Rarity{Color: "#d32ce6"}
	items["skin-1"] = ak

	return NewSnapshot(items, testPrices(), market.PhaseMap{"icon-p2": "Phase 2"}, rates,
		exchange.NewFormatter(rates, formats, exchange.WithStrict(strict)))
}

func newTestService(t *testing.T, snap *Snapshot) *Service {
	holder := snapshot.NewHolder(func(ctx context.Context, force bool) (*Snapshot, error) {
		return snap, nil
	})
	return NewService(holder, "USD", zap.NewNop())
}

func TestService_Quote(t *testing.T) {
	svc := newTestService(t, testSnapshot(t, false))
	ctx := context.Background()

	q, err := svc.Quote(ctx, akName, "")
	require.NoError(t, err)
	assert.Equal(t, "USD", q.Currency)
	assert.Equal(t, "$20.00", q.Display)
	assert.Equal(t, "AK-47 | Redline", q.Name)
	assert.Equal(t, "#d32ce6", q.RarityColor)

	q, err = svc.Quote(ctx, akName, "eur")
	require.NoError(t, err)
	assert.Equal(t, "EUR", q.Currency)
	assert.Equal(t, "€10.00", q.Display)
	assert.InDelta(t, 20, *q.Estimate, 1e-9, "raw amounts stay in USD")

	q, err = svc.Quote(ctx, akName, "CHF")
	require.NoError(t, err)
	assert.Equal(t, "USD", q.Currency, "unknown currencies fall back to USD")
}

func TestService_QuoteWithoutEstimate(t *testing.T) {
	svc := newTestService(t, testSnapshot(t, false))

	q, err := svc.Quote(context.Background(), "Sticker | Unpriced", "EUR")
	require.NoError(t, err)
	assert.Equal(t, MissingEstimate, q.Display)
	assert.Nil(t, q.Estimate)
}

func TestService_QuoteNonFiniteEstimate(t *testing.T) {
	snap := testSnapshot(t, false)
	priced := snap.index[akName]
	inf := math.Inf(1)
	priced.Estimate = &inf
	snap.index[akName] = priced

	q, err := newTestService(t, snap).Quote(context.Background(), akName, "USD")
	require.NoError(t, err)
	assert.Equal(t, MissingEstimate, q.Display)
	assert.Nil(t, q.Estimate)
}

func TestService_QuoteErrors(t *testing.T) {
	ctx := context.Background()

	_, err := newTestService(t, testSnapshot(t, false)).Quote(ctx, "Nope", "USD")
	assert.ErrorIs(t, err, ErrItemNotFound)

	_, err = newTestService(t, testSnapshot(t, true)).Quote(ctx, akName, "CHF")
	assert.ErrorIs(t, err, exchange.ErrUnknownCurrency)
}

func TestService_SearchPhaseStats(t *testing.T) {
	svc := newTestService(t, testSnapshot(t, false))
	ctx := context.Background()

	keys, err := svc.Search(ctx, "karambit phase", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{knifeName + " Phase 2"}, keys)

	phase, err := svc.Phase(ctx, "icon-p2")
	require.NoError(t, err)
	assert.Equal(t, "Phase 2", phase)

	_, err = svc.Phase(ctx, "icon-unknown")
	assert.ErrorIs(t, err, ErrPhaseNotFound)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 1, stats.Phases)
	assert.Equal(t, 2, stats.Currencies)
}

func TestSnapshot_KeysAreSortedAndUnique(t *testing.T) {
	snap := testSnapshot(t, false)

	keys := snap.Keys()
	seen := map[string]bool{}
	for i, k := range keys {
		assert.False(t, seen[k])
		seen[k] = true
		if i > 0 {
			assert.Less(t, keys[i-1], k)
		}
	}
	assert.Len(t, keys, snap.Stats().Total)
}

func TestNewSnapshot_NilDatasets(t *testing.T) {
	snap := NewSnapshot(nil, nil, nil, nil, nil)

	assert.Empty(t, snap.Keys())
	_, ok := snap.Phase("x")
	assert.False(t, ok)

	got, err := snap.Formatter().Format(12.345, "USD")
	require.NoError(t, err)
	assert.Equal(t, "$12.35", got)
}
