package pricing

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"feather/core/blob"
	"feather/core/dataset"
	"feather/feature/exchange"
	"feather/feature/market"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testCatalogURL  = "http://catalog.test/all.json"
	testPricesURL   = "http://prices.test/prices_v6.json"
	testExchangeURL = "http://rates.test/{token}/latest/USD"
	testDopplerURL  = "http://doppler.test/doppler.json"
)

const catalogPayload = `{
  "skin-1": {"id": "skin-1", "name": "AK-47 | Redline", "market_hash_name": "AK-47 | Redline (Field-Tested)", "rarity": {"color": "#d32ce6"}},
  "skin-2": {"id": "skin-2", "market_hash_name": "★ Karambit | Doppler (Factory New)", "phase": "Phase 2"}
}`

const pricesPayload = `{
  "AK-47 | Redline (Field-Tested)": {"steam": {"last_24h": 20}, "lootfarm": 20, "swapgg": 20},
  "★ Karambit | Doppler (Factory New)": {"cstrade": {"price": 900, "doppler": {"Phase 2": 1500}}}
}`

const ratesPayload = `{"result": "success", "conversion_rates": {"USD": 1, "EUR": 0.5}}`

const dopplerPayload = `{"icon-p2": "Phase 2"}`

// urlFetcher serves canned bodies by URL and counts calls.
type urlFetcher struct {
	mu     sync.Mutex
	bodies map[string][]byte
	calls  map[string]int
}

func newURLFetcher() *urlFetcher {
	return &urlFetcher{
		bodies: map[string][]byte{
			testCatalogURL:                     []byte(catalogPayload),
			testPricesURL:                      []byte(pricesPayload),
			"http://rates.test/tok/latest/USD": []byte(ratesPayload),
			testDopplerURL:                     []byte(dopplerPayload),
		},
		calls: map[string]int{},
	}
}

func (u *urlFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.calls[url]++
	body, ok := u.bodies[url]
	if !ok {
		return nil, fmt.Errorf("no route for %s", url)
	}
	return body, nil
}

func (u *urlFetcher) set(url string, body []byte) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if body == nil {
		delete(u.bodies, url)
		return
	}
	u.bodies[url] = body
}

func testConfig() Config {
	return Config{
		CatalogURL:    testCatalogURL,
		PricesURL:     testPricesURL,
		ExchangeURL:   testExchangeURL,
		ExchangeToken: "tok",
		DopplerURL:    testDopplerURL,
	}
}

func newTestBuilder(t *testing.T, cfg Config, store blob.Store, fetcher *urlFetcher) *Builder {
	formats, err := exchange.DefaultFormats()
	require.NoError(t, err)
	return NewBuilder(cfg, store, fetcher, formats, zap.NewNop())
}

func TestBuilder_Build(t *testing.T) {
	store := blob.NewFileStore(t.TempDir())
	fetcher := newURLFetcher()
	b := newTestBuilder(t, testConfig(), store, fetcher)

	snap, err := b.Build(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, Stats{Total: 2, Resolved: 2, Estimated: 2}, snap.Stats())
	assert.False(t, snap.Report().Degraded())
	for _, r := range snap.Report().Datasets {
		assert.Equal(t, dataset.OriginRemote, r.Origin, r.Name)
		assert.Positive(t, r.Entries, r.Name)
	}

	ak, ok := snap.Lookup("AK-47 | Redline (Field-Tested)")
	require.True(t, ok)
	assert.InDelta(t, 20, *ak.Estimate, 1e-9)

	knife, ok := snap.Lookup("★ Karambit | Doppler (Factory New) Phase 2")
	require.True(t, ok)
	assert.Equal(t, 1500.0, *knife.Estimate)

	phase, ok := snap.Phase("icon-p2")
	assert.True(t, ok)
	assert.Equal(t, "Phase 2", phase)

	got, err := snap.Formatter().Format(*ak.Estimate, "EUR")
	require.NoError(t, err)
	assert.Equal(t, "€10.00", got)

	// Second build is served from the cache.
	snap2, err := b.Build(context.Background(), false)
	require.NoError(t, err)
	for _, r := range snap2.Report().Datasets {
		assert.Equal(t, dataset.OriginCache, r.Origin, r.Name)
	}
	assert.Equal(t, 1, fetcher.calls[testCatalogURL])
	assert.Equal(t, snap.Keys(), snap2.Keys())
}

func TestBuilder_GzipPrices(t *testing.T) {
	fetcher := newURLFetcher()
	fetcher.set(testPricesURL, gzipBytes(t, []byte(pricesPayload)))
	store := blob.NewFileStore(t.TempDir())

	snap, err := newTestBuilder(t, testConfig(), store, fetcher).Build(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 2, snap.Prices().Len())

	raw, err := store.Read(context.Background(), market.CacheID)
	require.NoError(t, err)
	assert.False(t, market.IsGzip(raw))
}

func TestBuilder_FailedDatasetIsEmpty(t *testing.T) {
	fetcher := newURLFetcher()
	fetcher.set(testPricesURL, nil)
	cfg := testConfig()
	cfg.DopplerURL = ""

	snap, err := newTestBuilder(t, cfg, blob.NewFileStore(t.TempDir()), fetcher).Build(context.Background(), false)
	require.NoError(t, err)

	assert.True(t, snap.Report().Degraded())
	byName := map[string]DatasetReport{}
	for _, r := range snap.Report().Datasets {
		byName[r.Name] = r
	}
	assert.True(t, byName[market.DatasetName].Failed())
	assert.True(t, byName[market.PhaseDatasetName].Failed())
	assert.Contains(t, byName[market.PhaseDatasetName].Error, dataset.ErrNoRemote.Error())
	assert.False(t, byName["catalog"].Failed())

	// Every item is still indexed, just without quotes.
	assert.Equal(t, Stats{Total: 2}, snap.Stats())
	assert.Equal(t, 0, snap.PhaseCount())
}

func TestBuilder_ForcedRefreshFallsBackToCache(t *testing.T) {
	ctx := context.Background()
	store := blob.NewFileStore(t.TempDir())
	fetcher := newURLFetcher()
	b := newTestBuilder(t, testConfig(), store, fetcher)

	_, err := b.Build(ctx, false)
	require.NoError(t, err)

	fetcher.set(testPricesURL, []byte("<html>upstream down</html>"))
	snap, err := b.Build(ctx, true)
	require.NoError(t, err)

	assert.Equal(t, 2, fetcher.calls[testCatalogURL], "forced builds skip the cache")
	assert.Equal(t, 2, snap.Prices().Len())
	for _, r := range snap.Report().Datasets {
		if r.Name == market.DatasetName {
			assert.Equal(t, dataset.OriginCache, r.Origin)
			assert.False(t, r.Failed())
		}
	}
}

func TestBuilder_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestBuilder(t, testConfig(), blob.NewFileStore(t.TempDir()), newURLFetcher()).Build(ctx, false)
	assert.True(t, errors.Is(err, context.Canceled))
}
