package pricing

import (
	"context"
	"sync"

	"feather/core/blob"
	"feather/core/dataset"
	"feather/core/fetch"
	"feather/core/metrics"
	"feather/feature/catalog"
	"feather/feature/exchange"
	"feather/feature/market"

	"go.uber.org/zap"
)

// DatasetReport is the outcome of loading one dataset.
type DatasetReport struct {
	Name    string         `json:"name"`
	Origin  dataset.Origin `json:"origin,omitempty"`
	Entries int            `json:"entries"`
	Error   string         `json:"error,omitempty"`
}

// Failed reports whether the dataset is empty because it could not be loaded.
func (r DatasetReport) Failed() bool {
	return r.Error != ""
}

// Report holds one DatasetReport per dataset, in a fixed order.
type Report struct {
	Datasets []DatasetReport `json:"datasets"`
}

// Degraded reports whether any dataset failed to load.
func (r Report) Degraded() bool {
	for _, d := range r.Datasets {
		if d.Failed() {
			return true
		}
	}
	return false
}

// Builder loads the four datasets and consolidates them into a Snapshot.
type Builder struct {
	catalog *dataset.Loader[catalog.Catalog]
	prices  *dataset.Loader[*market.Prices]
	phases  *dataset.Loader[market.PhaseMap]
	rates   *dataset.Loader[*exchange.Rates]
	formats exchange.Formats
	strict  bool
	logger  *zap.Logger
}

// NewBuilder wires the dataset loaders over a shared store and fetcher.
func NewBuilder(cfg Config, store blob.Store, fetcher fetch.Fetcher, formats exchange.Formats, logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg = cfg.withDefaults()

	return &Builder{
		catalog: catalog.NewLoader(store, fetcher, cfg.CatalogURL, logger),
		prices:  market.NewLoader(store, fetcher, cfg.PricesURL, logger),
		phases:  market.NewPhaseLoader(store, fetcher, cfg.DopplerURL, logger),
		rates:   exchange.NewLoader(store, fetcher, cfg.ExchangeURL, cfg.ExchangeToken, logger),
		formats: formats,
		strict:  cfg.StrictCurrency,
		logger:  logger,
	}
}

// Build loads every dataset concurrently and consolidates them. With force set the remote
// sources are contacted even when a cache exists. A dataset that cannot be loaded is reported
// and treated as empty; Build itself only fails when ctx is done.
func (b *Builder) Build(ctx context.Context, force bool) (*Snapshot, error) {
	var (
		wg      sync.WaitGroup
		items   catalog.Catalog
		prices  *market.Prices
		phases  market.PhaseMap
		rates   *exchange.Rates
		reports [4]DatasetReport
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		items, reports[0] = load(ctx, b.catalog, force, b.logger)
		reports[0].Entries = len(items)
	}()
	go func() {
		defer wg.Done()
		prices, reports[1] = load(ctx, b.prices, force, b.logger)
		reports[1].Entries = prices.Len()
	}()
	go func() {
		defer wg.Done()
		phases, reports[2] = load(ctx, b.phases, force, b.logger)
		reports[2].Entries = len(phases)
	}()
	go func() {
		defer wg.Done()
		rates, reports[3] = load(ctx, b.rates, force, b.logger)
		if rates != nil {
			reports[3].Entries = len(rates.ConversionRates)
		}
	}()
	wg.Wait()

	if err := ctx.Err(); err != nil {
		metrics.SnapshotBuildsTotal.WithLabelValues("canceled").Inc()
		return nil, err
	}

	snap := NewSnapshot(items, prices, phases, rates, exchange.NewFormatter(rates, b.formats, exchange.WithStrict(b.strict)))
	snap.report = Report{Datasets: reports[:]}

	for _, r := range reports {
		metrics.DatasetEntries.WithLabelValues(r.Name).Set(float64(r.Entries))
	}
	stats := snap.Stats()
	metrics.RecordIndex(stats.Total, stats.Resolved, stats.Collisions)
	for _, c := range snap.Collisions() {
		b.logger.Warn("Duplicate price key",
			zap.String("key", c.Key),
			zap.String("kept_id", c.KeptID),
			zap.String("dropped_id", c.DroppedID),
		)
	}

	status := "ok"
	if snap.report.Degraded() {
		status = "degraded"
	}
	metrics.SnapshotBuildsTotal.WithLabelValues(status).Inc()

	b.logger.Info("Processed items",
		zap.Int("resolved", stats.Resolved),
		zap.Int("total", stats.Total),
		zap.Int("collisions", stats.Collisions),
		zap.Bool("degraded", snap.report.Degraded()),
	)
	return snap, nil
}

// load runs one dataset load. A failed forced refresh falls back to the cache before the dataset
// is given up as empty.
func load[T any](ctx context.Context, l *dataset.Loader[T], force bool, logger *zap.Logger) (T, DatasetReport) {
	report := DatasetReport{Name: l.Name}
	log := logger.With(zap.String("dataset", l.Name))

	var (
		value T
		err   error
	)
	if force {
		value, err = l.Refresh(ctx)
		report.Origin = dataset.OriginRemote
		if err != nil {
			log.Warn("Refresh failed, falling back to cache", zap.Error(err))
			var cacheErr error
			if value, cacheErr = l.ReadCache(ctx); cacheErr == nil {
				report.Origin = dataset.OriginCache
				err = nil
			}
		}
	} else {
		value, report.Origin, err = l.Load(ctx)
	}

	if err != nil {
		log.Error("Dataset unavailable, continuing without it", zap.Error(err))
		report.Error = err.Error()
		report.Origin = ""
		var zero T
		return zero, report
	}
	return value, report
}
