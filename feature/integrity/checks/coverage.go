package checks

import (
	"context"

	"feather/core/reconcile"
	"feather/feature/pricing"
)

// Coverage source names.
const (
	SourceCatalog   = "catalog"
	SourceVendor    = "vendor"
	SourceEstimated = "estimated"
	SourceHistory   = "history"
)

// CheckVendorCoverage compares the hash names of priceable catalog items with the hash names the
// vendor feed quotes. Keys missing from the vendor side have no price; keys missing from the
// catalog side are quotes for items the catalog does not know yet.
func CheckVendorCoverage(ctx context.Context, snap *pricing.Snapshot) (*reconcile.Report, error) {
	items := snap.Catalog()
	names := make([]string, 0, len(items))
	for _, item := range items {
		if item.Priceable() {
			names = append(names, item.MarketHashName)
		}
	}

	return reconcile.ReconcileAll(ctx,
		reconcile.NewStaticSource(SourceCatalog, names),
		reconcile.NewStaticSource(SourceVendor, snap.Prices().Names()),
	)
}

// CheckHistoryCoverage compares the estimated index keys with the keys recorded in history.
func CheckHistoryCoverage(ctx context.Context, snap *pricing.Snapshot, recorded func(ctx context.Context) ([]string, error)) (*reconcile.Report, error) {
	keys := make([]string, 0, snap.Stats().Estimated)
	for _, key := range snap.Keys() {
		if priced, ok := snap.Lookup(key); ok && priced.Estimate != nil {
			keys = append(keys, key)
		}
	}

	return reconcile.ReconcileAll(ctx,
		reconcile.NewStaticSource(SourceEstimated, keys),
		reconcile.NewFuncSource(SourceHistory, recorded),
	)
}
