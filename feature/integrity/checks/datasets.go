package checks

import (
	"context"
	"fmt"

	"feather/core/blob"
	"feather/feature/catalog"
	"feather/feature/exchange"
	"feather/feature/market"

	"golang.org/x/sync/errgroup"
)

// RequiredDatasets lists the cache blobs a fully warmed cache holds.
var RequiredDatasets = []string{
	catalog.CacheID,
	market.CacheID,
	exchange.CacheID,
	market.PhaseCacheID,
}

// CheckDatasets returns the required cache blobs that are missing, in RequiredDatasets order.
func CheckDatasets(ctx context.Context, store blob.Store) ([]string, error) {
	found := make([]bool, len(RequiredDatasets))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range RequiredDatasets {
		g.Go(func() error {
			ok, err := store.Exists(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to check %s: %w", id, err)
			}
			found[i] = ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	missing := make([]string, 0)
	for i, id := range RequiredDatasets {
		if !found[i] {
			missing = append(missing, id)
		}
	}
	return missing, nil
}
