package catalog

import (
	"context"
	"fmt"

	"feather/core/blob"
	"feather/core/dataset"
	"feather/core/fetch"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	// DatasetName identifies the catalog in logs and metrics.
	DatasetName = "catalog"
	// CacheID is the blob holding the raw catalog payload.
	CacheID = "all.json"
	// DefaultURL is the public catalog endpoint.
	DefaultURL = "https://bymykel.github.io/CSGO-API/api/en/all.json"
)

// Parse decodes the catalog payload: a JSON object keyed by item id.
func Parse(data []byte) (Catalog, error) {
	var raw map[string]Item
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("catalog: payload is null")
	}

	items := make(Catalog, len(raw))
	for id, item := range raw {
		if item.ID == "" {
			item.ID = id
		}
		items[id] = item
	}
	return items, nil
}

// NewLoader creates the cache-backed catalog loader.
func NewLoader(store blob.Store, fetcher fetch.Fetcher, url string, logger *zap.Logger) *dataset.Loader[Catalog] {
	if url == "" {
		url = DefaultURL
	}
	return &dataset.Loader[Catalog]{
		Name:    DatasetName,
		CacheID: CacheID,
		Parse:   Parse,
		Fetch: func(ctx context.Context) ([]byte, error) {
			return fetcher.Fetch(ctx, url)
		},
		Store:  store,
		Logger: logger,
	}
}
