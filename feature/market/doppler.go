package market

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
	// PhaseDatasetName identifies the doppler phase map in logs and metrics.
	PhaseDatasetName = "doppler"
	// PhaseCacheID is the blob holding the phase map.
	PhaseCacheID = "doppler.json"
)

// PhaseMap maps an item icon id to its doppler phase label.
type PhaseMap map[string]string

// Phase returns the phase label for icon.
func (m PhaseMap) Phase(icon string) (string, bool) {
	phase, ok := m[icon]
	return phase, ok
}

// ParsePhaseMap decodes a JSON object of icon id to phase label.
func ParsePhaseMap(data []byte) (PhaseMap, error) {
	var m PhaseMap
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("doppler: %w", err)
	}
	if m == nil {
		return nil, fmt.Errorf("doppler: payload is null")
	}
	return m, nil
}

// NewPhaseLoader creates the phase map loader. With an empty url the map is cache-only and a
// missing cache fails with dataset.ErrNoRemote.
func NewPhaseLoader(store blob.Store, fetcher fetch.Fetcher, url string, logger *zap.Logger) *dataset.Loader[PhaseMap] {
	loader := &dataset.Loader[PhaseMap]{
		Name:    PhaseDatasetName,
		CacheID: PhaseCacheID,
		Parse:   ParsePhaseMap,
		Store:   store,
		Logger:  logger,
	}
	if url != "" {
		loader.Fetch = func(ctx context.Context) ([]byte, error) {
			return fetcher.Fetch(ctx, url)
		}
	}
	return loader
}
