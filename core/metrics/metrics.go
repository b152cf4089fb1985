// Package metrics provides Prometheus metrics for the pricing pipeline.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// DatasetLoadsTotal counts dataset loads by origin (cache, remote) and outcome.
	DatasetLoadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feather_dataset_loads_total",
			Help: "Total number of dataset loads by origin and status",
		},
		[]string{"dataset", "origin", "status"},
	)

	// DatasetEntries is the number of entries in the last loaded dataset.
	DatasetEntries = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "feather_dataset_entries",
			Help: "Number of entries in the currently published dataset",
		},
		[]string{"dataset"},
	)

	// CatalogItems is the number of priced index entries in the published snapshot.
	CatalogItems = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "feather_catalog_items",
			Help: "Number of catalog items in the price index",
		},
	)

	// ResolvedItems is the number of index entries that matched a vendor quote bundle.
	ResolvedItems = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "feather_resolved_items",
			Help: "Number of catalog items with at least one resolvable vendor bundle",
		},
	)

	// IndexKeyCollisions is the number of catalog entries dropped because their key was taken.
	IndexKeyCollisions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "feather_index_key_collisions",
			Help: "Number of catalog entries whose index key collided with an earlier entry",
		},
	)

	// VendorDecodeErrorsTotal counts vendor sub-objects that could not be decoded.
	VendorDecodeErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feather_vendor_decode_errors_total",
			Help: "Total number of vendor sub-objects skipped because they could not be decoded",
		},
		[]string{"vendor"},
	)

	// SnapshotBuildsTotal counts snapshot builds by status.
	SnapshotBuildsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feather_snapshot_builds_total",
			Help: "Total number of pricing snapshot builds",
		},
		[]string{"status"},
	)
)

var registerOnce sync.Once

// Register registers all collectors with the default registry. Safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			DatasetLoadsTotal,
			DatasetEntries,
			CatalogItems,
			ResolvedItems,
			IndexKeyCollisions,
			VendorDecodeErrorsTotal,
			SnapshotBuildsTotal,
		)
	})
}

// Handler returns the HTTP handler exposing the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordDatasetLoad records the outcome of one dataset load.
func RecordDatasetLoad(dataset, origin string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	DatasetLoadsTotal.WithLabelValues(dataset, origin, status).Inc()
}

// RecordIndex publishes the health counters of a freshly built price index.
func RecordIndex(total, resolved, collisions int) {
	CatalogItems.Set(float64(total))
	ResolvedItems.Set(float64(resolved))
	IndexKeyCollisions.Set(float64(collisions))
}
