package integrity

import (
	"context"

	"feather/core/blob"
	"feather/core/reconcile"
	"feather/feature/history"
	"feather/feature/integrity/checks"
	"feather/feature/pricing"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Snapshots yields and refreshes the pricing snapshot.
type Snapshots interface {
	Snapshot(ctx context.Context) (*pricing.Snapshot, error)
	Refresh(ctx context.Context) (*pricing.Snapshot, error)
}

// Service handles integrity checks.
type Service struct {
	store     blob.Store
	snapshots Snapshots
	db        *gorm.DB
	logger    *zap.Logger
}

// NewService creates a new integrity service. db may be nil.
func NewService(store blob.Store, snapshots Snapshots, db *gorm.DB, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:     store,
		snapshots: snapshots,
		db:        db,
		logger:    logger,
	}
}

// CheckDatasets returns the missing dataset cache blobs.
func (s *Service) CheckDatasets(ctx context.Context) ([]string, error) {
	return checks.CheckDatasets(ctx, s.store)
}

// FixDatasets refreshes every dataset from its remote source, which rewrites the cache.
func (s *Service) FixDatasets(ctx context.Context, missing []string) error {
	s.logger.Info("Refreshing datasets to restore cache", zap.Strings("missing", missing))
	_, err := s.snapshots.Refresh(ctx)
	return err
}

// CheckSnapshot reports the health of the published snapshot.
func (s *Service) CheckSnapshot(ctx context.Context) (*checks.SnapshotReport, error) {
	snap, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return checks.CheckSnapshot(snap), nil
}

// HasDatabase reports whether the history database is connected.
func (s *Service) HasDatabase() bool {
	return s.db != nil
}

// CheckSchema compares the price history table with its model.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db, &history.PricePoint{})
}

// Coverage holds the key reconciliations of the pricing pipeline.
type Coverage struct {
	Vendor  *reconcile.Report `json:"vendor"`
	History *reconcile.Report `json:"history,omitempty"`
}

// CheckCoverage reconciles catalog and vendor keys and, when a database is connected, estimated
// keys and recorded history keys.
func (s *Service) CheckCoverage(ctx context.Context) (*Coverage, error) {
	snap, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	coverage := &Coverage{}
	if coverage.Vendor, err = checks.CheckVendorCoverage(ctx, snap); err != nil {
		return nil, err
	}

	if s.HasDatabase() {
		store := history.NewStore(s.db)
		if coverage.History, err = checks.CheckHistoryCoverage(ctx, snap, store.Keys); err != nil {
			return nil, err
		}
	}
	return coverage, nil
}

// Report is the combined result of every check. Check failures are reported inline.
type Report struct {
	Datasets map[string]any `json:"datasets"`
	Snapshot any            `json:"snapshot"`
	Coverage any            `json:"coverage"`
	Schema   any            `json:"schema,omitempty"`
}

// RunAll runs every check.
func (s *Service) RunAll(ctx context.Context) *Report {
	report := &Report{}

	if missing, err := s.CheckDatasets(ctx); err != nil {
		report.Datasets = map[string]any{"status": "error", "error": err.Error()}
	} else {
		report.Datasets = map[string]any{"status": "ok", "missing": missing}
	}

	if snap, err := s.CheckSnapshot(ctx); err != nil {
		report.Snapshot = map[string]any{"status": "error", "error": err.Error()}
	} else {
		report.Snapshot = snap
	}

	if coverage, err := s.CheckCoverage(ctx); err != nil {
		report.Coverage = map[string]any{"status": "error", "error": err.Error()}
	} else {
		report.Coverage = coverage
	}

	if s.HasDatabase() {
		if schema, err := s.CheckSchema(); err != nil {
			report.Schema = map[string]any{"status": "error", "error": err.Error()}
		} else {
			report.Schema = schema
		}
	}

	return report
}
