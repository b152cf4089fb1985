package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"feather/feature/pricing"

	"gorm.io/gorm"
)

// BatchSize is the number of rows per INSERT.
const BatchSize = 500

// ErrNoDatabase indicates history was requested without a database connection.
var ErrNoDatabase = errors.New("history database not configured")

// Store persists price points.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store over db.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the price_points table.
func (s *Store) Migrate(ctx context.Context) error {
	if s.db == nil {
		return ErrNoDatabase
	}
	if err := s.db.WithContext(ctx).AutoMigrate(&PricePoint{}); err != nil {
		return fmt.Errorf("failed to migrate price points: %w", err)
	}
	return nil
}

// Points converts every estimated entry of snap into a price point captured at at.
func Points(snap *pricing.Snapshot, at time.Time) []PricePoint {
	points := make([]PricePoint, 0, snap.Stats().Estimated)
	for _, key := range snap.Keys() {
		priced, _ := snap.Lookup(key)
		if priced.Estimate == nil {
			continue
		}
		points = append(points, PricePoint{
			ItemKey:    key,
			Estimate:   priced.Estimate,
			Steam:      priced.Steam,
			Skinport:   priced.Skinport,
			Buff:       priced.Buff,
			CapturedAt: at,
		})
	}
	return points
}

// Record stores a point for every estimated item of snap and returns how many were written.
func (s *Store) Record(ctx context.Context, snap *pricing.Snapshot, at time.Time) (int, error) {
	if s.db == nil {
		return 0, ErrNoDatabase
	}

	points := Points(snap, at)
	if len(points) == 0 {
		return 0, nil
	}

	if err := s.db.WithContext(ctx).CreateInBatches(points, BatchSize).Error; err != nil {
		return 0, fmt.Errorf("failed to record price points: %w", err)
	}
	return len(points), nil
}

// Latest returns up to limit points for key, newest first.
func (s *Store) Latest(ctx context.Context, key string, limit int) ([]PricePoint, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}
	if limit <= 0 {
		limit = 30
	}

	var points []PricePoint
	err := s.db.WithContext(ctx).
		Where("item_key = ?", key).
		Order("captured_at DESC").
		Limit(limit).
		Find(&points).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query price points: %w", err)
	}
	return points, nil
}

// Keys returns every item key with at least one recorded point.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}

	var keys []string
	err := s.db.WithContext(ctx).
		Model(&PricePoint{}).
		Distinct("item_key").
		Pluck("item_key", &keys).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recorded keys: %w", err)
	}
	return keys, nil
}
