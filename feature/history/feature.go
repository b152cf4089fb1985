package history

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature exposes the price history API. It is only enabled with a database.
type Feature struct {
	db        *gorm.DB
	snapshots Snapshots
	logger    *zap.Logger
}

// NewFeature creates the history feature. db may be nil.
func NewFeature(db *gorm.DB, snapshots Snapshots, logger *zap.Logger) *Feature {
	return &Feature{db: db, snapshots: snapshots, logger: logger}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "history"
}

// IsEnabled reports whether a database is connected.
func (f *Feature) IsEnabled() bool {
	return f.db != nil
}

// Load migrates the table and registers the routes.
func (f *Feature) Load(app fiber.Router) error {
	store := NewStore(f.db)
	if err := store.Migrate(context.Background()); err != nil {
		return err
	}
	NewHandler(store, f.snapshots, f.logger).RegisterRoutes(app)
	return nil
}
