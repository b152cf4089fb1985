package integrity

import (
	"feather/core/blob"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature exposes the integrity checks.
type Feature struct {
	service *Service
}

// NewFeature creates the integrity feature.
func NewFeature(store blob.Store, snapshots Snapshots, db *gorm.DB, logger *zap.Logger) *Feature {
	return &Feature{service: NewService(store, snapshots, db, logger)}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "integrity"
}

// IsEnabled returns true.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the integrity routes.
func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.service).RegisterRoutes(app)
	return nil
}
