package pricing

import (
	"github.com/gofiber/fiber/v2"
)

// Feature exposes the price API.
type Feature struct {
	service *Service
}

// NewFeature creates the pricing feature.
func NewFeature(service *Service) *Feature {
	return &Feature{service: service}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "pricing"
}

// IsEnabled returns true as prices are always served.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the price routes.
func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.service).RegisterRoutes(app)
	return nil
}
