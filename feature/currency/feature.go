package currency

import "github.com/gofiber/fiber/v2"

// Feature exposes the currency API.
type Feature struct {
	service *Service
}

// NewFeature creates the currency feature.
func NewFeature(snapshots Snapshots) *Feature {
	return &Feature{service: NewService(snapshots)}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "currency"
}

// IsEnabled returns true.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the currency routes.
func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.service).RegisterRoutes(app)
	return nil
}
