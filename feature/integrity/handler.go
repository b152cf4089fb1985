package integrity

import (
	"feather/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/datasets", h.HandleDatasetCheck)
	group.Get("/snapshot", h.HandleSnapshotCheck)
	group.Get("/coverage", h.HandleCoverageCheck)
	group.Get("/schema", h.HandleSchemaCheck)
}

// HandleIntegrityCheck runs all integrity checks.
// @Summary Run All Integrity Checks
// @Description Checks dataset cache presence, snapshot health and, when a database is configured, the price history schema.
// @Tags integrity
// @Produce json
// @Success 200 {object} Report "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	logger.WithRayID(h.service.logger, c).Info("Triggering all integrity checks")
	return c.JSON(h.service.RunAll(c.Context()))
}

// HandleDatasetCheck checks and optionally restores the dataset cache.
// @Summary Check Dataset Cache
// @Description Checks that every dataset payload is cached. With fix=true, missing payloads are downloaded again.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Refresh datasets when payloads are missing"
// @Success 200 {object} map[string]interface{} "Dataset Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/datasets [get]
func (h *Handler) HandleDatasetCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	missing, err := h.service.CheckDatasets(c.Context())
	if err != nil {
		l.Error("Dataset check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if len(missing) > 0 {
		l.Warn("Missing dataset cache", zap.Strings("missing", missing))

		if fix {
			if err := h.service.FixDatasets(c.Context(), missing); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to refresh datasets",
					"details": err.Error(),
					"missing": missing,
				})
			}
			return c.JSON(fiber.Map{
				"status": "fixed",
				"fixed":  missing,
			})
		}
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"missing": missing,
	})
}

// HandleSnapshotCheck reports snapshot health.
// @Summary Check Snapshot
// @Description Reports failed datasets, key collisions, skipped vendor quotes and the share of items without vendor quotes.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.SnapshotReport
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/snapshot [get]
func (h *Handler) HandleSnapshotCheck(c *fiber.Ctx) error {
	report, err := h.service.CheckSnapshot(c.Context())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Snapshot check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandleCoverageCheck reconciles the keys known to each dataset.
// @Summary Check Key Coverage
// @Description Lists catalog items without vendor quotes, vendor quotes without catalog items and, when a database is configured, estimated items never recorded in history.
// @Tags integrity
// @Produce json
// @Success 200 {object} Coverage
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/coverage [get]
func (h *Handler) HandleCoverageCheck(c *fiber.Ctx) error {
	coverage, err := h.service.CheckCoverage(c.Context())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Coverage check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(coverage)
}

// HandleSchemaCheck compares the history table with its model.
// @Summary Check History Schema
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.SchemaReport
// @Failure 503 {object} map[string]string "Database not configured"
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	if !h.service.HasDatabase() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "database not configured"})
	}

	report, err := h.service.CheckSchema()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}
