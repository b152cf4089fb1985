package history

import (
	"context"
	"errors"
	"strconv"
	"time"

	"feather/core/logger"
	"feather/feature/pricing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Snapshots yields the published pricing snapshot.
type Snapshots interface {
	Snapshot(ctx context.Context) (*pricing.Snapshot, error)
}

// Handler handles HTTP requests for price history.
type Handler struct {
	store     *Store
	snapshots Snapshots
	logger    *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(store *Store, snapshots Snapshots, logger *zap.Logger) *Handler {
	return &Handler{store: store, snapshots: snapshots, logger: logger}
}

// RegisterRoutes registers the history routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/history")
	group.Get("/", h.HandleLatest)
	group.Post("/record", h.HandleRecord)
}

// HandleLatest lists recorded prices of one item.
// @Summary Price History
// @Tags history
// @Produce json
// @Param name query string true "Price key"
// @Param limit query int false "Maximum points (default 30)"
// @Success 200 {array} PricePoint
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /history [get]
func (h *Handler) HandleLatest(c *fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}
	limit, _ := strconv.Atoi(c.Query("limit"))

	points, err := h.store.Latest(c.Context(), name, limit)
	if err != nil {
		logger.WithRayID(h.logger, c).Error("History query failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(points)
}

// HandleRecord stores the current snapshot.
// @Summary Record Prices
// @Description Stores one price point per estimated item of the published snapshot.
// @Tags history
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /history/record [post]
func (h *Handler) HandleRecord(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	snap, err := h.snapshots.Snapshot(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	at := time.Now().UTC()
	n, err := h.store.Record(c.Context(), snap, at)
	if errors.Is(err, ErrNoDatabase) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("Recording prices failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Recorded price points", zap.Int("points", n))
	return c.JSON(fiber.Map{"recorded": n, "captured_at": at})
}
