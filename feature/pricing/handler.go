package pricing

import (
	"errors"
	"strconv"

	"feather/core/logger"
	"feather/feature/exchange"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for prices.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the price routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/prices")
	group.Get("/", h.HandlePrice)
	group.Get("/search", h.HandleSearch)
	group.Get("/stats", h.HandleStats)
	group.Get("/doppler/:icon", h.HandleDoppler)
	group.Post("/refresh", h.HandleRefresh)
}

// HandlePrice returns the consolidated price of one item.
// @Summary Get Item Price
// @Description Returns the consolidated estimate and headline vendor quotes for an exact price key ("hash name" or "hash name phase"), rendered in the requested currency.
// @Tags prices
// @Produce json
// @Param name query string true "Price key"
// @Param currency query string false "ISO 4217 display currency"
// @Success 200 {object} Quote
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /prices [get]
func (h *Handler) HandlePrice(c *fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}

	quote, err := h.service.Quote(c.Context(), name, c.Query("currency"))
	switch {
	case errors.Is(err, ErrItemNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Item could not be found"})
	case errors.Is(err, exchange.ErrUnknownCurrency):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		logger.WithRayID(h.service.logger, c).Error("Price lookup failed", zap.String("name", name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(quote)
}

// HandleSearch suggests price keys.
// @Summary Search Items
// @Description Returns price keys where every query word is contained in a word of the key, case-insensitively.
// @Tags prices
// @Produce json
// @Param q query string true "Search words"
// @Param limit query int false "Maximum results (default 15)"
// @Success 200 {object} map[string]interface{}
// @Router /prices/search [get]
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit"))

	keys, err := h.service.Search(c.Context(), c.Query("q"), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"query": c.Query("q"), "results": keys})
}

// HandleStats describes the published snapshot.
// @Summary Snapshot Statistics
// @Description Returns index counters and the per-dataset load report of the published snapshot.
// @Tags prices
// @Produce json
// @Success 200 {object} StatsView
// @Router /prices/stats [get]
func (h *Handler) HandleStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(stats)
}

// HandleDoppler resolves an icon id to its doppler phase.
// @Summary Doppler Phase
// @Tags prices
// @Produce json
// @Param icon path string true "Icon id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Not Found"
// @Router /prices/doppler/{icon} [get]
func (h *Handler) HandleDoppler(c *fiber.Ctx) error {
	icon := c.Params("icon")

	phase, err := h.service.Phase(c.Context(), icon)
	if errors.Is(err, ErrPhaseNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"icon": icon, "phase": phase})
}

// HandleRefresh reloads every dataset from its remote source.
// @Summary Refresh Prices
// @Description Downloads fresh datasets, rebuilds the index and publishes it. Datasets that fail to download keep their cached copy.
// @Tags prices
// @Produce json
// @Success 200 {object} StatsView
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /prices/refresh [post]
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering price refresh")

	if _, err := h.service.Refresh(c.Context()); err != nil {
		l.Error("Price refresh failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return h.HandleStats(c)
}
