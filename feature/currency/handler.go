package currency

import (
	"errors"
	"strconv"

	"feather/feature/exchange"

	"github.com/gofiber/fiber/v2"
)

// DefaultCompleteLimit caps code suggestions.
const DefaultCompleteLimit = 10

// Handler handles HTTP requests for display currencies.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the currency routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/currency")
	group.Get("/", h.HandleList)
	group.Get("/search", h.HandleSearch)
	group.Get("/format", h.HandleFormat)
}

// HandleList lists supported currencies.
// @Summary List Currencies
// @Tags currency
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /currency [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	codes, err := h.service.Codes(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"codes": codes})
}

// HandleSearch autocompletes a currency code.
// @Summary Autocomplete Currency
// @Tags currency
// @Produce json
// @Param prefix query string false "Code prefix (case-insensitive)"
// @Param limit query int false "Maximum results (default 10)"
// @Success 200 {object} map[string]interface{}
// @Router /currency/search [get]
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit <= 0 {
		limit = DefaultCompleteLimit
	}

	codes, err := h.service.Complete(c.Context(), c.Query("prefix"), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"codes": codes})
}

// HandleFormat renders a USD amount in a display currency.
// @Summary Format Amount
// @Tags currency
// @Produce json
// @Param value query number true "Amount in USD"
// @Param code query string true "ISO 4217 code"
// @Success 200 {object} Conversion
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /currency/format [get]
func (h *Handler) HandleFormat(c *fiber.Ctx) error {
	value, err := strconv.ParseFloat(c.Query("value"), 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "value must be a number"})
	}

	conv, err := h.service.Format(c.Context(), value, c.Query("code"))
	if errors.Is(err, exchange.ErrUnknownCurrency) || errors.Is(err, exchange.ErrMalformedTemplate) ||
		errors.Is(err, exchange.ErrInvalidAmount) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(conv)
}
