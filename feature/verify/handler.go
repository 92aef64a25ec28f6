package verify

import (
	"font-catalog/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for registry verification.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the verify routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/verify")
	group.Get("/", h.HandleCheck)
	group.Post("/sync", h.HandleSync)
}

// HandleCheck reconciles the font source against the registry.
// @Summary Verify Registry
// @Description Scans the configured font source and reports differences against the registry.
// @Tags verify
// @Produce json
// @Success 200 {object} models.Report "Verification Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /verify [get]
func (h *Handler) HandleCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.Check(c.Context())
	if err != nil {
		l.Error("Registry verification failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(report)
}

// HandleSync overwrites the registry with a fresh scan.
// @Summary Sync Registry
// @Description Scans the configured font source, replaces the registry contents and returns the resulting report.
// @Tags verify
// @Produce json
// @Success 200 {object} models.Report "Verification Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /verify/sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Registry sync requested")

	report, err := h.service.Sync(c.Context())
	if err != nil {
		l.Error("Registry sync failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(report)
}
