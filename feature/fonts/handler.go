package fonts

import (
	"errors"
	"fmt"
	"strconv"

	"font-catalog/core/catalog"
	"font-catalog/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the font catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the font catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/fonts")
	group.Get("/families", h.HandleListFamilies)
	group.Get("/families/:name", h.HandleGetFamily)
	group.Get("/families/:name/best", h.HandleBestVariant)
	group.Get("/variants", h.HandleQueryVariants)
}

// HandleListFamilies returns a summary of every font family.
// @Summary List Families
// @Description List every font family in the catalog.
// @Tags fonts
// @Produce json
// @Success 200 {array} models.FamilySummary "Families"
// @Router /fonts/families [get]
func (h *Handler) HandleListFamilies(c *fiber.Ctx) error {
	return c.JSON(h.service.ListFamilies())
}

// HandleGetFamily returns a single family and its variants.
// @Summary Get Family
// @Description Get a font family and all of its variants.
// @Tags fonts
// @Produce json
// @Param name path string true "Family Name (e.g. 'Arial')"
// @Success 200 {object} models.FamilyDetail "Family Detail"
// @Failure 404 {object} map[string]string "Unknown Family"
// @Router /fonts/families/{name} [get]
func (h *Handler) HandleGetFamily(c *fiber.Ctx) error {
	name := c.Params("name")
	l := logger.WithRayID(h.service.logger, c)

	detail, err := h.service.GetFamily(name)
	if err != nil {
		l.Warn("Family lookup failed", zap.String("family", name), zap.Error(err))
		return errorResponse(c, err)
	}
	return c.JSON(detail)
}

// HandleBestVariant resolves the best matching variant of a family.
// @Summary Best Variant
// @Description Resolve the variant of a family that best matches the given criteria.
// @Tags fonts
// @Produce json
// @Param name path string true "Family Name"
// @Param weight query string false "Weight number or name (e.g. '700' or 'bold')"
// @Param style query string false "Style name ('normal', 'italic' or 'oblique')"
// @Param width query string false "Stretch number or name (e.g. '5' or 'condensed')"
// @Param italic query bool false "Shorthand for style=italic"
// @Success 200 {object} models.VariantDetail "Best Variant"
// @Failure 400 {object} map[string]string "Invalid Criteria"
// @Failure 404 {object} map[string]string "Unknown Family"
// @Router /fonts/families/{name}/best [get]
func (h *Handler) HandleBestVariant(c *fiber.Ctx) error {
	name := c.Params("name")
	l := logger.WithRayID(h.service.logger, c)

	q, err := matchQueryFromRequest(c)
	if err != nil {
		l.Warn("Invalid match criteria", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	detail, err := h.service.BestVariant(name, q)
	if err != nil {
		l.Warn("Variant match failed", zap.String("family", name), zap.Error(err))
		return errorResponse(c, err)
	}
	return c.JSON(detail)
}

// HandleQueryVariants returns every variant matching the query string filters.
// @Summary Query Variants
// @Description Find all variants whose properties match every query parameter.
// @Tags fonts
// @Produce json
// @Param full_name query string false "Full font name"
// @Param postscript_name query string false "PostScript name"
// @Success 200 {array} models.VariantDetail "Matching Variants"
// @Failure 400 {object} map[string]string "Invalid Filters"
// @Router /fonts/variants [get]
func (h *Handler) HandleQueryVariants(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	filters := make(map[string]any)
	for key, val := range c.Queries() {
		filters[key] = val
	}

	variants, err := h.service.Query(filters)
	if err != nil {
		l.Warn("Variant query failed", zap.Error(err))
		return errorResponse(c, err)
	}
	return c.JSON(variants)
}

func matchQueryFromRequest(c *fiber.Ctx) (catalog.MatchQuery, error) {
	var q catalog.MatchQuery

	if raw := c.Query("weight"); raw != "" {
		w, err := catalog.ParseWeight(raw)
		if err != nil {
			return q, err
		}
		q.Weight = w
	}
	if raw := c.Query("style"); raw != "" {
		s, err := catalog.ParseStyle(raw)
		if err != nil {
			return q, err
		}
		q.Style = s
	}
	if raw := c.Query("width"); raw != "" {
		st, err := catalog.ParseStretch(raw)
		if err != nil {
			return q, err
		}
		q.Stretch = st
	}
	if raw := c.Query("italic"); raw != "" {
		italic, err := strconv.ParseBool(raw)
		if err != nil {
			return q, fmt.Errorf("invalid italic flag %q", raw)
		}
		q.Italic = italic
	}
	return q, nil
}

func errorResponse(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, catalog.ErrNotFound), errors.Is(err, catalog.ErrIndexOutOfRange):
		status = fiber.StatusNotFound
	case errors.Is(err, catalog.ErrInvalidArgument), errors.Is(err, catalog.ErrTypeMismatch):
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
