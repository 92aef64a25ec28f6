package verify

import (
	"font-catalog/core/catalog"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	db      *gorm.DB
}

// NewFeature creates a new Verify feature.
func NewFeature(source catalog.Provider, db *gorm.DB, logger *zap.Logger) *Feature {
	svc := NewService(source, db, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h, db: db}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "verify"
}

// IsEnabled checks if the feature is enabled. Verification needs a registry
// database to compare against.
func (f *Feature) IsEnabled() bool {
	return f.db != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
