package fonts

import (
	"font-catalog/core/catalog"
	"font-catalog/feature/fonts/models"

	"go.uber.org/zap"
)

// Service exposes catalog operations to the HTTP layer.
type Service struct {
	collection *catalog.Collection
	logger     *zap.Logger
}

// NewService creates a new fonts service.
func NewService(collection *catalog.Collection, logger *zap.Logger) *Service {
	return &Service{collection: collection, logger: logger}
}

// ListFamilies returns a summary of every family in the catalog.
func (s *Service) ListFamilies() []models.FamilySummary {
	families := s.collection.Families()
	out := make([]models.FamilySummary, 0, len(families))
	for _, fam := range families {
		out = append(out, models.FamilySummary{Name: fam.Name(), VariantCount: fam.Len()})
	}
	return out
}

// GetFamily returns a family and all of its variants.
func (s *Service) GetFamily(name string) (*models.FamilyDetail, error) {
	fam, err := s.collection.FamilyByName(name)
	if err != nil {
		return nil, err
	}
	detail := &models.FamilyDetail{Name: fam.Name()}
	for _, v := range fam.Variants() {
		detail.Variants = append(detail.Variants, variantDetail(v))
	}
	return detail, nil
}

// BestVariant resolves the closest variant of a family for the given criteria.
func (s *Service) BestVariant(family string, q catalog.MatchQuery) (*models.VariantDetail, error) {
	fam, err := s.collection.FamilyByName(family)
	if err != nil {
		return nil, err
	}
	v := fam.BestVariant(q)
	detail := variantDetail(v)
	return &detail, nil
}

// Query returns every variant whose properties match all of the filters.
func (s *Service) Query(filters map[string]any) ([]models.VariantDetail, error) {
	variants, err := s.collection.MatchingVariants(filters)
	if err != nil {
		return nil, err
	}
	out := make([]models.VariantDetail, 0, len(variants))
	for _, v := range variants {
		out = append(out, variantDetail(v))
	}
	return out, nil
}

func variantDetail(v *catalog.Variant) models.VariantDetail {
	detail := models.VariantDetail{
		Name:     v.Name(),
		Family:   v.Family().Name(),
		Weight:   int(v.Weight()),
		Style:    v.Style().String(),
		Stretch:  int(v.Stretch()),
		Filename: v.Filename(),
	}
	info := v.Information()
	if info.Len() > 0 {
		detail.Properties = make(map[string]string, info.Len())
		for _, p := range info.Items() {
			detail.Properties[p.Name()] = p.Value
		}
	}
	return detail
}
