// Package fontdb provides a font enumeration provider backed by the font
// registry database. The registry holds previously scanned font metadata, so
// a catalog can be served on hosts that never see the font files themselves.
// Replace persists a fresh snapshot, which is how the verify feature syncs
// the registry.
package fontdb

import (
	"context"
	"fmt"

	"font-catalog/core/catalog"

	"gorm.io/gorm"
)

// Provider enumerates fonts from the registry tables.
type Provider struct {
	db *gorm.DB
}

// New creates a registry-backed provider.
func New(db *gorm.DB) *Provider {
	return &Provider{db: db}
}

// Migrate creates or updates the registry tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&FontFace{}, &FontProperty{})
}

// Enumerate implements catalog.Provider. Faces come back in registration
// order grouped under their family, families in first-registration order.
func (p *Provider) Enumerate(ctx context.Context) ([]catalog.FamilyInfo, error) {
	var rows []FontFace
	err := p.db.WithContext(ctx).
		Preload("Properties").
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("loading font registry: %w", err)
	}

	var (
		order   []string
		grouped = make(map[string][]catalog.FaceInfo)
	)
	for _, row := range rows {
		if _, seen := grouped[row.Family]; !seen {
			order = append(order, row.Family)
		}
		grouped[row.Family] = append(grouped[row.Family], row.faceInfo())
	}

	families := make([]catalog.FamilyInfo, 0, len(order))
	for _, name := range order {
		families = append(families, catalog.FamilyInfo{Name: name, Faces: grouped[name]})
	}
	return families, nil
}

// Replace atomically rewrites the registry with the given snapshot.
func Replace(ctx context.Context, db *gorm.DB, families []catalog.FamilyInfo) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&FontProperty{}).Error; err != nil {
			return fmt.Errorf("clearing font properties: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&FontFace{}).Error; err != nil {
			return fmt.Errorf("clearing font faces: %w", err)
		}
		for _, fam := range families {
			for _, face := range fam.Faces {
				row := faceRow(fam.Name, face)
				if err := tx.Create(&row).Error; err != nil {
					return fmt.Errorf("registering %s/%s: %w", fam.Name, face.Name, err)
				}
			}
		}
		return nil
	})
}
