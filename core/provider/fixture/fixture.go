// Package fixture provides a static font enumeration provider backed by an
// in-memory snapshot or a JSON file. It is the provider of choice for tests
// and local development without real fonts.
package fixture

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"font-catalog/core/catalog"
)

// Provider serves a fixed snapshot.
type Provider struct {
	families []catalog.FamilyInfo
}

// Static builds a provider from an in-memory snapshot.
func Static(families ...catalog.FamilyInfo) *Provider {
	return &Provider{families: families}
}

// FromFile builds a provider from a JSON file holding a list of families in
// the catalog snapshot shape.
func FromFile(path string) (*Provider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading font fixture: %w", err)
	}
	var families []catalog.FamilyInfo
	if err := json.Unmarshal(data, &families); err != nil {
		return nil, fmt.Errorf("decoding font fixture %s: %w", path, err)
	}
	return &Provider{families: families}, nil
}

// Enumerate implements catalog.Provider.
func (p *Provider) Enumerate(_ context.Context) ([]catalog.FamilyInfo, error) {
	out := make([]catalog.FamilyInfo, len(p.families))
	copy(out, p.families)
	return out, nil
}
