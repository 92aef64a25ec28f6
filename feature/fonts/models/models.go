package models

// FamilySummary describes a font family in listing responses.
type FamilySummary struct {
	Name         string `json:"name"`
	VariantCount int    `json:"variant_count"`
}

// VariantDetail describes a single font variant.
type VariantDetail struct {
	Name       string            `json:"name"`
	Family     string            `json:"family"`
	Weight     int               `json:"weight"`
	Style      string            `json:"style"`
	Stretch    int               `json:"stretch,omitempty"`
	Filename   string            `json:"filename,omitempty"`
	Properties map[string]string `json:"properties,omitempty"`
}

// FamilyDetail describes a font family together with its variants.
type FamilyDetail struct {
	Name     string          `json:"name"`
	Variants []VariantDetail `json:"variants"`
}
