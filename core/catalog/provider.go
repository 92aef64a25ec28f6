package catalog

import "context"

// Property is one informational entry of a face as supplied by a Provider.
type Property struct {
	ID    PropertyID `json:"id"`
	Value string     `json:"value"`
}

// Name returns the canonical string name of the entry's property id.
func (p Property) Name() string {
	return p.ID.Name()
}

// FaceInfo describes one concrete face as enumerated by a Provider.
type FaceInfo struct {
	// Name is the face display name within the family, e.g. "Bold Italic".
	Name     string     `json:"name"`
	Weight   Weight     `json:"weight"`
	Style    Style      `json:"style"`
	Stretch  Stretch    `json:"stretch"`
	Filename string     `json:"filename"`
	// Properties holds the localized informational strings of the face, in
	// the order the provider discovered them.
	Properties []Property `json:"properties,omitempty"`
}

// FamilyInfo is a named, ordered group of faces sharing a base design.
type FamilyInfo struct {
	Name  string     `json:"name"`
	Faces []FaceInfo `json:"faces"`
}

// Provider enumerates the fonts available to the host. New calls it exactly
// once per Collection: a single blocking call returning the complete
// snapshot. Implementations live under core/provider (directory scan, object
// bucket, database registry, fixtures).
type Provider interface {
	Enumerate(ctx context.Context) ([]FamilyInfo, error)
}
