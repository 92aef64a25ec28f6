package catalog

import (
	"context"
	"fmt"
)

// Collection is an immutable snapshot of the installed font catalog. It is
// built exactly once from a Provider and never reflects later font installs
// or removals; refreshing means building a new Collection. After
// construction every accessor is a pure lookup, safe for concurrent readers
// without locking.
type Collection struct {
	families []*Family
	byName   map[string]*Family
}

// New builds a Collection snapshot from the provider. This is the only
// expensive or blocking operation of the catalog; the context is handed to
// the provider's single Enumerate call. Family names are unique within the
// snapshot: duplicate provider entries are merged in enumeration order.
// Families without faces and property entries outside the closed enumeration
// are dropped. Every variant's information map is guaranteed to carry the
// family name.
func New(ctx context.Context, provider Provider) (*Collection, error) {
	infos, err := provider.Enumerate(ctx)
	if err != nil {
		return nil, fmt.Errorf("enumerating fonts: %w", err)
	}

	c := &Collection{byName: make(map[string]*Family, len(infos))}
	for _, info := range infos {
		if len(info.Faces) == 0 {
			continue
		}
		fam, ok := c.byName[info.Name]
		if !ok {
			fam = &Family{name: info.Name}
			c.byName[info.Name] = fam
			c.families = append(c.families, fam)
		}
		for _, face := range info.Faces {
			fam.variants = append(fam.variants, newVariant(fam, len(fam.variants), face))
		}
	}
	return c, nil
}

func newVariant(fam *Family, index int, face FaceInfo) *Variant {
	info := newPropertyMap(face.Properties)
	if _, ok := info.byID[PropertyWin32FamilyNames]; !ok {
		// Every variant exposes at least its family name.
		info.byID[PropertyWin32FamilyNames] = len(info.entries)
		info.byName[PropertyWin32FamilyNames.Name()] = len(info.entries)
		info.entries = append(info.entries, Property{ID: PropertyWin32FamilyNames, Value: fam.name})
	}
	return &Variant{
		family:   fam,
		index:    index,
		name:     face.Name,
		weight:   face.Weight,
		style:    face.Style,
		stretch:  face.Stretch,
		filename: face.Filename,
		info:     info,
	}
}

// Len reports the number of families in the snapshot.
func (c *Collection) Len() int { return len(c.families) }

// FamilyAt returns the family at position i in enumeration order.
func (c *Collection) FamilyAt(i int) (*Family, error) {
	if i < 0 || i >= len(c.families) {
		return nil, fmt.Errorf("family index %d out of range [0, %d): %w", i, len(c.families), ErrIndexOutOfRange)
	}
	return c.families[i], nil
}

// FamilyByName returns the family whose name equals name. The match is exact
// and case-sensitive.
func (c *Collection) FamilyByName(name string) (*Family, error) {
	if fam, ok := c.byName[name]; ok {
		return fam, nil
	}
	return nil, fmt.Errorf("unknown font family '%s': %w", name, ErrNotFound)
}

// Get is index-style access dispatching on the key type: an int addresses a
// position, a string addresses a family name.
func (c *Collection) Get(key any) (*Family, error) {
	switch k := key.(type) {
	case int:
		return c.FamilyAt(k)
	case string:
		return c.FamilyByName(k)
	}
	return nil, fmt.Errorf("'%T' key cannot address a font family: %w", key, ErrTypeMismatch)
}

// Families returns all families in enumeration order.
func (c *Collection) Families() []*Family {
	out := make([]*Family, len(c.families))
	copy(out, c.families)
	return out
}
