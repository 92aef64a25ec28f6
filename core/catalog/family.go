package catalog

import "fmt"

// Family is a named, ordered group of variants sharing a base design, e.g.
// "Arial". Variant order is the enumeration order reported by the Provider
// and is stable for the lifetime of the Collection.
type Family struct {
	name     string
	variants []*Variant
}

// Name returns the family display name.
func (f *Family) Name() string { return f.name }

// Len reports the number of variants in the family. Families obtained from a
// populated Collection always have at least one.
func (f *Family) Len() int { return len(f.variants) }

// VariantAt returns the variant at position i in enumeration order.
func (f *Family) VariantAt(i int) (*Variant, error) {
	if i < 0 || i >= len(f.variants) {
		return nil, fmt.Errorf("variant index %d out of range [0, %d): %w", i, len(f.variants), ErrIndexOutOfRange)
	}
	return f.variants[i], nil
}

// VariantByName returns the variant whose face name equals name exactly.
func (f *Family) VariantByName(name string) (*Variant, error) {
	for _, v := range f.variants {
		if v.name == name {
			return v, nil
		}
	}
	return nil, fmt.Errorf("unknown font variant '%s' in family '%s': %w", name, f.name, ErrNotFound)
}

// Get is index-style access dispatching on the key type: an int addresses a
// position, a string addresses a face name. Any other key type is a
// type mismatch.
func (f *Family) Get(key any) (*Variant, error) {
	switch k := key.(type) {
	case int:
		return f.VariantAt(k)
	case string:
		return f.VariantByName(k)
	}
	return nil, fmt.Errorf("'%T' key cannot address a font variant: %w", key, ErrTypeMismatch)
}

// Variants returns all variants in enumeration order. This is the plain
// enumeration helper; use BestVariant for criteria-driven selection.
func (f *Family) Variants() []*Variant {
	out := make([]*Variant, len(f.variants))
	copy(out, f.variants)
	return out
}

// Equal reports whether both families carry the same name. Name equality is
// the identity of a family across snapshots.
func (f *Family) Equal(other *Family) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.name == other.name
}

func (f *Family) String() string {
	return fmt.Sprintf("<FontFamily name=%q>", f.name)
}
