package catalog

import "fmt"

// Variant is one concrete face within a Family: a specific weight, style and
// stretch combination backed by a font file. Variants are immutable views
// into their owning Collection snapshot and are valid for as long as the
// Collection is held.
type Variant struct {
	family   *Family
	index    int
	name     string
	weight   Weight
	style    Style
	stretch  Stretch
	filename string
	info     *PropertyMap
}

// Name returns the face display name, e.g. "Bold Italic".
func (v *Variant) Name() string { return v.name }

func (v *Variant) Weight() Weight   { return v.weight }
func (v *Variant) Style() Style     { return v.style }
func (v *Variant) Stretch() Stretch { return v.stretch }

// Filename returns the path of the backing font file.
func (v *Variant) Filename() string { return v.filename }

// Family returns the owning family. The reference identifies but does not
// own the family; both are views into the same snapshot.
func (v *Variant) Family() *Family { return v.family }

// Index returns the variant's position in its family's enumeration order.
func (v *Variant) Index() int { return v.index }

// Information returns the variant's localized property table.
func (v *Variant) Information() *PropertyMap { return v.info }

// Equal reports whether both variants reference the same face of the same
// family within one snapshot.
func (v *Variant) Equal(other *Variant) bool {
	if v == nil || other == nil {
		return v == other
	}
	return v.family == other.family && v.index == other.index
}

func (v *Variant) String() string {
	return fmt.Sprintf("<FontVariant name=%s, family=%s, style=%s, weight=%d>",
		v.name, v.family, v.style, v.weight)
}
