package fontfile

import (
	"fmt"
	"strings"

	"font-catalog/core/catalog"

	"golang.org/x/image/font/sfnt"
)

// namePropertyMapping pairs OpenType name-table ids with the catalog's
// property enumeration in canonical property order, so every parsed face
// reports its information in the same order.
var namePropertyMapping = []struct {
	nameID   sfnt.NameID
	property catalog.PropertyID
}{
	{sfnt.NameIDCopyright, catalog.PropertyCopyright},
	{sfnt.NameIDVersion, catalog.PropertyVersions},
	{sfnt.NameIDTrademark, catalog.PropertyTrademark},
	{sfnt.NameIDManufacturer, catalog.PropertyManufacturer},
	{sfnt.NameIDDesigner, catalog.PropertyDesigner},
	{sfnt.NameIDDesignerURL, catalog.PropertyDesignerURL},
	{sfnt.NameIDDescription, catalog.PropertyDescription},
	{sfnt.NameIDVendorURL, catalog.PropertyVendorURL},
	{sfnt.NameIDLicense, catalog.PropertyLicenseDescription},
	{sfnt.NameIDLicenseURL, catalog.PropertyLicenseInfoURL},
	{sfnt.NameIDFamily, catalog.PropertyWin32FamilyNames},
	{sfnt.NameIDSubfamily, catalog.PropertyWin32SubfamilyNames},
	{sfnt.NameIDSampleText, catalog.PropertySampleText},
	{sfnt.NameIDFull, catalog.PropertyFullName},
	{sfnt.NameIDPostScript, catalog.PropertyPostscriptName},
	{sfnt.NameIDTypographicFamily, catalog.PropertyTypographicFamilyNames},
	{sfnt.NameIDTypographicSubfamily, catalog.PropertyTypographicSubfamilyNames},
	{sfnt.NameIDWWSFamily, catalog.PropertyWWSFamilyName},
}

// Parse extracts the catalog metadata of one TrueType/OpenType binary. The
// returned family name is the typographic family when present, the legacy
// family otherwise; the face is named after the subfamily. Weight, style and
// stretch are inferred from the subfamily wording, which is how faces that
// predate the OS/2 axis fields advertise them.
func Parse(data []byte, path string) (family string, face catalog.FaceInfo, err error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return "", catalog.FaceInfo{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	var buf sfnt.Buffer
	name := func(id sfnt.NameID) string {
		s, err := f.Name(&buf, id)
		if err != nil {
			// sfnt.ErrNotFound for absent entries; anything else means an
			// unusable name table entry, equally absent for our purposes.
			return ""
		}
		return strings.TrimSpace(s)
	}

	family = name(sfnt.NameIDTypographicFamily)
	if family == "" {
		family = name(sfnt.NameIDFamily)
	}
	if family == "" {
		return "", catalog.FaceInfo{}, fmt.Errorf("%s carries no family name", path)
	}

	subfamily := name(sfnt.NameIDTypographicSubfamily)
	if subfamily == "" {
		subfamily = name(sfnt.NameIDSubfamily)
	}
	if subfamily == "" {
		subfamily = "Regular"
	}

	face = catalog.FaceInfo{
		Name:     subfamily,
		Weight:   WeightFromName(subfamily),
		Style:    StyleFromName(subfamily),
		Stretch:  StretchFromName(subfamily),
		Filename: path,
	}
	for _, m := range namePropertyMapping {
		if val := name(m.nameID); val != "" {
			face.Properties = append(face.Properties, catalog.Property{ID: m.property, Value: val})
		}
	}
	return family, face, nil
}

// normalize lowers a face name and strips separators so "Extra-Bold Italic"
// and "ExtraBold Italic" compare alike.
func normalize(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(name))
}

// WeightFromName infers the weight class from subfamily wording. The more
// specific words are tested first so "SemiBold" is not read as "Bold".
func WeightFromName(name string) catalog.Weight {
	n := normalize(name)
	switch {
	case strings.Contains(n, "thin"), strings.Contains(n, "hairline"):
		return catalog.WeightThin
	case strings.Contains(n, "extralight"), strings.Contains(n, "ultralight"):
		return catalog.WeightExtraLight
	case strings.Contains(n, "light"):
		return catalog.WeightLight
	case strings.Contains(n, "medium"):
		return catalog.WeightMedium
	case strings.Contains(n, "semibold"), strings.Contains(n, "demibold"), strings.Contains(n, "demi"):
		return catalog.WeightSemiBold
	case strings.Contains(n, "extrabold"), strings.Contains(n, "ultrabold"):
		return catalog.WeightExtraBold
	case strings.Contains(n, "black"), strings.Contains(n, "heavy"):
		return catalog.WeightBlack
	case strings.Contains(n, "bold"):
		return catalog.WeightBold
	}
	return catalog.WeightRegular
}

// StyleFromName infers the slant style from subfamily wording.
func StyleFromName(name string) catalog.Style {
	n := normalize(name)
	switch {
	case strings.Contains(n, "italic"):
		return catalog.StyleItalic
	case strings.Contains(n, "oblique"):
		return catalog.StyleOblique
	}
	return catalog.StyleNormal
}

// StretchFromName infers the stretch class from subfamily wording.
func StretchFromName(name string) catalog.Stretch {
	n := normalize(name)
	switch {
	case strings.Contains(n, "ultracondensed"):
		return catalog.StretchUltraCondensed
	case strings.Contains(n, "extracondensed"):
		return catalog.StretchExtraCondensed
	case strings.Contains(n, "semicondensed"):
		return catalog.StretchSemiCondensed
	case strings.Contains(n, "condensed"), strings.Contains(n, "narrow"):
		return catalog.StretchCondensed
	case strings.Contains(n, "ultraexpanded"):
		return catalog.StretchUltraExpanded
	case strings.Contains(n, "extraexpanded"):
		return catalog.StretchExtraExpanded
	case strings.Contains(n, "semiexpanded"):
		return catalog.StretchSemiExpanded
	case strings.Contains(n, "expanded"), strings.Contains(n, "extended"):
		return catalog.StretchExpanded
	}
	return catalog.StretchNormal
}

// IsFontFile reports whether path looks like a font binary this package can
// read. Collections (.ttc) are excluded: sfnt exposes them via ParseCollection
// and the enumeration providers handle single-face files only.
func IsFontFile(path string) bool {
	switch strings.ToLower(pathExt(path)) {
	case ".ttf", ".otf":
		return true
	}
	return false
}

func pathExt(path string) string {
	for i := len(path) - 1; i >= 0 && path[i] != '/' && path[i] != '\\'; i-- {
		if path[i] == '.' {
			return path[i:]
		}
	}
	return ""
}
