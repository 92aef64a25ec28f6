package catalog_test

import (
	"context"
	"testing"

	"font-catalog/core/catalog"

	"github.com/stretchr/testify/require"
)

// staticProvider serves a fixed snapshot for tests.
type staticProvider struct {
	families []catalog.FamilyInfo
}

func (p *staticProvider) Enumerate(_ context.Context) ([]catalog.FamilyInfo, error) {
	return p.families, nil
}

func arialFamily() catalog.FamilyInfo {
	return catalog.FamilyInfo{
		Name: "Arial",
		Faces: []catalog.FaceInfo{
			{
				Name: "Regular", Weight: catalog.WeightRegular, Style: catalog.StyleNormal,
				Stretch: catalog.StretchNormal, Filename: "/fonts/arial.ttf",
				Properties: []catalog.Property{
					{ID: catalog.PropertyCopyright, Value: "(c) The Monotype Corporation"},
					{ID: catalog.PropertyFullName, Value: "Arial"},
					{ID: catalog.PropertyPostscriptName, Value: "ArialMT"},
				},
			},
			{
				Name: "Italic", Weight: catalog.WeightRegular, Style: catalog.StyleItalic,
				Stretch: catalog.StretchNormal, Filename: "/fonts/ariali.ttf",
				Properties: []catalog.Property{
					{ID: catalog.PropertyCopyright, Value: "(c) The Monotype Corporation"},
					{ID: catalog.PropertyFullName, Value: "Arial Italic"},
				},
			},
			{
				Name: "Bold", Weight: catalog.WeightBold, Style: catalog.StyleNormal,
				Stretch: catalog.StretchNormal, Filename: "/fonts/arialbd.ttf",
				Properties: []catalog.Property{
					{ID: catalog.PropertyFullName, Value: "Arial Bold"},
				},
			},
			{
				Name: "Bold Italic", Weight: catalog.WeightBold, Style: catalog.StyleItalic,
				Stretch: catalog.StretchNormal, Filename: "/fonts/arialbi.ttf",
				Properties: []catalog.Property{
					{ID: catalog.PropertyFullName, Value: "Arial Bold Italic"},
					{ID: catalog.PropertyPostscriptName, Value: "Arial-BoldItalicMT"},
				},
			},
		},
	}
}

func testSnapshot() []catalog.FamilyInfo {
	return []catalog.FamilyInfo{
		arialFamily(),
		{
			// Only two weights in the Normal group, for tie-break tests.
			Name: "Duospace",
			Faces: []catalog.FaceInfo{
				{Name: "Regular", Weight: 400, Style: catalog.StyleNormal, Stretch: catalog.StretchNormal, Filename: "/fonts/duo.ttf"},
				{Name: "Heavy", Weight: 1000, Style: catalog.StyleNormal, Stretch: catalog.StretchNormal, Filename: "/fonts/duoheavy.ttf"},
			},
		},
		{
			// Oblique but no Italic, for style fallback tests.
			Name: "Slanted Sans",
			Faces: []catalog.FaceInfo{
				{Name: "Regular", Weight: 400, Style: catalog.StyleNormal, Stretch: catalog.StretchNormal, Filename: "/fonts/slant.ttf"},
				{Name: "Oblique", Weight: 400, Style: catalog.StyleOblique, Stretch: catalog.StretchNormal, Filename: "/fonts/slanto.ttf"},
			},
		},
		{
			// Mixed stretch classes, for the stretch-aware path.
			Name: "Compressa",
			Faces: []catalog.FaceInfo{
				{Name: "Condensed", Weight: 400, Style: catalog.StyleNormal, Stretch: catalog.StretchCondensed, Filename: "/fonts/comp-cond.ttf"},
				{Name: "Regular", Weight: 400, Style: catalog.StyleNormal, Stretch: catalog.StretchNormal, Filename: "/fonts/comp.ttf"},
				{Name: "Expanded Italic", Weight: 400, Style: catalog.StyleItalic, Stretch: catalog.StretchExpanded, Filename: "/fonts/comp-expi.ttf"},
			},
		},
	}
}

func newTestCollection(t *testing.T) *catalog.Collection {
	t.Helper()
	c, err := catalog.New(context.Background(), &staticProvider{families: testSnapshot()})
	require.NoError(t, err)
	return c
}
