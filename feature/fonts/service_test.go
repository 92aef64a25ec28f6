package fonts_test

import (
	"context"
	"testing"

	"font-catalog/core/catalog"
	"font-catalog/core/provider/fixture"
	"font-catalog/feature/fonts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testFamilies() []catalog.FamilyInfo {
	return []catalog.FamilyInfo{
		{
			Name: "Arial",
			Faces: []catalog.FaceInfo{
				{
					Name: "Regular", Weight: catalog.WeightRegular, Style: catalog.StyleNormal,
					Stretch: catalog.StretchNormal, Filename: "/fonts/arial.ttf",
					Properties: []catalog.Property{
						{ID: catalog.PropertyFullName, Value: "Arial"},
						{ID: catalog.PropertyPostscriptName, Value: "ArialMT"},
					},
				},
				{
					Name: "Bold", Weight: catalog.WeightBold, Style: catalog.StyleNormal,
					Stretch: catalog.StretchNormal, Filename: "/fonts/arialbd.ttf",
					Properties: []catalog.Property{
						{ID: catalog.PropertyFullName, Value: "Arial Bold"},
					},
				},
			},
		},
		{
			Name: "Georgia",
			Faces: []catalog.FaceInfo{
				{Name: "Regular", Weight: catalog.WeightRegular, Style: catalog.StyleNormal, Stretch: catalog.StretchNormal},
			},
		},
	}
}

func newTestService(t *testing.T) *fonts.Service {
	t.Helper()
	collection, err := catalog.New(context.Background(), fixture.Static(testFamilies()...))
	require.NoError(t, err)
	return fonts.NewService(collection, zap.NewNop())
}

func TestListFamilies(t *testing.T) {
	svc := newTestService(t)

	families := svc.ListFamilies()
	require.Len(t, families, 2)
	assert.Equal(t, "Arial", families[0].Name)
	assert.Equal(t, 2, families[0].VariantCount)
	assert.Equal(t, "Georgia", families[1].Name)
	assert.Equal(t, 1, families[1].VariantCount)
}

func TestGetFamily(t *testing.T) {
	svc := newTestService(t)

	detail, err := svc.GetFamily("Arial")
	require.NoError(t, err)
	assert.Equal(t, "Arial", detail.Name)
	require.Len(t, detail.Variants, 2)
	assert.Equal(t, "Regular", detail.Variants[0].Name)
	assert.Equal(t, "ArialMT", detail.Variants[0].Properties["postscript_name"])
	assert.Equal(t, 700, detail.Variants[1].Weight)
}

func TestGetFamilyUnknown(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetFamily("Comic Sans")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestBestVariant(t *testing.T) {
	svc := newTestService(t)

	detail, err := svc.BestVariant("Arial", catalog.MatchQuery{Weight: catalog.WeightBold})
	require.NoError(t, err)
	assert.Equal(t, "Bold", detail.Name)
	assert.Equal(t, "Arial", detail.Family)
}

func TestQueryVariants(t *testing.T) {
	svc := newTestService(t)

	variants, err := svc.Query(map[string]any{"full_name": "Arial Bold"})
	require.NoError(t, err)
	require.Len(t, variants, 1)
	assert.Equal(t, "Bold", variants[0].Name)
}

func TestQueryVariantsInvalidFilter(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Query(map[string]any{})
	assert.ErrorIs(t, err, catalog.ErrInvalidArgument)
}
