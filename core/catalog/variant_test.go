package catalog_test

import (
	"strings"
	"testing"

	"font-catalog/core/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariant_Accessors(t *testing.T) {
	fam := arial(t)
	v, err := fam.VariantAt(0)
	require.NoError(t, err)

	assert.Equal(t, "Regular", v.Name())
	assert.Equal(t, catalog.WeightRegular, v.Weight())
	assert.Equal(t, catalog.StyleNormal, v.Style())
	assert.Equal(t, catalog.StretchNormal, v.Stretch())
	assert.Equal(t, "/fonts/arial.ttf", v.Filename())
	assert.Same(t, fam, v.Family())
}

func TestVariant_String(t *testing.T) {
	v, err := arial(t).VariantAt(0)
	require.NoError(t, err)

	rep := v.String()
	assert.True(t, strings.HasPrefix(rep, `<FontVariant name=Regular, family=<FontFamily name="Arial">,`), rep)
}

func TestVariant_Equal(t *testing.T) {
	fam := arial(t)

	a, err := fam.VariantAt(0)
	require.NoError(t, err)
	b, err := fam.Get("Regular")
	require.NoError(t, err)
	other, err := fam.VariantAt(1)
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(other))
	assert.False(t, a.Equal(nil))
}
