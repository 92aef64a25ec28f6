package catalog_test

import (
	"testing"

	"font-catalog/core/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func arial(t *testing.T) *catalog.Family {
	t.Helper()
	fam, err := newTestCollection(t).FamilyByName("Arial")
	require.NoError(t, err)
	return fam
}

func TestFamily_String(t *testing.T) {
	assert.Equal(t, `<FontFamily name="Arial">`, arial(t).String())
}

func TestFamily_Len(t *testing.T) {
	assert.Equal(t, 4, arial(t).Len())
}

func TestFamily_VariantAt(t *testing.T) {
	fam := arial(t)

	first, err := fam.VariantAt(0)
	require.NoError(t, err)
	assert.Equal(t, "Regular", first.Name())

	_, err = fam.VariantAt(-1)
	assert.ErrorIs(t, err, catalog.ErrIndexOutOfRange)
	_, err = fam.VariantAt(fam.Len())
	assert.ErrorIs(t, err, catalog.ErrIndexOutOfRange)
}

func TestFamily_Get(t *testing.T) {
	fam := arial(t)

	byIndex, err := fam.Get(3)
	require.NoError(t, err)
	byName, err := fam.Get("Bold Italic")
	require.NoError(t, err)
	assert.True(t, byIndex.Equal(byName))

	_, err = fam.Get("Chiseled")
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	_, err = fam.Get(2.5)
	assert.ErrorIs(t, err, catalog.ErrTypeMismatch)
}

func TestFamily_VariantsEnumeratesAll(t *testing.T) {
	fam := arial(t)

	variants := fam.Variants()
	require.Len(t, variants, fam.Len())
	for i, v := range variants {
		got, err := fam.VariantAt(i)
		require.NoError(t, err)
		assert.True(t, v.Equal(got))
	}
}
