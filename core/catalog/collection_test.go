package catalog_test

import (
	"context"
	"errors"
	"testing"

	"font-catalog/core/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollection_Len(t *testing.T) {
	c := newTestCollection(t)
	assert.Equal(t, 4, c.Len())
}

func TestCollection_IndexAndNameAgree(t *testing.T) {
	c := newTestCollection(t)

	for i := 0; i < c.Len(); i++ {
		byIndex, err := c.FamilyAt(i)
		require.NoError(t, err)

		byName, err := c.FamilyByName(byIndex.Name())
		require.NoError(t, err)

		assert.Same(t, byIndex, byName)
		assert.True(t, byIndex.Equal(byName))
	}
}

func TestCollection_UnknownFamily(t *testing.T) {
	c := newTestCollection(t)

	_, err := c.FamilyByName("__definitely_not_a_font__")
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
	assert.ErrorContains(t, err, "unknown font family '__definitely_not_a_font__'")
}

func TestCollection_IndexOutOfRange(t *testing.T) {
	c := newTestCollection(t)

	for _, i := range []int{-1, c.Len(), c.Len() + 5} {
		_, err := c.FamilyAt(i)
		assert.ErrorIs(t, err, catalog.ErrIndexOutOfRange)
	}
}

func TestCollection_GetDispatchesOnKeyType(t *testing.T) {
	c := newTestCollection(t)

	byIndex, err := c.Get(0)
	require.NoError(t, err)
	byName, err := c.Get("Arial")
	require.NoError(t, err)
	assert.Same(t, byIndex, byName)

	_, err = c.Get(1.5)
	assert.ErrorIs(t, err, catalog.ErrTypeMismatch)
}

func TestCollection_DuplicateFamiliesMerge(t *testing.T) {
	provider := &staticProvider{families: []catalog.FamilyInfo{
		{Name: "Split", Faces: []catalog.FaceInfo{
			{Name: "Regular", Weight: 400, Style: catalog.StyleNormal, Stretch: 5, Filename: "/fonts/a.ttf"},
		}},
		{Name: "Split", Faces: []catalog.FaceInfo{
			{Name: "Bold", Weight: 700, Style: catalog.StyleNormal, Stretch: 5, Filename: "/fonts/b.ttf"},
		}},
	}}

	c, err := catalog.New(context.Background(), provider)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())

	fam, err := c.FamilyByName("Split")
	require.NoError(t, err)
	assert.Equal(t, 2, fam.Len())
}

func TestCollection_ProviderErrorPropagates(t *testing.T) {
	_, err := catalog.New(context.Background(), failingProvider{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "enumerating fonts")
}

type failingProvider struct{}

func (failingProvider) Enumerate(_ context.Context) ([]catalog.FamilyInfo, error) {
	return nil, errors.New("enumeration backend unavailable")
}

func TestCollection_EmptyFamiliesDropped(t *testing.T) {
	provider := &staticProvider{families: []catalog.FamilyInfo{
		{Name: "Ghost"},
		arialFamily(),
	}}

	c, err := catalog.New(context.Background(), provider)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())

	_, err = c.FamilyByName("Ghost")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}
