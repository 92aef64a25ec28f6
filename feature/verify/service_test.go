package verify_test

import (
	"context"
	"testing"

	"font-catalog/core/catalog"
	"font-catalog/core/database"
	"font-catalog/core/provider/fixture"
	"font-catalog/core/provider/fontdb"
	"font-catalog/feature/verify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, fontdb.Migrate(db))
	return db
}

func scanFixture() []catalog.FamilyInfo {
	return []catalog.FamilyInfo{
		{
			Name: "Arial",
			Faces: []catalog.FaceInfo{
				{Name: "Regular", Weight: catalog.WeightRegular, Style: catalog.StyleNormal, Stretch: catalog.StretchNormal, Filename: "/fonts/arial.ttf"},
				{Name: "Bold", Weight: catalog.WeightBold, Style: catalog.StyleNormal, Stretch: catalog.StretchNormal, Filename: "/fonts/arialbd.ttf"},
			},
		},
	}
}

func TestCheckCleanRegistry(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	require.NoError(t, fontdb.Replace(ctx, db, scanFixture()))

	svc := verify.NewService(fixture.Static(scanFixture()...), db, zap.NewNop())
	report, err := svc.Check(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, report.TotalScanned)
	assert.Equal(t, 2, report.TotalRegistered)
	assert.True(t, report.Clean())
	assert.NotEmpty(t, report.GeneratedAt)
}

func TestCheckUnregisteredAndMissing(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	registered := []catalog.FamilyInfo{
		{
			Name: "Arial",
			Faces: []catalog.FaceInfo{
				{Name: "Regular", Weight: catalog.WeightRegular, Style: catalog.StyleNormal, Stretch: catalog.StretchNormal, Filename: "/fonts/arial.ttf"},
				{Name: "Black", Weight: 900, Style: catalog.StyleNormal, Stretch: catalog.StretchNormal, Filename: "/fonts/arialblk.ttf"},
			},
		},
	}
	require.NoError(t, fontdb.Replace(ctx, db, registered))

	svc := verify.NewService(fixture.Static(scanFixture()...), db, zap.NewNop())
	report, err := svc.Check(ctx)
	require.NoError(t, err)

	assert.False(t, report.Clean())
	assert.Equal(t, []string{"Arial/Bold"}, report.Unregistered)
	assert.Equal(t, []string{"Arial/Black"}, report.Missing)
	assert.Empty(t, report.Mismatches)
}

func TestCheckDetectsMismatch(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	stale := scanFixture()
	stale[0].Faces[1].Weight = 600
	stale[0].Faces[1].Filename = "/fonts/old-arialbd.ttf"
	require.NoError(t, fontdb.Replace(ctx, db, stale))

	svc := verify.NewService(fixture.Static(scanFixture()...), db, zap.NewNop())
	report, err := svc.Check(ctx)
	require.NoError(t, err)

	require.Len(t, report.Mismatches, 1)
	assert.Equal(t, "Arial/Bold", report.Mismatches[0].Face)
	assert.Len(t, report.Mismatches[0].Details, 2)
}

func TestSyncReplacesRegistry(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	stale := []catalog.FamilyInfo{
		{
			Name:  "Georgia",
			Faces: []catalog.FaceInfo{{Name: "Regular", Weight: catalog.WeightRegular, Style: catalog.StyleNormal, Stretch: catalog.StretchNormal}},
		},
	}
	require.NoError(t, fontdb.Replace(ctx, db, stale))

	svc := verify.NewService(fixture.Static(scanFixture()...), db, zap.NewNop())
	report, err := svc.Sync(ctx)
	require.NoError(t, err)

	assert.True(t, report.Clean())
	assert.Equal(t, 2, report.TotalRegistered)
}
