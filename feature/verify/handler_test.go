package verify_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"font-catalog/core/provider/fixture"
	"font-catalog/core/provider/fontdb"
	"font-catalog/feature/verify"
	"font-catalog/feature/verify/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandleCheck(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, fontdb.Replace(context.Background(), db, scanFixture()))

	h := verify.NewHandler(verify.NewService(fixture.Static(scanFixture()...), db, zap.NewNop()))
	app := fiber.New()
	h.RegisterRoutes(app)

	resp, err := app.Test(httptest.NewRequest("GET", "/verify/", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var report models.Report
	require.NoError(t, json.Unmarshal(body, &report))
	assert.True(t, report.Clean())
}

func TestHandleSync(t *testing.T) {
	db := setupDB(t)

	h := verify.NewHandler(verify.NewService(fixture.Static(scanFixture()...), db, zap.NewNop()))
	app := fiber.New()
	h.RegisterRoutes(app)

	resp, err := app.Test(httptest.NewRequest("POST", "/verify/sync", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var report models.Report
	require.NoError(t, json.Unmarshal(body, &report))
	assert.Equal(t, 2, report.TotalRegistered)
}
