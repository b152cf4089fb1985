package currency

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"feather/feature/exchange"
	"feather/feature/pricing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSnapshots struct {
	snap *pricing.Snapshot
	err  error
}

func (f fixedSnapshots) Snapshot(ctx context.Context) (*pricing.Snapshot, error) {
	return f.snap, f.err
}

func setupTestApp(t *testing.T, strict bool) *fiber.App {
	formats, err := exchange.DefaultFormats()
	require.NoError(t, err)
	rates := &exchange.Rates{ConversionRates: map[string]float64{"USD": 1, "EUR": 0.5, "EGP": 48, "GBP": 0.8}}
	snap := pricing.NewSnapshot(nil, nil, nil, rates, exchange.NewFormatter(rates, formats, exchange.WithStrict(strict)))

	app := fiber.New()
	require.NoError(t, NewFeature(fixedSnapshots{snap: snap}).Load(app))
	return app
}

func decode[T any](t *testing.T, app *fiber.App, target string, wantStatus int) T {
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, wantStatus, resp.StatusCode)

	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestHandleList(t *testing.T) {
	body := decode[map[string][]string](t, setupTestApp(t, false), "/currency", 200)
	assert.Equal(t, []string{"EGP", "EUR", "GBP", "USD"}, body["codes"])
}

func TestHandleSearch(t *testing.T) {
	app := setupTestApp(t, false)

	body := decode[map[string][]string](t, app, "/currency/search?prefix=e", 200)
	assert.Equal(t, []string{"EGP", "EUR"}, body["codes"])

	body = decode[map[string][]string](t, app, "/currency/search?prefix=&limit=1", 200)
	assert.Equal(t, []string{"EGP"}, body["codes"])
}

func TestHandleFormat(t *testing.T) {
	app := setupTestApp(t, false)

	conv := decode[Conversion](t, app, "/currency/format?value=12.345&code=USD", 200)
	assert.Equal(t, "$12.35", conv.Display)
	assert.Equal(t, "12.35", conv.Amount)

	conv = decode[Conversion](t, app, "/currency/format?value=3&code=gbp", 200)
	assert.Equal(t, "GBP", conv.Currency)
	assert.Equal(t, "£2.40", conv.Display)

	decode[map[string]string](t, app, "/currency/format?value=abc&code=USD", 400)
}

func TestHandleFormat_NonFiniteValue(t *testing.T) {
	app := setupTestApp(t, false)

	for _, value := range []string{"NaN", "Inf", "-Inf", "%2BInf"} {
		t.Run(value, func(t *testing.T) {
			body := decode[map[string]string](t, app, "/currency/format?value="+value+"&code=USD", 400)
			assert.Contains(t, body["error"], "invalid amount")
		})
	}
}

func TestHandleFormat_Strict(t *testing.T) {
	decode[map[string]string](t, setupTestApp(t, true), "/currency/format?value=1&code=CHF", 400)
}

func TestHandleList_SnapshotFailure(t *testing.T) {
	app := fiber.New()
	NewHandler(NewService(fixedSnapshots{err: errors.New("no data")})).RegisterRoutes(app)

	resp, err := app.Test(httptest.NewRequest("GET", "/currency", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}
