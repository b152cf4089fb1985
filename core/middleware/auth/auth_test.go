package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(cfg Config) *fiber.App {
	app := fiber.New()
	app.Use(New(cfg))
	app.Get("/prices", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/metrics", func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app
}

func TestAuth(t *testing.T) {
	app := newApp(Config{ApiKey: "secret", Skip: []string{"/metrics"}})

	tests := []struct {
		name   string
		path   string
		header string
		value  string
		status int
	}{
		{"Missing key", "/prices", "", "", fiber.StatusUnauthorized},
		{"Wrong key", "/prices", Header, "nope", fiber.StatusUnauthorized},
		{"Header key", "/prices", Header, "secret", fiber.StatusOK},
		{"Bearer key", "/prices", fiber.HeaderAuthorization, "Bearer secret", fiber.StatusOK},
		{"Public path", "/metrics", "", "", fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestAuth_DisabledWithoutKey(t *testing.T) {
	resp, err := newApp(Config{}).Test(httptest.NewRequest("GET", "/prices", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
