package middleware

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-hrms/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func actorApp(skipAuth bool) *fiber.App {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/me", AuthMiddleware(skipAuth), func(c *fiber.Ctx) error {
		return c.SendString(utils.ActorID(c.UserContext()))
	})
	return app
}

func TestAuthMiddleware(t *testing.T) {
	utils.SetSecret("mw-secret")
	token, err := utils.GenerateToken("emp-11", []string{"hr"}, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name     string
		skip     bool
		header   string
		status   int
		wantBody string
	}{
		{"skip auth injects dev claims", true, "", fiber.StatusOK, "dev-admin-id"},
		{"missing header", false, "", fiber.StatusUnauthorized, "Authorization header required"},
		{"wrong scheme", false, "Basic abc", fiber.StatusUnauthorized, "Invalid authorization header format"},
		{"bad token", false, "Bearer nope", fiber.StatusUnauthorized, "Invalid token"},
		{"valid token", false, "Bearer " + token, fiber.StatusOK, "emp-11"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := actorApp(tt.skip).Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			body := new(bytes.Buffer)
			_, _ = body.ReadFrom(resp.Body)
			assert.Contains(t, body.String(), tt.wantBody)
		})
	}
}

func TestRequestIDEchoesOrGenerates(t *testing.T) {
	app := actorApp(true)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get(RequestIDHeader))

	req = httptest.NewRequest("GET", "/me", nil)
	req.Header.Set(RequestIDHeader, strings.Repeat("x", 100))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Len(t, resp.Header.Get(RequestIDHeader), 36)
}

func TestAccessLogLevels(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	app := fiber.New()
	app.Use(RequestID(), AccessLog(zap.New(core)))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get("/boom", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusBadGateway, "upstream") })

	_, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, int64(fiber.StatusBadGateway), entries[1].ContextMap()["status"])
}
