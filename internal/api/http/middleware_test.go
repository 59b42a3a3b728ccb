package http

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-service/internal/observability"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

func newTestApp() (*fiber.App, *observability.Metrics) {
	app := fiber.New()
	metrics := observability.NewMetrics()
	RegisterMiddlewares(app, zap.NewNop(), metrics, 0)
	return app, metrics
}

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeError(t *testing.T, body io.Reader) errorEnvelope {
	t.Helper()
	var envelope errorEnvelope
	require.NoError(t, json.NewDecoder(body).Decode(&envelope))
	return envelope
}

func TestErrorMiddlewareMapsDomainErrors(t *testing.T) {
	app, metrics := newTestApp()
	app.Get("/forbidden", func(c *fiber.Ctx) error {
		return apperrors.NewForbidden("staff role required")
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return apperrors.NewNotFound("ticket", map[string]any{"ticket_id": "t-1"})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/forbidden", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	envelope := decodeError(t, resp.Body)
	assert.Equal(t, "FORBIDDEN", envelope.Error.Code)

	resp, err = app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	envelope = decodeError(t, resp.Body)
	assert.Equal(t, "NOT_FOUND", envelope.Error.Code)

	_, errCounts := metrics.Snapshot()
	assert.Equal(t, int64(1), errCounts["/forbidden|GET|FORBIDDEN"])
	assert.Equal(t, int64(1), errCounts["/missing|GET|NOT_FOUND"])
}

func TestErrorMiddlewareRecoversPanics(t *testing.T) {
	app, _ := newTestApp()
	app.Get("/boom", func(c *fiber.Ctx) error {
		panic("unexpected")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	envelope := decodeError(t, resp.Body)
	assert.Equal(t, "INTERNAL_ERROR", envelope.Error.Code)
}

func TestUnknownErrorsBecomeInternal(t *testing.T) {
	app, _ := newTestApp()
	app.Get("/opaque", func(c *fiber.Ctx) error {
		return assert.AnError
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/opaque", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
