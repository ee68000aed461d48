package observability

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCollector(t *testing.T) (*Collector, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)
	return c, reg
}

func TestMiddlewareRecordsRoutePattern(t *testing.T) {
	c, _ := newTestCollector(t)

	app := fiber.New()
	app.Use(c.Middleware())
	app.Get("/api/v1/regions/:id", func(ctx *fiber.Ctx) error {
		if ctx.Params("id") == "atlantis" {
			return ctx.SendStatus(fiber.StatusNotFound)
		}
		return ctx.SendString("ok")
	})

	for _, path := range []string{"/api/v1/regions/ooty", "/api/v1/regions/coonoor", "/api/v1/regions/atlantis"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
		_ = resp.Body.Close()
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(c.HTTPRequests.WithLabelValues("GET", "/api/v1/regions/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.HTTPRequests.WithLabelValues("GET", "/api/v1/regions/:id", "404")))
	assert.Equal(t, 1, testutil.CollectAndCount(c.HTTPDurations))
}

func TestMiddlewareCountsFiberErrors(t *testing.T) {
	c, _ := newTestCollector(t)

	app := fiber.New()
	app.Use(c.Middleware())
	app.Get("/boom", func(ctx *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusBadRequest, "bad")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, 1.0, testutil.ToFloat64(c.HTTPRequests.WithLabelValues("GET", "/boom", "400")))
}

func TestDashboardCounters(t *testing.T) {
	c, _ := newTestCollector(t)

	c.SetSessionsActive(3)
	c.AnalysisGenerated("ooty")
	c.AnalysisGenerated("ooty")
	c.DatasetCache("factors", CacheMiss)
	c.DatasetCache("factors", CacheHitMemo)

	assert.Equal(t, 3.0, testutil.ToFloat64(c.SessionsActive))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.AnalysesGenerated.WithLabelValues("ooty")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.DatasetCacheLookup.WithLabelValues("factors", "miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.DatasetCacheLookup.WithLabelValues("factors", "memo")))
}

func TestNilCollectorIsNoop(t *testing.T) {
	var c *Collector
	assert.NotPanics(t, func() {
		c.SetSessionsActive(1)
		c.AnalysisGenerated("coonoor")
		c.DatasetCache("historical", CacheHitStore)
	})
}

func TestNewCollectorReusesRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewCollector(reg)
	require.NoError(t, err)
	second, err := NewCollector(reg)
	require.NoError(t, err)

	first.AnalysisGenerated("kodaikanal")
	assert.Equal(t, 1.0, testutil.ToFloat64(second.AnalysesGenerated.WithLabelValues("kodaikanal")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	c, _ := newTestCollector(t)
	c.SetSessionsActive(2)

	rr := httptest.NewRecorder()
	c.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.Contains(string(body), "dashboard_sessions_active 2"))
}
