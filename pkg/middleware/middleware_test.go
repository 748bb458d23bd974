package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/metrics"
)

func serve(e *echo.Echo, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestRequestLogger_LogsRequests(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)

	e := echo.New()
	e.Use(RequestID(), RequestLogger(zap.New(core)))
	e.GET("/items/:id", func(c echo.Context) error { return c.String(http.StatusTeapot, "ok") })

	rec := serve(e, http.MethodGet, "/items/7")
	require.Equal(t, http.StatusTeapot, rec.Code)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "HTTP request", entry.Message)
	ctx := entry.ContextMap()
	assert.Equal(t, "/items/7", ctx["path"])
	assert.Equal(t, "/items/:id", ctx["route"])
	assert.EqualValues(t, http.StatusTeapot, ctx["status"])
	assert.NotEmpty(t, ctx["request_id"])
	assert.Equal(t, rec.Header().Get(echo.HeaderXRequestID), ctx["request_id"])
}

func TestRequestLogger_RendersHandlerErrors(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)

	e := echo.New()
	e.Use(RequestLogger(zap.New(core)))
	e.GET("/boom", func(c echo.Context) error { return echo.NewHTTPError(http.StatusBadGateway, "upstream") })

	rec := serve(e, http.MethodGet, "/boom")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	require.Equal(t, 1, logs.Len())
	assert.EqualValues(t, http.StatusBadGateway, logs.All()[0].ContextMap()["status"])
}

func TestRequestLogger_NilLogger_PassesThrough(t *testing.T) {
	called := false
	h := RequestLogger(nil)(func(c echo.Context) error { called = true; return nil })
	e := echo.New()
	require.NoError(t, h(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())))
	assert.True(t, called)
}

func TestRequestID_KeepsCallerID(t *testing.T) {
	e := echo.New()
	e.Use(RequestID())
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRequestID, "abc-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(echo.HeaderXRequestID))

	rec = serve(e, http.MethodGet, "/")
	assert.Len(t, rec.Header().Get(echo.HeaderXRequestID), 36)
}

func TestMetrics_CountsByRoute(t *testing.T) {
	e := echo.New()
	e.Use(Metrics())
	e.GET("/metrics-test/:id", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/metrics-test/:id", "200")
	before := testutil.ToFloat64(counter)
	serve(e, http.MethodGet, "/metrics-test/1")
	serve(e, http.MethodGet, "/metrics-test/2")
	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}
