package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestRequestLoggerSingleEntry(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	engine := gin.New()
	engine.Use(RequestLogger(zap.New(core)))
	engine.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	serve(engine, "/?x=1")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "HTTP request", entry.Message)
	fields := entry.ContextMap()
	assert.Equal(t, "/", fields["path"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
	assert.Equal(t, "x=1", fields["query"])
}

func TestRequestLoggerFoldsErrors(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	engine := gin.New()
	engine.Use(RequestLogger(zap.New(core)))
	engine.GET("/", func(c *gin.Context) {
		_ = c.Error(errors.New("invalid counter content"))
		c.String(http.StatusInternalServerError, "Internal Server Error")
	})

	serve(engine, "/")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.ErrorLevel, entry.Level)
	assert.Equal(t, []interface{}{"invalid counter content"}, entry.ContextMap()["errors"])
}

func TestMetricsUseRouteTemplate(t *testing.T) {
	m := NewMetrics("test")
	engine := gin.New()
	engine.Use(m.Handler())
	engine.GET("/add/:message", func(c *gin.Context) { c.String(http.StatusOK, "added") })

	serve(engine, "/add/one")
	serve(engine, "/add/two")
	serve(engine, "/missing")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.requests.WithLabelValues("GET", "/add/:message", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.requests.WithLabelValues("GET", unmatchedRoute, "404")))
}

func TestMetricsExposition(t *testing.T) {
	m := NewMetrics("test")
	hits := m.NewCounter("test_hits_total", "hits")
	hits.Add(3)

	w := httptest.NewRecorder()
	m.Exposition().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "test_hits_total 3"), w.Body.String())
}
