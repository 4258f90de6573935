package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"campmed/internal/logger"
)

func newLimitedEcho(t *testing.T, client *redis.Client, max int) *echo.Echo {
	t.Helper()
	e := echo.New()
	limiter := NewRateLimiter(client, max, time.Minute, logger.NewNop())
	e.POST("/jwt", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, limiter.Middleware())
	return e
}

func post(e *echo.Echo, ip string) int {
	req := httptest.NewRequest(http.MethodPost, "/jwt", nil)
	req.Header.Set(echo.HeaderXRealIP, ip)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimiter_FixedWindow(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	e := newLimitedEcho(t, client, 2)

	assert.Equal(t, http.StatusOK, post(e, "10.0.0.1"))
	assert.Equal(t, http.StatusOK, post(e, "10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, post(e, "10.0.0.1"))
	assert.Equal(t, http.StatusOK, post(e, "10.0.0.2"), "other clients have their own window")

	mr.FastForward(time.Minute + time.Second)
	assert.Equal(t, http.StatusOK, post(e, "10.0.0.1"), "window resets")
}

func TestRateLimiter_WindowSetOnce(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	e := newLimitedEcho(t, client, 10)

	post(e, "10.0.0.1")
	mr.FastForward(30 * time.Second)
	post(e, "10.0.0.1")

	ttl := mr.TTL(rateLimitKeyPrefix + "/jwt:10.0.0.1")
	assert.Equal(t, 30*time.Second, ttl)
}

func TestRateLimiter_FirstHitStartsWindow(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	e := newLimitedEcho(t, client, 10)

	post(e, "10.0.0.1")

	key := rateLimitKeyPrefix + "/jwt:10.0.0.1"
	got, err := mr.Get(key)
	require.NoError(t, err)
	assert.Equal(t, "1", got)
	assert.Equal(t, time.Minute, mr.TTL(key))
}

func TestRateLimiter_FailsOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	e := newLimitedEcho(t, client, 1)
	mr.Close()

	for range 3 {
		assert.Equal(t, http.StatusOK, post(e, "10.0.0.1"))
	}
}

func TestRateLimiter_DisabledWithoutClient(t *testing.T) {
	e := newLimitedEcho(t, nil, 1)

	for range 3 {
		assert.Equal(t, http.StatusOK, post(e, "10.0.0.1"))
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	e.Use(echomw.RequestID())
	e.Use(RequestLogger(logger.NewWithWriter("production", &buf)))
	e.GET("/camp/:id", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	})

	req := httptest.NewRequest(http.MethodGet, "/camp/nope", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "http_request", line["msg"])
	assert.Equal(t, "/camp/nope", line["path"])
	assert.Equal(t, float64(http.StatusBadRequest), line["status"])
	assert.Equal(t, rec.Header().Get(echo.HeaderXRequestID), line["request_id"])
}

func TestTracing_RecordsServerSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})

	e := echo.New()
	e.Use(Tracing())
	e.GET("/camp/:id", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusInternalServerError, "boom")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/camp/abc", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET /camp/:id", spans[0].Name())
	assert.Equal(t, "Error", spans[0].Status().Code.String())
}
