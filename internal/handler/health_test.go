package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDB struct {
	pingErr error
}

func (f fakeDB) PingContext(ctx context.Context) error { return f.pingErr }

type fakeStats struct {
	counts map[string]int64
	errs   map[string]error
}

func (f fakeStats) Count(ctx context.Context, table string) (int64, error) {
	if err := f.errs[table]; err != nil {
		return 0, err
	}
	return f.counts[table], nil
}

func healthRequest(t *testing.T, h echo.HandlerFunc) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestHealthHealthy(t *testing.T) {
	h := NewHealthHandler(fakeDB{}, fakeStats{})
	rec, body := healthRequest(t, h.Health)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "connected", body["database"])
	assert.Contains(t, body, "uptime_seconds")
	assert.Contains(t, body, "memory_bytes")
}

func TestHealthDatabaseDown(t *testing.T) {
	h := NewHealthHandler(fakeDB{pingErr: errors.New("connection refused")}, fakeStats{})
	rec, body := healthRequest(t, h.Health)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "unhealthy", body["status"])
	assert.Equal(t, "disconnected", body["database"])
}

func TestHealthDetailedCounts(t *testing.T) {
	h := NewHealthHandler(fakeDB{}, fakeStats{counts: map[string]int64{
		"accounts":     12,
		"hotels":       3,
		"parking_lots": 2,
		"bookings":     48,
	}})
	rec, body := healthRequest(t, h.HealthDetailed)

	assert.Equal(t, http.StatusOK, rec.Code)
	counts := body["counts"].(map[string]any)
	assert.Equal(t, float64(12), counts["users"])
	assert.Equal(t, float64(3), counts["hotels"])
	assert.Equal(t, float64(2), counts["parkingLots"])
	assert.Equal(t, float64(48), counts["bookings"])
	assert.Contains(t, body, "response_time_ms")
}

func TestHealthDetailedToleratesCountFailure(t *testing.T) {
	h := NewHealthHandler(fakeDB{}, fakeStats{
		counts: map[string]int64{"hotels": 3},
		errs:   map[string]error{"bookings": errors.New("table locked")},
	})
	rec, body := healthRequest(t, h.HealthDetailed)

	// one broken count must not flip the probe to 503
	assert.Equal(t, http.StatusOK, rec.Code)
	counts := body["counts"].(map[string]any)
	broken := counts["bookings"].(map[string]any)
	assert.Equal(t, "table locked", broken["error"])
	assert.Equal(t, float64(3), counts["hotels"])
}

func TestHealthDetailedDatabaseDown(t *testing.T) {
	h := NewHealthHandler(fakeDB{pingErr: errors.New("gone")}, fakeStats{})
	rec, body := healthRequest(t, h.HealthDetailed)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "unhealthy", body["status"])
}
