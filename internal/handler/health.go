package handler

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
)

// dbChecker is the slice of *sql.DB the liveness probe needs; a fake
// stands in during tests.
type dbChecker interface {
	PingContext(ctx context.Context) error
}

// tableCounter counts rows in a named collection; implemented by
// repository.StatsRepo.
type tableCounter interface {
	Count(ctx context.Context, table string) (int64, error)
}

// HealthHandler reports process liveness. The basic probe returns 200
// "healthy" while the database connection is alive and 503 "unhealthy"
// otherwise, regardless of any other subsystem. The detailed variant
// additionally counts the four core collections, tolerating individual
// count failures.
type HealthHandler struct {
	DB      dbChecker
	Stats   tableCounter
	Started time.Time
}

func NewHealthHandler(db dbChecker, stats tableCounter) *HealthHandler {
	return &HealthHandler{DB: db, Stats: stats, Started: time.Now().UTC()}
}

// Health handles GET /healthz.
func (h *HealthHandler) Health(c echo.Context) error {
	body := echo.Map{
		"uptime_seconds": int64(time.Since(h.Started).Seconds()),
		"memory_bytes":   allocBytes(),
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.DB.PingContext(ctx); err != nil {
		body["status"] = "unhealthy"
		body["database"] = "disconnected"
		return c.JSON(http.StatusServiceUnavailable, body)
	}
	body["status"] = "healthy"
	body["database"] = "connected"
	return c.JSON(http.StatusOK, body)
}

// HealthDetailed handles GET /healthz/detailed. Count failures are
// reported inline rather than propagated: a broken table must not turn
// a live process into a dead one.
func (h *HealthHandler) HealthDetailed(c echo.Context) error {
	start := time.Now()
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	connected := h.DB.PingContext(ctx) == nil

	counts := echo.Map{}
	for table, key := range map[string]string{
		"accounts":     "users",
		"hotels":       "hotels",
		"parking_lots": "parkingLots",
		"bookings":     "bookings",
	} {
		n, err := h.Stats.Count(ctx, table)
		if err != nil {
			counts[key] = echo.Map{"error": err.Error()}
			continue
		}
		counts[key] = n
	}

	body := echo.Map{
		"uptime_seconds":   int64(time.Since(h.Started).Seconds()),
		"memory_bytes":     allocBytes(),
		"counts":           counts,
		"response_time_ms": time.Since(start).Milliseconds(),
	}
	if !connected {
		body["status"] = "unhealthy"
		body["database"] = "disconnected"
		return c.JSON(http.StatusServiceUnavailable, body)
	}
	body["status"] = "healthy"
	body["database"] = "connected"
	return c.JSON(http.StatusOK, body)
}

func allocBytes() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Alloc
}
