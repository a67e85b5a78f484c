package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfwpark/dfw-parking/internal/config"
)

func testCache(t *testing.T) echo.MiddlewareFunc {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return NewRedisCache(config.CacheConfig{
		Enabled:     true,
		Methods:     map[string]bool{"GET": true},
		TTL:         time.Minute,
		KeyStrategy: "route_query",
		Prefix:      "cache",
	}, rdb)
}

func TestCacheServesRepeatReads(t *testing.T) {
	e := echo.New()
	calls := 0
	e.GET("/v1/hotels", func(c echo.Context) error {
		calls++
		return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"call": calls}})
	}, testCache(t))

	first := httptest.NewRecorder()
	e.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/v1/hotels", nil))
	second := httptest.NewRecorder()
	e.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/v1/hotels", nil))

	assert.Equal(t, 1, calls, "second read must come from the cache")
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestCacheKeyedByQuery(t *testing.T) {
	e := echo.New()
	e.GET("/v1/hotels", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"city": c.QueryParam("city")})
	}, testCache(t))

	dallas := httptest.NewRecorder()
	e.ServeHTTP(dallas, httptest.NewRequest(http.MethodGet, "/v1/hotels?city=Dallas", nil))
	irving := httptest.NewRecorder()
	e.ServeHTTP(irving, httptest.NewRequest(http.MethodGet, "/v1/hotels?city=Irving", nil))

	assert.Contains(t, dallas.Body.String(), "Dallas")
	assert.Contains(t, irving.Body.String(), "Irving")
	assert.Equal(t, "MISS", irving.Header().Get("X-Cache"))
}

// Responses for authenticated calls are account-scoped. Two accounts
// hitting the same route must each see their own response, and neither
// may be stored or replayed from the cache.
func TestCacheNeverSharesAuthenticatedResponses(t *testing.T) {
	e := echo.New()
	e.GET("/v1/my-bookings", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"success": true,
			"data":    echo.Map{"owner": c.Request().Header.Get(echo.HeaderAuthorization)},
		})
	}, testCache(t))

	asUser := func(token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/v1/my-bookings", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	alice := asUser("alice-token")
	bob := asUser("bob-token")

	require.Contains(t, alice.Body.String(), "alice-token")
	assert.Contains(t, bob.Body.String(), "bob-token")
	assert.NotContains(t, bob.Body.String(), "alice-token")
	assert.Empty(t, bob.Header().Get("X-Cache"), "authenticated requests must bypass the cache")
}

func TestCacheSkipsNon200(t *testing.T) {
	e := echo.New()
	calls := 0
	e.GET("/v1/hotels/:id", func(c echo.Context) error {
		calls++
		return c.JSON(http.StatusNotFound, echo.Map{"success": false, "error": "not found"})
	}, testCache(t))

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/v1/hotels/%d", 9), nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}
	assert.Equal(t, 2, calls, "error responses are never cached")
}
