package middleware

import (
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
	"github.com/dfwpark/dfw-parking/internal/utils"
)

const testSecret = "rate-limit-test-secret"

func testLimiter(t *testing.T, capacity int, strategy string) echo.MiddlewareFunc {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return NewTokenBucket(config.RateLimitConfig{
		Enabled:        true,
		Capacity:       capacity,
		RefillTokens:   1,
		RefillInterval: time.Hour, // no refill during the test
		TTL:            time.Hour,
		KeyStrategy:    strategy,
		Prefix:         "rl",
		JWTSecret:      testSecret,
	}, rdb)
}

func limitedEcho(t *testing.T, capacity int, strategy string) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.Use(testLimiter(t, capacity, strategy))
	e.GET("/v1/my-bookings", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"success": true})
	})
	return e
}

func bearerFor(t *testing.T, accountID uint64) string {
	t.Helper()
	tok, err := utils.NewAccessToken(testSecret, accountID, "CUSTOMER", 15)
	require.NoError(t, err)
	return "Bearer " + tok.Token
}

func hit(e *echo.Echo, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/v1/my-bookings", nil)
	req.RemoteAddr = "198.51.100.7:4242"
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestTokenBucketExhaustion(t *testing.T) {
	e := limitedEcho(t, 2, "ip_route")

	assert.Equal(t, http.StatusOK, hit(e, "").Code)
	assert.Equal(t, http.StatusOK, hit(e, "").Code)

	third := hit(e, "")
	assert.Equal(t, http.StatusTooManyRequests, third.Code)
	assert.NotEmpty(t, third.Header().Get("Retry-After"))
}

// The limiter runs before any route group's auth middleware, so the
// per-account strategy has to read the account straight off the bearer
// token: each account gets its own bucket even from the same address.
func TestPerAccountBucketsFromBearerToken(t *testing.T) {
	e := limitedEcho(t, 1, "ip_account_route")
	alice := bearerFor(t, 17)
	bob := bearerFor(t, 42)

	assert.Equal(t, http.StatusOK, hit(e, alice).Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(e, alice).Code,
		"alice's bucket is spent")
	assert.Equal(t, http.StatusOK, hit(e, bob).Code,
		"bob's bucket must be separate from alice's")
}

func TestAnonymousSharesOneBucket(t *testing.T) {
	e := limitedEcho(t, 1, "ip_account_route")

	assert.Equal(t, http.StatusOK, hit(e, "").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(e, "").Code)
}

func TestGarbageTokenBucketsAsAnonymous(t *testing.T) {
	e := limitedEcho(t, 1, "ip_account_route")

	assert.Equal(t, http.StatusOK, hit(e, "Bearer not-a-jwt").Code)
	// a second bogus token lands in the same anon bucket
	assert.Equal(t, http.StatusTooManyRequests, hit(e, "Bearer also-not-a-jwt").Code)
}
