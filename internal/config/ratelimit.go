package config

import (
	"os"
	"strconv"
	"time"
)

// RateLimitConfig controls the token-bucket limiter. The window and
// threshold language of the deployment environment maps onto refill
// interval and bucket capacity here.
type RateLimitConfig struct {
	Enabled        bool
	Capacity       int           // bucket size (burst threshold)
	RefillTokens   int           // tokens added per interval
	RefillInterval time.Duration // refill window
	TTL            time.Duration // idle bucket expiry in Redis
	KeyStrategy    string        // which request parts form the bucket key
	Prefix         string        // Redis key namespace
	Debug          bool

	// JWTSecret lets the ip_account_route strategy read the account id
	// straight from the bearer token. The limiter runs before the route
	// groups' auth middleware, so the context never has the claim yet.
	// Set by the composition root, not the environment.
	JWTSecret string
}

// LoadRateLimitConfig builds a RateLimitConfig from environment
// variables with defaults. Out-of-range values are clamped so a bad
// deployment cannot disable refill entirely.
func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled:        envBool("RATE_LIMIT_ENABLED", true),
		Capacity:       envInt("RATE_LIMIT_THRESHOLD", 60),
		RefillTokens:   envInt("RATE_LIMIT_REFILL_TOKENS", 1),
		RefillInterval: envDur("RATE_LIMIT_WINDOW", time.Second),
		TTL:            envDur("RATE_LIMIT_TTL", 10*time.Minute),
		KeyStrategy:    envStr("RATE_LIMIT_KEY_STRATEGY", "ip_route"),
		Prefix:         envStr("RATE_LIMIT_PREFIX", "rl"),
		Debug:          envBool("RATE_LIMIT_DEBUG", false),
	}
	if cfg.Capacity < 1 {
		cfg.Capacity = 1
	}
	if cfg.RefillTokens < 1 {
		cfg.RefillTokens = 1
	}
	if cfg.RefillInterval <= 0 {
		cfg.RefillInterval = time.Second
	}
	// Keep buckets alive at least a few windows past their last use.
	if minTTL := 5 * cfg.RefillInterval; cfg.TTL < minTTL {
		cfg.TTL = minTTL
	}
	return cfg
}

func envStr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envBool(k string, d bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	}
	return d
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	return d
}
