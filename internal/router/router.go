// Package router registers the HTTP surface of the API on an Echo
// instance. Routes are grouped by audience: public browse, customer,
// property admin, support and super admin.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dfwpark/dfw-parking/internal/handler"
	"github.com/dfwpark/dfw-parking/internal/middleware"
)

// RegisterInfra registers operational endpoints: liveness, the
// detailed health report and the Prometheus scrape target. None of
// them require authentication.
func RegisterInfra(e *echo.Echo, h *handler.HealthHandler) {
	e.GET("/healthz", h.Health)
	e.GET("/healthz/detailed", h.HealthDetailed)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// RegisterPublic registers the unauthenticated browse endpoints so
// guests can inspect hotels, rooms, lots and spot availability before
// signing up. The response cache is mounted here and nowhere else:
// these are the only routes whose responses are the same for every
// caller.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, mw ...echo.MiddlewareFunc) {
	g := e.Group("/v1", mw...)
	g.GET("/hotels", p.ListHotels)
	g.GET("/hotels/:id", p.GetHotel)
	g.GET("/hotels/:id/rooms", p.ListRooms)
	g.GET("/lots", p.ListLots)
	g.GET("/lots/:id", p.GetLot)
	g.GET("/lots/:id/spots", p.ListSpots)
}

// RegisterAuth registers registration, login and token lifecycle
// routes under /v1/auth, plus the profile endpoints that require a
// valid access token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	// Logout takes the refresh token in the body, so it does not need
	// an access token; an expired session can still be terminated.
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1", middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
	auth.PUT("/me", a.UpdateMe)
}
