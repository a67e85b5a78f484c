package router

import (
	"github.com/labstack/echo/v4"

	"github.com/dfwpark/dfw-parking/internal/handler"
	"github.com/dfwpark/dfw-parking/internal/middleware"
	"github.com/dfwpark/dfw-parking/internal/model"
)

// RegisterCustomer registers the booking endpoints a signed-in
// customer uses: create a booking, list and inspect their own, and
// cancel. Bookings are never deleted, cancellation is a status
// transition.
func RegisterCustomer(e *echo.Echo, b *handler.BookingHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleCustomer),
	)
	g.POST("/bookings", b.CreateBooking)
	g.GET("/my-bookings", b.ListMyBookings)
	g.GET("/bookings/:id", b.GetBooking)
	g.POST("/bookings/:id/cancel", b.CancelBooking)
}

// RegisterTickets registers the help-desk endpoints shared by every
// authenticated role; scoping (own tickets vs the full queue) happens
// in the handler.
func RegisterTickets(e *echo.Echo, s *handler.SupportHandler, jwtSecret string) {
	g := e.Group("/v1", middleware.JWTAuth(jwtSecret))
	g.POST("/tickets", s.Create)
	g.GET("/tickets", s.List)
	g.GET("/tickets/:id", s.Get)
}
