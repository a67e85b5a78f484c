package router

import (
	"github.com/labstack/echo/v4"

	"github.com/dfwpark/dfw-parking/internal/handler"
	"github.com/dfwpark/dfw-parking/internal/middleware"
	"github.com/dfwpark/dfw-parking/internal/model"
)

// RegisterHotelAdmin registers the hotel management panel. Creation,
// deletion and admin assignment are super-admin only; day-to-day hotel
// and room management is shared with the assigned hotel admin.
func RegisterHotelAdmin(e *echo.Echo, h *handler.HotelAdminHandler, jwtSecret string) {
	super := e.Group(
		"/v1/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleSuperAdmin),
	)
	super.POST("/hotels", h.CreateHotel)
	super.DELETE("/hotels/:id", h.DeleteHotel)
	super.POST("/hotels/:id/admin", h.AssignAdmin)

	shared := e.Group(
		"/v1/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleHotelAdmin, model.RoleSuperAdmin),
	)
	shared.GET("/my-hotel", h.MyHotel)
	shared.PUT("/hotels/:id", h.UpdateHotel)
	shared.POST("/hotels/:id/rooms", h.CreateRoom)
	shared.PUT("/hotels/:id/rooms/:roomId", h.UpdateRoom)
	shared.DELETE("/hotels/:id/rooms/:roomId", h.DeleteRoom)
}

// RegisterParkingAdmin mirrors the hotel panel for lots and spots.
func RegisterParkingAdmin(e *echo.Echo, h *handler.ParkingAdminHandler, jwtSecret string) {
	super := e.Group(
		"/v1/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleSuperAdmin),
	)
	super.POST("/lots", h.CreateLot)
	super.DELETE("/lots/:id", h.DeleteLot)
	super.POST("/lots/:id/admin", h.AssignAdmin)

	shared := e.Group(
		"/v1/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleParkingAdmin, model.RoleSuperAdmin),
	)
	shared.GET("/my-lot", h.MyLot)
	shared.PUT("/lots/:id", h.UpdateLot)
	shared.POST("/lots/:id/spots", h.CreateSpot)
	shared.PUT("/lots/:id/spots/:spotId", h.UpdateSpot)
	shared.DELETE("/lots/:id/spots/:spotId", h.DeleteSpot)
}

// RegisterAdminBookings registers the operator view over bookings.
// Property admins are scoped to their own hotel or lot inside the
// handler; support gets read access, status changes are reserved for
// admins.
func RegisterAdminBookings(e *echo.Echo, h *handler.AdminBookingHandler, jwtSecret string) {
	read := e.Group(
		"/v1/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleHotelAdmin, model.RoleParkingAdmin, model.RoleSuperAdmin, model.RoleSupport),
	)
	read.GET("/bookings", h.List)
	read.GET("/bookings/:id", h.Get)

	write := e.Group(
		"/v1/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleHotelAdmin, model.RoleParkingAdmin, model.RoleSuperAdmin),
	)
	write.PATCH("/bookings/:id/status", h.UpdateStatus)
}

// RegisterUserAdmin registers the super-admin account console.
func RegisterUserAdmin(e *echo.Echo, h *handler.UserAdminHandler, jwtSecret string) {
	g := e.Group(
		"/v1/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleSuperAdmin),
	)
	g.GET("/users", h.List)
	g.POST("/users", h.Create)
	g.GET("/users/:id", h.Get)
	g.PUT("/users/:id", h.Update)
	g.PATCH("/users/:id/role", h.UpdateRole)
	g.DELETE("/users/:id", h.Delete)
}

// RegisterSupport registers the staff side of the help desk.
func RegisterSupport(e *echo.Echo, s *handler.SupportHandler, jwtSecret string) {
	g := e.Group(
		"/v1/support",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleSupport, model.RoleSuperAdmin),
	)
	g.POST("/tickets/:id/assign", s.Assign)
	g.PATCH("/tickets/:id/status", s.UpdateStatus)
}
