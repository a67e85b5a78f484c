// Package guard decides which routes and panels an account's role may
// reach. The policy is a single declarative table; every denial is a
// redirect to the login route, never a separate forbidden state.
package guard

// Route names. These are the navigable surfaces of the app, not URL
// paths; the CLI and any future UI map them to their own navigation.
const (
	RouteHome         = "home"
	RouteLogin        = "login"
	RouteRegister     = "register"
	RouteBooking      = "booking"
	RouteProfile      = "profile"
	RouteDashboard    = "dashboard"
	RouteAdminPanel   = "admin-panel"
	RouteHotelPanel   = "hotel-admin-panel"
	RouteParkingPanel = "parking-admin-panel"
	RouteSupportPanel = "support-panel"
)

// Roles, matching the API's role strings. RoleAnonymous stands in for
// an unauthenticated visitor.
const (
	RoleAnonymous    = ""
	RoleCustomer     = "CUSTOMER"
	RoleHotelAdmin   = "HOTEL_ADMIN"
	RoleParkingAdmin = "PARKING_ADMIN"
	RoleSuperAdmin   = "SUPER_ADMIN"
	RoleSupport      = "SUPPORT"
)

// Decision is the outcome of a route check.
type Decision int

const (
	// Allow renders the requested route.
	Allow Decision = iota
	// RedirectLogin sends the visitor to the login route instead.
	RedirectLogin
)

// publicRoutes are reachable without a session.
var publicRoutes = map[string]bool{
	RouteHome:     true,
	RouteLogin:    true,
	RouteRegister: true,
}

// allowed maps each role to the routes it may reach beyond the public
// set. No account holds more than one role.
var allowed = map[string]map[string]bool{
	RoleCustomer: {
		RouteBooking:   true,
		RouteProfile:   true,
		RouteDashboard: true,
	},
	RoleSuperAdmin: {
		RouteAdminPanel: true,
		RouteDashboard:  true,
	},
	RoleHotelAdmin: {
		RouteHotelPanel: true,
		RouteDashboard:  true,
	},
	RoleParkingAdmin: {
		RouteParkingPanel: true,
		RouteDashboard:    true,
	},
	RoleSupport: {
		RouteSupportPanel: true,
		RouteDashboard:    true,
	},
}

// Resolve decides whether role may render route. Public routes are
// open to everyone, including signed-in accounts; anything else
// requires the route to appear in the role's row of the policy table.
func Resolve(role, route string) Decision {
	if publicRoutes[route] {
		return Allow
	}
	if allowed[role][route] {
		return Allow
	}
	return RedirectLogin
}

// DashboardView returns the panel route the dashboard renders for a
// role. The dashboard shows exactly one of five views; an unknown or
// anonymous role gets the login redirect via Resolve, so this only
// answers for known roles.
func DashboardView(role string) string {
	switch role {
	case RoleCustomer:
		return RouteBooking
	case RoleSuperAdmin:
		return RouteAdminPanel
	case RoleHotelAdmin:
		return RouteHotelPanel
	case RoleParkingAdmin:
		return RouteParkingPanel
	case RoleSupport:
		return RouteSupportPanel
	}
	return RouteLogin
}
