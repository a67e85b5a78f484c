package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicRoutesOpenToEveryone(t *testing.T) {
	for _, role := range []string{RoleAnonymous, RoleCustomer, RoleSupport, RoleSuperAdmin} {
		assert.Equal(t, Allow, Resolve(role, RouteHome), "role %q", role)
		assert.Equal(t, Allow, Resolve(role, RouteLogin), "role %q", role)
		assert.Equal(t, Allow, Resolve(role, RouteRegister), "role %q", role)
	}
}

func TestAnonymousRedirectedFromEverythingElse(t *testing.T) {
	for _, route := range []string{RouteBooking, RouteProfile, RouteDashboard, RouteAdminPanel, RouteSupportPanel} {
		assert.Equal(t, RedirectLogin, Resolve(RoleAnonymous, route), "route %q", route)
	}
}

func TestRolePanelMapping(t *testing.T) {
	tests := []struct {
		role     string
		route    string
		expected Decision
	}{
		{RoleCustomer, RouteBooking, Allow},
		{RoleCustomer, RouteProfile, Allow},
		{RoleCustomer, RouteAdminPanel, RedirectLogin},
		{RoleSuperAdmin, RouteAdminPanel, Allow},
		{RoleSuperAdmin, RouteHotelPanel, RedirectLogin},
		{RoleHotelAdmin, RouteHotelPanel, Allow},
		{RoleHotelAdmin, RouteParkingPanel, RedirectLogin},
		{RoleParkingAdmin, RouteParkingPanel, Allow},
		// A support account asking for the hotel panel is sent to
		// login, not a forbidden page; its own panel renders.
		{RoleSupport, RouteHotelPanel, RedirectLogin},
		{RoleSupport, RouteSupportPanel, Allow},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, Resolve(tt.role, tt.route), "%s -> %s", tt.role, tt.route)
	}
}

func TestEveryRoleReachesDashboard(t *testing.T) {
	for _, role := range []string{RoleCustomer, RoleHotelAdmin, RoleParkingAdmin, RoleSuperAdmin, RoleSupport} {
		assert.Equal(t, Allow, Resolve(role, RouteDashboard), "role %q", role)
	}
}

func TestDashboardViewBranchesOnRole(t *testing.T) {
	assert.Equal(t, RouteBooking, DashboardView(RoleCustomer))
	assert.Equal(t, RouteAdminPanel, DashboardView(RoleSuperAdmin))
	assert.Equal(t, RouteHotelPanel, DashboardView(RoleHotelAdmin))
	assert.Equal(t, RouteParkingPanel, DashboardView(RoleParkingAdmin))
	assert.Equal(t, RouteSupportPanel, DashboardView(RoleSupport))
	assert.Equal(t, RouteLogin, DashboardView("UNKNOWN"))
}
