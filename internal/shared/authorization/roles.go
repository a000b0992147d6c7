package authorization

import "strings"

type UserRole string

const (
	RoleAdmin    UserRole = "ADMIN"
	RoleCustomer UserRole = "CUSTOMER"
)

// Client-side routes.
const (
	RouteRoot         = "/"
	RouteLogin        = "/login"
	RouteDashboard    = "/dashboard"
	RouteAdmin        = "/admin"
	RouteUnauthorized = "/unauthorized"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleCustomer
}

// HomeRoute is where a freshly logged-in user of this role lands.
// Anything that is not ADMIN goes to the customer dashboard.
func (r UserRole) HomeRoute() string {
	if r.IsAdmin() {
		return RouteAdmin
	}
	return RouteDashboard
}

// ParseUserRole normalizes the role string the backend hands out.
// Spring-style "ROLE_" prefixes and lower case are tolerated; unknown
// values are kept verbatim so the guard can reject them.
func ParseUserRole(s string) UserRole {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	normalized = strings.TrimPrefix(normalized, "ROLE_")
	return UserRole(normalized)
}
