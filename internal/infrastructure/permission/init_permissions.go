package permission

import (
	"fmt"

	"skylink/internal/shared/authorization"
	"skylink/internal/shared/logger"
)

// DefaultRoutePolicies gives each role its own dashboard subtree.
func DefaultRoutePolicies() [][]string {
	return [][]string{
		{authorization.RoleCustomer.String(), authorization.RouteDashboard, ActionView},
		{authorization.RoleCustomer.String(), authorization.RouteDashboard + "/*", ActionView},
		{authorization.RoleAdmin.String(), authorization.RouteAdmin, ActionView},
		{authorization.RoleAdmin.String(), authorization.RouteAdmin + "/*", ActionView},
	}
}

// InitRoutePermissions loads DefaultRoutePolicies into e.
func InitRoutePermissions(e *Enforcer, log logger.Interface) error {
	for _, policy := range DefaultRoutePolicies() {
		if err := e.AddPolicy(policy[0], policy[1], policy[2]); err != nil {
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
				policy[0], policy[1], policy[2], err)
		}
	}

	log.Debugw("route permissions initialized", "policies", len(DefaultRoutePolicies()))
	return nil
}
