// Package permission decides which portal routes a role may view, backed
// by an in-memory casbin enforcer.
package permission

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"

	"skylink/internal/shared/authorization"
	"skylink/internal/shared/logger"
)

// ActionView is the only action the portal checks.
const ActionView = "view"

const routeModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && keyMatch(r.obj, p.obj) && r.act == p.act
`

var _ authorization.RouteChecker = (*Enforcer)(nil)

type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

// NewEnforcer builds an enforcer loaded with DefaultRoutePolicies.
func NewEnforcer(log logger.Interface) (*Enforcer, error) {
	m, err := model.NewModelFromString(routeModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	e := &Enforcer{
		enforcer: enforcer,
		logger:   log,
	}
	if err := InitRoutePermissions(e, log); err != nil {
		return nil, err
	}
	return e, nil
}

// CanView reports whether role may open route. An empty role never can.
func (e *Enforcer) CanView(role authorization.UserRole, route string) (bool, error) {
	if role == "" {
		return false, nil
	}
	return e.Enforce(role.String(), route, ActionView)
}

func (e *Enforcer) Enforce(role string, resource string, action string) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(role, resource, action)
	if err != nil {
		e.logger.Errorw("permission check failed", "error", err, "role", role, "resource", resource, "action", action)
		return false, fmt.Errorf("permission check failed: %w", err)
	}

	return allowed, nil
}

func (e *Enforcer) AddPolicy(role string, resource string, action string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.AddPolicy(role, resource, action); err != nil {
		e.logger.Errorw("failed to add policy", "error", err)
		return fmt.Errorf("failed to add policy: %w", err)
	}
	return nil
}

func (e *Enforcer) RemovePolicy(role string, resource string, action string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.RemovePolicy(role, resource, action); err != nil {
		e.logger.Errorw("failed to remove policy", "error", err)
		return fmt.Errorf("failed to remove policy: %w", err)
	}
	return nil
}

// Policies lists the loaded rules as role, resource, action triples.
func (e *Enforcer) Policies() ([][]string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.enforcer.GetPolicy()
}
