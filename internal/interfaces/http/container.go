package http

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"skylink/internal/domain/session"
	"skylink/internal/infrastructure/backend"
	"skylink/internal/infrastructure/cache"
	"skylink/internal/infrastructure/config"
	"skylink/internal/infrastructure/permission"
	"skylink/internal/infrastructure/ratelimit"
	sessionstore "skylink/internal/infrastructure/session"
	"skylink/internal/interfaces/http/handlers"
	"skylink/internal/interfaces/http/handlers/admin"
	"skylink/internal/interfaces/http/middleware"
	"skylink/internal/shared/logger"
)

// Container holds the infrastructure, use cases and handlers of the portal
// server and releases them on Shutdown.
type Container struct {
	cfg   *config.Config
	log   logger.Interface
	redis *redis.Client

	store    session.Store
	enforcer *permission.Enforcer
	ucs      *UseCases

	sessionMiddleware *middleware.SessionMiddleware
	authRateLimiter   *middleware.RateLimiter
	authHandler       *handlers.AuthHandler
	dashboardHandler  *handlers.DashboardHandler
	adminHandler      *admin.Handler
}

// NewContainer wires the server. Redis is only dialled when the session
// store asks for it; the auth rate limiter then shares it.
func NewContainer(ctx context.Context, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{cfg: cfg, log: log}

	if cfg.Session.Store == "redis" {
		client, err := cache.NewRedisClient(ctx, cfg.Redis, log.Named("redis"))
		if err != nil {
			return nil, err
		}
		c.redis = client
	}

	store, err := sessionstore.NewStore(cfg.Session, c.redis)
	if err != nil {
		c.closeRedis()
		return nil, fmt.Errorf("failed to create session store: %w", err)
	}
	c.store = store

	enforcer, err := permission.NewEnforcer(log.Named("permission"))
	if err != nil {
		c.closeRedis()
		return nil, fmt.Errorf("failed to create route enforcer: %w", err)
	}
	if err := permission.InitRoutePermissions(enforcer, log); err != nil {
		c.closeRedis()
		return nil, fmt.Errorf("failed to load route permissions: %w", err)
	}
	c.enforcer = enforcer

	client := backend.NewClient(cfg.Backend.GetBaseURL(), backend.WithTimeout(cfg.Backend.GetTimeout()))
	c.ucs = NewUseCases(UseCaseDeps{
		Client:      client,
		RecentLimit: cfg.Analytics.RecentLimit,
		Logger:      log,
	})

	c.initHandlers()
	return c, nil
}

func (c *Container) initHandlers() {
	ucs := c.ucs

	c.sessionMiddleware = middleware.NewSessionMiddleware(c.store, c.cfg.Session, c.onSessionInvalidated, c.log.Named("session"))

	var counter ratelimit.Counter = ratelimit.NewMemoryCounter()
	if c.redis != nil {
		counter = ratelimit.NewRedisCounter(c.redis)
	}
	c.authRateLimiter = middleware.NewRateLimiter(counter, c.cfg.RateLimit.AuthPerMinute, time.Minute, c.log.Named("ratelimit"))

	c.authHandler = handlers.NewAuthHandler(
		ucs.Login,
		ucs.Signup,
		ucs.Logout,
		ucs.Profile,
		c.cfg.Session.Cookie,
		c.log,
	)

	c.dashboardHandler = handlers.NewDashboardHandler(handlers.DashboardUseCases{
		Overview:        ucs.CustomerOverview,
		ListPlans:       ucs.AvailablePlans,
		PlanDetails:     ucs.PlanDetails,
		Subscribe:       ucs.Subscribe,
		ListComplaints:  ucs.MyComplaints,
		SubmitComplaint: ucs.SubmitComplaint,
		FAQ:             ucs.FAQ,
	}, c.log)

	c.adminHandler = admin.NewHandler(
		ucs.AdminOverview,
		ucs.Customers,
		ucs.Complaints,
		ucs.ResolveComplaint,
		ucs.Plans,
		c.log,
	)
}

func (c *Container) onSessionInvalidated(_ context.Context, ended session.Session, reason error) {
	c.log.Infow("session ended by backend", "email", ended.Email, "role", ended.Role, "reason", reason)
}

// Shutdown releases the redis connection, if any.
func (c *Container) Shutdown() {
	c.closeRedis()
}

func (c *Container) closeRedis() {
	if c.redis == nil {
		return
	}
	if err := c.redis.Close(); err != nil {
		c.log.Warnw("failed to close redis client", "error", err)
	}
	c.redis = nil
}
