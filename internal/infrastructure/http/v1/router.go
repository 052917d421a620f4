// Package v1 wires the HTTP API surface.
package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"stockroom/internal/domain/auth"
	"stockroom/internal/infrastructure/http/v1/handlers"
	"stockroom/internal/infrastructure/http/v1/middleware"
	"stockroom/pkg/logger"
)

// requireStaffForWrites lets any authenticated role read while
// restricting mutations to staff and above.
func requireStaffForWrites() gin.HandlerFunc {
	staff := middleware.RequireRole(auth.RoleStaff)
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			c.Next()
			return
		}
		staff(c)
	}
}

// RouterConfig carries the router's dependencies.
type RouterConfig struct {
	Log            *logger.Logger
	JWT            *auth.JWTService
	MetricsEnabled bool

	Health     *handlers.HealthHandler
	Auth       *handlers.AuthHandler
	Users      *handlers.UserHandler
	Categories handlers.Registrar
	Suppliers  handlers.Registrar
	Customers  handlers.Registrar
	Warehouses handlers.Registrar
	Products   *handlers.ProductHandler
	Incoming   *handlers.IncomingHandler
	Outgoing   *handlers.OutgoingHandler
	Requests   *handlers.RequestHandler
	Dashboard  *handlers.DashboardHandler
}

// NewRouter assembles the gin engine with the full middleware chain
// and all v1 routes.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.Recovery())
	r.Use(middleware.Trace())
	r.Use(middleware.Logger(cfg.Log))
	r.Use(middleware.ErrorHandler())
	if cfg.MetricsEnabled {
		r.Use(middleware.Metrics())
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	r.GET("/health", cfg.Health.Health)

	api := r.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.POST("/login", middleware.LoginRateLimit(), cfg.Auth.Login)

	authed := api.Group("")
	authed.Use(middleware.Auth(cfg.JWT))
	authed.Use(requireStaffForWrites())

	cfg.Categories.Register(authed.Group("/categories"))
	cfg.Suppliers.Register(authed.Group("/suppliers"))
	cfg.Customers.Register(authed.Group("/customers"))
	cfg.Warehouses.Register(authed.Group("/warehouses"))
	cfg.Products.Register(authed.Group("/products"))
	cfg.Incoming.Register(authed.Group("/incoming-transactions"))
	cfg.Outgoing.Register(authed.Group("/outgoing-transactions"))
	cfg.Requests.Register(authed.Group("/product-requests"))
	cfg.Dashboard.Register(authed.Group("/reports/dashboard"))

	admin := api.Group("/users")
	admin.Use(middleware.Auth(cfg.JWT))
	admin.Use(middleware.RequireRole(auth.RoleAdmin))
	cfg.Users.Register(admin)

	return r
}
