// Package http wires the gin engine, middleware and routes.
package http

import (
	"github.com/gin-gonic/gin"

	"stickybar/internal/infrastructure/config"
	"stickybar/internal/interfaces/http/handlers"
	"stickybar/internal/interfaces/http/middleware"
	"stickybar/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	engine             *gin.Engine
	widgetHandler      *handlers.WidgetHandler
	adminConfigHandler *handlers.AdminConfigHandler
	reviewHandler      *handlers.ReviewHandler
	healthHandler      *handlers.HealthHandler
	logger             logger.Interface
}

// NewRouter creates a new router instance
func NewRouter(
	widgetHandler *handlers.WidgetHandler,
	adminConfigHandler *handlers.AdminConfigHandler,
	reviewHandler *handlers.ReviewHandler,
	healthHandler *handlers.HealthHandler,
	log logger.Interface,
) *Router {
	return &Router{
		engine:             gin.New(),
		widgetHandler:      widgetHandler,
		adminConfigHandler: adminConfigHandler,
		reviewHandler:      reviewHandler,
		healthHandler:      healthHandler,
		logger:             log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes(cfg *config.Config) {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	r.engine.GET("/health", r.healthHandler.Health)

	r.setupWidgetRoutes()
	r.setupAdminRoutes()
}

// setupWidgetRoutes configures the public storefront routes
func (r *Router) setupWidgetRoutes() {
	widget := r.engine.Group("/widget")
	{
		widget.GET("/:siteId", r.widgetHandler.GetWidgetData)
		widget.GET("/:siteId/products/:productId", r.widgetHandler.GetWidgetData)
	}
}

// setupAdminRoutes configures the store owner configuration routes
func (r *Router) setupAdminRoutes() {
	admin := r.engine.Group("/admin/sites/:siteId")
	{
		admin.GET("/config", r.adminConfigHandler.GetConfig)
		admin.PUT("/config", r.adminConfigHandler.SaveConfig)

		admin.GET("/products/:productId/review", r.reviewHandler.GetManualReview)
		admin.PUT("/products/:productId/review", r.reviewHandler.SaveManualReview)
		admin.DELETE("/products/:productId/review", r.reviewHandler.DeleteManualReview)

		admin.GET("/failures", r.reviewHandler.ListFailureLogs)
	}
}

// Engine returns the underlying gin engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
