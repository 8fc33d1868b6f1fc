// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"aquagest/internal/domain/advisor"
	"aquagest/internal/domain/auth"
	"aquagest/internal/domain/state"
	"aquagest/internal/infrastructure/http/v1/handlers"
	"aquagest/internal/infrastructure/http/v1/middleware"
	"aquagest/internal/infrastructure/persist"
	"aquagest/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Store owns the current state snapshot
	Store *state.Store

	// Gateway persists snapshots and serves backup export/restore
	Gateway *persist.Gateway

	// Sync is the cosmetic persistence indicator
	Sync *persist.SyncIndicator

	// StoragePinger checks slot store connectivity (nil for file/memory)
	StoragePinger handlers.Pinger

	// Logger for request logging
	Logger *logger.Logger

	// JWTValidator for token validation
	JWTValidator middleware.JWTValidator

	// AuthService for authentication endpoints
	AuthService *auth.Service

	// AdvisorService for model-backed suggestions (nil disables the routes)
	AdvisorService *advisor.Service
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth)
	healthHandler := handlers.NewHealthHandler(cfg.StoragePinger, cfg.Sync)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	// API v1
	apiV1 := router.Group("/api/v1")
	{
		registerAuthRoutes(apiV1, cfg)

		// Storefront catalog is browsable without a session.
		catalogHandler := handlers.NewProductHandler(handlers.NewBaseHandler(), cfg.Store)
		apiV1.GET("/catalog", catalogHandler.List)

		protected := apiV1.Group("")
		protected.Use(middleware.Auth(cfg.JWTValidator))

		registerStateRoutes(protected, cfg)
		registerBackupRoutes(protected, cfg)
		registerAdvisorRoutes(protected, cfg)
	}

	return router
}

// registerAuthRoutes registers authentication endpoints.
func registerAuthRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.AuthService == nil {
		return
	}

	baseHandler := handlers.NewBaseHandler()
	authHandler := handlers.NewAuthHandler(baseHandler, cfg.AuthService)

	publicAuth := rg.Group("/auth")

	protectedAuth := rg.Group("/auth")
	protectedAuth.Use(middleware.Auth(cfg.JWTValidator))

	authHandler.RegisterRoutes(publicAuth, protectedAuth)
}

// registerStateRoutes registers the entity collection endpoints.
func registerStateRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()

	// --- CLIENTS ---
	{
		handler := handlers.NewClientHandler(baseHandler, cfg.Store)
		clients := rg.Group("/clients")
		clients.GET("", handler.List)
		clients.POST("", handler.Create)
		clients.PUT("/:id", handler.Update)
		clients.DELETE("/:id", handler.Delete)
	}

	// --- PRODUCTS ---
	{
		handler := handlers.NewProductHandler(baseHandler, cfg.Store)
		products := rg.Group("/products")
		products.GET("", handler.List)
		products.POST("", handler.Create)
		products.PUT("/:id", handler.Update)
		products.DELETE("/:id", handler.Delete)
		products.POST("/:id/stock", handler.AdjustStock)
	}

	// --- SALES ---
	{
		handler := handlers.NewSaleHandler(baseHandler, cfg.Store)
		sales := rg.Group("/sales")
		sales.GET("", handler.List)
		sales.POST("", handler.Create)
	}

	// --- DELIVERIES ---
	{
		handler := handlers.NewDeliveryHandler(baseHandler, cfg.Store)
		deliveries := rg.Group("/deliveries")
		deliveries.GET("", handler.List)
		deliveries.PATCH("/:id/status", handler.UpdateStatus)
	}

	// --- DELIVERERS ---
	{
		handler := handlers.NewDelivererHandler(baseHandler, cfg.Store)
		deliverers := rg.Group("/deliverers")
		deliverers.GET("", handler.List)
		deliverers.POST("", handler.Create)
		deliverers.DELETE("/:name", handler.Delete)
	}
}

// registerBackupRoutes registers snapshot and backup endpoints.
func registerBackupRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()
	handler := handlers.NewBackupHandler(baseHandler, cfg.Store, cfg.Gateway, cfg.Sync)

	rg.GET("/state", handler.Snapshot)
	rg.GET("/state/sync", handler.SyncStatus)

	backup := rg.Group("/backup")
	backup.GET("/export", handler.Export)
	backup.POST("/restore", handler.Restore)
}

// registerAdvisorRoutes registers the model-backed suggestion endpoints.
func registerAdvisorRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.AdvisorService == nil {
		return
	}

	baseHandler := handlers.NewBaseHandler()
	handler := handlers.NewAdvisorHandler(baseHandler, cfg.Store, cfg.AdvisorService)

	advisorGroup := rg.Group("/advisor")
	advisorGroup.POST("/ask", handler.Ask)
	advisorGroup.GET("/prediction", handler.Prediction)
	advisorGroup.GET("/promotions", handler.Promotions)
}
