package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shelfmatch/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler, logger *zap.Logger) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware(logger))
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware(logger))
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP, logger))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		barcode := v1.Group("/barcode")
		{
			barcode.POST("/validate", handler.ValidateBarcode)
		}

		products := v1.Group("/products")
		{
			products.POST("/match", handler.MatchProduct)
			products.POST("/duplicates", handler.FindDuplicates)
		}

		recipes := v1.Group("/recipes")
		{
			recipes.POST("/normalize", handler.NormalizeRecipe)
		}

		menus := v1.Group("/menus")
		{
			menus.POST("/normalize", handler.NormalizeMenu)
		}
	}

	return router
}
