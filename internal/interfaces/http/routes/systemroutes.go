package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/orris-inc/fibgate/internal/infrastructure/metrics"
	"github.com/orris-inc/fibgate/internal/interfaces/http/handlers"
)

// SystemRouteConfig holds dependencies for health, metrics and docs routes.
type SystemRouteConfig struct {
	HealthHandler  *handlers.HealthHandler
	MetricsEnabled bool
}

// SetupSystemRoutes configures routes that never reach the gateway.
func SetupSystemRoutes(engine *gin.Engine, cfg *SystemRouteConfig) {
	engine.GET("/health", cfg.HealthHandler.HealthCheck)
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if cfg.MetricsEnabled {
		engine.GET("/metrics", func(c *gin.Context) {
			c.Header("Content-Type", "text/plain; version=0.0.4; charset=utf-8")
			metrics.WritePrometheus(c.Writer)
		})
	}
}
