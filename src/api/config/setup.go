package config

import (
	"github.com/Korikanas/ncart/src/api/infrastructure/controller"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// APIConfig configuración del módulo API (health check)
type APIConfig struct {
	ServiceName string
	Version     string
	// Checks dependencias verificadas por /api/v1/health
	Checks map[string]controller.Check
	Logger *zap.Logger
}

// DefaultAPIConfig devuelve una configuración por defecto
func DefaultAPIConfig() APIConfig {
	return APIConfig{
		ServiceName: "ncart",
		Version:     "dev",
		Checks:      map[string]controller.Check{},
		Logger:      zap.NewNop(),
	}
}

// SetupAPIModule registra /health (liveness) y /api/v1/health (con checks)
func SetupAPIModule(router *gin.Engine, v1 *gin.RouterGroup, cfg APIConfig) {
	healthCtrl := controller.NewHealthController(cfg.ServiceName, cfg.Version, cfg.Checks, cfg.Logger)

	router.GET("/health", healthCtrl.Live)
	v1.GET("/health", healthCtrl.Ready)

	cfg.Logger.Info("api module configured",
		zap.String("service", cfg.ServiceName),
		zap.String("version", cfg.Version),
		zap.Int("checks", len(cfg.Checks)),
	)
}
