package config

import (
	"github.com/Korikanas/ncart/src/shared/infrastructure/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GzipSharedConfig contiene la configuración para el módulo compartido de compresión
type GzipSharedConfig struct {
	EnableGzip          bool     `yaml:"enable"`
	AlwaysTryDecompress bool     `yaml:"always_try_decompress"`
	GzipExcludedPaths   []string `yaml:"excluded_paths"`
}

// DefaultSharedConfig devuelve una configuración por defecto
func DefaultSharedConfig() GzipSharedConfig {
	return GzipSharedConfig{
		EnableGzip:          true,
		AlwaysTryDecompress: true,
		GzipExcludedPaths:   []string{"/health", "/metrics"},
	}
}

// SetupSharedMiddleware configura los middlewares compartidos:
// log de requests con zap, recovery y compresión gzip
func SetupSharedMiddleware(router *gin.Engine, config GzipSharedConfig, logger *zap.Logger) {
	router.Use(middleware.RequestLogger(logger, "/health", "/metrics"))
	router.Use(middleware.Recovery(logger))

	if config.EnableGzip {
		router.Use(middleware.Gzip(middleware.GzipOptions{
			ExcludedPaths:     config.GzipExcludedPaths,
			DecompressRequest: config.AlwaysTryDecompress,
		}))
	}
}
