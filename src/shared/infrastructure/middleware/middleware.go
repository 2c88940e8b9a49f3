package middleware

import (
	"time"

	"github.com/gin-contrib/gzip"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GzipOptions opciones del middleware de compresión
type GzipOptions struct {
	ExcludedPaths []string
	// DecompressRequest descomprime bodies con Content-Encoding: gzip
	DecompressRequest bool
}

// Gzip comprime las respuestas salvo en las rutas excluidas
func Gzip(opts GzipOptions) gin.HandlerFunc {
	options := []gzip.Option{gzip.WithExcludedPaths(opts.ExcludedPaths)}
	if opts.DecompressRequest {
		options = append(options, gzip.WithDecompressFn(gzip.DefaultDecompressHandle))
	}
	return gzip.Gzip(gzip.DefaultCompression, options...)
}

// RequestLogger registra cada request con zap, en UTC
func RequestLogger(logger *zap.Logger, skipPaths ...string) gin.HandlerFunc {
	return ginzap.GinzapWithConfig(logger, &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        true,
		SkipPaths:  skipPaths,
	})
}

// Recovery convierte panics en 500 y los registra con stack
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return ginzap.RecoveryWithZap(logger, true)
}
