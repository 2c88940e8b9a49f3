package controller

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const checkTimeout = 3 * time.Second

// Check verifica una dependencia; nil significa disponible
type Check func(ctx context.Context) error

// HealthController maneja los endpoints de salud
type HealthController struct {
	service   string
	version   string
	checks    map[string]Check
	startedAt time.Time
	logger    *zap.Logger
}

// NewHealthController crea una nueva instancia del controlador
func NewHealthController(service, version string, checks map[string]Check, logger *zap.Logger) *HealthController {
	return &HealthController{
		service:   service,
		version:   version,
		checks:    checks,
		startedAt: time.Now(),
		logger:    logger,
	}
}

// Live responde siempre 200 mientras el proceso esté vivo
func (c *HealthController) Live(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": c.service,
		"version": c.version,
	})
}

// Ready ejecuta los checks; si alguno falla responde 503 con status degraded
func (c *HealthController) Ready(ctx *gin.Context) {
	names := make([]string, 0, len(c.checks))
	for name := range c.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), checkTimeout)
	defer cancel()

	status := "ok"
	code := http.StatusOK
	results := make(map[string]string, len(names))
	for _, name := range names {
		if err := c.checks[name](checkCtx); err != nil {
			c.logger.Warn("health check failed", zap.String("check", name), zap.Error(err))
			results[name] = err.Error()
			status = "degraded"
			code = http.StatusServiceUnavailable
			continue
		}
		results[name] = "ok"
	}

	ctx.JSON(code, gin.H{
		"status":         status,
		"service":        c.service,
		"version":        c.version,
		"uptime_seconds": int64(time.Since(c.startedAt).Seconds()),
		"checks":         results,
	})
}
