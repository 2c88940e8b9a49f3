package controller

import (
	"net/http"

	"github.com/Korikanas/ncart/src/admin/application/usecase"
	"github.com/Korikanas/ncart/src/admin/domain/entity"
	orderController "github.com/Korikanas/ncart/src/order/infrastructure/controller"
	"github.com/Korikanas/ncart/src/shared/infrastructure/httpx"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var reportErrors = append([]httpx.ErrorMapping{
	{Err: entity.ErrDateRequired, Status: http.StatusBadRequest, Code: "date_required"},
	{Err: entity.ErrInvalidDate, Status: http.StatusBadRequest, Code: "invalid_date"},
}, orderController.OrderErrors()...)

// ReportController maneja las peticiones HTTP para reportes
type ReportController struct {
	dailyReportUC *usecase.DailyReportUseCase
	logger        *zap.Logger
}

// NewReportController crea una nueva instancia del controlador
func NewReportController(dailyReportUC *usecase.DailyReportUseCase, logger *zap.Logger) *ReportController {
	return &ReportController{
		dailyReportUC: dailyReportUC,
		logger:        logger,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *ReportController) RegisterRoutes(router *gin.RouterGroup) {
	reports := router.Group("/admin/reports")
	{
		reports.GET("/daily", c.DailyReport)
	}

	c.logger.Info("report routes registered",
		zap.Strings("routes", []string{"GET /api/v1/admin/reports/daily?date=YYYY-MM-DD"}),
	)
}

// DailyReport maneja el reporte diario de órdenes
func (c *ReportController) DailyReport(ctx *gin.Context) {
	sessionID, ok := httpx.SessionID(ctx)
	if !ok {
		return
	}

	resp, err := c.dailyReportUC.Execute(ctx.Request.Context(), sessionID, httpx.AuthToken(ctx), ctx.Query("date"))
	if err != nil {
		httpx.WriteError(ctx, c.logger, err, reportErrors...)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
