package response

import (
	"time"

	"github.com/Korikanas/ncart/src/admin/domain/entity"

	"github.com/shopspring/decimal"
)

// DailyReportResponse representa el reporte diario de órdenes
type DailyReportResponse struct {
	Date            string          `json:"date"` // YYYY-MM-DD
	OrdersCount     int             `json:"orders_count"`
	CancelledCount  int             `json:"cancelled_count"`
	GrossTotal      decimal.Decimal `json:"gross_total"`     // sin canceladas
	DeliveredTotal  decimal.Decimal `json:"delivered_total"` // ingresos
	StatusBreakdown map[string]int  `json:"status_breakdown"`
	FirstOrderAt    *time.Time      `json:"first_order_at,omitempty"`
	LastOrderAt     *time.Time      `json:"last_order_at,omitempty"`
}

// NewDailyReportResponse convierte el reporte a la respuesta HTTP
func NewDailyReportResponse(date string, r entity.DailyReport) *DailyReportResponse {
	return &DailyReportResponse{
		Date:            date,
		OrdersCount:     r.OrdersCount,
		CancelledCount:  r.CancelledCount,
		GrossTotal:      r.GrossTotal,
		DeliveredTotal:  r.DeliveredTotal,
		StatusBreakdown: r.StatusBreakdown,
		FirstOrderAt:    r.FirstOrderAt,
		LastOrderAt:     r.LastOrderAt,
	}
}
