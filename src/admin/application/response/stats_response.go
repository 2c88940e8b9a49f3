package response

import (
	"github.com/Korikanas/ncart/src/admin/domain/entity"

	"github.com/shopspring/decimal"
)

// StatsResponse métricas del panel de administración
type StatsResponse struct {
	TotalOrders     int             `json:"total_orders"`
	ActiveOrders    int             `json:"active_orders"`
	DeliveredOrders int             `json:"delivered_orders"`
	CancelledOrders int             `json:"cancelled_orders"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	TotalProducts   int             `json:"total_products"`
}

// NewStatsResponse convierte las métricas a la respuesta HTTP
func NewStatsResponse(s entity.DashboardStats) *StatsResponse {
	return &StatsResponse{
		TotalOrders:     s.TotalOrders,
		ActiveOrders:    s.ActiveOrders,
		DeliveredOrders: s.DeliveredOrders,
		CancelledOrders: s.CancelledOrders,
		TotalRevenue:    s.Revenue,
		TotalProducts:   s.TotalProducts,
	}
}
