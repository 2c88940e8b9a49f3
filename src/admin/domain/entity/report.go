package entity

import (
	"time"

	orderEntity "github.com/Korikanas/ncart/src/order/domain/entity"

	"github.com/shopspring/decimal"
)

// DashboardStats métricas del panel de administración
type DashboardStats struct {
	TotalOrders     int
	ActiveOrders    int
	CancelledOrders int
	DeliveredOrders int
	// Revenue suma de totales de órdenes entregadas
	Revenue       decimal.Decimal
	TotalProducts int
}

// NewDashboardStats calcula las métricas a partir de las órdenes
func NewDashboardStats(orders []*orderEntity.Order, totalProducts int) DashboardStats {
	stats := DashboardStats{
		TotalOrders:   len(orders),
		Revenue:       decimal.Zero,
		TotalProducts: totalProducts,
	}
	for _, o := range orders {
		switch {
		case o.Status == orderEntity.OrderStatusDelivered:
			stats.DeliveredOrders++
			stats.Revenue = stats.Revenue.Add(o.Total)
		case o.Status == orderEntity.OrderStatusCancelled:
			stats.CancelledOrders++
		default:
			stats.ActiveOrders++
		}
	}
	return stats
}

// DailyReport resumen de las órdenes creadas en un día
type DailyReport struct {
	From time.Time
	To   time.Time

	OrdersCount     int
	CancelledCount  int
	GrossTotal      decimal.Decimal // órdenes no canceladas
	DeliveredTotal  decimal.Decimal
	StatusBreakdown map[string]int

	FirstOrderAt *time.Time
	LastOrderAt  *time.Time
}

// NewDailyReport agrega las órdenes con fecha de creación en [from, from+1d)
func NewDailyReport(orders []*orderEntity.Order, from time.Time) DailyReport {
	report := DailyReport{
		From:            from,
		To:              from.AddDate(0, 0, 1),
		GrossTotal:      decimal.Zero,
		DeliveredTotal:  decimal.Zero,
		StatusBreakdown: make(map[string]int),
	}

	for _, o := range orders {
		if o.CreatedAt.Before(report.From) || !o.CreatedAt.Before(report.To) {
			continue
		}

		report.OrdersCount++
		report.StatusBreakdown[string(o.Status)]++
		switch o.Status {
		case orderEntity.OrderStatusCancelled:
			report.CancelledCount++
		case orderEntity.OrderStatusDelivered:
			report.DeliveredTotal = report.DeliveredTotal.Add(o.Total)
			report.GrossTotal = report.GrossTotal.Add(o.Total)
		default:
			report.GrossTotal = report.GrossTotal.Add(o.Total)
		}

		createdAt := o.CreatedAt
		if report.FirstOrderAt == nil || createdAt.Before(*report.FirstOrderAt) {
			report.FirstOrderAt = &createdAt
		}
		if report.LastOrderAt == nil || createdAt.After(*report.LastOrderAt) {
			last := createdAt
			report.LastOrderAt = &last
		}
	}
	return report
}
