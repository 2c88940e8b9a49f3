package usecase

import (
	"context"

	"github.com/Korikanas/ncart/src/admin/application/response"
	"github.com/Korikanas/ncart/src/admin/domain/entity"
	catalogPort "github.com/Korikanas/ncart/src/catalog/domain/port"
	"github.com/Korikanas/ncart/src/order/domain/port"

	"go.uber.org/zap"
)

const opDashboardStats = "dashboard_stats"

// DashboardStatsUseCase caso de uso para las métricas del panel
type DashboardStatsUseCase struct {
	orders   port.OrderGateway
	store    port.OrderStore
	products catalogPort.ProductGateway
	logger   *zap.Logger
}

// NewDashboardStatsUseCase crea una nueva instancia del caso de uso
func NewDashboardStatsUseCase(orders port.OrderGateway, store port.OrderStore, products catalogPort.ProductGateway, logger *zap.Logger) *DashboardStatsUseCase {
	return &DashboardStatsUseCase{
		orders:   orders,
		store:    store,
		products: products,
		logger:   logger,
	}
}

// Execute calcula las métricas. Si el catálogo no responde las métricas
// de órdenes se devuelven igual, con total de productos en 0.
func (uc *DashboardStatsUseCase) Execute(ctx context.Context, sessionID, authToken string) (*response.StatsResponse, error) {
	orders, err := fetchOrders(ctx, opDashboardStats, uc.orders, uc.store, sessionID, authToken)
	if err != nil {
		return nil, err
	}

	productCount := 0
	products, err := uc.products.ListProducts(ctx)
	if err != nil {
		uc.logger.Warn("product count unavailable", zap.Error(err))
	} else {
		productCount = len(products)
	}

	return response.NewStatsResponse(entity.NewDashboardStats(orders, productCount)), nil
}
