package usecase

import (
	"context"
	"math"
	"sort"

	"github.com/Korikanas/ncart/src/order/application/response"
	"github.com/Korikanas/ncart/src/order/domain/entity"
	"github.com/Korikanas/ncart/src/order/domain/port"
	"github.com/Korikanas/ncart/src/shared/domain/failure"
	"github.com/Korikanas/ncart/src/shared/infrastructure/inflight"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const opListOrders = "list_orders"

// ListOrdersUseCase caso de uso para listar órdenes con paginación.
// El backend es la fuente de verdad: cada listado reemplaza la cache.
type ListOrdersUseCase struct {
	gateway port.OrderGateway
	orders  port.OrderStore
	group   singleflight.Group
	logger  *zap.Logger
}

// NewListOrdersUseCase crea una nueva instancia del caso de uso
func NewListOrdersUseCase(gateway port.OrderGateway, orders port.OrderStore, logger *zap.Logger) *ListOrdersUseCase {
	return &ListOrdersUseCase{
		gateway: gateway,
		orders:  orders,
		logger:  logger,
	}
}

// Execute ejecuta el listado de órdenes
func (uc *ListOrdersUseCase) Execute(ctx context.Context, sessionID, authToken string, page, pageSize int) (*response.ListOrdersResponse, error) {
	if authToken == "" {
		return nil, failure.NewPrecondition(opListOrders, entity.ErrNotAuthenticated)
	}

	// Valores por defecto
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	// llamadas simultáneas de la misma sesión y token comparten el fetch.
	// El fetch compartido no hereda la cancelación de quien lo inició; el
	// timeout del cliente REST lo acota.
	fetchCtx := context.WithoutCancel(ctx)
	_, err, _ := uc.group.Do(inflight.Key(sessionID, authToken), func() (interface{}, error) {
		fetched, err := uc.gateway.List(fetchCtx, authToken)
		if err != nil {
			return nil, err
		}
		sort.SliceStable(fetched, func(i, j int) bool {
			return fetched[i].CreatedAt.After(fetched[j].CreatedAt)
		})
		uc.orders.Replace(sessionID, fetched)
		uc.logger.Debug("orders refreshed", zap.String("session_id", sessionID), zap.Int("count", len(fetched)))
		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	return Paginate(uc.orders.List(sessionID), page, pageSize), nil
}

// Paginate arma la página pedida de un listado de órdenes
func Paginate(orders []*entity.Order, page, pageSize int) *response.ListOrdersResponse {
	totalCount := len(orders)
	start := (page - 1) * pageSize
	if start > totalCount {
		start = totalCount
	}
	end := start + pageSize
	if end > totalCount {
		end = totalCount
	}

	items := make([]*response.OrderResponse, 0, end-start)
	for _, order := range orders[start:end] {
		items = append(items, response.NewOrderResponse(order))
	}

	totalPages := int(math.Ceil(float64(totalCount) / float64(pageSize)))

	return &response.ListOrdersResponse{
		Items:      items,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
