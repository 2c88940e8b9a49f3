package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Korikanas/ncart/src/admin/application/response"
	"github.com/Korikanas/ncart/src/admin/domain/entity"
	"github.com/Korikanas/ncart/src/order/domain/port"
	"github.com/Korikanas/ncart/src/shared/domain/failure"
)

const opDailyReport = "daily_report"

// DailyReportUseCase caso de uso para el reporte diario de órdenes
type DailyReportUseCase struct {
	orders   port.OrderGateway
	store    port.OrderStore
	location *time.Location
}

// NewDailyReportUseCase crea una nueva instancia del caso de uso.
// location define el inicio del día; nil usa UTC.
func NewDailyReportUseCase(orders port.OrderGateway, store port.OrderStore, location *time.Location) *DailyReportUseCase {
	if location == nil {
		location = time.UTC
	}
	return &DailyReportUseCase{
		orders:   orders,
		store:    store,
		location: location,
	}
}

// Execute genera el reporte para una fecha YYYY-MM-DD.
// El rango es [from, to) con from el inicio del día en la zona configurada.
func (uc *DailyReportUseCase) Execute(ctx context.Context, sessionID, authToken, date string) (*response.DailyReportResponse, error) {
	if date == "" {
		return nil, failure.NewPrecondition(opDailyReport, entity.ErrDateRequired)
	}
	from, err := time.ParseInLocation("2006-01-02", date, uc.location)
	if err != nil {
		return nil, failure.NewPrecondition(opDailyReport, fmt.Errorf("%w: %s", entity.ErrInvalidDate, date))
	}

	orders, err := fetchOrders(ctx, opDailyReport, uc.orders, uc.store, sessionID, authToken)
	if err != nil {
		return nil, err
	}

	return response.NewDailyReportResponse(date, entity.NewDailyReport(orders, from)), nil
}
