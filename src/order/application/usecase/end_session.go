package usecase

import (
	"github.com/Korikanas/ncart/src/order/domain/port"

	"go.uber.org/zap"
)

// EndSessionUseCase descarta carrito y órdenes en cache al cerrar la sesión.
// El backend no se toca: las órdenes se vuelven a listar al próximo login.
type EndSessionUseCase struct {
	stores []port.SessionDropper
	logger *zap.Logger
}

// NewEndSessionUseCase crea una nueva instancia del caso de uso
func NewEndSessionUseCase(logger *zap.Logger, stores ...port.SessionDropper) *EndSessionUseCase {
	return &EndSessionUseCase{
		stores: stores,
		logger: logger,
	}
}

// Execute descarta el estado de la sesión en cada store
func (uc *EndSessionUseCase) Execute(sessionID string) {
	for _, store := range uc.stores {
		store.Drop(sessionID)
	}
	uc.logger.Debug("session dropped", zap.String("session_id", sessionID))
}
