package httpx

import (
	"errors"
	"net/http"

	"github.com/Korikanas/ncart/src/shared/domain/failure"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorMapping asocia un error sentinel a un status y código de respuesta
type ErrorMapping struct {
	Err    error
	Status int
	Code   string
}

// WriteError responde el error. Primero se buscan los sentinels del
// contexto; si ninguno aplica se usa el tipo de fallo.
func WriteError(ctx *gin.Context, logger *zap.Logger, err error, mappings ...ErrorMapping) {
	status, code := StatusFor(err, mappings...)

	body := gin.H{
		"error": code,
	}

	var f *failure.Failure
	if errors.As(err, &f) {
		body["kind"] = f.Kind.String()
		if f.Kind == failure.Rejected {
			body["backend_status"] = f.StatusCode
			body["details"] = f.Message
		} else if f.Err != nil {
			body["details"] = f.Err.Error()
		}
	} else {
		body["details"] = err.Error()
	}

	if status >= http.StatusInternalServerError {
		logger.Error("request failed", zap.String("path", ctx.FullPath()), zap.Int("status", status), zap.Error(err))
	} else {
		logger.Debug("request rejected", zap.String("path", ctx.FullPath()), zap.Int("status", status), zap.Error(err))
	}

	ctx.JSON(status, body)
}

// StatusFor calcula status HTTP y código de error
func StatusFor(err error, mappings ...ErrorMapping) (int, string) {
	for _, m := range mappings {
		if errors.Is(err, m.Err) {
			return m.Status, m.Code
		}
	}

	kind, ok := failure.KindOf(err)
	if !ok {
		return http.StatusInternalServerError, "internal_error"
	}
	switch kind {
	case failure.Network:
		return http.StatusBadGateway, "backend_unreachable"
	case failure.Rejected:
		return http.StatusBadGateway, "rejected_by_server"
	default:
		return http.StatusBadRequest, "precondition_failed"
	}
}
