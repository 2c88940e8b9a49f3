package httpx

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// SessionHeader identifica la sesión de navegación dueña del carrito
const SessionHeader = "X-Session-ID"

// SessionID lee el header de sesión; si falta responde 400 y retorna false
func SessionID(ctx *gin.Context) (string, bool) {
	sessionID := strings.TrimSpace(ctx.GetHeader(SessionHeader))
	if sessionID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": SessionHeader + " header is required",
		})
		return "", false
	}
	return sessionID, true
}

// AuthToken retorna la credencial del header Authorization sin el esquema
// Bearer. Un header vacío, solo el esquema, "null" o "undefined" cuentan
// como ausencia de credencial.
func AuthToken(ctx *gin.Context) string {
	token := strings.TrimSpace(ctx.GetHeader("Authorization"))
	if scheme, rest, found := strings.Cut(token, " "); found && strings.EqualFold(scheme, "Bearer") {
		token = strings.TrimSpace(rest)
	} else if strings.EqualFold(token, "Bearer") {
		token = ""
	}

	switch strings.ToLower(token) {
	case "null", "undefined":
		return ""
	}
	return token
}
