package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/StudioBellaVista/salon-admin/internal/backend"
	"github.com/StudioBellaVista/salon-admin/internal/httperr"
)

// writeGatewayError traduz a taxonomia de erros do gateway para HTTP:
// validação sobe verbatim, transporte vira aviso de indisponibilidade,
// o resto é erro interno genérico.
func writeGatewayError(c *gin.Context, err error, code, message string) {
	if backend.IsValidation(err) {
		httperr.BadRequest(c, "validation_error", backend.ValidationMessage(err))
		return
	}

	if backend.IsTransport(err) {
		httperr.BadGateway(c, "backend_unavailable", "Backend indisponível. Tente novamente.")
		return
	}

	httperr.Internal(c, code, message)
}
