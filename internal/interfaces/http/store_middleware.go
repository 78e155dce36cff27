package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/StyleWatch-api/internal/application/dto"
)

// storeChecker es el contrato mínimo que necesita el middleware para saber si hay almacenamiento.
// Lo implementa *analysis.StyleAnalysisUseCase.
type storeChecker interface {
	StoreEnabled() bool
}

// RequireStore responde 503 STORE_DISABLED en las rutas que solo tienen sentido con
// persistencia (historial) cuando el servicio corre sin base de datos.
func RequireStore(checker storeChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if checker == nil || !checker.StoreEnabled() {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "STORE_DISABLED",
				Message: "el historial requiere almacenamiento configurado",
			})
		}
		return c.Next()
	}
}
