package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/StyleWatch-api/internal/application/analysis"
	"github.com/jhoicas/StyleWatch-api/internal/application/dto"
)

// HistoryHandler consulta el historial guardado de un estilo (protegido, requiere almacenamiento).
type HistoryHandler struct {
	uc *analysis.HistoryUseCase
}

// NewHistoryHandler construye el handler.
func NewHistoryHandler(uc *analysis.HistoryUseCase) *HistoryHandler {
	return &HistoryHandler{uc: uc}
}

// GetStyleHistory godoc
// @Summary      Historial de un estilo
// @Description  Recalcula serie diaria, rotación y quiebres con las ventas y la última foto de
//
//	inventario guardadas. No persiste nada.
//
// @Tags         styles
// @Security     Bearer
// @Produce      json
// @Param        name    path   string  true   "Nombre del estilo"
// @Param        window  query  int     false  "Días de la serie, 0..365 (0 = ventana por defecto)"
// @Success      200  {object}  dto.StyleHistoryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/styles/{name}/history [get]
func (h *HistoryHandler) GetStyleHistory(c *fiber.Ctx) error {
	style := c.Params("name")
	window := 0
	if raw := c.Query("window"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > analysis.MaxTrendWindow {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    "VALIDATION",
				Message: fmt.Sprintf("window debe ser un entero entre 0 y %d", analysis.MaxTrendWindow),
			})
		}
		window = n
	}
	out, err := h.uc.GetStyleHistory(c.UserContext(), style, window)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
