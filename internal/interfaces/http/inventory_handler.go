package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/StyleWatch-api/internal/application/analysis"
	"github.com/jhoicas/StyleWatch-api/internal/application/dto"
)

// InventoryHandler expone el parser del feed de inventario (protegido).
type InventoryHandler struct {
	analyzer *analysis.StyleAnalysisUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(analyzer *analysis.StyleAnalysisUseCase) *InventoryHandler {
	return &InventoryHandler{analyzer: analyzer}
}

// Snapshot godoc
// @Summary      Parsear el feed de inventario
// @Description  Acepta un arreglo JSON de líneas o texto por líneas: name,color,size,warehouse,available,onhand.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ParseInventoryRequest  true  "inventory_feed"
// @Success      200   {object}  dto.InventorySnapshotDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/snapshot [post]
func (h *InventoryHandler) Snapshot(c *fiber.Ctx) error {
	var in dto.ParseInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.analyzer.ParseInventory(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
