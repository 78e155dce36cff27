package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/StyleWatch-api/internal/application/analysis"
	"github.com/jhoicas/StyleWatch-api/internal/application/dto"
	"github.com/jhoicas/StyleWatch-api/pkg/jwt"
)

// AnalysisHandler maneja el análisis de estilos (protegido).
type AnalysisHandler struct {
	analyzer *analysis.StyleAnalysisUseCase
	reports  *analysis.ReportUseCase
}

// NewAnalysisHandler construye el handler.
func NewAnalysisHandler(analyzer *analysis.StyleAnalysisUseCase, reports *analysis.ReportUseCase) *AnalysisHandler {
	return &AnalysisHandler{analyzer: analyzer, reports: reports}
}

// Analyze godoc
// @Summary      Analizar un estilo
// @Description  Cruza el reporte de ventas con el feed de inventario: serie diaria, rotación
//
//	por SKU, quiebres, tallas agotadas y KPIs. Con persist=true guarda la corrida
//	(requiere rol operator o admin).
//
// @Tags         analysis
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.AnalyzeRequest  true  "report_text y/o inventory_feed"
// @Success      200   {object}  dto.StyleAnalysisDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/analysis [post]
func (h *AnalysisHandler) Analyze(c *fiber.Ctx) error {
	var in dto.AnalyzeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Persist && !canPersist(GetRole(c)) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "guardar requiere rol operator o admin"})
	}
	out, err := h.analyzer.Analyze(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ParseReport godoc
// @Summary      Parsear un reporte de ventas
// @Tags         analysis
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ParseReportRequest  true  "report_text"
// @Success      200   {object}  dto.ParsedReportDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/analysis/parse [post]
func (h *AnalysisHandler) ParseReport(c *fiber.Ctx) error {
	var in dto.ParseReportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.analyzer.ParseReport(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ReportPDF godoc
// @Summary      Reporte PDF del análisis
// @Tags         analysis
// @Security     Bearer
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.AnalyzeRequest  true  "mismo cuerpo que /api/analysis"
// @Success      200
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/analysis/report.pdf [post]
func (h *AnalysisHandler) ReportPDF(c *fiber.Ctx) error {
	var in dto.AnalyzeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	pdf, result, err := h.reports.RenderPDF(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s"`, pdfFileName(result.Style)))
	if result.RunID != "" {
		c.Set("X-Run-ID", result.RunID)
	}
	return c.Send(pdf)
}

func canPersist(role string) bool {
	return role == jwt.RoleOperator || role == jwt.RoleAdmin
}

// pdfFileName nombre ASCII para Content-Disposition; los caracteres no ASCII se reemplazan.
func pdfFileName(style string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(style) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	name := strings.Trim(b.String(), "_")
	if name == "" {
		name = "estilo"
	}
	return "rotacion-" + name + ".pdf"
}
