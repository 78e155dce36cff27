package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/StyleWatch-api/internal/application/analysis"
	"github.com/jhoicas/StyleWatch-api/pkg/jwt"
)

// RouterDeps dependencias para el router. History es nil cuando no hay almacenamiento.
type RouterDeps struct {
	Analyzer  *analysis.StyleAnalysisUseCase
	Reports   *analysis.ReportUseCase
	History   *analysis.HistoryUseCase
	JWTSecret string
}

// Router registra las rutas de la API. Todas las rutas /api requieren Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	protected := app.Group("/api", AuthMiddleware(deps.JWTSecret))
	writers := RequireRole(jwt.RoleOperator, jwt.RoleAdmin)

	// Análisis
	analysisHandler := NewAnalysisHandler(deps.Analyzer, deps.Reports)
	analysisGroup := protected.Group("/analysis")
	analysisGroup.Post("/", analysisHandler.Analyze)
	analysisGroup.Post("/parse", analysisHandler.ParseReport)
	analysisGroup.Post("/report.pdf", writers, analysisHandler.ReportPDF)

	// Inventario
	inventoryHandler := NewInventoryHandler(deps.Analyzer)
	protected.Post("/inventory/snapshot", inventoryHandler.Snapshot)

	// Historial (solo con almacenamiento)
	var store storeChecker
	if deps.History != nil {
		store = deps.Analyzer
	}
	historyHandler := NewHistoryHandler(deps.History)
	protected.Get("/styles/:name/history", RequireStore(store), historyHandler.GetStyleHistory)
}
