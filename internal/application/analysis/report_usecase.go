package analysis

import (
	"context"
	"fmt"

	"github.com/jhoicas/StyleWatch-api/internal/application/dto"
)

// ReportUseCase genera el PDF del análisis de un estilo.
type ReportUseCase struct {
	analyzer  *StyleAnalysisUseCase
	generator ReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(analyzer *StyleAnalysisUseCase, generator ReportGenerator) *ReportUseCase {
	return &ReportUseCase{analyzer: analyzer, generator: generator}
}

// RenderPDF ejecuta Analyze y devuelve el PDF junto con el análisis usado para generarlo.
func (uc *ReportUseCase) RenderPDF(ctx context.Context, req dto.AnalyzeRequest) ([]byte, *dto.StyleAnalysisDTO, error) {
	result, err := uc.analyzer.Analyze(ctx, req)
	if err != nil {
		return nil, nil, err
	}
	pdf, err := uc.generator.GenerateStyleReport(ctx, result)
	if err != nil {
		return nil, nil, fmt.Errorf("reporte: generar pdf: %w", err)
	}
	return pdf, result, nil
}
