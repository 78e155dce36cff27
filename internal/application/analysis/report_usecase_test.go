package analysis_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/StyleWatch-api/internal/application/analysis"
	"github.com/jhoicas/StyleWatch-api/internal/application/dto"
	"github.com/jhoicas/StyleWatch-api/internal/domain"
)

func TestRenderPDF(t *testing.T) {
	gen := &fakeGenerator{}
	uc := analysis.NewReportUseCase(newUseCase(nil, nil), gen)

	pdf, result, err := uc.RenderPDF(context.Background(), dto.AnalyzeRequest{ReportText: sampleReport, InventoryFeed: sampleFeed})
	require.NoError(t, err)

	assert.NotEmpty(t, pdf)
	assert.Same(t, result, gen.got, "el PDF se genera con el mismo análisis que se devuelve")
	assert.Equal(t, "Tee", result.Style)
}

func TestRenderPDF_Errores(t *testing.T) {
	genErr := errors.New("fuente no disponible")
	uc := analysis.NewReportUseCase(newUseCase(nil, nil), &fakeGenerator{err: genErr})

	_, _, err := uc.RenderPDF(context.Background(), dto.AnalyzeRequest{ReportText: sampleReport})
	assert.ErrorIs(t, err, genErr)

	_, _, err = uc.RenderPDF(context.Background(), dto.AnalyzeRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
