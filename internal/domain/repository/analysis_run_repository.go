package repository

import (
	"context"

	"github.com/jhoicas/StyleWatch-api/internal/domain/entity"
)

// AnalysisRunRepository bitácora de corridas persistidas.
type AnalysisRunRepository interface {
	Create(ctx context.Context, run *entity.AnalysisRun) error

	// ListByStyle devuelve las últimas corridas del estilo, de la más reciente a la más antigua.
	ListByStyle(ctx context.Context, style string, limit int) ([]entity.AnalysisRun, error)
}
