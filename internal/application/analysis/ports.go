package analysis

import (
	"context"

	"github.com/jhoicas/StyleWatch-api/internal/application/dto"
	"github.com/jhoicas/StyleWatch-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Las líneas de venta, la foto de inventario y la bitácora de una corrida se guardan juntas o no se guardan.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		sales repository.SaleRecordRepository,
		snapshots repository.InventorySnapshotRepository,
		runs repository.AnalysisRunRepository,
	) error) error
}

// MetricsRecorder registra contadores de las corridas de análisis.
type MetricsRecorder interface {
	ObserveParse(source string, parsed, skipped int)
	ObserveShortages(n int)
	ObservePersist(err error)
}

// ReportGenerator genera el PDF del análisis de un estilo.
type ReportGenerator interface {
	GenerateStyleReport(ctx context.Context, analysis *dto.StyleAnalysisDTO) ([]byte, error)
}

type nopMetrics struct{}

func (nopMetrics) ObserveParse(string, int, int) {}
func (nopMetrics) ObserveShortages(int)          {}
func (nopMetrics) ObservePersist(error)          {}
