package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/StyleWatch-api/internal/application/dto"
	"github.com/jhoicas/StyleWatch-api/internal/domain"
	"github.com/jhoicas/StyleWatch-api/internal/domain/entity"
	"github.com/jhoicas/StyleWatch-api/internal/domain/inventory"
	"github.com/jhoicas/StyleWatch-api/internal/domain/repository"
	"github.com/jhoicas/StyleWatch-api/internal/domain/salesreport"
)

const (
	// historyRunsLimit corridas recientes incluidas en el historial.
	historyRunsLimit = 20
	// MaxTrendWindow días máximos de una serie diaria, igual que trend_window en AnalyzeRequest.
	MaxTrendWindow = 365
)

// HistoryUseCase recalcula serie y rotación de un estilo a partir de lo guardado.
// Solo lectura: el resultado no se persiste.
type HistoryUseCase struct {
	salesRepo    repository.SaleRecordRepository
	snapshotRepo repository.InventorySnapshotRepository
	runRepo      repository.AnalysisRunRepository
	opts         Options
	log          zerolog.Logger
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(
	salesRepo repository.SaleRecordRepository,
	snapshotRepo repository.InventorySnapshotRepository,
	runRepo repository.AnalysisRunRepository,
	opts Options,
	log zerolog.Logger,
) *HistoryUseCase {
	if len(opts.TrendWindows) == 0 {
		opts.TrendWindows = DefaultOptions().TrendWindows
	}
	return &HistoryUseCase{
		salesRepo:    salesRepo,
		snapshotRepo: snapshotRepo,
		runRepo:      runRepo,
		opts:         opts,
		log:          log.With().Str("component", "style_history").Logger(),
	}
}

// GetStyleHistory carga en paralelo las ventas guardadas, la última foto de inventario
// y las corridas recientes del estilo.
// window 0 usa la primera ventana configurada; se acepta cualquier valor hasta MaxTrendWindow.
// Devuelve domain.ErrNotFound si el estilo no tiene ni ventas ni inventario guardado.
func (uc *HistoryUseCase) GetStyleHistory(ctx context.Context, style string, window int) (*dto.StyleHistoryDTO, error) {
	style = strings.TrimSpace(style)
	if style == "" {
		return nil, fmt.Errorf("%w: style requerido", domain.ErrInvalidInput)
	}
	if window < 0 || window > MaxTrendWindow {
		return nil, fmt.Errorf("%w: window debe estar entre 0 y %d", domain.ErrInvalidInput, MaxTrendWindow)
	}
	if window == 0 {
		window = uc.opts.TrendWindows[0]
	}

	var (
		records []entity.SaleRecord
		latest  *repository.StoredSnapshot
		runs    []entity.AnalysisRun
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = uc.salesRepo.ListByStyle(gctx, style)
		if err != nil {
			return fmt.Errorf("historial: ventas: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		latest, err = uc.snapshotRepo.LatestByStyle(gctx, style)
		if err != nil {
			return fmt.Errorf("historial: inventario: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		runs, err = uc.runRepo.ListByStyle(gctx, style, historyRunsLimit)
		if err != nil {
			return fmt.Errorf("historial: corridas: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		uc.log.Error().Err(err).Str("style", style).Msg("cargar historial")
		return nil, err
	}
	if len(records) == 0 && latest == nil {
		return nil, domain.ErrNotFound
	}

	var snap entity.InventorySnapshot
	out := &dto.StyleHistoryDTO{
		Style:       style,
		WindowDays:  window,
		RecordCount: len(records),
		Runs:        toRunsDTO(runs),
	}
	if latest != nil {
		snap = latest.Snapshot
		at := latest.CapturedAt
		out.SnapshotAt = &at
	}

	turnover := inventory.AnalyzeTurnover(records, snap)
	out.Series = toSeriesDTO(salesreport.BuildDateSeries(records, window))
	out.KPI = toKPIDTO(inventory.CoverKPI(records, snap, uc.opts.Thresholds), uc.opts.Thresholds.WindowDays)
	out.Turnover = toGridDTO(inventory.BuildTurnoverGrid(turnover))
	out.Shortages = toShortagesDTO(inventory.RankShortages(turnover))
	return out, nil
}
