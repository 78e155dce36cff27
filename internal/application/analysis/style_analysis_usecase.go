// Package analysis contiene los casos de uso del análisis de estilos: cruce del reporte
// de ventas con el feed de inventario, historial guardado y reporte PDF.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/StyleWatch-api/internal/application/dto"
	"github.com/jhoicas/StyleWatch-api/internal/domain"
	"github.com/jhoicas/StyleWatch-api/internal/domain/entity"
	"github.com/jhoicas/StyleWatch-api/internal/domain/inventory"
	"github.com/jhoicas/StyleWatch-api/internal/domain/repository"
	"github.com/jhoicas/StyleWatch-api/internal/domain/salesreport"
)

// Options parámetros del análisis leídos de la configuración.
type Options struct {
	TrendWindows []int // ventanas permitidas para la serie diaria; la primera es la de defecto
	Thresholds   inventory.CoverThresholds
}

// DefaultOptions ventanas 7/14/30 y semáforo rojo < 3, amarillo < 7.
func DefaultOptions() Options {
	return Options{
		TrendWindows: []int{7, 14, 30},
		Thresholds:   inventory.DefaultCoverThresholds(),
	}
}

// StyleAnalysisUseCase cruza el reporte de ventas de un estilo con su inventario actual.
type StyleAnalysisUseCase struct {
	tx       TxRunner // nil = sin almacenamiento
	metrics  MetricsRecorder
	validate *validator.Validate
	opts     Options
	log      zerolog.Logger
	now      func() time.Time
}

// NewStyleAnalysisUseCase construye el caso de uso. tx y metrics pueden ser nil.
func NewStyleAnalysisUseCase(tx TxRunner, metrics MetricsRecorder, opts Options, log zerolog.Logger) *StyleAnalysisUseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if len(opts.TrendWindows) == 0 {
		opts.TrendWindows = DefaultOptions().TrendWindows
	}
	return &StyleAnalysisUseCase{
		tx:       tx,
		metrics:  metrics,
		validate: validator.New(),
		opts:     opts,
		log:      log.With().Str("component", "style_analysis").Logger(),
		now:      time.Now,
	}
}

// StoreEnabled indica si hay almacenamiento para persistir corridas.
func (uc *StyleAnalysisUseCase) StoreEnabled() bool { return uc.tx != nil }

// Analyze ejecuta el análisis completo. Con Persist=true guarda las líneas de venta y la foto
// de inventario en una sola transacción bajo un run_id nuevo.
//
// Errores: domain.ErrInvalidInput (validación o ventana no permitida),
// domain.ErrStoreDisabled (Persist sin almacenamiento), o el error de la BD envuelto.
func (uc *StyleAnalysisUseCase) Analyze(ctx context.Context, req dto.AnalyzeRequest) (*dto.StyleAnalysisDTO, error) {
	if err := uc.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, validationMessage(err))
	}
	window, err := uc.trendWindow(req.TrendWindow)
	if err != nil {
		return nil, err
	}
	if req.Persist && uc.tx == nil {
		return nil, domain.ErrStoreDisabled
	}

	payload := salesreport.Parse(salesreport.Prettify(req.ReportText))
	snap := inventory.ParseFeed(req.InventoryFeed)
	uc.metrics.ObserveParse("report", len(payload.Records), payload.Skipped)
	uc.metrics.ObserveParse("inventory", len(snap.Rows), snap.Skipped)
	uc.log.Debug().
		Int("records", len(payload.Records)).
		Int("records_skipped", payload.Skipped).
		Int("rows", len(snap.Rows)).
		Int("rows_skipped", snap.Skipped).
		Msg("entradas parseadas")

	out := uc.build(payload, snap, window)
	out.Style = resolveStyle(req.Style, payload, snap)
	out.GeneratedAt = uc.now().UTC()
	uc.metrics.ObserveShortages(len(out.Shortages))

	if !req.Persist {
		return out, nil
	}
	if out.Style == "" {
		return nil, fmt.Errorf("%w: style requerido para guardar", domain.ErrInvalidInput)
	}

	runID := uuid.NewString()
	err = uc.tx.Run(ctx, func(
		sales repository.SaleRecordRepository,
		snapshots repository.InventorySnapshotRepository,
		runs repository.AnalysisRunRepository,
	) error {
		if len(payload.Records) > 0 {
			if err := sales.SaveBatch(ctx, runID, out.Style, payload.Records); err != nil {
				return err
			}
		}
		if len(snap.Rows) > 0 {
			if _, err := snapshots.Save(ctx, runID, out.Style, snap); err != nil {
				return err
			}
		}
		return runs.Create(ctx, runSummary(runID, out, len(payload.Records), len(snap.Rows)))
	})
	uc.metrics.ObservePersist(err)
	if err != nil {
		uc.log.Error().Err(err).Str("style", out.Style).Str("run_id", runID).Msg("guardar corrida")
		return nil, fmt.Errorf("analysis: guardar corrida: %w", err)
	}

	out.RunID = runID
	out.Persisted = true
	uc.log.Info().
		Str("style", out.Style).
		Str("run_id", runID).
		Int("records", len(payload.Records)).
		Int("rows", len(snap.Rows)).
		Msg("corrida guardada")
	return out, nil
}

// ParseReport ejecuta solo el parser de reportes y aplica los filtros de detalle pedidos.
// Skipped y el resumen del título corresponden siempre al reporte completo.
func (uc *StyleAnalysisUseCase) ParseReport(_ context.Context, req dto.ParseReportRequest) (*dto.ParsedReportDTO, error) {
	if err := uc.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, validationMessage(err))
	}
	payload := salesreport.Parse(salesreport.Prettify(req.ReportText))
	uc.metrics.ObserveParse("report", len(payload.Records), payload.Skipped)
	payload.Records = salesreport.Filter(payload.Records, salesreport.DetailFilter{
		Channel: strings.TrimSpace(req.Channel),
		Shop:    strings.TrimSpace(req.Shop),
		Color:   strings.TrimSpace(req.Color),
		Size:    strings.TrimSpace(req.Size),
		Text:    strings.TrimSpace(req.Q),
	})
	out := toParsedReportDTO(payload)
	return &out, nil
}

// ParseInventory ejecuta solo el parser del feed de inventario.
func (uc *StyleAnalysisUseCase) ParseInventory(_ context.Context, req dto.ParseInventoryRequest) (*dto.InventorySnapshotDTO, error) {
	if err := uc.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, validationMessage(err))
	}
	snap := inventory.ParseFeed(req.InventoryFeed)
	uc.metrics.ObserveParse("inventory", len(snap.Rows), snap.Skipped)
	out := toSnapshotDTO(snap)
	return &out, nil
}

func (uc *StyleAnalysisUseCase) trendWindow(requested int) (int, error) {
	if requested == 0 {
		return uc.opts.TrendWindows[0], nil
	}
	if !slices.Contains(uc.opts.TrendWindows, requested) {
		return 0, fmt.Errorf("%w: trend_window debe ser uno de %v", domain.ErrInvalidInput, uc.opts.TrendWindows)
	}
	return requested, nil
}

func (uc *StyleAnalysisUseCase) build(payload entity.ParsedPayload, snap entity.InventorySnapshot, window int) *dto.StyleAnalysisDTO {
	records := payload.Records
	turnover := inventory.AnalyzeTurnover(records, snap)
	visual := salesreport.CleanForVisuals(records)

	sold := make([]string, 0, len(records))
	for _, r := range records {
		sold = append(sold, r.Size)
	}
	offered, zero := snap.OfferedSizes(), snap.ZeroSizes()

	return &dto.StyleAnalysisDTO{
		TrendWindow:            window,
		Report:                 toParsedReportDTO(payload),
		Inventory:              toSnapshotDTO(snap),
		Series:                 toSeriesDTO(salesreport.BuildDateSeries(records, window)),
		KPI:                    toKPIDTO(inventory.CoverKPI(records, snap, uc.opts.Thresholds), uc.opts.Thresholds.WindowDays),
		Turnover:               toGridDTO(inventory.BuildTurnoverGrid(turnover)),
		Shortages:              toShortagesDTO(inventory.RankShortages(turnover)),
		MissingSizes:           inventory.MissingSizes(offered, zero),
		MissingSizesWithDemand: inventory.MissingSizesWithDemand(offered, zero, sold),
		Warehouses:             toWarehousesDTO(inventory.WarehouseShares(snap.ByWarehouse())),
		Heatmap:                toHeatmapDTO(inventory.BuildStockHeatmap(snap)),
		ByChannel:              toTotalsDTO(salesreport.SumBy(records, salesreport.ByChannel)),
		ByShop:                 toTotalsDTO(salesreport.SumBy(records, salesreport.ByShop)),
		ByColor:                toTotalsDTO(salesreport.SumBy(visual, salesreport.ByColor)),
		BySize:                 toTotalsDTO(salesreport.SumBy(visual, salesreport.BySize)),
	}
}

func runSummary(runID string, out *dto.StyleAnalysisDTO, records, rows int) *entity.AnalysisRun {
	run := &entity.AnalysisRun{
		ID:        runID,
		Style:     out.Style,
		Records:   records,
		Rows:      rows,
		Shortages: len(out.Shortages),
		Level:     out.KPI.Level,
		CreatedAt: out.GeneratedAt,
	}
	if out.KPI.DaysOfCover != nil {
		run.DaysOfCover = decimal.NewNullDecimal(*out.KPI.DaysOfCover)
	}
	return run
}

// resolveStyle usa el nombre pedido; si falta, el nombre más vendido del reporte y luego
// el de la primera fila del inventario.
func resolveStyle(requested string, payload entity.ParsedPayload, snap entity.InventorySnapshot) string {
	if s := strings.TrimSpace(requested); s != "" {
		return s
	}
	if s := salesreport.InferStyleName(payload.Records); s != "" {
		return s
	}
	for _, r := range snap.Rows {
		if r.Name != "" {
			return r.Name
		}
	}
	return ""
}

// validationMessage resume los errores de validator como "campo:regla".
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fe.Field()+":"+fe.Tag())
	}
	return strings.Join(parts, ", ")
}
