package analysis_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/StyleWatch-api/internal/application/analysis"
	"github.com/jhoicas/StyleWatch-api/internal/application/dto"
	"github.com/jhoicas/StyleWatch-api/internal/domain"
)

func newUseCase(tx analysis.TxRunner, m analysis.MetricsRecorder) *analysis.StyleAnalysisUseCase {
	return analysis.NewStyleAnalysisUseCase(tx, m, analysis.DefaultOptions(), zerolog.Nop())
}

func TestAnalyze_SinPersistir(t *testing.T) {
	metrics := newFakeMetrics()
	uc := newUseCase(nil, metrics)

	got, err := uc.Analyze(context.Background(), dto.AnalyzeRequest{ReportText: sampleReport, InventoryFeed: sampleFeed})
	require.NoError(t, err)

	assert.Equal(t, "Tee", got.Style, "el estilo se infiere del reporte")
	assert.False(t, got.Persisted)
	assert.Empty(t, got.RunID)
	assert.Equal(t, 7, got.TrendWindow)

	assert.Equal(t, "Tee", got.Report.Title)
	assert.Equal(t, "昨日售出9件", got.Report.Yesterday)
	assert.Len(t, got.Report.Records, 2)
	assert.Equal(t, 9, got.Report.TotalQty)
	assert.Equal(t, 1, got.Report.Skipped)

	assert.Equal(t, 52, got.Inventory.TotalAvailable)
	assert.Len(t, got.Series, 2)

	require.Len(t, got.Shortages, 1)
	assert.Equal(t, "红", got.Shortages[0].Color)
	assert.Equal(t, "M", got.Shortages[0].Size)
	assert.Equal(t, 1, got.Shortages[0].Priority)

	assert.Equal(t, []string{"S"}, got.MissingSizes)
	assert.Empty(t, got.MissingSizesWithDemand)

	assert.Equal(t, 9, got.KPI.RecentSales)
	assert.Equal(t, "green", got.KPI.Level)
	require.NotNil(t, got.KPI.DaysOfCover)
	assert.Equal(t, "40.4", got.KPI.DaysOfCover.String())

	assert.Equal(t, []dto.NamedTotalDTO{{Name: "天猫", Qty: 2}}, got.ByChannel)
	assert.Equal(t, 2, metrics.parsed["report"])
	assert.Equal(t, 1, metrics.skipped["report"])
	assert.Equal(t, 3, metrics.parsed["inventory"])
	assert.Equal(t, 1, metrics.shortages)
}

func TestAnalyze_SoloInventario(t *testing.T) {
	uc := newUseCase(nil, nil)

	got, err := uc.Analyze(context.Background(), dto.AnalyzeRequest{InventoryFeed: sampleFeed})
	require.NoError(t, err)

	assert.Equal(t, "Tee", got.Style, "sin ventas el estilo sale del inventario")
	assert.Empty(t, got.Series)
	assert.Empty(t, got.Shortages)
	assert.Equal(t, "none", got.KPI.Level)
	assert.Nil(t, got.KPI.DaysOfCover)
}

func TestAnalyze_ValidacionFallida(t *testing.T) {
	uc := newUseCase(nil, nil)

	_, err := uc.Analyze(context.Background(), dto.AnalyzeRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Analyze(context.Background(), dto.AnalyzeRequest{ReportText: sampleReport, TrendWindow: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAnalyze_VentanaDeTendencia(t *testing.T) {
	uc := newUseCase(nil, nil)

	_, err := uc.Analyze(context.Background(), dto.AnalyzeRequest{ReportText: sampleReport, TrendWindow: 5})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "solo se aceptan ventanas configuradas")

	got, err := uc.Analyze(context.Background(), dto.AnalyzeRequest{ReportText: sampleReport, TrendWindow: 14})
	require.NoError(t, err)
	assert.Equal(t, 14, got.TrendWindow)
}

func TestAnalyze_PersistirSinAlmacenamiento(t *testing.T) {
	uc := newUseCase(nil, nil)
	assert.False(t, uc.StoreEnabled())

	_, err := uc.Analyze(context.Background(), dto.AnalyzeRequest{ReportText: sampleReport, Persist: true})
	assert.ErrorIs(t, err, domain.ErrStoreDisabled)
}

func TestAnalyze_PersisteEnUnaTransaccion(t *testing.T) {
	tx := newFakeTx()
	metrics := newFakeMetrics()
	uc := newUseCase(tx, metrics)

	got, err := uc.Analyze(context.Background(), dto.AnalyzeRequest{
		Style: "  Tee 2024  ", ReportText: sampleReport, InventoryFeed: sampleFeed, Persist: true,
	})
	require.NoError(t, err)

	assert.True(t, got.Persisted)
	assert.Equal(t, "Tee 2024", got.Style)
	_, perr := uuid.Parse(got.RunID)
	assert.NoError(t, perr, "run_id debe ser un UUID")

	assert.Equal(t, 1, tx.calls)
	assert.Len(t, tx.sales.saved["Tee 2024"], 2)
	assert.Equal(t, []string{got.RunID}, tx.sales.runIDs)
	require.NotNil(t, tx.snaps.latest["Tee 2024"])
	assert.Len(t, tx.snaps.latest["Tee 2024"].Snapshot.Rows, 3)
	require.Len(t, tx.runs.runs, 1)
	run := tx.runs.runs[0]
	assert.Equal(t, got.RunID, run.ID)
	assert.Equal(t, 2, run.Records)
	assert.Equal(t, 3, run.Rows)
	assert.Equal(t, 1, run.Shortages)
	assert.Equal(t, "green", run.Level)
	assert.True(t, run.DaysOfCover.Valid)
	assert.Equal(t, []error{nil}, metrics.persists)
}

func TestAnalyze_ErrorAlPersistir(t *testing.T) {
	dbErr := errors.New("conexión perdida")
	tx := newFakeTx()
	tx.snaps.saveErr = dbErr
	metrics := newFakeMetrics()
	uc := newUseCase(tx, metrics)

	_, err := uc.Analyze(context.Background(), dto.AnalyzeRequest{ReportText: sampleReport, InventoryFeed: sampleFeed, Persist: true})

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	require.Len(t, metrics.persists, 1)
	assert.ErrorIs(t, metrics.persists[0], dbErr)
}

func TestAnalyze_PersistirSinEstiloDeducible(t *testing.T) {
	tx := newFakeTx()
	uc := newUseCase(tx, nil)

	_, err := uc.Analyze(context.Background(), dto.AnalyzeRequest{ReportText: "texto sin registros", Persist: true})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, tx.calls)
}

func TestParseReportYParseInventory(t *testing.T) {
	uc := newUseCase(nil, nil)

	rep, err := uc.ParseReport(context.Background(), dto.ParseReportRequest{ReportText: sampleReport})
	require.NoError(t, err)
	assert.Len(t, rep.Records, 2)
	assert.Equal(t, "2024-01-10", rep.Records[0].Date, "orden de grilla: nombre, color, talla")
	assert.Equal(t, "白", rep.Records[0].Color)

	_, err = uc.ParseReport(context.Background(), dto.ParseReportRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	inv, err := uc.ParseInventory(context.Background(), dto.ParseInventoryRequest{InventoryFeed: sampleFeed + "\nfila,corta"})
	require.NoError(t, err)
	assert.Len(t, inv.Rows, 3)
	assert.Equal(t, 1, inv.Skipped)
	assert.Equal(t, []string{"M", "L"}, inv.Sizes)
	assert.Equal(t, map[string]int{"杭州仓": 52, "上海仓": 0}, inv.ByWarehouse)
}

func TestParseReport_FiltrosDeDetalle(t *testing.T) {
	uc := newUseCase(nil, nil)
	ctx := context.Background()

	rep, err := uc.ParseReport(ctx, dto.ParseReportRequest{ReportText: sampleReport, Channel: "天猫"})
	require.NoError(t, err)
	require.Len(t, rep.Records, 1)
	assert.Equal(t, "白", rep.Records[0].Color)
	assert.Equal(t, 2, rep.TotalQty)
	assert.Equal(t, 1, rep.Skipped, "las líneas descartadas son del reporte completo")

	rep, err = uc.ParseReport(ctx, dto.ParseReportRequest{ReportText: sampleReport, Size: "m", Q: "红"})
	require.NoError(t, err)
	require.Len(t, rep.Records, 1)
	assert.Equal(t, 7, rep.TotalQty)

	rep, err = uc.ParseReport(ctx, dto.ParseReportRequest{ReportText: sampleReport, Shop: "不存在"})
	require.NoError(t, err)
	assert.Empty(t, rep.Records)
	assert.Zero(t, rep.TotalQty)

	_, err = uc.ParseReport(ctx, dto.ParseReportRequest{ReportText: sampleReport, Size: strings.Repeat("X", 21)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
