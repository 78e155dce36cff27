package analysis_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/StyleWatch-api/internal/application/analysis"
	"github.com/jhoicas/StyleWatch-api/internal/application/dto"
	"github.com/jhoicas/StyleWatch-api/internal/domain"
)

func seededHistory(t *testing.T) (*analysis.HistoryUseCase, *fakeTx) {
	t.Helper()
	tx := newFakeTx()
	_, err := newUseCase(tx, nil).Analyze(context.Background(), dto.AnalyzeRequest{
		Style: "Tee", ReportText: sampleReport, InventoryFeed: sampleFeed, Persist: true,
	})
	require.NoError(t, err)
	return analysis.NewHistoryUseCase(tx.sales, tx.snaps, tx.runs, analysis.DefaultOptions(), zerolog.Nop()), tx
}

func TestGetStyleHistory_RecalculaDesdeLoGuardado(t *testing.T) {
	uc, _ := seededHistory(t)

	got, err := uc.GetStyleHistory(context.Background(), "Tee", 0)
	require.NoError(t, err)

	assert.Equal(t, "Tee", got.Style)
	assert.Equal(t, 7, got.WindowDays)
	assert.Equal(t, 2, got.RecordCount)
	require.NotNil(t, got.SnapshotAt)
	assert.Len(t, got.Series, 2)
	require.Len(t, got.Shortages, 1)
	assert.Equal(t, "红", got.Shortages[0].Color)
	assert.Equal(t, []string{"白", "红"}, got.Turnover.Colors)
	require.Len(t, got.Runs, 1)
	assert.Equal(t, 1, got.Runs[0].Shortages)
}

func TestGetStyleHistory_VentanaPersonalizada(t *testing.T) {
	uc, _ := seededHistory(t)

	got, err := uc.GetStyleHistory(context.Background(), "Tee", 1)
	require.NoError(t, err)
	assert.Len(t, got.Series, 1, "solo el último día con datos")
}

func TestGetStyleHistory_NoEncontrado(t *testing.T) {
	uc, _ := seededHistory(t)

	_, err := uc.GetStyleHistory(context.Background(), "Polo", 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetStyleHistory_EntradaInvalida(t *testing.T) {
	uc, _ := seededHistory(t)

	_, err := uc.GetStyleHistory(context.Background(), "  ", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.GetStyleHistory(context.Background(), "Tee", -3)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.GetStyleHistory(context.Background(), "Tee", analysis.MaxTrendWindow+1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetStyleHistory_VentanaMaxima(t *testing.T) {
	uc, _ := seededHistory(t)

	got, err := uc.GetStyleHistory(context.Background(), "Tee", analysis.MaxTrendWindow)
	require.NoError(t, err)
	assert.Equal(t, analysis.MaxTrendWindow, got.WindowDays)
}

func TestGetStyleHistory_PropagaErrorDeRepositorio(t *testing.T) {
	uc, tx := seededHistory(t)
	dbErr := errors.New("timeout")
	tx.snaps.getErr = dbErr

	_, err := uc.GetStyleHistory(context.Background(), "Tee", 0)
	assert.ErrorIs(t, err, dbErr)

	tx.snaps.getErr = nil
	tx.runs.getErr = dbErr
	_, err = uc.GetStyleHistory(context.Background(), "Tee", 0)
	assert.ErrorIs(t, err, dbErr)
}
