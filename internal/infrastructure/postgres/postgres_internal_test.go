package postgres

import (
	"context"
	"io/fs"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/StyleWatch-api/internal/domain/entity"
)

func TestResolveIPv4_Literales(t *testing.T) {
	ip, err := resolveIPv4(context.Background(), "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", ip)

	_, err = resolveIPv4(context.Background(), "::1")
	assert.Error(t, err)
}

func TestMigracionesEmbebidas(t *testing.T) {
	names, err := fs.Glob(migrationFS, "migrations/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, names)

	script, err := migrationFS.ReadFile(names[0])
	require.NoError(t, err)
	for _, table := range []string{"sale_records", "inventory_snapshots", "inventory_snapshot_rows", "analysis_runs"} {
		assert.Contains(t, string(script), "CREATE TABLE IF NOT EXISTS "+table)
	}
}

func TestMergeByKey_SumaLineasRepetidas(t *testing.T) {
	d9 := time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)
	d10 := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	records := []entity.SaleRecord{
		{Date: d9, Name: "Tee", Size: "M", Color: "红", Qty: 3},
		{Date: d10, Channel: "天猫", Shop: "旗舰店A", Name: "Tee", Size: "L", Color: "白", Qty: 2},
		{Date: d9.Add(15 * time.Hour), Name: "Tee", Size: "M", Color: "红", Qty: 4},
		{Date: d9, Channel: "天猫", Name: "Tee", Size: "M", Color: "红", Qty: 1},
	}

	got := mergeByKey(records)

	require.Len(t, got, 3)
	assert.Equal(t, 7, got[0].Qty, "mismo día calendario y misma clave")
	assert.Equal(t, d9, got[0].Date)
	assert.Equal(t, "白", got[1].Color)
	assert.Equal(t, 2, got[1].Qty)
	assert.Equal(t, "天猫", got[2].Channel)
	assert.Equal(t, 1, got[2].Qty)
	assert.Equal(t, 3, records[0].Qty, "no modifica la entrada")
}

func TestMergeByKey_Vacio(t *testing.T) {
	assert.Empty(t, mergeByKey(nil))
}
