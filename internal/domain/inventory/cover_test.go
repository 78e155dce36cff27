package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/StyleWatch-api/internal/domain/entity"
	"github.com/jhoicas/StyleWatch-api/internal/domain/inventory"
)

func weekOfSales() []entity.SaleRecord {
	return []entity.SaleRecord{
		{Date: day("2024-03-01"), Color: "红", Size: "M", Qty: 2}, // fuera de la ventana
		{Date: day("2024-03-05"), Color: "红", Size: "M", Qty: 3},
		{Date: day("2024-03-11"), Color: "红", Size: "L", Qty: 4},
	}
}

func TestCoverKPI_Semaforo(t *testing.T) {
	cases := []struct {
		feed  string
		level inventory.CoverLevel
		cover string
	}{
		{"Tee,红,M,A,2,2", inventory.CoverRed, "2"},
		{"Tee,红,M,A,4,4", inventory.CoverYellow, "4"},
		{"Tee,红,M,A,10,12", inventory.CoverGreen, "10"},
	}
	for _, tc := range cases {
		t.Run(string(tc.level), func(t *testing.T) {
			kpi := inventory.CoverKPI(weekOfSales(), inventory.ParseFeed(tc.feed), inventory.DefaultCoverThresholds())

			assert.Equal(t, 7, kpi.RecentSales)
			assert.Equal(t, tc.level, kpi.Level)
			require.True(t, kpi.DaysOfCover.Valid)
			assert.True(t, kpi.DaysOfCover.Decimal.Equal(decimal.RequireFromString(tc.cover)), kpi.DaysOfCover.Decimal.String())
		})
	}
}

func TestCoverKPI_RedondeaAUnDecimal(t *testing.T) {
	sales := []entity.SaleRecord{{Date: day("2024-03-11"), Color: "红", Size: "M", Qty: 3}}
	kpi := inventory.CoverKPI(sales, inventory.ParseFeed("Tee,红,M,A,1,1"), inventory.DefaultCoverThresholds())

	require.True(t, kpi.DaysOfCover.Valid)
	assert.Equal(t, "2.3", kpi.DaysOfCover.Decimal.String())
	assert.Equal(t, inventory.CoverRed, kpi.Level)
}

func TestCoverKPI_SinVentas(t *testing.T) {
	kpi := inventory.CoverKPI(nil, inventory.ParseFeed("Tee,红,M,A,10,12"), inventory.DefaultCoverThresholds())

	assert.Equal(t, inventory.CoverNone, kpi.Level)
	assert.False(t, kpi.DaysOfCover.Valid)
	assert.Equal(t, 10, kpi.TotalAvailable)
	assert.Equal(t, 12, kpi.TotalOnHand)
}
