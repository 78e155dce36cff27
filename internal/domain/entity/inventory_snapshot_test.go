package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/StyleWatch-api/internal/domain/entity"
)

func snapshot() entity.InventorySnapshot {
	return entity.InventorySnapshot{Rows: []entity.InventoryRow{
		{Name: "Tee", Color: "白", Size: "XL", Warehouse: "A", Available: 1, OnHand: 2},
		{Name: "Tee", Color: "红", Size: "S", Warehouse: "A", Available: 4, OnHand: 4},
		{Name: "Tee", Color: "红", Size: "2XL", Warehouse: "B", Available: 2, OnHand: 3},
		{Name: "Tee", Color: "黑", Size: "37", Warehouse: "B", Available: 3, OnHand: 3},
		{Name: "Tee", Color: "蓝", Size: "M", Warehouse: "B", Available: 0, OnHand: 1},
		{Name: "Tee", Color: "白", Size: "m", Warehouse: "A", Available: 0, OnHand: 0},
	}}
}

func TestInventorySnapshot_Totales(t *testing.T) {
	s := snapshot()
	assert.Equal(t, 10, s.TotalAvailable())
	assert.Equal(t, 13, s.TotalOnHand())
	assert.Equal(t, map[string]int{"A": 5, "B": 5}, s.ByWarehouse())
}

func TestInventorySnapshot_SizesNonZero(t *testing.T) {
	assert.Equal(t, []string{"S", "XL", "2XL", "37"}, snapshot().SizesNonZero())
}

func TestInventorySnapshot_ColorsNonZero(t *testing.T) {
	assert.Equal(t, []string{"红", "黑", "白"}, snapshot().ColorsNonZero())
}

func TestInventorySnapshot_OfferedYZeroSizes(t *testing.T) {
	s := snapshot()
	assert.Equal(t, []string{"XL", "S", "2XL", "37", "M"}, s.OfferedSizes())
	assert.Equal(t, []string{"M", "m"}, s.ZeroSizes())
}

func TestInventorySnapshot_Vacio(t *testing.T) {
	var s entity.InventorySnapshot
	assert.Zero(t, s.TotalAvailable())
	assert.Empty(t, s.ColorsNonZero())
	assert.Empty(t, s.SizesNonZero())
	assert.Empty(t, s.AvailableBySKU())
}
