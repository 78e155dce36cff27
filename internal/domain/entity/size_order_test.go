package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/StyleWatch-api/internal/domain/entity"
)

func TestSortSizes(t *testing.T) {
	sizes := []string{"XL", "S", "2XL", "37", "", "FREE", "xs", "36", "M-CP"}
	entity.SortSizes(sizes)

	assert.Equal(t, []string{"xs", "S", "M-CP", "XL", "2XL", "36", "37", "FREE", ""}, sizes)
}

func TestCompareSizes(t *testing.T) {
	assert.Equal(t, 0, entity.CompareSizes("2XL", "XXL"))
	assert.Equal(t, 0, entity.CompareSizes("m", "M"))
	assert.Equal(t, -1, entity.CompareSizes("8XL", "30"))
	assert.Equal(t, 1, entity.CompareSizes("", "ONE"))
	assert.Equal(t, -1, entity.CompareSizes("9", "10"), "las tallas numéricas se comparan como números")
}

func TestSizeSortKey_DesconocidaEsEstable(t *testing.T) {
	assert.Equal(t, entity.SizeSortKey("FREE"), entity.SizeSortKey(" free "))
}
