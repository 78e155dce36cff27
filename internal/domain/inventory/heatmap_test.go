package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/StyleWatch-api/internal/domain/inventory"
)

func TestBuildStockHeatmap(t *testing.T) {
	snap := inventory.ParseFeed("Tee,红,M,A,5,5\nTee,红,M,B,3,3\nTee,白,S,A,2,2\nTee,白,M,A,0,1\nTee,黑,L,A,0,0")

	hm := inventory.BuildStockHeatmap(snap)

	assert.Equal(t, []string{"红", "白"}, hm.Colors)
	assert.Equal(t, []string{"S", "M"}, hm.Sizes)
	assert.Equal(t, [][]int{{0, 8}, {2, 0}}, hm.Data)
}

func TestBuildStockHeatmap_Vacio(t *testing.T) {
	hm := inventory.BuildStockHeatmap(inventory.ParseFeed(""))
	assert.Empty(t, hm.Colors)
	assert.Empty(t, hm.Data)
}
