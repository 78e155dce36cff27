package inventory

import "github.com/jhoicas/StyleWatch-api/internal/domain/entity"

// StockHeatmap disponible por color × talla. Data[i][j] corresponde a Colors[i] y Sizes[j].
type StockHeatmap struct {
	Colors []string
	Sizes  []string
	Data   [][]int
}

// BuildStockHeatmap usa como ejes los colores y tallas con disponible distinto de cero.
func BuildStockHeatmap(snap entity.InventorySnapshot) StockHeatmap {
	hm := StockHeatmap{
		Colors: snap.ColorsNonZero(),
		Sizes:  snap.SizesNonZero(),
	}
	colorIdx := indexOf(hm.Colors)
	sizeIdx := indexOf(hm.Sizes)

	hm.Data = make([][]int, len(hm.Colors))
	for i := range hm.Data {
		hm.Data[i] = make([]int, len(hm.Sizes))
	}
	for k, avail := range snap.AvailableBySKU() {
		ci, okC := colorIdx[k.Color]
		si, okS := sizeIdx[k.Size]
		if okC && okS {
			hm.Data[ci][si] = avail
		}
	}
	return hm
}

func indexOf(values []string) map[string]int {
	idx := make(map[string]int, len(values))
	for i, v := range values {
		idx[v] = i
	}
	return idx
}
