package inventory

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	otherWarehouses = "其他"
	minSlicesKept   = 3
)

var minShare = decimal.NewFromFloat(0.03)

// WarehouseShare participación de una bodega en el disponible total.
type WarehouseShare struct {
	Warehouse string
	Available int
	Percent   decimal.Decimal // un decimal
}

// WarehouseShares reparte el disponible por bodega. Se conservan las bodegas con al
// menos 3% del total (como mínimo las 3 mayores) y el resto se agrupa en "其他".
func WarehouseShares(byWarehouse map[string]int) []WarehouseShare {
	type entry struct {
		name string
		qty  int
	}
	var list []entry
	total := 0
	for name, qty := range byWarehouse {
		if strings.TrimSpace(name) == "" || qty <= 0 {
			continue
		}
		list = append(list, entry{name, qty})
		total += qty
	}
	if total == 0 {
		return []WarehouseShare{}
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].qty != list[j].qty {
			return list[i].qty > list[j].qty
		}
		return list[i].name < list[j].name
	})

	totalDec := decimal.NewFromInt(int64(total))
	keep := 0
	for _, e := range list {
		if decimal.NewFromInt(int64(e.qty)).Div(totalDec).GreaterThanOrEqual(minShare) {
			keep++
		}
	}
	if keep < minSlicesKept {
		keep = min(minSlicesKept, len(list))
	}

	hundred := decimal.NewFromInt(100)
	pct := func(qty int) decimal.Decimal {
		return decimal.NewFromInt(int64(qty)).Div(totalDec).Mul(hundred).Round(1)
	}

	out := make([]WarehouseShare, 0, keep+1)
	other := 0
	for i, e := range list {
		if i < keep {
			out = append(out, WarehouseShare{Warehouse: e.name, Available: e.qty, Percent: pct(e.qty)})
			continue
		}
		other += e.qty
	}
	if other > 0 {
		out = append(out, WarehouseShare{Warehouse: otherWarehouses, Available: other, Percent: pct(other)})
	}
	return out
}
