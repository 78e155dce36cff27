package entity

import (
	"sort"
	"strings"
)

// InventoryRow una línea del feed de inventario: existencias de un SKU en una bodega.
// Available y OnHand nunca son negativos.
type InventoryRow struct {
	Name      string
	Color     string
	Size      string
	Warehouse string
	Available int
	OnHand    int
}

// InventorySnapshot colección ordenada de filas de inventario con vistas derivadas.
type InventorySnapshot struct {
	Rows    []InventoryRow
	Skipped int // líneas del feed descartadas por tener menos de 6 campos
}

// TotalAvailable suma de disponibles de todas las filas.
func (s InventorySnapshot) TotalAvailable() int {
	total := 0
	for _, r := range s.Rows {
		total += r.Available
	}
	return total
}

// TotalOnHand suma de existencias físicas de todas las filas.
func (s InventorySnapshot) TotalOnHand() int {
	total := 0
	for _, r := range s.Rows {
		total += r.OnHand
	}
	return total
}

type groupTotal struct {
	key   string
	total int
}

// sumAvailableBy agrupa por key conservando el orden de primera aparición.
func (s InventorySnapshot) sumAvailableBy(key func(InventoryRow) string) []groupTotal {
	idx := make(map[string]int)
	var groups []groupTotal
	for _, r := range s.Rows {
		k := key(r)
		i, ok := idx[k]
		if !ok {
			i = len(groups)
			idx[k] = i
			groups = append(groups, groupTotal{key: k})
		}
		groups[i].total += r.Available
	}
	return groups
}

// ColorsNonZero colores con disponible distinto de cero, de mayor a menor disponible.
func (s InventorySnapshot) ColorsNonZero() []string {
	groups := nonZero(s.sumAvailableBy(func(r InventoryRow) string { return r.Color }))
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].total > groups[j].total
	})
	return keys(groups)
}

// SizesNonZero tallas con disponible distinto de cero, según el orden de tallas
// y, a igual talla, por disponible descendente.
func (s InventorySnapshot) SizesNonZero() []string {
	groups := nonZero(s.sumAvailableBy(func(r InventoryRow) string { return r.Size }))
	sort.SliceStable(groups, func(i, j int) bool {
		if c := CompareSizes(groups[i].key, groups[j].key); c != 0 {
			return c < 0
		}
		return groups[i].total > groups[j].total
	})
	return keys(groups)
}

// ByWarehouse disponible total por bodega.
func (s InventorySnapshot) ByWarehouse() map[string]int {
	out := make(map[string]int)
	for _, r := range s.Rows {
		out[r.Warehouse] += r.Available
	}
	return out
}

// OfferedSizes tallas que aparecen alguna vez en el feed (sin repetir, sin distinguir mayúsculas).
func (s InventorySnapshot) OfferedSizes() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range s.Rows {
		size := strings.TrimSpace(r.Size)
		if size == "" {
			continue
		}
		k := strings.ToUpper(size)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, size)
	}
	return out
}

// ZeroSizes tallas cuyo disponible sumado es cero.
func (s InventorySnapshot) ZeroSizes() []string {
	var out []string
	for _, g := range s.sumAvailableBy(func(r InventoryRow) string { return r.Size }) {
		if strings.TrimSpace(g.key) != "" && g.total == 0 {
			out = append(out, g.key)
		}
	}
	return out
}

// AvailableBySKU disponible sumado por (color, talla) en todas las bodegas.
func (s InventorySnapshot) AvailableBySKU() map[SKUKey]int {
	out := make(map[SKUKey]int)
	for _, r := range s.Rows {
		out[SKUKey{Color: r.Color, Size: r.Size}] += r.Available
	}
	return out
}

func nonZero(groups []groupTotal) []groupTotal {
	out := groups[:0:0]
	for _, g := range groups {
		if strings.TrimSpace(g.key) == "" || g.total == 0 {
			continue
		}
		out = append(out, g)
	}
	return out
}

func keys(groups []groupTotal) []string {
	out := make([]string, 0, len(groups))
	for _, g := range groups {
		out = append(out, g.key)
	}
	return out
}
