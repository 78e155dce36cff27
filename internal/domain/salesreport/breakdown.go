package salesreport

import (
	"sort"
	"strconv"
	"strings"

	"github.com/jhoicas/StyleWatch-api/internal/domain/entity"
	"github.com/jhoicas/StyleWatch-api/pkg/textnorm"
)

// DetailFilter criterios de filtrado del detalle de ventas. Los campos vacíos no filtran.
type DetailFilter struct {
	Channel string
	Shop    string
	Color   string
	Size    string
	Text    string // búsqueda libre sin distinguir mayúsculas
}

// NamedTotal cantidad total de un grupo (canal, tienda, color, talla...).
type NamedTotal struct {
	Name string
	Qty  int
}

// SearchText texto sobre el que se aplica la búsqueda libre.
func SearchText(r entity.SaleRecord) string {
	return strings.Join([]string{
		r.Date.Format(dateLayout), r.Channel, r.Shop, r.Name, r.Size, r.Color, strconv.Itoa(r.Qty),
	}, " ")
}

// Filter devuelve los registros que cumplen todos los criterios de f.
func Filter(records []entity.SaleRecord, f DetailFilter) []entity.SaleRecord {
	needle := textnorm.FoldCase(f.Text)
	out := make([]entity.SaleRecord, 0, len(records))
	for _, r := range records {
		if f.Channel != "" && r.Channel != f.Channel {
			continue
		}
		if f.Shop != "" && r.Shop != f.Shop {
			continue
		}
		if f.Color != "" && r.Color != f.Color {
			continue
		}
		if f.Size != "" && !strings.EqualFold(r.Size, f.Size) {
			continue
		}
		if needle != "" && !strings.Contains(textnorm.FoldCase(SearchText(r)), needle) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// SortForGrid ordena una copia por nombre, color, talla y fecha descendente.
func SortForGrid(records []entity.SaleRecord) []entity.SaleRecord {
	out := append([]entity.SaleRecord(nil), records...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		if a.Color != b.Color {
			return a.Color < b.Color
		}
		if a.Size != b.Size {
			return a.Size < b.Size
		}
		return a.Date.After(b.Date)
	})
	return out
}

// SumBy suma cantidades por la clave dada, de mayor a menor cantidad y luego por nombre.
// Las claves vacías se omiten.
func SumBy(records []entity.SaleRecord, key func(entity.SaleRecord) string) []NamedTotal {
	totals := make(map[string]int)
	for _, r := range records {
		k := strings.TrimSpace(key(r))
		if k == "" {
			continue
		}
		totals[k] += r.Qty
	}
	out := make([]NamedTotal, 0, len(totals))
	for name, qty := range totals {
		out = append(out, NamedTotal{Name: name, Qty: qty})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Qty != out[j].Qty {
			return out[i].Qty > out[j].Qty
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Claves habituales para SumBy.
func ByChannel(r entity.SaleRecord) string { return r.Channel }
func ByShop(r entity.SaleRecord) string    { return r.Shop }
func ByColor(r entity.SaleRecord) string   { return r.Color }
func BySize(r entity.SaleRecord) string    { return r.Size }

// CleanForVisuals descarta registros sin color o talla, y los de colores o tallas
// cuyo total es cero.
func CleanForVisuals(records []entity.SaleRecord) []entity.SaleRecord {
	byColor := make(map[string]int)
	bySize := make(map[string]int)
	var valid []entity.SaleRecord
	for _, r := range records {
		if strings.TrimSpace(r.Color) == "" || strings.TrimSpace(r.Size) == "" {
			continue
		}
		byColor[r.Color] += r.Qty
		bySize[r.Size] += r.Qty
		valid = append(valid, r)
	}
	out := make([]entity.SaleRecord, 0, len(valid))
	for _, r := range valid {
		if byColor[r.Color] != 0 && bySize[r.Size] != 0 {
			out = append(out, r)
		}
	}
	return out
}

// InferStyleName devuelve el nombre más frecuente; en empate, el que aparece primero.
func InferStyleName(records []entity.SaleRecord) string {
	counts := make(map[string]int)
	best, bestCount := "", 0
	for _, r := range records {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			continue
		}
		counts[name]++
	}
	for _, r := range records {
		name := strings.TrimSpace(r.Name)
		if c := counts[name]; name != "" && c > bestCount {
			best, bestCount = name, c
		}
	}
	return best
}
