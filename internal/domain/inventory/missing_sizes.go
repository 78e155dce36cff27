package inventory

import (
	"github.com/jhoicas/StyleWatch-api/internal/domain/entity"
	"github.com/jhoicas/StyleWatch-api/pkg/textnorm"
)

// MissingSizes tallas que existen en el catálogo del estilo pero hoy tienen disponible cero:
// intersección (sin distinguir mayúsculas) de offered y zero. Conserva la escritura de
// offered y devuelve el resultado en orden de tallas.
func MissingSizes(offered, zero []string) []string {
	return intersectSizes(offered, zero)
}

// MissingSizesWithDemand como MissingSizes pero solo tallas que además registran ventas.
func MissingSizesWithDemand(offered, zero, sold []string) []string {
	return intersectSizes(intersectSizes(offered, zero), sold)
}

func intersectSizes(base, other []string) []string {
	in := make(map[string]struct{}, len(other))
	for _, s := range other {
		if k := textnorm.FoldCase(s); k != "" {
			in[k] = struct{}{}
		}
	}
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, s := range base {
		k := textnorm.FoldCase(s)
		if k == "" {
			continue
		}
		if _, ok := in[k]; !ok {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, s)
	}
	entity.SortSizes(out)
	return out
}
