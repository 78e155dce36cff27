// Package inventory contiene los servicios de dominio sobre existencias:
// lectura del feed de inventario, rotación por SKU, tallas agotadas y KPIs de cobertura.
// Todas las funciones son puras y toleran entradas vacías o corruptas.
package inventory

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/jhoicas/StyleWatch-api/internal/domain/entity"
	"github.com/jhoicas/StyleWatch-api/pkg/textnorm"
)

// feedFields número mínimo de campos: name,color,size,warehouse,available,onhand.
const feedFields = 6

// ParseFeed convierte el feed crudo (arreglo JSON de líneas o texto separado por saltos
// de línea) en un InventorySnapshot. Las líneas con menos de 6 campos se descartan.
func ParseFeed(raw string) entity.InventorySnapshot {
	var snap entity.InventorySnapshot
	if strings.TrimSpace(raw) == "" {
		return snap
	}

	for _, line := range feedLines(raw) {
		line = textnorm.FoldWidth(line)
		if strings.TrimSpace(line) == "" {
			continue
		}
		seg := strings.Split(line, ",")
		if len(seg) < feedFields {
			snap.Skipped++
			continue
		}
		snap.Rows = append(snap.Rows, entity.InventoryRow{
			Name:      strings.TrimSpace(seg[0]),
			Color:     strings.TrimSpace(seg[1]),
			Size:      strings.TrimSpace(seg[2]),
			Warehouse: strings.TrimSpace(seg[3]),
			Available: parseQty(seg[4]),
			OnHand:    parseQty(seg[5]),
		})
	}
	return snap
}

// feedLines intenta decodificar un arreglo JSON de strings; si falla o viene vacío,
// separa el texto por líneas.
func feedLines(raw string) []string {
	var lines []string
	if err := json.Unmarshal([]byte(raw), &lines); err == nil && len(lines) > 0 {
		return lines
	}
	return textnorm.Lines(raw)
}

// parseQty devuelve 0 si el campo no es un entero o es negativo.
func parseQty(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
