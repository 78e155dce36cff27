package inventory

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/StyleWatch-api/internal/domain/entity"
	"github.com/jhoicas/StyleWatch-api/internal/domain/salesreport"
)

const (
	// TurnoverWindowDays días de ventas usados para el promedio diario.
	TurnoverWindowDays = 7
	// ShortageCoverDays cobertura por debajo de la cual un SKU con ventas está en quiebre.
	ShortageCoverDays = 7
)

var (
	windowDec   = decimal.NewFromInt(TurnoverWindowDays)
	shortageDec = decimal.NewFromInt(ShortageCoverDays)
)

// Turnover calcula la rotación de un SKU (servicio de dominio).
//
//	PromedioDiario = Ventas7d / 7
//	Cobertura      = Disponible / PromedioDiario   (indefinida si PromedioDiario = 0)
//	Quiebre        = Ventas7d > 0 && (Disponible = 0 || Cobertura < 7)
func Turnover(key entity.SKUKey, sales7d, available int) entity.TurnoverResult {
	res := entity.TurnoverResult{
		Key:           key,
		SalesLast7d:   sales7d,
		AvailableNow:  available,
		AvgDailySales: decimal.NewFromInt(int64(sales7d)).Div(windowDec),
	}
	if sales7d > 0 {
		// Disponible*7/Ventas evita el error de redondeo de dividir por el promedio.
		cover := decimal.NewFromInt(int64(available)).Mul(windowDec).Div(decimal.NewFromInt(int64(sales7d)))
		res.DaysOfCover = decimal.NewNullDecimal(cover)
	}
	res.Shortage = sales7d > 0 &&
		(available == 0 || (res.DaysOfCover.Valid && res.DaysOfCover.Decimal.LessThan(shortageDec)))
	return res
}

// AnalyzeTurnover cruza las ventas de los últimos 7 días (contados desde el último día
// con ventas) con el inventario actual. Devuelve un resultado por cada SKU visto en
// cualquiera de las dos fuentes; los SKUs sin color o sin talla se ignoran.
func AnalyzeTurnover(sales []entity.SaleRecord, snap entity.InventorySnapshot) map[entity.SKUKey]entity.TurnoverResult {
	salesBySKU := make(map[entity.SKUKey]int)
	for _, r := range salesreport.InWindow(sales, TurnoverWindowDays) {
		salesBySKU[entity.SKUKey{Color: r.Color, Size: r.Size}] += r.Qty
	}
	availBySKU := snap.AvailableBySKU()

	out := make(map[entity.SKUKey]entity.TurnoverResult, len(salesBySKU)+len(availBySKU))
	add := func(k entity.SKUKey) {
		if _, done := out[k]; done || !validSKU(k) {
			return
		}
		out[k] = Turnover(k, salesBySKU[k], availBySKU[k])
	}
	for k := range salesBySKU {
		add(k)
	}
	for k := range availBySKU {
		add(k)
	}
	return out
}

func validSKU(k entity.SKUKey) bool {
	return strings.TrimSpace(k.Color) != "" && strings.TrimSpace(k.Size) != ""
}

// TurnoverGrid resultados dispuestos en una matriz colores × tallas.
// Cells[i][j] corresponde a Colors[i] y Sizes[j]; las celdas sin datos tienen cero ventas
// y cero disponible.
type TurnoverGrid struct {
	Colors []string
	Sizes  []string
	Cells  [][]entity.TurnoverResult
}

// BuildTurnoverGrid ordena los colores alfabéticamente y las tallas según el orden de tallas.
func BuildTurnoverGrid(results map[entity.SKUKey]entity.TurnoverResult) TurnoverGrid {
	colorSet := make(map[string]struct{})
	sizeSet := make(map[string]struct{})
	for k := range results {
		colorSet[k.Color] = struct{}{}
		sizeSet[k.Size] = struct{}{}
	}
	grid := TurnoverGrid{
		Colors: setKeys(colorSet),
		Sizes:  setKeys(sizeSet),
	}
	sort.Strings(grid.Colors)
	sort.Strings(grid.Sizes)
	entity.SortSizes(grid.Sizes)

	grid.Cells = make([][]entity.TurnoverResult, len(grid.Colors))
	for i, c := range grid.Colors {
		grid.Cells[i] = make([]entity.TurnoverResult, len(grid.Sizes))
		for j, s := range grid.Sizes {
			k := entity.SKUKey{Color: c, Size: s}
			if r, ok := results[k]; ok {
				grid.Cells[i][j] = r
			} else {
				grid.Cells[i][j] = Turnover(k, 0, 0)
			}
		}
	}
	return grid
}

// RankedShortage SKU en quiebre con su prioridad (1 = más urgente).
type RankedShortage struct {
	entity.TurnoverResult
	Priority int
}

// RankShortages devuelve los SKUs en quiebre: primero los agotados, luego por menor
// cobertura y, a igualdad, por mayor venta.
func RankShortages(results map[entity.SKUKey]entity.TurnoverResult) []RankedShortage {
	out := make([]RankedShortage, 0)
	for _, r := range results {
		if r.Shortage {
			out = append(out, RankedShortage{TurnoverResult: r})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if (a.AvailableNow == 0) != (b.AvailableNow == 0) {
			return a.AvailableNow == 0
		}
		if !a.DaysOfCover.Decimal.Equal(b.DaysOfCover.Decimal) {
			return a.DaysOfCover.Decimal.LessThan(b.DaysOfCover.Decimal)
		}
		if a.SalesLast7d != b.SalesLast7d {
			return a.SalesLast7d > b.SalesLast7d
		}
		if a.Key.Color != b.Key.Color {
			return a.Key.Color < b.Key.Color
		}
		return entity.CompareSizes(a.Key.Size, b.Key.Size) < 0
	})
	for i := range out {
		out[i].Priority = i + 1
	}
	return out
}

func setKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	return out
}
