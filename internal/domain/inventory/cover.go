package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/StyleWatch-api/internal/domain/entity"
	"github.com/jhoicas/StyleWatch-api/internal/domain/salesreport"
)

// CoverLevel semáforo de la cobertura global del estilo.
type CoverLevel string

const (
	CoverRed    CoverLevel = "red"
	CoverYellow CoverLevel = "yellow"
	CoverGreen  CoverLevel = "green"
	CoverNone   CoverLevel = "none" // sin ventas recientes, cobertura indefinida
)

// CoverThresholds umbrales del semáforo y ventana de ventas para el promedio.
type CoverThresholds struct {
	Red        decimal.Decimal
	Yellow     decimal.Decimal
	WindowDays int
}

// DefaultCoverThresholds rojo < 3 días, amarillo < 7 días, promedio sobre 7 días.
func DefaultCoverThresholds() CoverThresholds {
	return CoverThresholds{Red: decimal.NewFromInt(3), Yellow: decimal.NewFromInt(7), WindowDays: 7}
}

// StyleKPI indicadores del estilo combinando ventas recientes e inventario.
type StyleKPI struct {
	RecentSales    int // ventas de los últimos WindowDays días con datos
	TotalAvailable int
	TotalOnHand    int
	DaysOfCover    decimal.NullDecimal // un decimal
	Level          CoverLevel
}

// CoverKPI calcula los KPIs globales del estilo.
func CoverKPI(sales []entity.SaleRecord, snap entity.InventorySnapshot, th CoverThresholds) StyleKPI {
	window := th.WindowDays
	if window < 1 {
		window = 1
	}
	kpi := StyleKPI{
		TotalAvailable: snap.TotalAvailable(),
		TotalOnHand:    snap.TotalOnHand(),
		Level:          CoverNone,
	}
	for _, r := range salesreport.InWindow(sales, window) {
		kpi.RecentSales += r.Qty
	}
	if kpi.RecentSales <= 0 {
		return kpi
	}

	cover := decimal.NewFromInt(int64(kpi.TotalAvailable)).
		Mul(decimal.NewFromInt(int64(window))).
		Div(decimal.NewFromInt(int64(kpi.RecentSales))).
		Round(1)
	kpi.DaysOfCover = decimal.NewNullDecimal(cover)
	switch {
	case cover.LessThan(th.Red):
		kpi.Level = CoverRed
	case cover.LessThan(th.Yellow):
		kpi.Level = CoverYellow
	default:
		kpi.Level = CoverGreen
	}
	return kpi
}
