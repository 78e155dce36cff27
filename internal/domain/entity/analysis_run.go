package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// AnalysisRun resumen de una corrida de análisis persistida.
type AnalysisRun struct {
	ID          string
	Style       string
	Records     int // líneas de venta guardadas
	Rows        int // filas de inventario guardadas
	Shortages   int
	DaysOfCover decimal.NullDecimal
	Level       string
	CreatedAt   time.Time
}
