package entity

import "github.com/shopspring/decimal"

// SKUKey identifica un SKU de un estilo: combinación color × talla.
type SKUKey struct {
	Color string
	Size  string
}

// TurnoverResult métricas de rotación de un SKU. Se recalcula en cada análisis.
type TurnoverResult struct {
	Key           SKUKey
	SalesLast7d   int
	AvailableNow  int
	AvgDailySales decimal.Decimal
	// DaysOfCover no es válido cuando AvgDailySales es cero.
	DaysOfCover decimal.NullDecimal
	Shortage    bool
}
