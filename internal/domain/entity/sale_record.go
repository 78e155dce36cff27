package entity

import "time"

// SaleRecord representa una línea de venta normalizada extraída del texto del reporte.
// Se crea solo en el parser y no se modifica después.
type SaleRecord struct {
	Date    time.Time // día calendario (00:00 UTC)
	Channel string    // vacío en el formato antiguo
	Shop    string    // vacío en el formato antiguo
	Name    string
	Size    string
	Color   string
	Qty     int
}

// Day devuelve la fecha truncada al día calendario.
func (r SaleRecord) Day() time.Time {
	return DayOf(r.Date)
}

// ParsedPayload resultado de una llamada al parser de reportes.
type ParsedPayload struct {
	Title     string
	Yesterday string
	Sum7d     *int // resumen "近7天销量汇总", nil si no aparece
	Records   []SaleRecord
	Skipped   int // líneas de detalle no reconocidas o con fecha/cantidad inválida
}

// DailyBucket cantidad vendida en un día calendario.
type DailyBucket struct {
	Day time.Time
	Qty int
}

// DayOf normaliza t a medianoche UTC del mismo día calendario.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
