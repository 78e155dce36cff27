package repository

import (
	"context"

	"github.com/jhoicas/StyleWatch-api/internal/domain/entity"
)

// SaleRecordRepository persistencia de las líneas de venta de un estilo.
// Una línea se identifica por (estilo, día, canal, tienda, nombre, talla, color); guardar
// de nuevo la misma línea reemplaza su cantidad, de modo que reportes solapados no duplican ventas.
type SaleRecordRepository interface {
	SaveBatch(ctx context.Context, runID, style string, records []entity.SaleRecord) error

	// ListByStyle devuelve las líneas guardadas del estilo ordenadas por día.
	ListByStyle(ctx context.Context, style string) ([]entity.SaleRecord, error)
}
