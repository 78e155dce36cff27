package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/StyleWatch-api/internal/domain/entity"
	"github.com/jhoicas/StyleWatch-api/internal/domain/repository"
)

var _ repository.SaleRecordRepository = (*SaleRecordRepo)(nil)

// SaleRecordRepo implementación de SaleRecordRepository sobre PostgreSQL.
type SaleRecordRepo struct {
	q Querier
}

// NewSaleRecordRepository construye el adaptador. Acepta pool o tx (Querier).
func NewSaleRecordRepository(q Querier) *SaleRecordRepo {
	return &SaleRecordRepo{q: q}
}

// SaveBatch inserta las líneas en un solo viaje a la BD (pgx.Batch). Las líneas repetidas del
// mismo reporte se suman antes; una línea que ya existe para el mismo estilo, día, canal,
// tienda, nombre, talla y color toma la cantidad nueva.
func (r *SaleRecordRepo) SaveBatch(ctx context.Context, runID, style string, records []entity.SaleRecord) error {
	records = mergeByKey(records)
	if len(records) == 0 {
		return nil
	}
	const query = `
		INSERT INTO sale_records (style, sale_date, channel, shop, name, size, color, qty, run_id, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
		ON CONFLICT (style, sale_date, channel, shop, name, size, color)
		DO UPDATE SET qty = EXCLUDED.qty, run_id = EXCLUDED.run_id, updated_at = now()`

	batch := &pgx.Batch{}
	for _, rec := range records {
		batch.Queue(query, style, rec.Day(), rec.Channel, rec.Shop, rec.Name, rec.Size, rec.Color, rec.Qty, runID)
	}
	br := r.q.SendBatch(ctx, batch)
	defer br.Close()
	for i := range records {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("save sale record %d: %w", i, err)
		}
	}
	return br.Close()
}

// ListByStyle devuelve las líneas guardadas del estilo ordenadas por día.
func (r *SaleRecordRepo) ListByStyle(ctx context.Context, style string) ([]entity.SaleRecord, error) {
	const query = `
		SELECT sale_date, channel, shop, name, size, color, qty
		FROM sale_records
		WHERE style = $1
		ORDER BY sale_date, channel, shop, name, size, color`
	rows, err := r.q.Query(ctx, query, style)
	if err != nil {
		return nil, fmt.Errorf("list sale records: %w", err)
	}
	defer rows.Close()

	var list []entity.SaleRecord
	for rows.Next() {
		var rec entity.SaleRecord
		if err := rows.Scan(&rec.Date, &rec.Channel, &rec.Shop, &rec.Name, &rec.Size, &rec.Color, &rec.Qty); err != nil {
			return nil, fmt.Errorf("scan sale record: %w", err)
		}
		rec.Date = entity.DayOf(rec.Date)
		list = append(list, rec)
	}
	return list, rows.Err()
}

type saleKey struct {
	day                              time.Time
	channel, shop, name, size, color string
}

// mergeByKey suma las cantidades de las líneas con la misma clave de sale_records, en el
// orden de su primera aparición. Un mismo INSERT ... ON CONFLICT no puede tocar dos veces
// la misma fila, y dentro del batch la última ganaría.
func mergeByKey(records []entity.SaleRecord) []entity.SaleRecord {
	out := make([]entity.SaleRecord, 0, len(records))
	idx := make(map[saleKey]int, len(records))
	for _, rec := range records {
		k := saleKey{rec.Day(), rec.Channel, rec.Shop, rec.Name, rec.Size, rec.Color}
		if i, ok := idx[k]; ok {
			out[i].Qty += rec.Qty
			continue
		}
		rec.Date = k.day
		idx[k] = len(out)
		out = append(out, rec)
	}
	return out
}
