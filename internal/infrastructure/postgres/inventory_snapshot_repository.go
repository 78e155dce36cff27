package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/StyleWatch-api/internal/domain/entity"
	"github.com/jhoicas/StyleWatch-api/internal/domain/repository"
)

var _ repository.InventorySnapshotRepository = (*InventorySnapshotRepo)(nil)

var snapshotRowColumns = []string{"snapshot_id", "line_no", "name", "color", "size", "warehouse", "available", "on_hand"}

// InventorySnapshotRepo implementación de InventorySnapshotRepository sobre PostgreSQL.
type InventorySnapshotRepo struct {
	q Querier
}

// NewInventorySnapshotRepository construye el adaptador. Acepta pool o tx (Querier).
func NewInventorySnapshotRepository(q Querier) *InventorySnapshotRepo {
	return &InventorySnapshotRepo{q: q}
}

// Save crea la cabecera de la foto y copia sus filas con COPY. Conviene llamarlo dentro
// de una transacción para no dejar cabeceras sin filas.
func (r *InventorySnapshotRepo) Save(ctx context.Context, runID, style string, snap entity.InventorySnapshot) (*repository.StoredSnapshot, error) {
	stored := &repository.StoredSnapshot{
		ID:       uuid.NewString(),
		RunID:    runID,
		Style:    style,
		Snapshot: snap,
	}
	const query = `
		INSERT INTO inventory_snapshots (id, run_id, style, skipped, captured_at)
		VALUES ($1, $2, $3, $4, now())
		RETURNING captured_at`
	if err := r.q.QueryRow(ctx, query, stored.ID, runID, style, snap.Skipped).Scan(&stored.CapturedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("save snapshot: id duplicado: %w", err)
		}
		return nil, fmt.Errorf("save snapshot: %w", err)
	}

	rows := make([][]any, 0, len(snap.Rows))
	for i, row := range snap.Rows {
		rows = append(rows, []any{stored.ID, i, row.Name, row.Color, row.Size, row.Warehouse, row.Available, row.OnHand})
	}
	if _, err := r.q.CopyFrom(ctx, pgx.Identifier{"inventory_snapshot_rows"}, snapshotRowColumns, pgx.CopyFromRows(rows)); err != nil {
		return nil, fmt.Errorf("copy snapshot rows: %w", err)
	}
	return stored, nil
}

// LatestByStyle devuelve la foto más reciente del estilo con sus filas en el orden del feed.
func (r *InventorySnapshotRepo) LatestByStyle(ctx context.Context, style string) (*repository.StoredSnapshot, error) {
	const header = `
		SELECT id, run_id, style, skipped, captured_at
		FROM inventory_snapshots
		WHERE style = $1
		ORDER BY captured_at DESC
		LIMIT 1`
	var s repository.StoredSnapshot
	err := r.q.QueryRow(ctx, header, style).Scan(&s.ID, &s.RunID, &s.Style, &s.Snapshot.Skipped, &s.CapturedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest snapshot: %w", err)
	}

	const lines = `
		SELECT name, color, size, warehouse, available, on_hand
		FROM inventory_snapshot_rows
		WHERE snapshot_id = $1
		ORDER BY line_no`
	rows, err := r.q.Query(ctx, lines, s.ID)
	if err != nil {
		return nil, fmt.Errorf("list snapshot rows: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var row entity.InventoryRow
		if err := rows.Scan(&row.Name, &row.Color, &row.Size, &row.Warehouse, &row.Available, &row.OnHand); err != nil {
			return nil, fmt.Errorf("scan snapshot row: %w", err)
		}
		s.Snapshot.Rows = append(s.Snapshot.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list snapshot rows: %w", err)
	}
	return &s, nil
}
