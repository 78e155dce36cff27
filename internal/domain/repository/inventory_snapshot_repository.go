package repository

import (
	"context"
	"time"

	"github.com/jhoicas/StyleWatch-api/internal/domain/entity"
)

// StoredSnapshot foto de inventario guardada con su momento de captura.
type StoredSnapshot struct {
	ID         string
	RunID      string
	Style      string
	CapturedAt time.Time
	Snapshot   entity.InventorySnapshot
}

// InventorySnapshotRepository guarda fotos de inventario; cada análisis persistido agrega una nueva.
type InventorySnapshotRepository interface {
	Save(ctx context.Context, runID, style string, snap entity.InventorySnapshot) (*StoredSnapshot, error)

	// LatestByStyle devuelve la foto más reciente del estilo, o nil si no hay ninguna.
	LatestByStyle(ctx context.Context, style string) (*StoredSnapshot, error)
}
