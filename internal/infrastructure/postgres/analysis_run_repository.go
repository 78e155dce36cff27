package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/StyleWatch-api/internal/domain/entity"
	"github.com/jhoicas/StyleWatch-api/internal/domain/repository"
)

var _ repository.AnalysisRunRepository = (*AnalysisRunRepo)(nil)

// AnalysisRunRepo implementación de AnalysisRunRepository sobre PostgreSQL.
// days_of_cover es NUMERIC y se lee con el codec de shopspring/decimal registrado en el pool.
type AnalysisRunRepo struct {
	q Querier
}

// NewAnalysisRunRepository construye el adaptador. Acepta pool o tx (Querier).
func NewAnalysisRunRepository(q Querier) *AnalysisRunRepo {
	return &AnalysisRunRepo{q: q}
}

func (r *AnalysisRunRepo) Create(ctx context.Context, run *entity.AnalysisRun) error {
	const query = `
		INSERT INTO analysis_runs (id, style, record_count, row_count, shortages, days_of_cover, level, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		run.ID, run.Style, run.Records, run.Rows, run.Shortages, run.DaysOfCover, run.Level, run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create analysis run: %w", err)
	}
	return nil
}

func (r *AnalysisRunRepo) ListByStyle(ctx context.Context, style string, limit int) ([]entity.AnalysisRun, error) {
	const query = `
		SELECT id, style, record_count, row_count, shortages, days_of_cover, level, created_at
		FROM analysis_runs
		WHERE style = $1
		ORDER BY created_at DESC
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, style, limit)
	if err != nil {
		return nil, fmt.Errorf("list analysis runs: %w", err)
	}
	defer rows.Close()

	var list []entity.AnalysisRun
	for rows.Next() {
		var run entity.AnalysisRun
		if err := rows.Scan(
			&run.ID, &run.Style, &run.Records, &run.Rows, &run.Shortages, &run.DaysOfCover, &run.Level, &run.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan analysis run: %w", err)
		}
		list = append(list, run)
	}
	return list, rows.Err()
}
