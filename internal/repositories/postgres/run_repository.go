package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/plateiq/menuscope/internal/models"
)

type ScoringRunRepository struct {
	pool *pgxpool.Pool
}

func NewScoringRunRepository(pool *pgxpool.Pool) *ScoringRunRepository {
	return &ScoringRunRepository{pool: pool}
}

func (r *ScoringRunRepository) Create(ctx context.Context, run *models.ScoringRun) error {
	query := `
        INSERT INTO scoring_runs (
            run_id, source, created_at, item_count, star_count,
            plowhorse_count, puzzle_count, dog_count, total_revenue,
            total_margin, avg_food_cost_pct
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
        )
    `

	_, err := r.pool.Exec(ctx, query,
		run.RunID,
		run.Source,
		run.CreatedAt,
		run.ItemCount,
		run.StarCount,
		run.PlowhorseCount,
		run.PuzzleCount,
		run.DogCount,
		run.TotalRevenue,
		run.TotalMargin,
		run.AvgFoodCostPct,
	)
	return err
}

func (r *ScoringRunRepository) GetByID(ctx context.Context, runID string) (*models.ScoringRun, error) {
	query := `
        SELECT run_id, source, created_at, item_count, star_count,
               plowhorse_count, puzzle_count, dog_count, total_revenue,
               total_margin, avg_food_cost_pct
        FROM scoring_runs
        WHERE run_id = $1
    `

	var run models.ScoringRun
	err := r.pool.QueryRow(ctx, query, runID).Scan(
		&run.RunID,
		&run.Source,
		&run.CreatedAt,
		&run.ItemCount,
		&run.StarCount,
		&run.PlowhorseCount,
		&run.PuzzleCount,
		&run.DogCount,
		&run.TotalRevenue,
		&run.TotalMargin,
		&run.AvgFoodCostPct,
	)
	if err != nil {
		return nil, err
	}
	return &run, nil
}

func (r *ScoringRunRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM scoring_runs").Scan(&count)
	return count, err
}

func (r *ScoringRunRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM scoring_runs")
	return err
}
