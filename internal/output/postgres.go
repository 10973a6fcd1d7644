package output

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/plateiq/menuscope/internal/models"
	"github.com/plateiq/menuscope/internal/repositories"
	"github.com/plateiq/menuscope/internal/repositories/postgres"
)

type PostgresWriter struct {
	pool   *pgxpool.Pool
	source string
	runs   repositories.ScoringRunRepository
	items  repositories.ItemMetricsRepository
}

func NewPostgresWriter(config *models.Config) (*PostgresWriter, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.Database.Host, config.Database.Port, config.Database.User,
		config.Database.Password, config.Database.DBName, config.Database.SSLMode,
	)

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	source := config.InputFile
	if config.Demo {
		source = "demo"
	}

	return &PostgresWriter{
		pool:   pool,
		source: source,
		runs:   postgres.NewScoringRunRepository(pool),
		items:  postgres.NewItemMetricsRepository(pool),
	}, nil
}

// WriteResult stores the run header first, then bulk-inserts the item rows.
// Stored fields are the engine's authoritative outputs; nothing is
// re-derived on read.
func (p *PostgresWriter) WriteResult(runID string, result models.ScoringResult) error {
	ctx := context.Background()

	if err := p.runs.Create(ctx, models.NewScoringRun(runID, p.source, result)); err != nil {
		return fmt.Errorf("failed to insert scoring run %s: %w", runID, err)
	}
	if err := p.items.BulkCreate(ctx, runID, result.Items); err != nil {
		return fmt.Errorf("failed to insert item metrics for run %s: %w", runID, err)
	}
	return nil
}

func (p *PostgresWriter) Close() error {
	p.pool.Close()
	return nil
}
