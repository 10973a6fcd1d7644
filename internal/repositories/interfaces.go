package repositories

import (
	"context"

	"github.com/plateiq/menuscope/internal/models"
)

type ScoringRunRepository interface {
	Create(ctx context.Context, run *models.ScoringRun) error
	GetByID(ctx context.Context, runID string) (*models.ScoringRun, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type ItemMetricsRepository interface {
	BulkCreate(ctx context.Context, runID string, items []models.ItemMetrics) error
	GetByRunID(ctx context.Context, runID string) ([]models.ItemMetrics, error)
	DeleteAll(ctx context.Context) error
}
