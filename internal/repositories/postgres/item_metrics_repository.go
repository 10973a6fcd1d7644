package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/plateiq/menuscope/internal/models"
)

type ItemMetricsRepository struct {
	pool *pgxpool.Pool
}

func NewItemMetricsRepository(pool *pgxpool.Pool) *ItemMetricsRepository {
	return &ItemMetricsRepository{pool: pool}
}

func (r *ItemMetricsRepository) BulkCreate(ctx context.Context, runID string, items []models.ItemMetrics) error {
	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"item_metrics"},
		[]string{
			"run_id", "item_id", "item_name", "category", "quantity_sold",
			"net_sales", "unit_food_cost", "cost_source", "is_anchor",
			"avg_price", "unit_margin", "total_margin", "food_cost_pct",
			"popularity_percentile", "margin_percentile", "profit_percentile",
			"quadrant", "confidence", "recommended_action", "suggested_price",
			"price_change_amount", "price_change_pct", "explanation",
			"estimated_impact",
		},
		pgx.CopyFromSlice(len(items), func(i int) ([]interface{}, error) {
			item := items[i]
			return []interface{}{
				runID,
				item.ItemID,
				item.ItemName,
				item.Category,
				item.QuantitySold,
				item.NetSales,
				item.UnitFoodCost,
				string(item.CostSource),
				item.IsAnchor,
				item.AvgPrice,
				item.UnitMargin,
				item.TotalMargin,
				item.FoodCostPct,
				item.PopularityPercentile,
				item.MarginPercentile,
				item.ProfitPercentile,
				string(item.Quadrant),
				string(item.Confidence),
				string(item.RecommendedAction),
				item.SuggestedPrice,
				item.PriceChangeAmount,
				item.PriceChangePct,
				item.Explanation,
				item.EstimatedImpact,
			}, nil
		}),
	)
	return err
}

func (r *ItemMetricsRepository) GetByRunID(ctx context.Context, runID string) ([]models.ItemMetrics, error) {
	query := `
        SELECT item_id, item_name, category, quantity_sold, net_sales,
               unit_food_cost, cost_source, is_anchor, avg_price, unit_margin,
               total_margin, food_cost_pct, popularity_percentile,
               margin_percentile, profit_percentile, quadrant, confidence,
               recommended_action, suggested_price, price_change_amount,
               price_change_pct, explanation, estimated_impact
        FROM item_metrics
        WHERE run_id = $1
        ORDER BY estimated_impact DESC
    `

	rows, err := r.pool.Query(ctx, query, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.ItemMetrics
	for rows.Next() {
		var item models.ItemMetrics
		var costSource, quadrant, confidence, action string
		err := rows.Scan(
			&item.ItemID,
			&item.ItemName,
			&item.Category,
			&item.QuantitySold,
			&item.NetSales,
			&item.UnitFoodCost,
			&costSource,
			&item.IsAnchor,
			&item.AvgPrice,
			&item.UnitMargin,
			&item.TotalMargin,
			&item.FoodCostPct,
			&item.PopularityPercentile,
			&item.MarginPercentile,
			&item.ProfitPercentile,
			&quadrant,
			&confidence,
			&action,
			&item.SuggestedPrice,
			&item.PriceChangeAmount,
			&item.PriceChangePct,
			&item.Explanation,
			&item.EstimatedImpact,
		)
		if err != nil {
			return nil, err
		}
		item.CostSource = models.CostSource(costSource)
		item.Quadrant = models.Quadrant(quadrant)
		item.Confidence = models.Confidence(confidence)
		item.RecommendedAction = models.Action(action)
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *ItemMetricsRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM item_metrics")
	return err
}
