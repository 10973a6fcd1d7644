// Package scoring implements the menu-engineering scoring engine: a pure,
// deterministic computation from one week of per-item sales and cost data
// to classified, ranked, explained recommendations. The engine performs no
// I/O and holds no state between calls; concurrent invocations are safe.
package scoring

import (
	"sort"

	"github.com/plateiq/menuscope/internal/models"
)

// ScoreItems scores one week of sales for one location. Rows representing
// refunds or adjustments (non-positive quantity or net sales) are dropped
// before any ranking step. Unspecified settings fields fall back to the
// documented defaults; the input is never mutated.
func ScoreItems(items []models.ItemInput, overrides *models.SettingsOverrides) []models.ItemMetrics {
	settings := overrides.Resolve()

	scored := make([]models.ItemMetrics, 0, len(items))
	for _, input := range items {
		if input.QuantitySold <= 0 || input.NetSales <= 0 {
			continue
		}
		scored = append(scored, baseMetrics(input))
	}
	if len(scored) == 0 {
		return scored
	}

	categoryStats := buildCategoryStats(scored)

	// three rank populations over the whole valid set
	popularity := make([]float64, len(scored))
	margins := make([]float64, len(scored))
	profits := make([]float64, len(scored))
	for i, item := range scored {
		popularity[i] = float64(item.QuantitySold)
		margins[i] = item.UnitMargin
		profits[i] = item.TotalMargin
	}
	sort.Float64s(popularity)
	sort.Float64s(margins)
	sort.Float64s(profits)

	for i := range scored {
		item := &scored[i]

		item.PopularityPercentile = percentileRank(popularity, float64(item.QuantitySold))
		item.MarginPercentile = percentileRank(margins, item.UnitMargin)
		item.ProfitPercentile = percentileRank(profits, item.TotalMargin)

		item.Quadrant = classifyQuadrant(item.PopularityPercentile, item.MarginPercentile, settings)
		item.Confidence = classifyConfidence(item.QuantitySold, settings)

		stats, hasStats := categoryStats[item.Category]

		var suggestion *priceSuggestion
		if item.Quadrant == models.QuadrantPlowhorse {
			suggestion = suggestPrice(*item, stats, hasStats, settings)
		}

		item.RecommendedAction = chooseAction(*item, suggestion, stats, hasStats)
		if item.RecommendedAction == models.ActionReprice && suggestion != nil {
			item.SuggestedPrice = ptr(suggestion.price)
			item.PriceChangeAmount = ptr(suggestion.amount)
			item.PriceChangePct = ptr(suggestion.pct)
		}

		item.Explanation = buildExplanation(*item, item.RecommendedAction, suggestion, stats, hasStats, settings)
		item.EstimatedImpact = estimateImpact(*item)
	}

	rankByImpact(scored)
	return scored
}

// baseMetrics derives the per-item arithmetic. The exclusion filter has
// already guaranteed QuantitySold > 0 and NetSales > 0, so no division here
// can hit zero.
func baseMetrics(input models.ItemInput) models.ItemMetrics {
	if input.Category == "" {
		input.Category = models.DefaultCategory
	}
	if input.CostSource == "" {
		input.CostSource = models.CostSourceEstimate
	}

	avgPrice := input.NetSales / float64(input.QuantitySold)
	unitMargin := avgPrice - input.UnitFoodCost

	return models.ItemMetrics{
		ItemInput:   input,
		AvgPrice:    avgPrice,
		UnitMargin:  unitMargin,
		TotalMargin: unitMargin * float64(input.QuantitySold),
		FoodCostPct: input.UnitFoodCost / avgPrice * 100,
	}
}

func ptr(v float64) *float64 {
	return &v
}
