package scoring

import (
	"sort"

	"github.com/plateiq/menuscope/internal/models"
)

// buildCategoryStats groups scored base metrics by category and computes the
// per-category medians and the 85th-percentile price ceiling used by the
// guardrail engine. Stats live for one scoring run only.
func buildCategoryStats(items []models.ItemMetrics) map[string]models.CategoryStats {
	byCategory := make(map[string][]models.ItemMetrics)
	for _, item := range items {
		byCategory[item.Category] = append(byCategory[item.Category], item)
	}

	stats := make(map[string]models.CategoryStats, len(byCategory))
	for category, group := range byCategory {
		prices := make([]float64, len(group))
		margins := make([]float64, len(group))
		costPctSum := 0.0
		for i, item := range group {
			prices[i] = item.AvgPrice
			margins[i] = item.UnitMargin
			costPctSum += item.FoodCostPct
		}
		sort.Float64s(prices)
		sort.Float64s(margins)

		stats[category] = models.CategoryStats{
			Count:          len(group),
			MedianPrice:    orderStat(prices, 50),
			MedianMargin:   orderStat(margins, 50),
			P85Price:       orderStat(prices, 85),
			AvgFoodCostPct: costPctSum / float64(len(group)),
		}
	}
	return stats
}
