package scoring

import (
	"sort"

	"github.com/plateiq/menuscope/internal/models"
)

const (
	topActionsLimit = 10
	subListLimit    = 3
)

// GenerateScoringResult reduces an already-scored, impact-sorted item list
// into a ScoringResult. It only aggregates; no per-item value is re-derived,
// so it can be called directly on the output of ScoreItems.
func GenerateScoringResult(scored []models.ItemMetrics) models.ScoringResult {
	summary := models.Summary{
		QuadrantCounts: map[models.Quadrant]int{
			models.QuadrantStar:      0,
			models.QuadrantPlowhorse: 0,
			models.QuadrantPuzzle:    0,
			models.QuadrantDog:       0,
		},
	}

	costPctSum := 0.0
	var plowhorses, puzzles, lowConfidence []models.ItemMetrics
	for _, item := range scored {
		summary.QuadrantCounts[item.Quadrant]++
		summary.TotalRevenue += item.NetSales
		summary.TotalMargin += item.TotalMargin
		costPctSum += item.FoodCostPct

		switch item.Quadrant {
		case models.QuadrantPlowhorse:
			plowhorses = append(plowhorses, item)
		case models.QuadrantPuzzle:
			if item.Confidence != models.ConfidenceLow {
				puzzles = append(puzzles, item)
			}
		}
		if item.Confidence == models.ConfidenceLow {
			lowConfidence = append(lowConfidence, item)
		}
	}
	if len(scored) > 0 {
		summary.AvgFoodCostPct = costPctSum / float64(len(scored))
	}

	summary.TopActions = head(scored, topActionsLimit)

	// volume-weighted margin problems, independent of the impact ranking
	sort.SliceStable(plowhorses, func(i, j int) bool {
		return plowhorses[i].QuantitySold > plowhorses[j].QuantitySold
	})
	summary.MarginLeaks = head(plowhorses, subListLimit)

	sort.SliceStable(puzzles, func(i, j int) bool {
		return puzzles[i].UnitMargin > puzzles[j].UnitMargin
	})
	summary.EasyWins = head(puzzles, subListLimit)

	// watch items keep their impact-sorted order
	summary.WatchItems = head(lowConfidence, subListLimit)

	return models.ScoringResult{
		Items:   scored,
		Summary: summary,
	}
}

func head(items []models.ItemMetrics, limit int) []models.ItemMetrics {
	if len(items) > limit {
		items = items[:limit]
	}
	out := make([]models.ItemMetrics, len(items))
	copy(out, items)
	return out
}
