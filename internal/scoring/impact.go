package scoring

import (
	"math"
	"sort"

	"github.com/plateiq/menuscope/internal/models"
)

// estimateImpact assigns the weekly dollar significance of acting on an
// item's recommendation. It is a ranking signal, not a forecast: actions
// with no quantifiable upside score zero.
func estimateImpact(item models.ItemMetrics) float64 {
	switch item.RecommendedAction {
	case models.ActionReprice:
		if item.PriceChangeAmount == nil {
			return 0
		}
		return *item.PriceChangeAmount * float64(item.QuantitySold)
	case models.ActionRemove:
		return math.Abs(item.TotalMargin)
	case models.ActionReposition:
		return item.TotalMargin
	default: // KEEP, PROMOTE, REWORK
		return 0
	}
}

// rankByImpact sorts in place, descending by estimated impact. The sort
// must be stable: items with equal impact keep their input order, and
// downstream sub-lists depend on that.
func rankByImpact(items []models.ItemMetrics) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].EstimatedImpact > items[j].EstimatedImpact
	})
}
