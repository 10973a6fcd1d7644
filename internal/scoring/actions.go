package scoring

import (
	"fmt"

	"github.com/plateiq/menuscope/internal/models"
)

// chooseAction maps a classified item to its recommended action.
// Evaluation order matters: the anchor exemption and the underpriced-star
// promotion are overrides on the plain quadrant mapping.
func chooseAction(item models.ItemMetrics, suggestion *priceSuggestion, stats models.CategoryStats, hasStats bool) models.Action {
	switch item.Quadrant {
	case models.QuadrantStar:
		// a star priced under its category median has room to be featured
		// harder without risking its star status
		if hasStats && item.AvgPrice < stats.MedianPrice {
			return models.ActionPromote
		}
		return models.ActionKeep
	case models.QuadrantPlowhorse:
		if suggestion != nil {
			return models.ActionReprice
		}
		return models.ActionRework
	case models.QuadrantPuzzle:
		return models.ActionReposition
	default: // DOG
		if item.IsAnchor {
			return models.ActionKeep
		}
		return models.ActionRemove
	}
}

// buildExplanation produces the ordered bullet list for an item: two
// quadrant bullets, zero to two action bullets, then a confidence caveat
// when the sample is thin. The order and wording are fixed so the same
// input always yields byte-identical output.
func buildExplanation(item models.ItemMetrics, action models.Action, suggestion *priceSuggestion, stats models.CategoryStats, hasStats bool, settings models.ScoringSettings) []string {
	bullets := make([]string, 0, 5)

	switch item.Quadrant {
	case models.QuadrantStar:
		bullets = append(bullets,
			"High popularity and high margin relative to this week's menu.",
			fmt.Sprintf("Ranks in the %.0fth percentile for popularity and the %.0fth for margin.",
				item.PopularityPercentile, item.MarginPercentile))
	case models.QuadrantPlowhorse:
		bullets = append(bullets,
			"Sells in volume but earns below the menu's typical margin.",
			fmt.Sprintf("Food cost runs %.1f%% of price against a %.1f%% target, a gap of %.1f points.",
				item.FoodCostPct, settings.TargetFoodCostPct, item.FoodCostPct-settings.TargetFoodCostPct))
	case models.QuadrantPuzzle:
		bullets = append(bullets,
			"Earns a strong margin but does not sell often enough to matter yet.",
			fmt.Sprintf("Makes %s per sale yet sits in the %.0fth percentile for popularity.",
				money(item.UnitMargin), item.PopularityPercentile))
	default: // DOG
		bullets = append(bullets,
			"Low popularity and low margin this week.",
			fmt.Sprintf("Only %d sold at a %s unit margin.", item.QuantitySold, money(item.UnitMargin)))
	}

	switch action {
	case models.ActionPromote:
		bullets = append(bullets,
			fmt.Sprintf("Priced at %s against a category median of %s, so it can carry more visibility.",
				money(item.AvgPrice), money(stats.MedianPrice)))
	case models.ActionReprice:
		bullets = append(bullets,
			fmt.Sprintf("Suggest raising the price by %s to %s (%.1f%%).",
				money(suggestion.amount), money(suggestion.price), suggestion.pct))
		if hasStats {
			bullets = append(bullets,
				fmt.Sprintf("Category median price is %s; the increase stays inside the configured guardrails.",
					money(stats.MedianPrice)))
		}
	case models.ActionRework:
		bullets = append(bullets,
			"Guardrails leave no room for a price increase, so reduce the plate cost instead.")
	case models.ActionReposition:
		bullets = append(bullets,
			"Consider menu placement, naming, or server recommendations to lift order volume.")
	case models.ActionRemove:
		bullets = append(bullets,
			"Removing it frees menu space with little margin lost.")
	case models.ActionKeep:
		if item.Quadrant == models.QuadrantDog && item.IsAnchor {
			bullets = append(bullets,
				"Flagged as an anchor item, so it stays on the menu despite weak performance.")
		}
	}

	if item.Confidence == models.ConfidenceLow {
		bullets = append(bullets,
			fmt.Sprintf("Only %d sold this week, below the %d-unit threshold; treat this classification as provisional.",
				item.QuantitySold, settings.MinQtyThreshold))
	}

	return bullets
}

func money(v float64) string {
	if v < 0 {
		return fmt.Sprintf("-$%.2f", -v)
	}
	return fmt.Sprintf("$%.2f", v)
}
