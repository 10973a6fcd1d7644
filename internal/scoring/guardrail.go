package scoring

import (
	"math"

	"github.com/plateiq/menuscope/internal/models"
)

// fallbackMarginRatio is the target margin assumed when a category has no
// comparable items to take a median from.
const fallbackMarginRatio = 0.65

// priceSuggestion is a guardrail-approved price increase. All fields are
// rounded for output; the guardrail math itself runs unrounded.
type priceSuggestion struct {
	price  float64
	amount float64
	pct    float64
}

// suggestPrice computes a bounded price increase for a plowhorse item, or
// nil when the guardrails leave no room to move. The increase is capped by
// the percentage cap and the flat cap, whichever is tighter, and unless
// premium pricing is allowed the result is also clamped to the category's
// 85th-percentile price ceiling.
func suggestPrice(item models.ItemMetrics, stats models.CategoryStats, hasStats bool, settings models.ScoringSettings) *priceSuggestion {
	current := item.AvgPrice

	targetMargin := fallbackMarginRatio * current
	if hasStats && stats.Count > 0 {
		targetMargin = stats.MedianMargin
	}

	rawIncrease := (item.UnitFoodCost + targetMargin) - current

	pctCap := current * settings.MaxPriceIncreasePct / 100
	bound := math.Min(pctCap, settings.MaxPriceIncreaseAmt)

	increase := math.Min(rawIncrease, bound)
	if increase <= 0 {
		return nil
	}

	suggested := current + increase
	if !settings.AllowPremiumPricing && hasStats && stats.Count > 0 && stats.P85Price > 0 && stats.P85Price < suggested {
		suggested = stats.P85Price
	}

	change := suggested - current
	if change <= 0 {
		return nil
	}

	// a sub-cent increase can round away entirely; that is no suggestion
	price := round2(suggested)
	if price <= current {
		return nil
	}

	return &priceSuggestion{
		price:  price,
		amount: round2(change),
		pct:    round1(change / current * 100),
	}
}
