package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateiq/menuscope/internal/models"
)

func metricsWith(q models.Quadrant, anchor bool) models.ItemMetrics {
	return models.ItemMetrics{
		ItemInput: models.ItemInput{ItemName: "Test Dish", QuantitySold: 30, IsAnchor: anchor},
		AvgPrice:  12,
		Quadrant:  q,
	}
}

func TestChooseAction(t *testing.T) {
	stats := models.CategoryStats{Count: 3, MedianPrice: 14}
	suggestion := &priceSuggestion{price: 12.5, amount: 0.5, pct: 4.2}

	tests := []struct {
		name       string
		item       models.ItemMetrics
		suggestion *priceSuggestion
		want       models.Action
	}{
		{"star priced under median promotes", metricsWith(models.QuadrantStar, false), nil, models.ActionPromote},
		{"plowhorse with suggestion reprices", metricsWith(models.QuadrantPlowhorse, false), suggestion, models.ActionReprice},
		{"plowhorse without suggestion reworks", metricsWith(models.QuadrantPlowhorse, false), nil, models.ActionRework},
		{"puzzle repositions", metricsWith(models.QuadrantPuzzle, false), nil, models.ActionReposition},
		{"dog is removed", metricsWith(models.QuadrantDog, false), nil, models.ActionRemove},
		{"anchor dog is kept", metricsWith(models.QuadrantDog, true), nil, models.ActionKeep},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, chooseAction(tt.item, tt.suggestion, stats, true))
		})
	}
}

func TestChooseActionStarAtOrAboveMedianKeeps(t *testing.T) {
	item := metricsWith(models.QuadrantStar, false)
	item.AvgPrice = 14

	// equal to the median is not "underpriced"
	stats := models.CategoryStats{Count: 3, MedianPrice: 14}
	assert.Equal(t, models.ActionKeep, chooseAction(item, nil, stats, true))

	// without category data there is nothing to compare against
	assert.Equal(t, models.ActionKeep, chooseAction(item, nil, models.CategoryStats{}, false))
}

func TestBuildExplanationOrderAndCaveat(t *testing.T) {
	settings := models.DefaultScoringSettings()
	stats := models.CategoryStats{Count: 3, MedianPrice: 14, MedianMargin: 8}

	item := metricsWith(models.QuadrantPlowhorse, false)
	item.FoodCostPct = 45
	item.QuantitySold = 5 // LOW confidence
	item.Confidence = models.ConfidenceLow
	suggestion := &priceSuggestion{price: 12.5, amount: 0.5, pct: 4.2}

	bullets := buildExplanation(item, models.ActionReprice, suggestion, stats, true, settings)

	// quadrant bullets first, then action bullets, caveat last
	require.Len(t, bullets, 5)
	assert.Contains(t, bullets[0], "volume")
	assert.Contains(t, bullets[1], "45.0%")
	assert.Contains(t, bullets[2], "$0.50")
	assert.Contains(t, bullets[2], "$12.50")
	assert.Contains(t, bullets[3], "$14.00")
	assert.Contains(t, bullets[4], "provisional")
}

func TestBuildExplanationAnchorNote(t *testing.T) {
	settings := models.DefaultScoringSettings()
	item := metricsWith(models.QuadrantDog, true)
	item.Confidence = models.ConfidenceHigh
	item.UnitMargin = 1.25

	bullets := buildExplanation(item, models.ActionKeep, nil, models.CategoryStats{}, false, settings)
	require.Len(t, bullets, 3)
	assert.Contains(t, bullets[2], "anchor")
}

func TestBuildExplanationDeterministic(t *testing.T) {
	settings := models.DefaultScoringSettings()
	item := metricsWith(models.QuadrantPuzzle, false)
	item.Confidence = models.ConfidenceMedium
	item.UnitMargin = 9.5
	item.PopularityPercentile = 20

	first := buildExplanation(item, models.ActionReposition, nil, models.CategoryStats{}, false, settings)
	second := buildExplanation(item, models.ActionReposition, nil, models.CategoryStats{}, false, settings)
	assert.Equal(t, first, second)
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "$7.00", money(7))
	assert.Equal(t, "-$1.25", money(-1.25))
	assert.Equal(t, "$0.00", money(0))
}
