package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateiq/menuscope/internal/models"
)

// sixItemWeek is the reference fixture: two plowhorses, a star, two puzzles
// and a dog.
func sixItemWeek() []models.ItemInput {
	return []models.ItemInput{
		{ItemID: "wings", ItemName: "Buffalo Wings", Category: "Appetizers", QuantitySold: 220, NetSales: 3080, UnitFoodCost: 4.25},
		{ItemID: "burger", ItemName: "BBQ Burger", Category: "Mains", QuantitySold: 150, NetSales: 2250, UnitFoodCost: 9.00},
		{ItemID: "ribeye", ItemName: "Ribeye Steak", Category: "Mains", QuantitySold: 40, NetSales: 1280, UnitFoodCost: 12.00},
		{ItemID: "house-salad", ItemName: "House Salad", Category: "Salads", QuantitySold: 25, NetSales: 200, UnitFoodCost: 5.00},
		{ItemID: "caesar", ItemName: "Caesar Salad", Category: "Salads", QuantitySold: 110, NetSales: 1375, UnitFoodCost: 1.85},
		{ItemID: "special", ItemName: "Special Dish", Category: "Mains", QuantitySold: 5, NetSales: 100, UnitFoodCost: 8.00},
	}
}

func findItem(t *testing.T, items []models.ItemMetrics, id string) models.ItemMetrics {
	t.Helper()
	for _, item := range items {
		if item.ItemID == id {
			return item
		}
	}
	t.Fatalf("item %s not found in output", id)
	return models.ItemMetrics{}
}

func TestScoreItemsSingleItem(t *testing.T) {
	scored := ScoreItems([]models.ItemInput{
		{ItemID: "solo", ItemName: "Solo Dish", QuantitySold: 50, NetSales: 500, UnitFoodCost: 3.0},
	}, nil)

	require.Len(t, scored, 1)
	item := scored[0]
	assert.InDelta(t, 10.00, item.AvgPrice, 1e-9)
	assert.InDelta(t, 7.00, item.UnitMargin, 1e-9)
	assert.Equal(t, 50.0, item.PopularityPercentile)
	assert.Equal(t, 50.0, item.MarginPercentile)
	assert.Equal(t, 50.0, item.ProfitPercentile)
	assert.Equal(t, models.DefaultCategory, item.Category)
	assert.Equal(t, models.CostSourceEstimate, item.CostSource)
}

func TestScoreItemsNegativeMargin(t *testing.T) {
	scored := ScoreItems([]models.ItemInput{
		{ItemID: "loser", ItemName: "Discount Platter", QuantitySold: 100, NetSales: 500, UnitFoodCost: 6.00},
	}, nil)

	require.Len(t, scored, 1)
	item := scored[0]
	assert.InDelta(t, -1.00, item.UnitMargin, 1e-9)
	assert.Equal(t, models.QuadrantDog, item.Quadrant)
	assert.Equal(t, models.ActionRemove, item.RecommendedAction)
}

func TestScoreItemsFiltersRefundRows(t *testing.T) {
	scored := ScoreItems([]models.ItemInput{
		{ItemID: "ok", ItemName: "Kept", QuantitySold: 10, NetSales: 100, UnitFoodCost: 2},
		{ItemID: "refund", ItemName: "Refund", QuantitySold: -2, NetSales: -20, UnitFoodCost: 2},
		{ItemID: "zero-qty", ItemName: "Zero Qty", QuantitySold: 0, NetSales: 50, UnitFoodCost: 2},
		{ItemID: "zero-sales", ItemName: "Zero Sales", QuantitySold: 5, NetSales: 0, UnitFoodCost: 2},
	}, nil)

	require.Len(t, scored, 1)
	assert.Equal(t, "ok", scored[0].ItemID)
}

func TestScoreItemsEmptyInput(t *testing.T) {
	assert.Empty(t, ScoreItems(nil, nil))
	assert.Empty(t, ScoreItems([]models.ItemInput{}, nil))
}

func TestScoreItemsSixItemWeek(t *testing.T) {
	scored := ScoreItems(sixItemWeek(), nil)
	require.Len(t, scored, 6)

	wings := findItem(t, scored, "wings")
	burger := findItem(t, scored, "burger")
	ribeye := findItem(t, scored, "ribeye")
	houseSalad := findItem(t, scored, "house-salad")
	caesar := findItem(t, scored, "caesar")
	special := findItem(t, scored, "special")

	assert.Equal(t, models.QuadrantPlowhorse, wings.Quadrant)
	assert.Equal(t, models.QuadrantPlowhorse, burger.Quadrant)
	assert.Equal(t, models.QuadrantStar, caesar.Quadrant)
	assert.Equal(t, models.QuadrantPuzzle, ribeye.Quadrant)
	assert.Equal(t, models.QuadrantPuzzle, special.Quadrant)
	assert.Equal(t, models.QuadrantDog, houseSalad.Quadrant)

	assert.Less(t, houseSalad.PopularityPercentile, 60.0)
	assert.Less(t, houseSalad.MarginPercentile, 60.0)
	assert.Equal(t, models.ActionRemove, houseSalad.RecommendedAction)

	assert.Equal(t, models.ConfidenceHigh, wings.Confidence)
	assert.Equal(t, models.ConfidenceLow, special.Confidence)

	// burger repricing: raw need far exceeds caps, pct cap of 8% on $15 binds
	require.Equal(t, models.ActionReprice, burger.RecommendedAction)
	require.NotNil(t, burger.PriceChangeAmount)
	assert.InDelta(t, 1.20, *burger.PriceChangeAmount, 1e-9)
	require.NotNil(t, burger.SuggestedPrice)
	assert.InDelta(t, 16.20, *burger.SuggestedPrice, 1e-9)
	assert.Greater(t, *burger.SuggestedPrice, burger.AvgPrice)

	// wings are alone in their category; the median margin is their own, so
	// there is no room to move and the fallback is a cost rework
	assert.Equal(t, models.ActionRework, wings.RecommendedAction)
	assert.Nil(t, wings.SuggestedPrice)
}

func TestScoreItemsPartitionAndBounds(t *testing.T) {
	scored := ScoreItems(sixItemWeek(), nil)

	counts := map[models.Quadrant]int{}
	for _, item := range scored {
		counts[item.Quadrant]++
		for _, p := range []float64{item.PopularityPercentile, item.MarginPercentile, item.ProfitPercentile} {
			assert.GreaterOrEqual(t, p, 0.0)
			assert.LessOrEqual(t, p, 100.0)
		}
	}
	total := counts[models.QuadrantStar] + counts[models.QuadrantPlowhorse] +
		counts[models.QuadrantPuzzle] + counts[models.QuadrantDog]
	assert.Equal(t, len(scored), total)
}

func TestScoreItemsImpactOrdering(t *testing.T) {
	scored := ScoreItems(sixItemWeek(), nil)

	for i := 1; i < len(scored); i++ {
		assert.GreaterOrEqual(t, scored[i-1].EstimatedImpact, scored[i].EstimatedImpact)
	}

	// zero-impact items keep their input order: wings before caesar
	var zeroes []string
	for _, item := range scored {
		if item.EstimatedImpact == 0 {
			zeroes = append(zeroes, item.ItemID)
		}
	}
	assert.Equal(t, []string{"wings", "caesar"}, zeroes)
}

func TestScoreItemsAnchorOverride(t *testing.T) {
	base := ScoreItems(sixItemWeek(), nil)

	anchored := sixItemWeek()
	anchored[3].IsAnchor = true // House Salad
	rescored := ScoreItems(anchored, nil)

	houseSalad := findItem(t, rescored, "house-salad")
	assert.Equal(t, models.QuadrantDog, houseSalad.Quadrant)
	assert.Equal(t, models.ActionKeep, houseSalad.RecommendedAction)

	// nothing else moves
	for _, before := range base {
		if before.ItemID == "house-salad" {
			continue
		}
		after := findItem(t, rescored, before.ItemID)
		assert.Equal(t, before.Quadrant, after.Quadrant, before.ItemID)
		assert.Equal(t, before.Confidence, after.Confidence, before.ItemID)
		assert.Equal(t, before.RecommendedAction, after.RecommendedAction, before.ItemID)
	}
}

func TestScoreItemsGuardrailCapping(t *testing.T) {
	// the plowhorse needs a huge increase to hit its category's median
	// margin; the 8% cap on a $10 price must bind at $0.80
	items := []models.ItemInput{
		{ItemID: "plow", ItemName: "Underpriced Pasta", Category: "Mains", QuantitySold: 100, NetSales: 1000, UnitFoodCost: 8},
		{ItemID: "mid", ItemName: "Mid Dish", Category: "Mains", QuantitySold: 20, NetSales: 240, UnitFoodCost: 2},
		{ItemID: "rich", ItemName: "Rich Dish", Category: "Mains", QuantitySold: 10, NetSales: 150, UnitFoodCost: 3},
	}
	scored := ScoreItems(items, nil)

	plow := findItem(t, scored, "plow")
	require.Equal(t, models.QuadrantPlowhorse, plow.Quadrant)
	require.Equal(t, models.ActionReprice, plow.RecommendedAction)
	require.NotNil(t, plow.PriceChangeAmount)
	assert.InDelta(t, 0.80, *plow.PriceChangeAmount, 1e-9)
	require.NotNil(t, plow.PriceChangePct)
	assert.LessOrEqual(t, *plow.PriceChangePct, 8.0)
	require.NotNil(t, plow.SuggestedPrice)
	assert.Greater(t, *plow.SuggestedPrice, plow.AvgPrice)
}

func TestScoreItemsDeterminism(t *testing.T) {
	first := ScoreItems(sixItemWeek(), nil)
	second := ScoreItems(sixItemWeek(), nil)
	assert.Equal(t, first, second)

	// explanations included, byte for byte
	for i := range first {
		assert.Equal(t, first[i].Explanation, second[i].Explanation)
	}
}

func TestScoreItemsDoesNotMutateInput(t *testing.T) {
	items := sixItemWeek()
	ScoreItems(items, nil)
	assert.Equal(t, sixItemWeek(), items)
}

func TestScoreItemsSettingsOverrides(t *testing.T) {
	// with a popularity threshold of 0 every item is "popular", so no
	// puzzles or dogs can exist
	zero := 0.0
	scored := ScoreItems(sixItemWeek(), &models.SettingsOverrides{PopularityThreshold: &zero})
	for _, item := range scored {
		assert.Contains(t, []models.Quadrant{models.QuadrantStar, models.QuadrantPlowhorse}, item.Quadrant)
	}
}
