// Package factories generates plausible sales weeks for demo runs and test
// fixtures.
package factories

import (
	"math/rand"

	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
	"github.com/plateiq/menuscope/internal/models"
)

// price and cost bands per category, dollars
type categoryBand struct {
	minPrice float64
	maxPrice float64
	// cost ratio band relative to price
	minCostRatio float64
	maxCostRatio float64
	dishes       []string
}

var categoryBands = map[string]categoryBand{
	"Appetizers": {6, 16, 0.20, 0.40, []string{
		"Buffalo Wings", "Loaded Nachos", "Calamari", "Spinach Dip", "Potstickers",
	}},
	"Salads": {8, 15, 0.25, 0.55, []string{
		"Caesar Salad", "House Salad", "Greek Salad", "Cobb Salad",
	}},
	"Mains": {14, 38, 0.28, 0.50, []string{
		"BBQ Burger", "Ribeye Steak", "Grilled Salmon", "Chicken Parmesan",
		"Fish and Chips", "Mushroom Risotto",
	}},
	"Desserts": {6, 12, 0.15, 0.35, []string{
		"Cheesecake", "Chocolate Lava Cake", "Apple Pie", "Tiramisu",
	}},
	"Drinks": {3, 12, 0.10, 0.30, []string{
		"House Lemonade", "Craft Beer", "House Red", "Espresso Martini",
	}},
}

type SalesWeekFactory struct {
	rng  *rand.Rand
	fake faker.Faker
}

// NewSalesWeekFactory seeds the generator. Demo output is reproducible for
// a fixed seed.
func NewSalesWeekFactory(seed int64) *SalesWeekFactory {
	return &SalesWeekFactory{
		rng:  rand.New(rand.NewSource(seed)),
		fake: faker.NewWithSeed(rand.NewSource(seed)),
	}
}

// CreateSalesWeek generates one week of per-item sales across the standard
// categories. Roughly one row in ten is a refund/adjustment row with
// negative net sales, the kind POS exports mix in, so demo runs exercise
// the exclusion filter too.
func (f *SalesWeekFactory) CreateSalesWeek(itemCount int) []models.ItemInput {
	categories := []string{"Appetizers", "Salads", "Mains", "Desserts", "Drinks"}

	items := make([]models.ItemInput, 0, itemCount)
	for i := 0; i < itemCount; i++ {
		category := categories[f.rng.Intn(len(categories))]
		band := categoryBands[category]

		price := band.minPrice + f.rng.Float64()*(band.maxPrice-band.minPrice)
		costRatio := band.minCostRatio + f.rng.Float64()*(band.maxCostRatio-band.minCostRatio)
		qty := 1 + f.rng.Intn(250)

		item := models.ItemInput{
			ItemID:       cuid.New(),
			ItemName:     f.dishName(band),
			Category:     category,
			QuantitySold: qty,
			NetSales:     price * float64(qty),
			UnitFoodCost: price * costRatio,
			CostSource:   f.costSource(),
			IsAnchor:     f.rng.Float64() < 0.1,
		}

		// occasional refund row, filtered out by the engine
		if f.rng.Float64() < 0.1 {
			item.QuantitySold = -f.rng.Intn(3)
			item.NetSales = -item.NetSales / 10
		}

		items = append(items, item)
	}
	return items
}

func (f *SalesWeekFactory) dishName(band categoryBand) string {
	if f.rng.Float64() < 0.8 {
		return band.dishes[f.rng.Intn(len(band.dishes))]
	}
	// the occasional invented special keeps demo menus from repeating
	return f.fake.Food().Fruit() + " Special"
}

func (f *SalesWeekFactory) costSource() models.CostSource {
	switch f.rng.Intn(3) {
	case 0:
		return models.CostSourceManual
	case 1:
		return models.CostSourceMarginEdge
	default:
		return models.CostSourceEstimate
	}
}
