package models

// CostSource indicates where an item's unit food cost came from.
type CostSource string

const (
	CostSourceManual     CostSource = "MANUAL"
	CostSourceMarginEdge CostSource = "MARGINEDGE"
	CostSourceEstimate   CostSource = "ESTIMATE"
)

// Quadrant is the menu-engineering classification of an item by relative
// popularity and relative margin within one week's population.
type Quadrant string

const (
	QuadrantStar      Quadrant = "STAR"
	QuadrantPlowhorse Quadrant = "PLOWHORSE"
	QuadrantPuzzle    Quadrant = "PUZZLE"
	QuadrantDog       Quadrant = "DOG"
)

// Confidence reflects how much sales volume backs a classification.
type Confidence string

const (
	ConfidenceHigh   Confidence = "HIGH"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceLow    Confidence = "LOW"
)

// Action is the recommended next step for a menu item.
type Action string

const (
	ActionKeep       Action = "KEEP"
	ActionPromote    Action = "PROMOTE"
	ActionReprice    Action = "REPRICE"
	ActionRework     Action = "REWORK"
	ActionReposition Action = "REPOSITION"
	ActionRemove     Action = "REMOVE"
)

// DefaultCategory is used when a sales row carries no category.
const DefaultCategory = "Uncategorized"

// ItemInput is one week of sales and cost data for a single menu item.
type ItemInput struct {
	ItemID       string     `json:"item_id"`
	ItemName     string     `json:"item_name"`
	Category     string     `json:"category"`
	QuantitySold int        `json:"quantity_sold"`
	NetSales     float64    `json:"net_sales"`
	UnitFoodCost float64    `json:"unit_food_cost"` // may legitimately exceed unit price
	CostSource   CostSource `json:"cost_source"`
	IsAnchor     bool       `json:"is_anchor"` // strategic item, never recommended for removal
}

// CategoryStats holds per-category price and margin statistics for one
// scoring run. A zero Count means no guardrail data is available for the
// category, not a valid ceiling of zero.
type CategoryStats struct {
	Count          int     `json:"count"`
	MedianPrice    float64 `json:"median_price"`
	MedianMargin   float64 `json:"median_margin"`
	P85Price       float64 `json:"p85_price"`
	AvgFoodCostPct float64 `json:"avg_food_cost_pct"`
}

// ItemMetrics is a fully scored menu item: the input row plus every derived
// metric, classification, recommendation and explanation. Price-change
// fields are nil unless the recommended action is REPRICE.
type ItemMetrics struct {
	ItemInput

	AvgPrice    float64 `json:"avg_price"`
	UnitMargin  float64 `json:"unit_margin"`
	TotalMargin float64 `json:"total_margin"`
	FoodCostPct float64 `json:"food_cost_pct"`

	PopularityPercentile float64 `json:"popularity_percentile"`
	MarginPercentile     float64 `json:"margin_percentile"`
	ProfitPercentile     float64 `json:"profit_percentile"`

	Quadrant          Quadrant   `json:"quadrant"`
	Confidence        Confidence `json:"confidence"`
	RecommendedAction Action     `json:"recommended_action"`

	SuggestedPrice    *float64 `json:"suggested_price,omitempty"`
	PriceChangeAmount *float64 `json:"price_change_amount,omitempty"`
	PriceChangePct    *float64 `json:"price_change_pct,omitempty"`

	Explanation     []string `json:"explanation"`
	EstimatedImpact float64  `json:"estimated_impact"` // ranking signal only, not a forecast
}

// Summary is the reduced view of one scoring run.
type Summary struct {
	QuadrantCounts map[Quadrant]int `json:"quadrant_counts"`
	TotalRevenue   float64          `json:"total_revenue"`
	TotalMargin    float64          `json:"total_margin"`
	AvgFoodCostPct float64          `json:"avg_food_cost_pct"`
	TopActions     []ItemMetrics    `json:"top_actions"`
	MarginLeaks    []ItemMetrics    `json:"margin_leaks"`
	EasyWins       []ItemMetrics    `json:"easy_wins"`
	WatchItems     []ItemMetrics    `json:"watch_items"`
}

// ScoringResult is the full output of one scoring run: every scored item
// sorted by estimated impact descending, plus the summary.
type ScoringResult struct {
	Items   []ItemMetrics `json:"items"`
	Summary Summary       `json:"summary"`
}
