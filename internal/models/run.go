package models

import "time"

// ScoringRun records one scoring invocation for persistence: where the data
// came from and the headline summary numbers. Item-level detail lives in
// the item metrics table keyed by RunID.
type ScoringRun struct {
	RunID          string    `json:"run_id"`
	Source         string    `json:"source"` // input file path, or "demo"
	CreatedAt      time.Time `json:"created_at"`
	ItemCount      int       `json:"item_count"`
	StarCount      int       `json:"star_count"`
	PlowhorseCount int       `json:"plowhorse_count"`
	PuzzleCount    int       `json:"puzzle_count"`
	DogCount       int       `json:"dog_count"`
	TotalRevenue   float64   `json:"total_revenue"`
	TotalMargin    float64   `json:"total_margin"`
	AvgFoodCostPct float64   `json:"avg_food_cost_pct"`
}

// NewScoringRun builds the persistence record for a finished run.
func NewScoringRun(runID, source string, result ScoringResult) *ScoringRun {
	return &ScoringRun{
		RunID:          runID,
		Source:         source,
		CreatedAt:      time.Now().UTC(),
		ItemCount:      len(result.Items),
		StarCount:      result.Summary.QuadrantCounts[QuadrantStar],
		PlowhorseCount: result.Summary.QuadrantCounts[QuadrantPlowhorse],
		PuzzleCount:    result.Summary.QuadrantCounts[QuadrantPuzzle],
		DogCount:       result.Summary.QuadrantCounts[QuadrantDog],
		TotalRevenue:   result.Summary.TotalRevenue,
		TotalMargin:    result.Summary.TotalMargin,
		AvgFoodCostPct: result.Summary.AvgFoodCostPct,
	}
}
