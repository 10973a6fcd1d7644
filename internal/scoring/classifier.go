package scoring

import "github.com/plateiq/menuscope/internal/models"

// classifyQuadrant splits an item on two independent axes: its popularity
// percentile and its margin percentile, each against the whole week's
// population rather than an absolute threshold.
func classifyQuadrant(popularityPercentile, marginPercentile float64, settings models.ScoringSettings) models.Quadrant {
	highPopularity := popularityPercentile >= settings.PopularityThreshold
	highMargin := marginPercentile >= settings.MarginThreshold

	switch {
	case highPopularity && highMargin:
		return models.QuadrantStar
	case highPopularity:
		return models.QuadrantPlowhorse
	case highMargin:
		return models.QuadrantPuzzle
	default:
		return models.QuadrantDog
	}
}

// classifyConfidence buckets on absolute sales volume alone. Confidence
// never feeds back into the quadrant, nor the quadrant into confidence.
func classifyConfidence(quantitySold int, settings models.ScoringSettings) models.Confidence {
	switch {
	case quantitySold >= 2*settings.MinQtyThreshold:
		return models.ConfidenceHigh
	case quantitySold >= settings.MinQtyThreshold:
		return models.ConfidenceMedium
	default:
		return models.ConfidenceLow
	}
}
