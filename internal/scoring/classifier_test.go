package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plateiq/menuscope/internal/models"
)

func TestClassifyQuadrant(t *testing.T) {
	settings := models.DefaultScoringSettings()

	tests := []struct {
		name       string
		popularity float64
		margin     float64
		want       models.Quadrant
	}{
		{"both high", 80, 75, models.QuadrantStar},
		{"popular only", 90, 10, models.QuadrantPlowhorse},
		{"margin only", 10, 90, models.QuadrantPuzzle},
		{"neither", 10, 10, models.QuadrantDog},
		{"thresholds are inclusive", 60, 60, models.QuadrantStar},
		{"just under threshold", 59.9, 59.9, models.QuadrantDog},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyQuadrant(tt.popularity, tt.margin, settings))
		})
	}
}

func TestClassifyConfidence(t *testing.T) {
	settings := models.DefaultScoringSettings() // min qty 10

	tests := []struct {
		qty  int
		want models.Confidence
	}{
		{25, models.ConfidenceHigh},
		{20, models.ConfidenceHigh}, // exactly 2x threshold
		{19, models.ConfidenceMedium},
		{10, models.ConfidenceMedium}, // exactly at threshold
		{9, models.ConfidenceLow},
		{1, models.ConfidenceLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, classifyConfidence(tt.qty, settings), "qty %d", tt.qty)
	}
}
