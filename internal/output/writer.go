// Package output ships scoring results to their destination: the console,
// local CSV/JSON/parquet files, S3, Kafka, or Postgres. One ResultWriter is
// created per invocation and closed when every run has been written.
package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/plateiq/menuscope/internal/models"
)

type ResultWriter interface {
	WriteResult(runID string, result models.ScoringResult) error
	Close() error
}

// ForConfig selects the destination the same way the config selects it:
// kafka and postgres by format, file formats under output_path, console as
// the fallback.
func ForConfig(config *models.Config) (ResultWriter, error) {
	switch config.OutputFormat {
	case "kafka":
		return NewKafkaWriter(config)
	case "postgres":
		return NewPostgresWriter(config)
	case "parquet":
		return NewParquetWriter(config)
	case "csv":
		return NewCSVWriter(config.OutputPath, config.OutputFolder), nil
	case "json":
		return NewJSONWriter(config.OutputPath, config.OutputFolder), nil
	case "console", "":
		return &ConsoleWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", config.OutputFormat)
	}
}

type ConsoleWriter struct{}

func (c *ConsoleWriter) WriteResult(runID string, result models.ScoringResult) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Scoring run %s\n", runID)
	fmt.Fprintf(&b, "  items: %d  revenue: $%.2f  margin: $%.2f  avg food cost: %.1f%%\n",
		len(result.Items), result.Summary.TotalRevenue, result.Summary.TotalMargin, result.Summary.AvgFoodCostPct)
	fmt.Fprintf(&b, "  quadrants: %d star / %d plowhorse / %d puzzle / %d dog\n",
		result.Summary.QuadrantCounts[models.QuadrantStar],
		result.Summary.QuadrantCounts[models.QuadrantPlowhorse],
		result.Summary.QuadrantCounts[models.QuadrantPuzzle],
		result.Summary.QuadrantCounts[models.QuadrantDog])

	b.WriteString("\nTop actions:\n")
	for _, item := range result.Summary.TopActions {
		fmt.Fprintf(&b, "  %-10s %-30s %-10s impact $%.2f\n",
			item.RecommendedAction, item.ItemName, item.Quadrant, item.EstimatedImpact)
		for _, bullet := range item.Explanation {
			fmt.Fprintf(&b, "    - %s\n", bullet)
		}
	}

	writeSubList := func(title string, items []models.ItemMetrics) {
		if len(items) == 0 {
			return
		}
		fmt.Fprintf(&b, "\n%s:\n", title)
		for _, item := range items {
			fmt.Fprintf(&b, "  %-30s qty %-5d unit margin $%.2f\n",
				item.ItemName, item.QuantitySold, item.UnitMargin)
		}
	}
	writeSubList("Margin leaks", result.Summary.MarginLeaks)
	writeSubList("Easy wins", result.Summary.EasyWins)
	writeSubList("Watch items", result.Summary.WatchItems)

	_, err := os.Stdout.WriteString(b.String())
	if err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	return nil
}

func (c *ConsoleWriter) Close() error {
	return nil
}
