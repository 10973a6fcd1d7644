package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/plateiq/menuscope/internal/models"
)

var itemColumns = []string{
	"item_id", "item_name", "category", "quantity_sold", "net_sales",
	"unit_food_cost", "cost_source", "is_anchor", "avg_price", "unit_margin",
	"total_margin", "food_cost_pct", "popularity_percentile",
	"margin_percentile", "profit_percentile", "quadrant", "confidence",
	"recommended_action", "suggested_price", "price_change_amount",
	"price_change_pct", "estimated_impact", "explanation",
}

type CSVWriter struct {
	basePath string
	folder   string
}

func NewCSVWriter(basePath, folder string) *CSVWriter {
	return &CSVWriter{basePath: basePath, folder: folder}
}

// WriteResult writes one items.csv per run under <base>/<folder>/<runID>/.
func (c *CSVWriter) WriteResult(runID string, result models.ScoringResult) error {
	fullPath := filepath.Join(c.basePath, c.folder, runID)
	if err := os.MkdirAll(fullPath, os.ModePerm); err != nil {
		return err
	}

	file, err := os.Create(filepath.Join(fullPath, "items.csv"))
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(itemColumns); err != nil {
		return err
	}

	for _, item := range result.Items {
		row := []string{
			item.ItemID,
			item.ItemName,
			item.Category,
			strconv.Itoa(item.QuantitySold),
			fmt.Sprintf("%.2f", item.NetSales),
			fmt.Sprintf("%.2f", item.UnitFoodCost),
			string(item.CostSource),
			strconv.FormatBool(item.IsAnchor),
			fmt.Sprintf("%.2f", item.AvgPrice),
			fmt.Sprintf("%.2f", item.UnitMargin),
			fmt.Sprintf("%.2f", item.TotalMargin),
			fmt.Sprintf("%.1f", item.FoodCostPct),
			fmt.Sprintf("%.1f", item.PopularityPercentile),
			fmt.Sprintf("%.1f", item.MarginPercentile),
			fmt.Sprintf("%.1f", item.ProfitPercentile),
			string(item.Quadrant),
			string(item.Confidence),
			string(item.RecommendedAction),
			optionalCell(item.SuggestedPrice),
			optionalCell(item.PriceChangeAmount),
			optionalCell(item.PriceChangePct),
			fmt.Sprintf("%.2f", item.EstimatedImpact),
			strings.Join(item.Explanation, " | "),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func (c *CSVWriter) Close() error {
	return nil
}

func optionalCell(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *v)
}
