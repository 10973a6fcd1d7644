// Package ingest turns raw POS sales exports into ItemInput rows. It owns
// header mapping and currency parsing; the refund/adjustment filter stays
// with the scoring engine.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/plateiq/menuscope/internal/models"
)

// default header names, used when the column mapping leaves a field blank
const (
	defaultItemIDHeader       = "item_id"
	defaultItemNameHeader     = "item_name"
	defaultCategoryHeader     = "category"
	defaultQuantityHeader     = "quantity_sold"
	defaultNetSalesHeader     = "net_sales"
	defaultUnitFoodCostHeader = "unit_food_cost"
	defaultCostSourceHeader   = "cost_source"
	defaultIsAnchorHeader     = "is_anchor"
)

// ReadSalesCSV reads one week of per-item sales from a POS export. Rows
// whose numeric cells do not parse are skipped and counted, not treated as
// errors, since POS exports routinely mix in subtotal and adjustment lines.
func ReadSalesCSV(path string, columns models.ColumnMapping) ([]models.ItemInput, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening sales file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading header row: %w", err)
	}

	idx := headerIndex(header)
	col := func(mapped, fallback string) int {
		name := mapped
		if name == "" {
			name = fallback
		}
		if i, ok := idx[normalizeHeader(name)]; ok {
			return i
		}
		return -1
	}

	itemID := col(columns.ItemID, defaultItemIDHeader)
	itemName := col(columns.ItemName, defaultItemNameHeader)
	category := col(columns.Category, defaultCategoryHeader)
	quantity := col(columns.QuantitySold, defaultQuantityHeader)
	netSales := col(columns.NetSales, defaultNetSalesHeader)
	unitCost := col(columns.UnitFoodCost, defaultUnitFoodCostHeader)
	costSource := col(columns.CostSource, defaultCostSourceHeader)
	isAnchor := col(columns.IsAnchor, defaultIsAnchorHeader)

	if itemName < 0 || quantity < 0 || netSales < 0 || unitCost < 0 {
		return nil, fmt.Errorf("sales file %s is missing required columns (need item name, quantity, net sales, unit food cost)", path)
	}

	var items []models.ItemInput
	skipped := 0
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading sales row: %w", err)
		}

		qty, qtyErr := strconv.Atoi(strings.TrimSpace(cell(fields, quantity)))
		sales, salesErr := parseCurrency(cell(fields, netSales))
		cost, costErr := parseCurrency(cell(fields, unitCost))
		if qtyErr != nil || salesErr != nil || costErr != nil {
			skipped++
			continue
		}

		item := models.ItemInput{
			ItemID:       strings.TrimSpace(cell(fields, itemID)),
			ItemName:     strings.TrimSpace(cell(fields, itemName)),
			Category:     strings.TrimSpace(cell(fields, category)),
			QuantitySold: qty,
			NetSales:     sales,
			UnitFoodCost: cost,
			CostSource:   parseCostSource(cell(fields, costSource)),
			IsAnchor:     parseBoolCell(cell(fields, isAnchor)),
		}
		if item.ItemID == "" {
			item.ItemID = item.ItemName
		}
		items = append(items, item)
	}

	if skipped > 0 {
		log.Printf("Skipped %d non-numeric rows in %s", skipped, path)
	}
	return items, nil
}

func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[normalizeHeader(name)] = i
	}
	return idx
}

func normalizeHeader(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "_")
	return name
}

func cell(fields []string, i int) string {
	if i < 0 || i >= len(fields) {
		return ""
	}
	return fields[i]
}

// parseCurrency accepts values as they appear in POS exports: "$1,234.56",
// "(12.00)" for negatives, or plain numbers.
func parseCurrency(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	negative := strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")")
	if negative {
		s = s[1 : len(s)-1]
	}
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if negative {
		v = -v
	}
	return v, nil
}

func parseCostSource(raw string) models.CostSource {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "MANUAL":
		return models.CostSourceManual
	case "MARGINEDGE":
		return models.CostSourceMarginEdge
	default:
		return models.CostSourceEstimate
	}
}

func parseBoolCell(raw string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	return err == nil && v
}
