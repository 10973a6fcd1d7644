package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateiq/menuscope/internal/models"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sales.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadSalesCSVDefaults(t *testing.T) {
	path := writeTempCSV(t, `item_id,item_name,category,quantity_sold,net_sales,unit_food_cost,cost_source,is_anchor
w-1,Buffalo Wings,Appetizers,220,"$3,080.00",$4.25,MANUAL,true
b-1,BBQ Burger,Mains,150,2250,9.00,marginedge,
r-1,Weekly Refund,,-2,(28.00),0,,
`)

	items, err := ReadSalesCSV(path, models.ColumnMapping{})
	require.NoError(t, err)
	require.Len(t, items, 3)

	wings := items[0]
	assert.Equal(t, "w-1", wings.ItemID)
	assert.Equal(t, "Buffalo Wings", wings.ItemName)
	assert.Equal(t, "Appetizers", wings.Category)
	assert.Equal(t, 220, wings.QuantitySold)
	assert.InDelta(t, 3080.00, wings.NetSales, 1e-9)
	assert.InDelta(t, 4.25, wings.UnitFoodCost, 1e-9)
	assert.Equal(t, models.CostSourceManual, wings.CostSource)
	assert.True(t, wings.IsAnchor)

	burger := items[1]
	assert.Equal(t, models.CostSourceMarginEdge, burger.CostSource)
	assert.False(t, burger.IsAnchor)

	// refund rows parse through; filtering them is the engine's job
	refund := items[2]
	assert.Equal(t, -2, refund.QuantitySold)
	assert.InDelta(t, -28.00, refund.NetSales, 1e-9)
}

func TestReadSalesCSVColumnMapping(t *testing.T) {
	path := writeTempCSV(t, `PLU,Menu Item,Qty,Sales,Plate Cost
101,Caesar Salad,110,1375.00,1.85
`)

	items, err := ReadSalesCSV(path, models.ColumnMapping{
		ItemID:       "PLU",
		ItemName:     "Menu Item",
		QuantitySold: "Qty",
		NetSales:     "Sales",
		UnitFoodCost: "Plate Cost",
	})
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, "101", items[0].ItemID)
	assert.Equal(t, "Caesar Salad", items[0].ItemName)
	assert.Equal(t, 110, items[0].QuantitySold)
	assert.Equal(t, models.CostSourceEstimate, items[0].CostSource)
}

func TestReadSalesCSVHeaderNormalization(t *testing.T) {
	path := writeTempCSV(t, `Item Name,Quantity Sold,Net Sales,Unit Food Cost
House Salad,25,200,5.00
`)

	items, err := ReadSalesCSV(path, models.ColumnMapping{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	// no id column: the name doubles as the id
	assert.Equal(t, "House Salad", items[0].ItemID)
}

func TestReadSalesCSVSkipsNonNumericRows(t *testing.T) {
	path := writeTempCSV(t, `item_name,quantity_sold,net_sales,unit_food_cost
Good Dish,10,100,2
Subtotal,,1500.00,
Another Dish,5,50,1
`)

	items, err := ReadSalesCSV(path, models.ColumnMapping{})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Good Dish", items[0].ItemName)
	assert.Equal(t, "Another Dish", items[1].ItemName)
}

func TestReadSalesCSVMissingColumns(t *testing.T) {
	path := writeTempCSV(t, `item_name,quantity_sold
Dish,5
`)

	_, err := ReadSalesCSV(path, models.ColumnMapping{})
	assert.Error(t, err)
}

func TestReadSalesCSVMissingFile(t *testing.T) {
	_, err := ReadSalesCSV(filepath.Join(t.TempDir(), "absent.csv"), models.ColumnMapping{})
	assert.Error(t, err)
}

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"1234.56", 1234.56},
		{"$4.25", 4.25},
		{"$1,234.56", 1234.56},
		{" 12.00 ", 12.00},
		{"-5.00", -5.00},
		{"(28.00)", -28.00},
		{"($1,000.00)", -1000.00},
	}
	for _, tt := range tests {
		got, err := parseCurrency(tt.raw)
		require.NoError(t, err, tt.raw)
		assert.InDelta(t, tt.want, got, 1e-9, tt.raw)
	}

	_, err := parseCurrency("")
	assert.Error(t, err)
	_, err = parseCurrency("N/A")
	assert.Error(t, err)
}
