package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/plateiq/menuscope/internal/cloudwriter"
	"github.com/plateiq/menuscope/internal/models"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

// ItemRow is the columnar projection of ItemMetrics. Price-change columns
// are OPTIONAL so a null survives the round trip instead of turning into 0.
type ItemRow struct {
	RunID                string   `parquet:"name=runId,type=BYTE_ARRAY,convertedtype=UTF8"`
	ItemID               string   `parquet:"name=itemId,type=BYTE_ARRAY,convertedtype=UTF8"`
	ItemName             string   `parquet:"name=itemName,type=BYTE_ARRAY,convertedtype=UTF8"`
	Category             string   `parquet:"name=category,type=BYTE_ARRAY,convertedtype=UTF8"`
	QuantitySold         int32    `parquet:"name=quantitySold,type=INT32"`
	NetSales             float64  `parquet:"name=netSales,type=DOUBLE"`
	UnitFoodCost         float64  `parquet:"name=unitFoodCost,type=DOUBLE"`
	CostSource           string   `parquet:"name=costSource,type=BYTE_ARRAY,convertedtype=UTF8"`
	IsAnchor             bool     `parquet:"name=isAnchor,type=BOOLEAN"`
	AvgPrice             float64  `parquet:"name=avgPrice,type=DOUBLE"`
	UnitMargin           float64  `parquet:"name=unitMargin,type=DOUBLE"`
	TotalMargin          float64  `parquet:"name=totalMargin,type=DOUBLE"`
	FoodCostPct          float64  `parquet:"name=foodCostPct,type=DOUBLE"`
	PopularityPercentile float64  `parquet:"name=popularityPercentile,type=DOUBLE"`
	MarginPercentile     float64  `parquet:"name=marginPercentile,type=DOUBLE"`
	ProfitPercentile     float64  `parquet:"name=profitPercentile,type=DOUBLE"`
	Quadrant             string   `parquet:"name=quadrant,type=BYTE_ARRAY,convertedtype=UTF8"`
	Confidence           string   `parquet:"name=confidence,type=BYTE_ARRAY,convertedtype=UTF8"`
	RecommendedAction    string   `parquet:"name=recommendedAction,type=BYTE_ARRAY,convertedtype=UTF8"`
	SuggestedPrice       *float64 `parquet:"name=suggestedPrice,type=DOUBLE,repetitiontype=OPTIONAL"`
	PriceChangeAmount    *float64 `parquet:"name=priceChangeAmount,type=DOUBLE,repetitiontype=OPTIONAL"`
	PriceChangePct       *float64 `parquet:"name=priceChangePct,type=DOUBLE,repetitiontype=OPTIONAL"`
	EstimatedImpact      float64  `parquet:"name=estimatedImpact,type=DOUBLE"`
	Explanation          string   `parquet:"name=explanation,type=BYTE_ARRAY,convertedtype=UTF8"`
}

type ParquetWriter struct {
	basePath           string
	folder             string
	cloudWriterFactory cloudwriter.CloudWriterFactory
	cloudBucketName    string
}

func NewParquetWriter(config *models.Config) (*ParquetWriter, error) {
	p := &ParquetWriter{
		basePath: config.OutputPath,
		folder:   config.OutputFolder,
	}

	if config.OutputDestination != "local" && config.OutputDestination != "" {
		var factory cloudwriter.CloudWriterFactory
		var err error

		switch config.CloudStorage.Provider {
		case "s3":
			factory, err = cloudwriter.NewS3WriterFactory(config.CloudStorage.Region)
		default:
			return nil, fmt.Errorf("unsupported cloud storage provider: %s", config.CloudStorage.Provider)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create cloud writer factory: %w", err)
		}

		p.cloudWriterFactory = factory
		p.cloudBucketName = config.CloudStorage.BucketName
	}

	return p, nil
}

// WriteResult writes items.parquet for one run, locally or straight to the
// configured bucket.
func (p *ParquetWriter) WriteResult(runID string, result models.ScoringResult) error {
	fw, err := p.newFileWriter(runID)
	if err != nil {
		return err
	}

	pw, err := writer.NewParquetWriter(fw, new(ItemRow), 4)
	if err != nil {
		return fmt.Errorf("failed to create parquet writer: %w", err)
	}

	for _, item := range result.Items {
		if err := pw.Write(toItemRow(runID, item)); err != nil {
			return fmt.Errorf("failed to write parquet row: %w", err)
		}
	}

	if err := pw.WriteStop(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return fw.Close()
}

func (p *ParquetWriter) newFileWriter(runID string) (source.ParquetFile, error) {
	if p.cloudWriterFactory != nil {
		objectPath := filepath.Join(p.folder, runID, "items.parquet")
		cw, err := p.cloudWriterFactory.NewWriter(p.cloudBucketName, objectPath, "application/octet-stream")
		if err != nil {
			return nil, fmt.Errorf("failed to create cloud file writer: %w", err)
		}
		return NewCloudParquetFile(cw), nil
	}

	fullPath := filepath.Join(p.basePath, p.folder, runID)
	if err := os.MkdirAll(fullPath, os.ModePerm); err != nil {
		return nil, err
	}
	fw, err := local.NewLocalFileWriter(filepath.Join(fullPath, "items.parquet"))
	if err != nil {
		return nil, fmt.Errorf("failed to create local file writer: %w", err)
	}
	return fw, nil
}

func (p *ParquetWriter) Close() error {
	return nil
}

func toItemRow(runID string, item models.ItemMetrics) ItemRow {
	return ItemRow{
		RunID:                runID,
		ItemID:               item.ItemID,
		ItemName:             item.ItemName,
		Category:             item.Category,
		QuantitySold:         int32(item.QuantitySold),
		NetSales:             item.NetSales,
		UnitFoodCost:         item.UnitFoodCost,
		CostSource:           string(item.CostSource),
		IsAnchor:             item.IsAnchor,
		AvgPrice:             item.AvgPrice,
		UnitMargin:           item.UnitMargin,
		TotalMargin:          item.TotalMargin,
		FoodCostPct:          item.FoodCostPct,
		PopularityPercentile: item.PopularityPercentile,
		MarginPercentile:     item.MarginPercentile,
		ProfitPercentile:     item.ProfitPercentile,
		Quadrant:             string(item.Quadrant),
		Confidence:           string(item.Confidence),
		RecommendedAction:    string(item.RecommendedAction),
		SuggestedPrice:       item.SuggestedPrice,
		PriceChangeAmount:    item.PriceChangeAmount,
		PriceChangePct:       item.PriceChangePct,
		EstimatedImpact:      item.EstimatedImpact,
		Explanation:          strings.Join(item.Explanation, " | "),
	}
}

// CloudParquetFile adapts a CloudWriter to the parquet source interface.
// Parquet writing is strictly sequential, so reads and seeks from the end
// are unsupported.
type CloudParquetFile struct {
	cloudWriter cloudwriter.CloudWriter
	offset      int64
}

func NewCloudParquetFile(cw cloudwriter.CloudWriter) *CloudParquetFile {
	return &CloudParquetFile{cloudWriter: cw}
}

func (c *CloudParquetFile) Open(name string) (source.ParquetFile, error) {
	// objects are implicitly created on first write; nothing to open
	return c, nil
}

func (c *CloudParquetFile) Create(name string) (source.ParquetFile, error) {
	return c, nil
}

func (c *CloudParquetFile) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		c.offset = offset
	case io.SeekCurrent:
		c.offset += offset
	case io.SeekEnd:
		return 0, fmt.Errorf("seek from end not supported for cloud storage")
	}
	return c.offset, nil
}

func (c *CloudParquetFile) Read(p []byte) (n int, err error) {
	return 0, fmt.Errorf("read not supported for cloud storage")
}

func (c *CloudParquetFile) Write(p []byte) (n int, err error) {
	return c.cloudWriter.Write(p)
}

func (c *CloudParquetFile) Close() error {
	return c.cloudWriter.Close()
}
