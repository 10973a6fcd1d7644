package models

import (
	"fmt"

	"github.com/spf13/viper"
)

// ColumnMapping maps POS export headers onto ItemInput fields. Empty values
// fall back to the default header names used by the bundled templates.
type ColumnMapping struct {
	ItemID       string `mapstructure:"item_id"`
	ItemName     string `mapstructure:"item_name"`
	Category     string `mapstructure:"category"`
	QuantitySold string `mapstructure:"quantity_sold"`
	NetSales     string `mapstructure:"net_sales"`
	UnitFoodCost string `mapstructure:"unit_food_cost"`
	CostSource   string `mapstructure:"cost_source"`
	IsAnchor     string `mapstructure:"is_anchor"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"` // currently only "s3"
	Region     string `mapstructure:"region"`
	BucketName string `mapstructure:"bucket_name"`
}

type Config struct {
	InputFile   string `mapstructure:"input_file"`
	InputFolder string `mapstructure:"input_folder"`
	Demo        bool   `mapstructure:"demo"`
	DemoItems   int    `mapstructure:"demo_items"`

	OutputFormat      string `mapstructure:"output_format"` // console, csv, json, parquet, postgres, kafka
	OutputPath        string `mapstructure:"output_path"`
	OutputFolder      string `mapstructure:"output_folder"`
	OutputDestination string `mapstructure:"output_destination"` // local or s3

	KafkaBrokerList string `mapstructure:"kafka_broker_list"`
	ItemsTopic      string `mapstructure:"items_topic"`
	SummaryTopic    string `mapstructure:"summary_topic"`

	Database     DatabaseConfig     `mapstructure:"database"`
	CloudStorage CloudStorageConfig `mapstructure:"cloud_storage"`

	Columns ColumnMapping     `mapstructure:"columns"`
	Scoring SettingsOverrides `mapstructure:"scoring"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Default config location
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	viper.SetDefault("output_format", "console")
	viper.SetDefault("output_destination", "local")
	viper.SetDefault("items_topic", "menuscope.items")
	viper.SetDefault("summary_topic", "menuscope.summary")
	viper.SetDefault("demo_items", 24)

	if err := viper.ReadInConfig(); err != nil {
		// a missing default config file is fine, flags cover everything
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	// scoring settings are validated here; the engine assumes they are sane
	if err := config.Scoring.Resolve().Validate(); err != nil {
		return nil, fmt.Errorf("invalid scoring settings: %w", err)
	}

	return &config, nil
}
