package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/lucsky/cuid"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/plateiq/menuscope/internal/factories"
	"github.com/plateiq/menuscope/internal/ingest"
	"github.com/plateiq/menuscope/internal/models"
	"github.com/plateiq/menuscope/internal/output"
	"github.com/plateiq/menuscope/internal/scoring"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "menuscope",
	Short: "Menu engineering analytics for weekly restaurant sales data",
	Long:  `menuscope ingests a week of per-item sales and cost data from a POS export, classifies every menu item into a performance quadrant, and recommends actions with guardrailed price suggestions.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		if err := run(cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is examples/config.json)")

	rootCmd.Flags().String("input", "", "Weekly sales CSV to score")
	rootCmd.Flags().String("input-folder", "", "Folder of weekly sales CSVs, each scored as its own run")
	rootCmd.Flags().Bool("demo", false, "Score a generated demo week instead of a file")
	rootCmd.Flags().Int("demo-items", 24, "Number of menu items in the demo week")
	rootCmd.Flags().Int64("seed", 42, "Random seed for demo data")
	rootCmd.Flags().String("output-format", "console", "Output format: console, csv, json, parquet, postgres, kafka")
	rootCmd.Flags().String("output-path", "", "Base path for file outputs")
	rootCmd.Flags().String("output-folder", "menuscope", "Folder name under the output path")
	rootCmd.Flags().String("output-destination", "local", "Where file outputs land: local or s3")
	rootCmd.Flags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")

	// flag names use dashes, config keys use underscores
	viper.BindPFlag("input_file", rootCmd.Flags().Lookup("input"))
	viper.BindPFlag("input_folder", rootCmd.Flags().Lookup("input-folder"))
	viper.BindPFlag("demo", rootCmd.Flags().Lookup("demo"))
	viper.BindPFlag("demo_items", rootCmd.Flags().Lookup("demo-items"))
	viper.BindPFlag("seed", rootCmd.Flags().Lookup("seed"))
	viper.BindPFlag("output_format", rootCmd.Flags().Lookup("output-format"))
	viper.BindPFlag("output_path", rootCmd.Flags().Lookup("output-path"))
	viper.BindPFlag("output_folder", rootCmd.Flags().Lookup("output-folder"))
	viper.BindPFlag("output_destination", rootCmd.Flags().Lookup("output-destination"))
	viper.BindPFlag("kafka_broker_list", rootCmd.Flags().Lookup("kafka-broker-list"))
}

func run(cfg *models.Config) error {
	writer, err := output.ForConfig(cfg)
	if err != nil {
		return err
	}
	defer writer.Close()

	switch {
	case cfg.Demo:
		factory := factories.NewSalesWeekFactory(viper.GetInt64("seed"))
		items := factory.CreateSalesWeek(cfg.DemoItems)
		return scoreAndWrite("demo", items, cfg, writer)
	case cfg.InputFolder != "":
		return runFolder(cfg, writer)
	case cfg.InputFile != "":
		items, err := ingest.ReadSalesCSV(cfg.InputFile, cfg.Columns)
		if err != nil {
			return err
		}
		return scoreAndWrite(cfg.InputFile, items, cfg, writer)
	default:
		return fmt.Errorf("nothing to score: pass --input, --input-folder or --demo")
	}
}

// runFolder scores every CSV in the folder as an independent run. Runs
// share nothing, so a failure in one file only skips that file.
func runFolder(cfg *models.Config, writer output.ResultWriter) error {
	paths, err := filepath.Glob(filepath.Join(cfg.InputFolder, "*.csv"))
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no CSV files found in %s", cfg.InputFolder)
	}

	bar := progressbar.Default(int64(len(paths)), "scoring")
	failed := 0
	for _, path := range paths {
		items, err := ingest.ReadSalesCSV(path, cfg.Columns)
		if err == nil {
			err = scoreAndWrite(path, items, cfg, writer)
		}
		if err != nil {
			log.Printf("Skipping %s: %v", path, err)
			failed++
		}
		bar.Add(1)
	}

	if failed == len(paths) {
		return fmt.Errorf("all %d input files failed", failed)
	}
	return nil
}

func scoreAndWrite(source string, items []models.ItemInput, cfg *models.Config, writer output.ResultWriter) error {
	runID := cuid.New()

	scored := scoring.ScoreItems(items, &cfg.Scoring)
	result := scoring.GenerateScoringResult(scored)

	log.Printf("Run %s: scored %d of %d items from %s", runID, len(scored), len(items), source)
	return writer.WriteResult(runID, result)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
