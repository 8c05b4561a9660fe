// Package config resolves runtime configuration for the smartstock
// binaries. Values come from defaults, then an optional YAML file, then
// SMARTSTOCK_* environment variables, and are validated before use.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config holds the settings shared by all binaries.
type Config struct {
	// DataFile is the raw sales dataset.
	DataFile string `yaml:"data_file" envconfig:"DATA_FILE" validate:"required"`
	// OutputDir is the root for generated datasets, reports and charts.
	OutputDir string `yaml:"output_dir" envconfig:"OUTPUT_DIR" validate:"required"`

	Dashboard DashboardConfig `yaml:"dashboard"`
	Forecast  ForecastConfig  `yaml:"forecast"`
}

// DashboardConfig holds the dashboard server settings.
type DashboardConfig struct {
	Addr string `yaml:"addr" envconfig:"SMARTSTOCK_DASHBOARD_ADDR" validate:"required"`
	// StockoutThreshold is the default turnover percentage above which
	// a record counts as stockout risk. Clients can override per
	// request.
	StockoutThreshold float64 `yaml:"stockout_threshold" envconfig:"SMARTSTOCK_STOCKOUT_THRESHOLD" validate:"gt=0,lte=1000"`
}

// ForecastConfig holds the regression settings.
type ForecastConfig struct {
	// Months is how many future months the monthly model projects.
	Months int `yaml:"months" envconfig:"SMARTSTOCK_FORECAST_MONTHS" validate:"min=1,max=24"`
	// TestFraction is the held-out share for the units model.
	TestFraction float64 `yaml:"test_fraction" envconfig:"SMARTSTOCK_TEST_FRACTION" validate:"gte=0,lt=1"`
	// Seed fixes the train/test shuffle for reproducible splits.
	Seed int64 `yaml:"seed" envconfig:"SMARTSTOCK_FORECAST_SEED"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DataFile:  "dataset/sales_data.csv",
		OutputDir: "output",
		Dashboard: DashboardConfig{
			Addr:              ":8080",
			StockoutThreshold: 70,
		},
		Forecast: ForecastConfig{
			Months:       3,
			TestFraction: 0.2,
			Seed:         42,
		},
	}
}

// Load builds the effective configuration. file may be empty; when set
// it must exist and parse. Environment variables win over the file.
func Load(file string) (Config, error) {
	cfg := Default()

	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", file, err)
		}
	}

	if err := envconfig.Process("smartstock", &cfg); err != nil {
		return Config{}, fmt.Errorf("process environment: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}
