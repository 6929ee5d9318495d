// Package config reads the run configuration from the environment with
// documented defaults, so the same pipeline can target different folder sets
// without code changes.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config aggregates application configuration values.
type Config struct {
	Data    DataConfig
	Report  ReportConfig
	Chart   ChartConfig
	Logging LoggingConfig
}

// DataConfig locates the dataset folders and the files inside each.
type DataConfig struct {
	Root        string
	Folders     []string
	UsersFile   string
	OrdersFile  string
	CatalogFile string
}

// ReportConfig governs the rendered document.
type ReportConfig struct {
	OutputPath string
}

// ChartConfig sets the rendered figure size in pixels.
type ChartConfig struct {
	Width  int
	Height int
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string
	Format        string // text|json
	IncludeCaller bool
}

const (
	defaultDataRoot      = "."
	defaultFolders       = "DATA1,DATA2,DATA3"
	defaultUsersFile     = "users.csv"
	defaultOrdersFile    = "orders.parquet"
	defaultCatalogFile   = "books.yaml"
	defaultOutputPath    = "index.html"
	defaultChartWidth    = 900
	defaultChartHeight   = 360
	defaultLoggingLevel  = "info"
	defaultLoggingFormat = "text"
)

// Load reads configuration from environment variables, applying defaults.
// A .env file in the working directory is honoured when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Data: DataConfig{
			Root:        valueOrDefault("DATA_ROOT", defaultDataRoot),
			Folders:     splitList(valueOrDefault("DATA_FOLDERS", defaultFolders)),
			UsersFile:   valueOrDefault("USERS_FILE", defaultUsersFile),
			OrdersFile:  valueOrDefault("ORDERS_FILE", defaultOrdersFile),
			CatalogFile: valueOrDefault("CATALOG_FILE", defaultCatalogFile),
		},
		Report: ReportConfig{
			OutputPath: valueOrDefault("REPORT_OUTPUT", defaultOutputPath),
		},
		Chart: ChartConfig{
			Width:  parseIntWithDefault("CHART_WIDTH", defaultChartWidth),
			Height: parseIntWithDefault("CHART_HEIGHT", defaultChartHeight),
		},
		Logging: LoggingConfig{
			Level:         valueOrDefault("LOG_LEVEL", defaultLoggingLevel),
			Format:        valueOrDefault("LOG_FORMAT", defaultLoggingFormat),
			IncludeCaller: parseBoolWithDefault("LOG_INCLUDE_CALLER", false),
		},
	}

	if len(cfg.Data.Folders) == 0 {
		return Config{}, fmt.Errorf("DATA_FOLDERS resolves to an empty folder list")
	}
	if cfg.Chart.Width <= 0 || cfg.Chart.Height <= 0 {
		return Config{}, fmt.Errorf("chart dimensions %dx%d are out of range", cfg.Chart.Width, cfg.Chart.Height)
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return fallback
		}
		return val
	}
	return fallback
}

func parseIntWithDefault(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if val, err := strconv.Atoi(v); err == nil {
			return val
		}
	}
	return fallback
}
