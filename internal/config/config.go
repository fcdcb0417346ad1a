// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/pkordes/trip-journal/internal/domain"
)

// dateLayout is the format of TRIP_START and TRIP_END.
const dateLayout = "2006-01-02"

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// LogFile, when set, receives a copy of every log line in addition to stdout.
	LogFile string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"].
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// DataFile is the JSON file holding every journal entry.
	// Defaults to "trip-data.json".
	DataFile string

	// NotesFile is the markdown document that accumulates learned preferences.
	// Defaults to "claude.md".
	NotesFile string

	// Trip is the fixed trip window progress is counted against.
	// Defaults to 2026-01-12 .. 2026-01-20; set TRIP_START / TRIP_END (YYYY-MM-DD) to override.
	Trip domain.TripWindow

	// MetricsEnabled exposes Prometheus metrics at /metrics. Defaults to true.
	MetricsEnabled bool

	// MaxBodyBytes caps request body size. Defaults to 64 KiB.
	MaxBodyBytes int64
}

// Load reads configuration from environment variables and returns a Config.
// If CONFIG_FILE names a YAML file, its keys (port, log_level, data_file, ...)
// supply values for variables that are not set in the environment.
// Returns an error describing every invalid value.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("port", "8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("cors_origins", "http://localhost:5173")
	v.SetDefault("data_file", "trip-data.json")
	v.SetDefault("notes_file", "claude.md")
	v.SetDefault("trip_start", domain.DefaultTripWindow.Start.Format(dateLayout))
	v.SetDefault("trip_end", domain.DefaultTripWindow.End.Format(dateLayout))
	v.SetDefault("metrics_enabled", true)
	v.SetDefault("max_body_bytes", 64<<10)
	v.AutomaticEnv()

	if path := v.GetString("config_file"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	cfg := Config{
		Port:           v.GetString("port"),
		LogLevel:       v.GetString("log_level"),
		LogFile:        v.GetString("log_file"),
		CORSOrigins:    splitCSV(v.GetString("cors_origins")),
		DataFile:       v.GetString("data_file"),
		NotesFile:      v.GetString("notes_file"),
		MetricsEnabled: v.GetBool("metrics_enabled"),
		MaxBodyBytes:   v.GetInt64("max_body_bytes"),
	}

	var problems []string

	start, err := time.Parse(dateLayout, v.GetString("trip_start"))
	if err != nil {
		problems = append(problems, "TRIP_START must be YYYY-MM-DD")
	}
	end, err := time.Parse(dateLayout, v.GetString("trip_end"))
	if err != nil {
		problems = append(problems, "TRIP_END must be YYYY-MM-DD")
	}
	if len(problems) == 0 && end.Before(start) {
		problems = append(problems, "TRIP_END must not be before TRIP_START")
	}
	cfg.Trip = domain.TripWindow{Start: start, End: end}

	if strings.TrimSpace(cfg.DataFile) == "" {
		problems = append(problems, "DATA_FILE must not be empty")
	}
	if cfg.MaxBodyBytes <= 0 {
		problems = append(problems, "MAX_BODY_BYTES must be positive")
	}

	if len(problems) > 0 {
		return Config{}, fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}

	return cfg, nil
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
