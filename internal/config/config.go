package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the service configuration values.
type Config struct {
	Addr          string     // Listen address for the HTTP server
	GinMode       string     // Mode for the Gin framework (release, debug, test)
	LogLevel      slog.Level // Minimum level for the process logger
	MaxSessions   int        // Upper bound on live stepper sessions
	MaxExpansions int        // Per-search expansion budget, 0 for unbounded
	MaxCells      int        // Largest grid (rows*cols) accepted over HTTP
}

// Default returns the configuration used when no variables are set.
func Default() Config {
	return Config{
		Addr:        ":8080",
		GinMode:     "release",
		LogLevel:    slog.LevelInfo,
		MaxSessions: 64,
		MaxCells:    1_000_000,
	}
}

// Load reads the configuration from the environment, after loading the given
// .env files (or ".env" when none are given) if they exist.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		slog.Debug(".env file not loaded", slog.String("error", err.Error()))
	}

	cfg := Default()
	cfg.Addr = getEnvWithDefault("GRIDASTAR_ADDR", cfg.Addr)
	cfg.GinMode = getEnvWithDefault("GRIDASTAR_GIN_MODE", cfg.GinMode)

	level, err := parseLevel(getEnvWithDefault("GRIDASTAR_LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	cfg.LogLevel = level

	if cfg.MaxSessions, err = getEnvAsInt("GRIDASTAR_MAX_SESSIONS", cfg.MaxSessions); err != nil {
		return Config{}, err
	}
	if cfg.MaxExpansions, err = getEnvAsInt("GRIDASTAR_MAX_EXPANSIONS", cfg.MaxExpansions); err != nil {
		return Config{}, err
	}
	if cfg.MaxCells, err = getEnvAsInt("GRIDASTAR_MAX_CELLS", cfg.MaxCells); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves a non-negative integer environment variable or returns a default value if not set.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	if value < 0 {
		return 0, fmt.Errorf("environment variable %s must not be negative, got %d", key, value)
	}
	return value, nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("environment variable GRIDASTAR_LOG_LEVEL: %w", err)
	}
	return level, nil
}
