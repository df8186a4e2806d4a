// Package loopconfig loads the demo runner settings from the environment.
package loopconfig

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the demo runner settings.
type Config struct {
	// TickInterval is the frame period for the loop runner.
	TickInterval time.Duration
	// LogLevel is the logrus level for the demo logger.
	LogLevel logrus.Level
	// LogFormat selects "text" (colored) or "json" output.
	LogFormat string
	// ScriptPath optionally points at a YAML action script; empty means the
	// built-in demo scene.
	ScriptPath string
}

// New loads the configuration, reading an optional .env file first.
//
// Environment variables:
//
//	TICK_MS     frame period in milliseconds (default 16)
//	LOG_LEVEL   logrus level name (default "info")
//	LOG_FORMAT  "text" or "json" (default "text")
//	SCRIPT_PATH path to a YAML action script (default unset)
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loopconfig: load .env: %w", err)
	}

	tickMS, err := strconv.Atoi(getEnvOrDefault("TICK_MS", "16"))
	if err != nil || tickMS <= 0 {
		return nil, fmt.Errorf("loopconfig: TICK_MS must be a positive integer")
	}

	level, err := logrus.ParseLevel(getEnvOrDefault("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("loopconfig: parse LOG_LEVEL: %w", err)
	}

	format := getEnvOrDefault("LOG_FORMAT", "text")
	if format != "text" && format != "json" {
		return nil, fmt.Errorf("loopconfig: LOG_FORMAT must be \"text\" or \"json\", got %q", format)
	}

	return &Config{
		TickInterval: time.Duration(tickMS) * time.Millisecond,
		LogLevel:     level,
		LogFormat:    format,
		ScriptPath:   os.Getenv("SCRIPT_PATH"),
	}, nil
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
