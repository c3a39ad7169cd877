package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by Load
const (
	EnvLogLevel    = "GOSBEAM_LOG_LEVEL"
	EnvStep        = "GOSBEAM_STEP"
	EnvWorkers     = "GOSBEAM_WORKERS"
	EnvChartWidth  = "GOSBEAM_CHART_WIDTH"
	EnvChartHeight = "GOSBEAM_CHART_HEIGHT"
)

// Config holds the defaults for CLI flags
type Config struct {
	LogLevel    slog.Level
	Step        float64 // diagram sampling step, 0 = length/100
	Workers     int     // sampling goroutines, 0 = one per CPU
	ChartWidth  int
	ChartHeight int
}

// Default is used for anything the environment does not set
var Default = Config{
	LogLevel:    slog.LevelWarn,
	Step:        0,
	Workers:     0,
	ChartWidth:  60,
	ChartHeight: 12,
}

// Load reads an optional .env file in the working directory, then the
// environment.
func Load() (Config, error) {
	return LoadFile(".env")
}

// LoadFile is Load with an explicit dotenv path. A missing file is fine; a
// malformed one is an error. Variables already set in the environment win.
func LoadFile(path string) (Config, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from the given lookup function
func FromEnv(getenv func(string) string) (Config, error) {
	c := Default

	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		level, err := ParseLogLevel(v)
		if err != nil {
			return Config{}, err
		}
		c.LogLevel = level
	}

	if v := strings.TrimSpace(getenv(EnvStep)); v != "" {
		step, err := strconv.ParseFloat(v, 64)
		if err != nil || step < 0 {
			return Config{}, fmt.Errorf("invalid %s %q", EnvStep, v)
		}
		c.Step = step
	}

	for _, iv := range []struct {
		key string
		dst *int
		min int
	}{
		{EnvWorkers, &c.Workers, 0},
		{EnvChartWidth, &c.ChartWidth, 10},
		{EnvChartHeight, &c.ChartHeight, 3},
	} {
		v := strings.TrimSpace(getenv(iv.key))
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < iv.min {
			return Config{}, fmt.Errorf("invalid %s %q: want an integer >= %d", iv.key, v, iv.min)
		}
		*iv.dst = n
	}

	return c, nil
}

// ParseLogLevel parses debug, info, warn or error
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q", s)
	}
}
