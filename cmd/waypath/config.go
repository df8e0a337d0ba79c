// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/waypath/search"
	"github.com/katalvlaran/waypath/topology"
)

const (
	defaultCellSize = 1.0
	defaultCacheTTL = 10 * time.Minute
	defaultLogLevel = "info"
)

// Config is the resolved CLI configuration. Environment variables
// (WAYPATH_*) supply defaults; flags override them.
type Config struct {
	TopologyPath  string
	Grid          *topology.GridSpec
	Mode          search.Mode
	Start         string
	Goal          string
	MaxExpansions int
	Seed          int64
	SeedSet       bool
	RedisAddr     string
	CacheTTL      time.Duration
	MetricsAddr   string
	MCP           bool
	LogLevel      slog.Level
}

// LoadConfig parses args on top of the WAYPATH_* environment.
func LoadConfig(args []string) (Config, error) {
	env, err := readEnv()
	if err != nil {
		return Config{}, err
	}

	flagSet := flag.NewFlagSet("waypath", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagTopology := flagSet.String("topology", env.topology, "path to a GeoJSON FeatureCollection")
	flagColumns := flagSet.Int("columns", env.columns, "grid columns (cells); enables grid mode")
	flagRows := flagSet.Int("rows", env.rows, "grid rows (cells)")
	flagCellSize := flagSet.Float64("cell-size", env.cellSize, "grid cell size")
	flagMode := flagSet.String("mode", env.mode, "search mode: astar|dijkstra")
	flagStart := flagSet.String("start", env.start, "start node ID")
	flagGoal := flagSet.String("goal", env.goal, "goal node ID (random when empty)")
	flagMaxExp := flagSet.Int("max-expansions", env.maxExpansions, "expansion bound per search, 0 for none")
	flagSeed := flagSet.String("seed", env.seed, "random seed (time-seeded when empty)")
	flagRedis := flagSet.String("redis-addr", env.redisAddr, "Redis address for the shared path cache")
	flagTTL := flagSet.Duration("cache-ttl", env.cacheTTL, "Redis path cache TTL")
	flagMetrics := flagSet.String("metrics-addr", env.metricsAddr, "listen address for /metrics")
	flagMCP := flagSet.Bool("mcp", env.mcp, "serve MCP on stdio instead of a one-shot query")
	flagLogLevel := flagSet.String("log-level", env.logLevel, "debug|info|warn|error")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			flagSet.SetOutput(os.Stdout)
			flagSet.PrintDefaults()
		}
		return Config{}, err
	}

	mode, err := search.ParseMode(*flagMode)
	if err != nil {
		return Config{}, fmt.Errorf("invalid mode: %w", err)
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(*flagLogLevel)); err != nil {
		return Config{}, fmt.Errorf("invalid log level: %w", err)
	}

	cfg := Config{
		TopologyPath:  strings.TrimSpace(*flagTopology),
		Mode:          mode,
		Start:         strings.TrimSpace(*flagStart),
		Goal:          strings.TrimSpace(*flagGoal),
		MaxExpansions: *flagMaxExp,
		RedisAddr:     strings.TrimSpace(*flagRedis),
		CacheTTL:      *flagTTL,
		MetricsAddr:   strings.TrimSpace(*flagMetrics),
		MCP:           *flagMCP,
		LogLevel:      level,
	}

	if s := strings.TrimSpace(*flagSeed); s != "" {
		cfg.Seed, err = strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid seed: %w", err)
		}
		cfg.SeedSet = true
	}
	if *flagColumns != 0 || *flagRows != 0 {
		cfg.Grid = &topology.GridSpec{Columns: *flagColumns, Rows: *flagRows, CellSize: *flagCellSize}
	}

	switch {
	case cfg.Grid != nil && cfg.TopologyPath != "":
		return Config{}, errors.New("topology and columns/rows are mutually exclusive")
	case cfg.Grid == nil && cfg.TopologyPath == "":
		return Config{}, errors.New("either topology or columns/rows is required")
	case cfg.MaxExpansions < 0:
		return Config{}, errors.New("max expansions must not be negative")
	case cfg.CacheTTL < 0:
		return Config{}, errors.New("cache ttl must not be negative")
	case !cfg.MCP && cfg.Start == "":
		return Config{}, errors.New("start is required unless mcp is set")
	}

	return cfg, nil
}

// envDefaults holds raw WAYPATH_* values, already typed for the flag set.
type envDefaults struct {
	topology      string
	columns       int
	rows          int
	cellSize      float64
	mode          string
	start         string
	goal          string
	maxExpansions int
	seed          string
	redisAddr     string
	cacheTTL      time.Duration
	metricsAddr   string
	mcp           bool
	logLevel      string
}

func readEnv() (envDefaults, error) {
	env := envDefaults{
		topology:    os.Getenv("WAYPATH_TOPOLOGY"),
		cellSize:    defaultCellSize,
		mode:        envOrDefault("WAYPATH_MODE", search.ModeAStar.String()),
		start:       os.Getenv("WAYPATH_START"),
		goal:        os.Getenv("WAYPATH_GOAL"),
		seed:        os.Getenv("WAYPATH_SEED"),
		redisAddr:   os.Getenv("WAYPATH_REDIS_ADDR"),
		cacheTTL:    defaultCacheTTL,
		metricsAddr: os.Getenv("WAYPATH_METRICS_ADDR"),
		logLevel:    envOrDefault("WAYPATH_LOG_LEVEL", defaultLogLevel),
	}

	var err error
	if env.columns, err = envInt("WAYPATH_COLUMNS"); err != nil {
		return envDefaults{}, err
	}
	if env.rows, err = envInt("WAYPATH_ROWS"); err != nil {
		return envDefaults{}, err
	}
	if env.maxExpansions, err = envInt("WAYPATH_MAX_EXPANSIONS"); err != nil {
		return envDefaults{}, err
	}
	if v := os.Getenv("WAYPATH_CELL_SIZE"); v != "" {
		if env.cellSize, err = strconv.ParseFloat(v, 64); err != nil {
			return envDefaults{}, fmt.Errorf("invalid WAYPATH_CELL_SIZE: %w", err)
		}
	}
	if v := os.Getenv("WAYPATH_CACHE_TTL"); v != "" {
		if env.cacheTTL, err = time.ParseDuration(v); err != nil {
			return envDefaults{}, fmt.Errorf("invalid WAYPATH_CACHE_TTL: %w", err)
		}
	}
	if v := os.Getenv("WAYPATH_MCP"); v != "" {
		if env.mcp, err = strconv.ParseBool(v); err != nil {
			return envDefaults{}, fmt.Errorf("invalid WAYPATH_MCP: %w", err)
		}
	}
	return env, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt(key string) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
