// SPDX-License-Identifier: MIT

// Command waypath loads a navigation topology and either answers one path
// query as JSON or serves the PathFinder over MCP on stdio.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/katalvlaran/waypath/mcpserver"
	"github.com/katalvlaran/waypath/pathcache"
	"github.com/katalvlaran/waypath/pathfinder"
	"github.com/katalvlaran/waypath/topology"
)

const version = "0.1.0"

func main() {
	cfg, err := LoadConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "waypath: %v\n", err)
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, os.Stdout); err != nil {
		logger.Error("waypath_failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config, logger *slog.Logger, out io.Writer) error {
	topo, err := loadTopology(cfg)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	opts := []pathfinder.Option{
		pathfinder.WithMode(cfg.Mode),
		pathfinder.WithMaxExpansions(cfg.MaxExpansions),
		pathfinder.WithLogger(logger),
		pathfinder.WithRegisterer(reg),
	}
	if cfg.SeedSet {
		opts = append(opts, pathfinder.WithSeed(cfg.Seed))
	}
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer client.Close()
		opts = append(opts, pathfinder.WithCache(pathcache.NewRedis(client, pathcache.WithTTL(cfg.CacheTTL))))
		logger.Info("path_cache_redis", slog.String("addr", cfg.RedisAddr))
	} else {
		opts = append(opts, pathfinder.WithCache(pathcache.NewMemory(0)))
	}

	pf := pathfinder.New(opts...)
	if err := pf.Build(ctx, topo); err != nil {
		return err
	}

	if cfg.MetricsAddr != "" {
		srv := metricsServer(cfg.MetricsAddr, reg)
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics_server_failed", slog.Any("error", err))
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
		logger.Info("metrics_server_started", slog.String("addr", cfg.MetricsAddr))
	}

	if cfg.MCP {
		logger.Info("mcp_server_started")
		return mcpserver.New(pf, version).Serve()
	}

	p, err := pf.FindPath(ctx, cfg.Start, cfg.Goal)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

func loadTopology(cfg Config) (topology.Topology, error) {
	if cfg.Grid != nil {
		return topology.Topology{Grid: cfg.Grid}, nil
	}
	f, err := os.Open(cfg.TopologyPath)
	if err != nil {
		return topology.Topology{}, fmt.Errorf("open topology: %w", err)
	}
	defer f.Close()

	return topology.DecodeGeoJSON(f)
}

func metricsServer(addr string, reg *prometheus.Registry) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	return &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  15 * time.Second,
	}
}
