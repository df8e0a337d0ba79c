// SPDX-License-Identifier: MIT

package pathfinder

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/waypath/pathcache"
	"github.com/katalvlaran/waypath/search"
)

// Option customizes a PathFinder. Option constructors panic on meaningless
// input; New never fails.
type Option func(*config)

// config holds the resolved options of one PathFinder.
type config struct {
	mode          search.Mode
	maxExpansions int
	rng           *rand.Rand
	logger        *slog.Logger
	registerer    prometheus.Registerer
	tracer        trace.TracerProvider
	cache         pathcache.Cache
}

// newConfig applies opts over the defaults: A*, no expansion bound,
// time-seeded RNG, discard logger, private registry, global tracer, no cache.
func newConfig(opts ...Option) config {
	cfg := config{
		mode:   search.ModeAStar,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.registerer == nil {
		cfg.registerer = prometheus.NewRegistry()
	}
	if cfg.tracer == nil {
		cfg.tracer = otel.GetTracerProvider()
	}
	return cfg
}

// WithMode sets the default search strategy; FindPath callers may still
// override it per call with search.WithMode.
func WithMode(m search.Mode) Option {
	if m != search.ModeAStar && m != search.ModeDijkstra {
		panic(fmt.Sprintf("pathfinder: WithMode(%d)", int(m)))
	}
	return func(c *config) { c.mode = m }
}

// WithMaxExpansions sets the default expansion bound (0 = unlimited).
// Panics if n < 0.
func WithMaxExpansions(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("pathfinder: WithMaxExpansions(%d)", n))
	}
	return func(c *config) { c.maxExpansions = n }
}

// WithSeed makes random goals reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies the random source for random goals. Panics on nil.
// The PathFinder serialises access to it.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("pathfinder: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("pathfinder: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithRegisterer registers the PathFinder metrics with r. Panics on nil.
// Two PathFinders must not share a registerer.
func WithRegisterer(r prometheus.Registerer) Option {
	if r == nil {
		panic("pathfinder: WithRegisterer(nil)")
	}
	return func(c *config) { c.registerer = r }
}

// WithTracerProvider sets the OpenTelemetry tracer provider. Panics on nil.
func WithTracerProvider(tp trace.TracerProvider) Option {
	if tp == nil {
		panic("pathfinder: WithTracerProvider(nil)")
	}
	return func(c *config) { c.tracer = tp }
}

// WithCache memoises searches with an explicit goal. Panics on nil.
func WithCache(c pathcache.Cache) Option {
	if c == nil {
		panic("pathfinder: WithCache(nil)")
	}
	return func(cfg *config) { cfg.cache = c }
}
