// SPDX-License-Identifier: MIT

package pathfinder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/waypath/bfs"
	"github.com/katalvlaran/waypath/builder"
	"github.com/katalvlaran/waypath/core"
	"github.com/katalvlaran/waypath/gridgraph"
	"github.com/katalvlaran/waypath/pathcache"
	"github.com/katalvlaran/waypath/search"
	"github.com/katalvlaran/waypath/topology"
	"github.com/katalvlaran/waypath/waypoint"
)

const tracerName = "github.com/katalvlaran/waypath/pathfinder"

var (
	// ErrUninitialized indicates a query or Rebuild before a successful Build.
	ErrUninitialized = errors.New("pathfinder: graph not built")
	// ErrAlreadyBuilt indicates a second Build; use Rebuild instead.
	ErrAlreadyBuilt = errors.New("pathfinder: graph already built")
	// ErrInvalidPoint indicates a query position with a NaN or infinite
	// coordinate.
	ErrInvalidPoint = errors.New("pathfinder: point coordinates must be finite")
)

// Path is a search result tied to the snapshot that produced it.
type Path struct {
	Nodes     []string       `json:"nodes"`
	Positions orb.LineString `json:"positions"`
	Cost      float64        `json:"cost"`
	Expanded  int            `json:"expanded"`
	Mode      search.Mode    `json:"mode"`
	Snapshot  uuid.UUID      `json:"snapshot"`
	Cached    bool           `json:"cached"`
}

// snapshot is one immutable generation of the navigation data.
type snapshot struct {
	graph   *core.Graph
	index   *waypoint.Index
	lattice *gridgraph.Lattice // nil for general topologies

	components     map[string]int
	componentCount int
}

// PathFinder serves queries against the current snapshot.
type PathFinder struct {
	cfg     config
	metrics *metrics
	tracer  trace.Tracer

	mu    sync.RWMutex
	snap  *snapshot
	state atomic.Int32

	rngMu sync.Mutex
}

// New returns an Uninitialized PathFinder.
func New(opts ...Option) *PathFinder {
	cfg := newConfig(opts...)
	return &PathFinder{
		cfg:     cfg,
		metrics: newMetrics(cfg.registerer),
		tracer:  cfg.tracer.Tracer(tracerName),
	}
}

// State returns the lifecycle phase without locking.
func (pf *PathFinder) State() State { return State(pf.state.Load()) }

func (pf *PathFinder) setState(s State) { pf.state.Store(int32(s)) }

// Build creates the first snapshot from topo.
// Errors from the builder (builder.ErrConfiguration, builder.ErrInvalidNodeReference)
// are returned unchanged in the chain and leave the PathFinder Uninitialized.
func (pf *PathFinder) Build(ctx context.Context, topo topology.Topology) error {
	ctx, span := pf.tracer.Start(ctx, "pathfinder.Build")
	defer span.End()

	pf.mu.Lock()
	defer pf.mu.Unlock()

	if pf.snap != nil {
		span.RecordError(ErrAlreadyBuilt)
		span.SetStatus(codes.Error, "already built")
		return ErrAlreadyBuilt
	}
	snap, err := pf.load(ctx, topo, "build")
	if err != nil {
		pf.setState(StateUninitialized)
		span.RecordError(err)
		span.SetStatus(codes.Error, "build failed")
		return err
	}
	pf.snap = snap
	pf.setState(StateReady)
	span.SetAttributes(attribute.String("snapshot", snap.graph.ID().String()))
	span.SetStatus(codes.Ok, "")
	return nil
}

// Rebuild replaces the serving snapshot with one built from topo.
// Queries arriving meanwhile wait. On failure the previous snapshot keeps
// serving and the error is returned.
func (pf *PathFinder) Rebuild(ctx context.Context, topo topology.Topology) error {
	ctx, span := pf.tracer.Start(ctx, "pathfinder.Rebuild")
	defer span.End()

	pf.mu.Lock()
	defer pf.mu.Unlock()

	if pf.snap == nil {
		span.RecordError(ErrUninitialized)
		span.SetStatus(codes.Error, "uninitialized")
		return ErrUninitialized
	}

	pf.setState(StateRebuilding)
	snap, err := pf.load(ctx, topo, "rebuild")
	if err != nil {
		pf.setState(StateReady)
		pf.cfg.logger.Error("graph_rebuild_failed",
			slog.String("serving", pf.snap.graph.ID().String()),
			slog.Any("error", err),
		)
		span.RecordError(err)
		span.SetStatus(codes.Error, "rebuild failed")
		return err
	}
	pf.snap = snap
	pf.setState(StateReady)
	span.SetAttributes(attribute.String("snapshot", snap.graph.ID().String()))
	span.SetStatus(codes.Ok, "")
	return nil
}

// load builds graph and index for topo. Caller holds the write lock.
func (pf *PathFinder) load(ctx context.Context, topo topology.Topology, op string) (*snapshot, error) {
	if err := ctx.Err(); err != nil {
		pf.metrics.builds.WithLabelValues(buildFailure).Inc()
		return nil, err
	}

	g, err := topo.Build(builder.WithSnapshotID(topo.SnapshotID()))
	if err != nil {
		pf.metrics.builds.WithLabelValues(buildFailure).Inc()
		return nil, fmt.Errorf("pathfinder: %s: %w", op, err)
	}
	if pf.snap == nil {
		pf.setState(StateBuilt)
	}

	idx, err := waypoint.NewIndex(g)
	if err != nil {
		pf.metrics.builds.WithLabelValues(buildFailure).Inc()
		return nil, fmt.Errorf("pathfinder: %s: %w", op, err)
	}

	g.Freeze()
	snap := &snapshot{graph: g, index: idx}
	snap.components, snap.componentCount = bfs.Components(g)
	if topo.IsGrid() {
		// Geometry was already validated by topo.Build.
		snap.lattice, _ = gridgraph.NewLattice(topo.Grid.Columns, topo.Grid.Rows, topo.Grid.CellSize)
	}

	pf.metrics.builds.WithLabelValues(buildSuccess).Inc()
	pf.metrics.nodes.Set(float64(g.NodeCount()))
	pf.metrics.components.Set(float64(snap.componentCount))
	pf.cfg.logger.Info("graph_built",
		slog.String("op", op),
		slog.String("snapshot", g.ID().String()),
		slog.String("metric", g.Metric().String()),
		slog.Int("nodes", g.NodeCount()),
		slog.Int("edges", g.EdgeCount()),
		slog.Int("components", snap.componentCount),
	)
	return snap, nil
}

// current returns the serving snapshot. Caller holds the read lock.
func (pf *PathFinder) current() (*snapshot, error) {
	if pf.snap == nil {
		return nil, ErrUninitialized
	}
	return pf.snap, nil
}

// Graph returns the serving graph, or nil before Build. The graph is frozen
// before publication, so AddNode and AddEdge on it fail with core.ErrFrozen.
func (pf *PathFinder) Graph() *core.Graph {
	pf.mu.RLock()
	defer pf.mu.RUnlock()
	if pf.snap == nil {
		return nil
	}
	return pf.snap.graph
}

// FindPath searches from start to goal on the serving snapshot.
// An empty goal picks a random node other than start (see waypoint.Index.Random).
// opts override the configured mode and expansion bound for this call.
// An unreachable goal yields an error wrapping search.ErrPathNotFound.
func (pf *PathFinder) FindPath(ctx context.Context, start, goal string, opts ...search.Option) (Path, error) {
	pf.mu.RLock()
	defer pf.mu.RUnlock()

	snap, err := pf.current()
	if err != nil {
		return Path{}, err
	}
	return pf.find(ctx, snap, start, goal, opts)
}

// FindPathBetween snaps two world positions to nodes and searches between
// them. Lattices snap by rounding to the nearest grid coordinate; general
// graphs use the nearest node.
func (pf *PathFinder) FindPathBetween(ctx context.Context, from, to orb.Point, opts ...search.Option) (Path, error) {
	pf.mu.RLock()
	defer pf.mu.RUnlock()

	snap, err := pf.current()
	if err != nil {
		return Path{}, err
	}
	start, err := snap.nodeNear(from)
	if err != nil {
		return Path{}, err
	}
	goal, err := snap.nodeNear(to)
	if err != nil {
		return Path{}, err
	}
	return pf.find(ctx, snap, start, goal, opts)
}

// separated reports whether start and goal both exist but cannot reach each
// other. Unknown IDs are left to search for its validation errors.
func (s *snapshot) separated(start, goal string) bool {
	ca, okA := s.components[start]
	cb, okB := s.components[goal]
	return okA && okB && ca != cb
}

func (s *snapshot) nodeNear(p orb.Point) (string, error) {
	if err := checkPoint(p); err != nil {
		return "", err
	}
	if s.lattice != nil {
		return s.lattice.SnapID(p)
	}
	return s.index.Nearest(p).ID, nil
}

func checkPoint(p orb.Point) error {
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %v", ErrInvalidPoint, p)
		}
	}
	return nil
}

// find runs one search. Caller holds the read lock.
func (pf *PathFinder) find(ctx context.Context, snap *snapshot, start, goal string, opts []search.Option) (Path, error) {
	so := search.Options{Mode: pf.cfg.mode, MaxExpansions: pf.cfg.maxExpansions}
	for _, opt := range opts {
		opt(&so)
	}
	sopts := []search.Option{search.WithMode(so.Mode), search.WithMaxExpansions(so.MaxExpansions)}
	mode := so.Mode.String()

	explicit := goal != ""
	if !explicit && start != "" {
		goal = pf.randomGoal(snap, start)
	}

	ctx, span := pf.tracer.Start(ctx, "pathfinder.FindPath",
		trace.WithAttributes(
			attribute.String("start", start),
			attribute.String("goal", goal),
			attribute.String("mode", mode),
			attribute.Bool("random_goal", !explicit),
		),
	)
	defer span.End()

	snapID := snap.graph.ID()
	var key string
	if explicit && pf.cfg.cache != nil {
		key = pathcache.Key(snapID, so.Mode, start, goal)
		if res, err := pf.cfg.cache.Get(ctx, key); err == nil {
			pf.metrics.cacheHits.Inc()
			pf.metrics.requests.WithLabelValues(mode, resultFound).Inc()
			span.SetAttributes(attribute.Bool("cache_hit", true))
			span.SetStatus(codes.Ok, "cache hit")
			p := toPath(res, snapID)
			p.Cached = true
			return p, nil
		} else if !errors.Is(err, pathcache.ErrCacheMiss) {
			pf.cfg.logger.Warn("path_cache_get_failed", slog.String("key", key), slog.Any("error", err))
		}
	}

	began := time.Now()
	var res search.Result
	var err error
	if snap.separated(start, goal) {
		err = fmt.Errorf("%w: %q and %q lie in different components", search.ErrPathNotFound, start, goal)
	} else {
		res, err = search.Search(ctx, snap.graph, start, goal, sopts...)
	}
	pf.metrics.duration.WithLabelValues(mode).Observe(time.Since(began).Seconds())

	if err != nil {
		outcome := classify(err)
		pf.metrics.requests.WithLabelValues(mode, outcome).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		if outcome == resultNotFound {
			pf.cfg.logger.Warn("path_not_found",
				slog.String("start", start),
				slog.String("goal", goal),
				slog.String("mode", mode),
			)
		}
		return Path{}, fmt.Errorf("pathfinder: %w", err)
	}

	pf.metrics.requests.WithLabelValues(mode, resultFound).Inc()
	pf.metrics.expanded.Observe(float64(res.Expanded))
	span.SetAttributes(
		attribute.Int("length", len(res.Nodes)),
		attribute.Float64("cost", res.Cost),
		attribute.Int("expanded", res.Expanded),
	)
	span.SetStatus(codes.Ok, "")
	pf.cfg.logger.Debug("path_found",
		slog.String("start", start),
		slog.String("goal", goal),
		slog.String("mode", mode),
		slog.Int("length", len(res.Nodes)),
		slog.Float64("cost", res.Cost),
		slog.Int("expanded", res.Expanded),
	)

	if key != "" {
		if err := pf.cfg.cache.Set(ctx, key, res); err != nil {
			pf.cfg.logger.Warn("path_cache_set_failed", slog.String("key", key), slog.Any("error", err))
		}
	}
	return toPath(res, snapID), nil
}

func classify(err error) string {
	switch {
	case errors.Is(err, search.ErrPathNotFound):
		return resultNotFound
	case errors.Is(err, search.ErrExpansionLimit):
		return resultLimit
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return resultCancelled
	default:
		return resultError
	}
}

func toPath(res search.Result, snap uuid.UUID) Path {
	return Path{
		Nodes:     res.Nodes,
		Positions: res.Positions,
		Cost:      res.Cost,
		Expanded:  res.Expanded,
		Mode:      res.Mode,
		Snapshot:  snap,
	}
}

// randomGoal draws a goal other than start under the RNG mutex.
func (pf *PathFinder) randomGoal(snap *snapshot, start string) string {
	pf.rngMu.Lock()
	defer pf.rngMu.Unlock()
	return snap.index.Random(start, pf.cfg.rng).ID
}

// Nearest returns the node closest to p.
func (pf *PathFinder) Nearest(p orb.Point) (core.Node, error) {
	pf.mu.RLock()
	defer pf.mu.RUnlock()

	snap, err := pf.current()
	if err != nil {
		return core.Node{}, err
	}
	if err := checkPoint(p); err != nil {
		return core.Node{}, err
	}
	return snap.index.Nearest(p), nil
}

// RandomWaypoint returns a random node, substituting the next node when the
// draw equals excluding.
func (pf *PathFinder) RandomWaypoint(excluding string) (core.Node, error) {
	pf.mu.RLock()
	defer pf.mu.RUnlock()

	snap, err := pf.current()
	if err != nil {
		return core.Node{}, err
	}
	pf.rngMu.Lock()
	defer pf.rngMu.Unlock()
	return snap.index.Random(excluding, pf.cfg.rng), nil
}

// NearestPointOnPath returns the point on the edge network closest to p.
func (pf *PathFinder) NearestPointOnPath(p orb.Point) (orb.Point, error) {
	pf.mu.RLock()
	defer pf.mu.RUnlock()

	snap, err := pf.current()
	if err != nil {
		return orb.Point{}, err
	}
	if err := checkPoint(p); err != nil {
		return orb.Point{}, err
	}
	return snap.index.NearestPointOnPath(p), nil
}

// OnPath reports whether p lies within tolerance of any edge.
func (pf *PathFinder) OnPath(p orb.Point, tolerance float64) (bool, error) {
	pf.mu.RLock()
	defer pf.mu.RUnlock()

	snap, err := pf.current()
	if err != nil {
		return false, err
	}
	if err := checkPoint(p); err != nil {
		return false, err
	}
	return snap.index.OnPath(p, tolerance), nil
}

// Hop is a node reached by Within together with its distance in edges.
type Hop struct {
	Node core.Node `json:"node"`
	Hops int       `json:"hops"`
}

// Within lists the nodes reachable from start in at most maxHops edges,
// ignoring edge costs, in breadth-first order starting with start itself.
// maxHops 0 means no limit: the whole component of start. Returns
// search.ErrNodeNotFound for an unknown start.
func (pf *PathFinder) Within(ctx context.Context, start string, maxHops int) ([]Hop, error) {
	if maxHops < 0 {
		return nil, fmt.Errorf("pathfinder: maxHops %d must not be negative", maxHops)
	}
	pf.mu.RLock()
	defer pf.mu.RUnlock()

	snap, err := pf.current()
	if err != nil {
		return nil, err
	}
	if !snap.graph.HasNode(start) {
		return nil, fmt.Errorf("%w: start %q", search.ErrNodeNotFound, start)
	}

	ctx, span := pf.tracer.Start(ctx, "pathfinder.Within",
		trace.WithAttributes(attribute.String("start", start), attribute.Int("max_hops", maxHops)))
	defer span.End()

	var hops []Hop
	collect := func(id string, depth int) error {
		n, err := snap.graph.Node(id)
		if err != nil {
			return err
		}
		hops = append(hops, Hop{Node: n, Hops: depth})
		return nil
	}
	if _, err := bfs.BFS(ctx, snap.graph, start, bfs.WithMaxDepth(maxHops), bfs.WithOnVisit(collect)); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("pathfinder: within %q: %w", start, err)
	}

	pf.cfg.logger.Debug("waypoints_within",
		slog.String("start", start),
		slog.Int("max_hops", maxHops),
		slog.Int("found", len(hops)),
	)
	return hops, nil
}
