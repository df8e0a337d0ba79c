// SPDX-License-Identifier: MIT

// Package mcpserver exposes a PathFinder over the Model Context Protocol so
// agents can plan routes through tool calls.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/paulmach/orb"

	"github.com/katalvlaran/waypath/core"
	"github.com/katalvlaran/waypath/pathfinder"
	"github.com/katalvlaran/waypath/search"
)

// GraphURI is the resource carrying the serving graph's summary.
const GraphURI = "waypath://graph"

// Server adapts a PathFinder to MCP.
type Server struct {
	mcpServer *server.MCPServer
	pf        *pathfinder.PathFinder
}

// New registers the waypath tools and resources for pf.
func New(pf *pathfinder.PathFinder, version string) *Server {
	s := &Server{
		mcpServer: server.NewMCPServer("waypath", version),
		pf:        pf,
	}
	s.registerResources()
	s.registerTools()
	return s
}

// MCPServer returns the underlying server, e.g. for a non-stdio transport.
func (s *Server) MCPServer() *server.MCPServer { return s.mcpServer }

// Serve runs the server on stdio until stdin closes.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcpServer)
}

// --- Resources ---

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(
		GraphURI,
		"Navigation Graph",
		mcp.WithResourceDescription("Snapshot ID, metric, node and edge counts, bounds and lifecycle state"),
		mcp.WithMIMEType("application/json"),
	), s.handleReadGraph)
}

// --- Tools ---

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool(
		"find_path",
		mcp.WithDescription("Shortest path between two node IDs. Omit goal for a random destination."),
		mcp.WithString("start", mcp.Required(), mcp.Description("Start node ID")),
		mcp.WithString("goal", mcp.Description("Goal node ID (random when empty)")),
		mcp.WithString("mode", mcp.Description("'astar' (default) or 'dijkstra'")),
	), s.handleFindPath)

	s.mcpServer.AddTool(mcp.NewTool(
		"find_path_between",
		mcp.WithDescription("Shortest path between the nodes nearest two world positions."),
		mcp.WithNumber("from_x", mcp.Required()),
		mcp.WithNumber("from_y", mcp.Required()),
		mcp.WithNumber("to_x", mcp.Required()),
		mcp.WithNumber("to_y", mcp.Required()),
		mcp.WithString("mode", mcp.Description("'astar' (default) or 'dijkstra'")),
	), s.handleFindPathBetween)

	s.mcpServer.AddTool(mcp.NewTool(
		"nearest_node",
		mcp.WithDescription("Node closest to a world position."),
		mcp.WithNumber("x", mcp.Required()),
		mcp.WithNumber("y", mcp.Required()),
	), s.handleNearestNode)

	s.mcpServer.AddTool(mcp.NewTool(
		"random_waypoint",
		mcp.WithDescription("A random node, never the excluded one when the graph has two or more nodes."),
		mcp.WithString("excluding", mcp.Description("Node ID to avoid")),
	), s.handleRandomWaypoint)

	s.mcpServer.AddTool(mcp.NewTool(
		"waypoints_within",
		mcp.WithDescription("Nodes reachable from start in at most max_hops edges, nearest first."),
		mcp.WithString("start", mcp.Required(), mcp.Description("Start node ID")),
		mcp.WithNumber("max_hops", mcp.Description("Hop radius; 0 or absent means the whole component")),
	), s.handleWaypointsWithin)
}

// --- Handlers ---

func (s *Server) handleReadGraph(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	g := s.pf.Graph()
	if g == nil {
		return nil, pathfinder.ErrUninitialized
	}
	body := struct {
		core.GraphStats
		State string `json:"state"`
	}{g.Stats(), s.pf.State().String()}

	data, err := json.MarshalIndent(body, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal graph stats: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (s *Server) handleFindPath(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, err := requireNode(request, "start")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	opts, err := modeOption(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	p, err := s.pf.FindPath(ctx, start, mcp.ParseString(request, "goal", ""), opts...)
	if err != nil {
		return pathError(err), nil
	}
	return jsonResult(p)
}

func (s *Server) handleFindPathBetween(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	from, err := requirePoint(request, "from_x", "from_y")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	to, err := requirePoint(request, "to_x", "to_y")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	opts, err := modeOption(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	p, err := s.pf.FindPathBetween(ctx, from, to, opts...)
	if err != nil {
		return pathError(err), nil
	}
	return jsonResult(p)
}

func (s *Server) handleNearestNode(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := requirePoint(request, "x", "y")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	n, err := s.pf.Nearest(p)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(n)
}

func (s *Server) handleRandomWaypoint(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	n, err := s.pf.RandomWaypoint(mcp.ParseString(request, "excluding", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(n)
}

func (s *Server) handleWaypointsWithin(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, err := requireNode(request, "start")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	maxHops := request.GetInt("max_hops", 0)
	if maxHops < 0 {
		return mcp.NewToolResultError("max_hops must not be negative"), nil
	}

	hops, err := s.pf.Within(ctx, start, maxHops)
	if err != nil {
		return pathError(err), nil
	}
	return jsonResult(hops)
}

// requireNode reads a mandatory, non-empty node ID argument.
func requireNode(request mcp.CallToolRequest, key string) (string, error) {
	id, err := request.RequireString(key)
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return id, nil
}

// requirePoint reads two mandatory numeric arguments as a position.
func requirePoint(request mcp.CallToolRequest, xKey, yKey string) (orb.Point, error) {
	x, err := request.RequireFloat(xKey)
	if err != nil {
		return orb.Point{}, err
	}
	y, err := request.RequireFloat(yKey)
	if err != nil {
		return orb.Point{}, err
	}
	return orb.Point{x, y}, nil
}

func modeOption(request mcp.CallToolRequest) ([]search.Option, error) {
	raw := mcp.ParseString(request, "mode", "")
	if raw == "" {
		return nil, nil
	}
	m, err := search.ParseMode(raw)
	if err != nil {
		return nil, err
	}
	return []search.Option{search.WithMode(m)}, nil
}

// pathError turns search failures into tool errors the agent can act on.
func pathError(err error) *mcp.CallToolResult {
	switch {
	case errors.Is(err, search.ErrPathNotFound):
		return mcp.NewToolResultError("no path: goal is unreachable from start")
	case errors.Is(err, search.ErrNodeNotFound):
		return mcp.NewToolResultError(fmt.Sprintf("unknown node: %v", err))
	default:
		return mcp.NewToolResultError(err.Error())
	}
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
