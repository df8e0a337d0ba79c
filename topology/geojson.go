// SPDX-License-Identifier: MIT

package topology

import (
	"fmt"
	"io"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/waypath/builder"
	"github.com/katalvlaran/waypath/core"
)

// GeoJSON property names.
const (
	PropID   = "id"
	PropFrom = "from"
	PropTo   = "to"
)

// decoder accumulates nodes while LineStrings may still add waypoints.
type decoder struct {
	topo  Topology
	ids   map[string]struct{}
	byPos map[orb.Point]string
	next  int
}

// DecodeGeoJSON reads a FeatureCollection from r into a Topology.
// Points are read first so that LineStrings can refer to them regardless of
// feature order. Duplicate IDs and dangling references are left for the
// builder to report.
func DecodeGeoJSON(r io.Reader) (Topology, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Topology{}, fmt.Errorf("topology: read: %w", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return Topology{}, fmt.Errorf("topology: decode: %w", err)
	}

	d := &decoder{ids: make(map[string]struct{}), byPos: make(map[orb.Point]string)}

	// 1) Nodes
	for i, f := range fc.Features {
		p, ok := f.Geometry.(orb.Point)
		if !ok {
			continue
		}
		id, ok := featureID(f)
		if !ok {
			return Topology{}, fmt.Errorf("%w: feature %d", ErrMissingNodeID, i)
		}
		d.addNode(core.Node{ID: id, Position: p})
	}

	// 2) Edges
	for i, f := range fc.Features {
		switch geom := f.Geometry.(type) {
		case orb.Point:
		case orb.LineString:
			if err := d.addLine(i, f, geom); err != nil {
				return Topology{}, err
			}
		case orb.MultiLineString:
			for _, ls := range geom {
				if err := d.addLine(i, f, ls); err != nil {
					return Topology{}, err
				}
			}
		default:
			return Topology{}, fmt.Errorf("%w: feature %d is %T", ErrUnsupportedGeometry, i, f.Geometry)
		}
	}

	return d.topo, nil
}

func (d *decoder) addNode(n core.Node) {
	d.topo.Nodes = append(d.topo.Nodes, n)
	d.ids[n.ID] = struct{}{}
	if _, ok := d.byPos[n.Position]; !ok {
		d.byPos[n.Position] = n.ID
	}
}

// nodeAt returns the node at p, creating a waypoint when none exists.
func (d *decoder) nodeAt(p orb.Point) string {
	if id, ok := d.byPos[p]; ok {
		return id
	}
	id := builder.WaypointIDFn(d.next)
	d.next++
	for d.taken(id) {
		id = builder.WaypointIDFn(d.next)
		d.next++
	}
	d.addNode(core.Node{ID: id, Position: p})
	return id
}

func (d *decoder) taken(id string) bool {
	_, ok := d.ids[id]
	return ok
}

func (d *decoder) addLine(i int, f *geojson.Feature, ls orb.LineString) error {
	from, hasFrom := stringProp(f.Properties, PropFrom)
	to, hasTo := stringProp(f.Properties, PropTo)
	switch {
	case hasFrom && hasTo:
		d.topo.Edges = append(d.topo.Edges, core.Edge{A: from, B: to})
		return nil
	case hasFrom || hasTo:
		return fmt.Errorf("%w: feature %d needs both %q and %q", ErrMissingNodeID, i, PropFrom, PropTo)
	}

	for k := 1; k < len(ls); k++ {
		a := d.nodeAt(ls[k-1])
		b := d.nodeAt(ls[k])
		d.topo.Edges = append(d.topo.Edges, core.Edge{A: a, B: b})
	}
	return nil
}

// featureID reads the "id" property, falling back to the feature id.
func featureID(f *geojson.Feature) (string, bool) {
	if id, ok := stringProp(f.Properties, PropID); ok {
		return id, true
	}
	return scalarString(f.ID)
}

func stringProp(props geojson.Properties, key string) (string, bool) {
	if props == nil {
		return "", false
	}
	v, ok := props[key]
	if !ok {
		return "", false
	}
	return scalarString(v)
}

// scalarString renders JSON strings and numbers as IDs.
func scalarString(v interface{}) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, x != ""
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	default:
		return "", false
	}
}

// EncodeGeoJSON writes g as a FeatureCollection: one Point per node (with an
// "id" property) followed by one LineString per edge (with "from"/"to").
func EncodeGeoJSON(w io.Writer, g *core.Graph) error {
	fc := geojson.NewFeatureCollection()
	for _, n := range g.Nodes() {
		f := geojson.NewFeature(n.Position)
		f.Properties[PropID] = n.ID
		fc.Append(f)
	}
	for _, e := range g.Edges() {
		a, err := g.Node(e.A)
		if err != nil {
			return fmt.Errorf("topology: encode: %w", err)
		}
		b, err := g.Node(e.B)
		if err != nil {
			return fmt.Errorf("topology: encode: %w", err)
		}
		f := geojson.NewFeature(orb.LineString{a.Position, b.Position})
		f.Properties[PropFrom] = e.A
		f.Properties[PropTo] = e.B
		fc.Append(f)
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("topology: encode: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// FromGraph captures the nodes and edges of g as a Topology.
func FromGraph(g *core.Graph) Topology {
	return Topology{Nodes: g.Nodes(), Edges: g.Edges()}
}
