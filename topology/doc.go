// SPDX-License-Identifier: MIT

// Package topology describes the authored input of a navigation graph: either
// an explicit node/edge list or grid geometry. A Topology is a plain value; it
// is captured once and handed to the builder, so later edits never leak into
// a graph that is already serving searches.
//
// GeoJSON (RFC 7946 FeatureCollection, via github.com/paulmach/orb/geojson)
// is the interchange format:
//
//   - Point features are nodes. The ID comes from the "id" property, or the
//     feature id when the property is absent.
//   - LineString (and MultiLineString) features are edges. With "from" and
//     "to" properties they name their endpoints directly. Otherwise every
//     consecutive coordinate pair becomes an edge; coordinates are matched to
//     node positions and unmatched ones become new nodes "w0", "w1", ...
//   - Any other geometry is rejected with ErrUnsupportedGeometry.
//
// EncodeGeoJSON writes a graph back in the same shape (nodes then from/to
// edges), so Decode(Encode(g)) rebuilds an identical graph.
package topology
