// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package povoro

import "github.com/golang/geo/r3"

// TaggedEdge is one directed edge of a Polygon, carrying both its
// concrete endpoints (spec §4.4's "geometric mode" is just reading these
// off directly) and the provenance of its origin (spec §4.4's "raw
// mode").
type TaggedEdge struct {
	A, B r3.Vector
	Tag  EdgeTag
}

// Polygon is a convex polygon represented as a cyclic sequence of tagged
// edges, per spec §3.
type Polygon struct {
	Edges []TaggedEdge
}

// Triangle builds the initial tagged polygon for a background triangle
// with vertices a, b, c given in CCW order, following the "edge i is
// opposite vertex i" convention of spec §3: edge (a,b) is opposite c
// (index 2), edge (b,c) is opposite a (index 0), edge (c,a) is opposite
// b (index 1).
func Triangle(a, b, c r3.Vector) Polygon {
	return Polygon{Edges: []TaggedEdge{
		{A: a, B: b, Tag: TriangulationEdge(2)},
		{A: b, B: c, Tag: TriangulationEdge(0)},
		{A: c, B: a, Tag: TriangulationEdge(1)},
	}}
}

// Empty reports whether the polygon has no area (the clip removed it
// entirely).
func (p Polygon) Empty() bool { return len(p.Edges) < 3 }

// Vertices resolves the polygon to a plain ordered point list, spec
// §4.4's "geometric mode". Each vertex is the start point of the
// correspondingly-indexed edge.
func (p Polygon) Vertices() []r3.Vector {
	verts := make([]r3.Vector, len(p.Edges))
	for i, e := range p.Edges {
		verts[i] = e.A
	}
	return verts
}

// Clip returns the intersection of tri with siteID's power cell, by
// clipping sequentially against the half-plane of every finite edge in
// neighbors (spec §4.2). This is the simple, always-allocating form used
// by tests and external callers; Traverse uses the buffer-reusing
// clipHalfPlane directly in its hot loop (spec §5).
func Clip(tri Polygon, siteID int, site WeightedPoint, neighbors []PowerEdge, d PowerTriangulation) Polygon {
	edges := tri.Edges
	for _, ne := range neighbors {
		if ne.Infinite {
			continue
		}
		edges = clipHalfPlane(edges, siteID, site, ne.Neighbor, d.Site(ne.Neighbor), nil)
		if len(edges) == 0 {
			break
		}
	}
	return Polygon{Edges: edges}
}

// bisectorValue evaluates the affine functional whose sign is
// powerSide's triage test: power_site(q) - power_against(q). Used both
// by the predicate and by intersectBisector, which needs the raw value
// (not just its sign) to interpolate the crossing point.
func bisectorValue(q r3.Vector, site, against WeightedPoint) float64 {
	a := 2 * (against.X - site.X)
	b := 2 * (against.Y - site.Y)
	c := (site.X*site.X + site.Y*site.Y - site.W) - (against.X*against.X + against.Y*against.Y - against.W)
	return a*q.X + b*q.Y + c
}

// intersectBisector finds where segment a->b crosses the radical axis
// of site and against, by linear interpolation of bisectorValue. Per
// spec §4.1, construction of the intersection point may be inexact.
func intersectBisector(a, b r3.Vector, site, against WeightedPoint) r3.Vector {
	va := bisectorValue(a, site, against)
	vb := bisectorValue(b, site, against)
	denom := vb - va
	if denom == 0 {
		return a
	}
	t := -va / denom
	return a.Add(b.Sub(a).Mul(t))
}

// clipHalfPlane clips edges against the half-plane {q : power_site(q) <=
// power_against(q)}, preserving the tag of every surviving edge and
// tagging any newly-introduced edge PowerEdgeTag(against). dst is a
// caller-owned buffer that is reused (truncated and re-appended to)
// rather than reallocated, per spec §5's buffer-swap discipline; pass
// nil to let append allocate as needed.
func clipHalfPlane(edges []TaggedEdge, siteID int, site WeightedPoint, againstID int, against WeightedPoint, dst []TaggedEdge) []TaggedEdge {
	n := len(edges)
	if n == 0 {
		return dst[:0]
	}

	inside := make([]bool, n)
	startIdx := -1
	allOut := true
	for i, e := range edges {
		in := insideCell(e.A, siteID, site, againstID, against)
		inside[i] = in
		if in {
			allOut = false
			if startIdx == -1 {
				startIdx = i
			}
		}
	}
	if allOut {
		return dst[:0]
	}
	allIn := true
	for _, in := range inside {
		if !in {
			allIn = false
			break
		}
	}
	if allIn {
		if dst == nil {
			return edges
		}
		// A caller-owned dst must never alias edges: the ping-pong
		// buffer swap in Traverse's hot loop depends on every return
		// through dst being backed by the *other* buffer, never the
		// source, or a later non-passthrough call would read edges
		// while overwriting the same array through dst.
		out := dst[:0]
		return append(out, edges...)
	}

	out := dst[:0]
	var pendingExit r3.Vector
	havePending := false
	for k := 0; k < n; k++ {
		i := (startIdx + k) % n
		e := edges[i]
		startIn := inside[i]
		endIn := inside[(i+1)%n]
		switch {
		case startIn && endIn:
			out = append(out, e)
		case startIn && !endIn:
			ip := intersectBisector(e.A, e.B, site, against)
			out = append(out, TaggedEdge{A: e.A, B: ip, Tag: e.Tag})
			pendingExit = ip
			havePending = true
		case !startIn && endIn:
			ip := intersectBisector(e.A, e.B, site, against)
			if havePending {
				out = append(out, TaggedEdge{A: pendingExit, B: ip, Tag: PowerEdgeTag(againstID)})
				havePending = false
			}
			out = append(out, TaggedEdge{A: ip, B: e.B, Tag: e.Tag})
		default:
			// both endpoints outside: this edge is entirely clipped away
		}
	}
	return out
}
