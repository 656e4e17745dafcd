// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package power

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/cellint/povoro"
	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"
)

const defaultEps = 1e-12

// Options configures NewTriangulation.
type Options struct {
	Eps float64
}

// Option mutates Options, returning an error if the requested value is
// invalid rather than leaving the caller to discover it later.
type Option func(*Options) error

// WithEps overrides the convex-hull construction tolerance passed to
// quickhull. eps must be positive.
func WithEps(eps float64) Option {
	return func(o *Options) error {
		if eps <= 0 {
			return fmt.Errorf("power: WithEps: eps must be positive, got %v", eps)
		}
		o.Eps = eps
		return nil
	}
}

// Triangulation is a regular (weighted Delaunay) triangulation of a set
// of weighted sites, dual to their power diagram. It implements
// povoro.PowerTriangulation.
type Triangulation struct {
	sites             []Site
	incidentNeighbors []int
	incidentOffsets   []int
}

// NumSites implements povoro.PowerTriangulation.
func (t *Triangulation) NumSites() int { return len(t.sites) }

// Site implements povoro.PowerTriangulation.
func (t *Triangulation) Site(i int) povoro.WeightedPoint {
	s := t.sites[i]
	return povoro.WeightedPoint{X: s.X, Y: s.Y, W: s.W}
}

// NearestSite implements povoro.PowerTriangulation by brute-force search
// over every site's power distance to p, O(NumSites()) per call. Ties
// (equal power distance) resolve to the lower site id, matching the
// symbolic tie-break the core traversal uses elsewhere.
func (t *Triangulation) NearestSite(p r3.Vector) int {
	best := 0
	bestDist := powerDistance(p, t.sites[0])
	for i := 1; i < len(t.sites); i++ {
		d := powerDistance(p, t.sites[i])
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

func powerDistance(p r3.Vector, s Site) float64 {
	dx, dy := p.X-s.X, p.Y-s.Y
	return dx*dx + dy*dy - s.W
}

// IncidentEdges implements povoro.PowerTriangulation. Neighbors are
// every site connected to site by a triangulation edge, in CCW order
// around it. A site on the convex hull of the input has no entry for
// the angular gap beyond its hull edges; NewTriangulation never
// produces an edge with Infinite set, since every edge it returns
// connects two sites that genuinely share a triangle.
func (t *Triangulation) IncidentEdges(site int) []povoro.PowerEdge {
	start, end := t.incidentOffsets[site], t.incidentOffsets[site+1]
	out := make([]povoro.PowerEdge, end-start)
	for i, n := range t.incidentNeighbors[start:end] {
		out[i] = povoro.PowerEdge{Neighbor: n}
	}
	return out
}

// NewTriangulation builds the regular triangulation of sites via the
// paraboloid lift and a 3D convex hull. At least 1 site is required;
// 1 or 2 sites are handled directly without the hull. No two sites may
// coincide in the plane.
func NewTriangulation(sites []Site, setters ...Option) (*Triangulation, error) {
	opts := Options{Eps: defaultEps}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	if len(sites) == 0 {
		return nil, errors.New("power: at least 1 site is required")
	}
	if len(sites) <= 2 {
		// A hull over fewer than 3 lifted points has no well-defined
		// face, but the regular triangulation is trivial anyway: one
		// site has no neighbor to clip against, and two sites are
		// mutually adjacent with no hull construction needed.
		return trivialTriangulation(sites), nil
	}

	lifted := make([]r3.Vector, len(sites))
	for i, s := range sites {
		lifted[i] = r3.Vector{X: s.X, Y: s.Y, Z: s.X*s.X + s.Y*s.Y - s.W}
	}
	breakCoplanarTies(lifted)

	centroid := r3.Vector{}
	for _, p := range lifted {
		centroid = centroid.Add(p)
	}
	centroid = centroid.Mul(1.0 / float64(len(sites)))

	qh := new(quickhull.QuickHull)
	hull := qh.ConvexHull(lifted, true, true, opts.Eps)
	if len(hull.Indices)%3 != 0 {
		return nil, errors.New("power: inconsistent number of indices returned from QuickHull")
	}

	neighborSets := make([]map[int]struct{}, len(sites))
	for i := range neighborSets {
		neighborSets[i] = make(map[int]struct{})
	}

	for f := 0; f < len(hull.Indices); f += 3 {
		i0, i1, i2 := hull.Indices[f], hull.Indices[f+1], hull.Indices[f+2]
		p0, p1, p2 := lifted[i0], lifted[i1], lifted[i2]
		normal := p1.Sub(p0).Cross(p2.Sub(p0))
		if normal.Dot(p0.Sub(centroid)) < 0 {
			normal = normal.Mul(-1)
		}
		// Keep only lower-hull faces: the paraboloid lift's defining
		// property is that the regular triangulation is exactly the
		// projection of the downward-facing half of the hull.
		if normal.Z >= 0 {
			continue
		}

		neighborSets[i0][i1] = struct{}{}
		neighborSets[i0][i2] = struct{}{}
		neighborSets[i1][i0] = struct{}{}
		neighborSets[i1][i2] = struct{}{}
		neighborSets[i2][i0] = struct{}{}
		neighborSets[i2][i1] = struct{}{}
	}

	t := &Triangulation{sites: sites}
	t.incidentOffsets = make([]int, len(sites)+1)
	for i, set := range neighborSets {
		t.incidentOffsets[i+1] = t.incidentOffsets[i] + len(set)
	}
	t.incidentNeighbors = make([]int, t.incidentOffsets[len(sites)])
	for i, set := range neighborSets {
		base := t.incidentOffsets[i]
		j := 0
		for n := range set {
			t.incidentNeighbors[base+j] = n
			j++
		}
		sortNeighborsCCW(sites[i], sites, t.incidentNeighbors[base:base+len(set)])
	}

	return t, nil
}

// breakCoplanarTies perturbs each lifted point's height by a tiny,
// strictly increasing amount keyed on its index. Sites lying on a
// common circle with equal weight lift to a common plane exactly (the
// paraboloid-lift identity: x²+y²-w is affine in x,y along any circle
// of constant power), leaving quickhull to triangulate an arbitrary,
// implementation-dependent split of a flat cap instead of the tied
// faces a consistent tie-break would pick. This extends spec §4.1's
// "consistent symbolic tie-breaking... no overlapping or missing
// slivers" from the power-distance predicate to the hull-construction
// step itself: every tie is broken the same deterministic way, by
// index, on every call, regardless of which cocircular subset of sites
// happens to trigger it. The perturbation is scaled to the lift's own
// magnitude and stays below 1e-9 * (1 + the largest |lifted height|),
// so it stays far under any genuine difference in position or weight
// for realistic inputs.
func breakCoplanarTies(lifted []r3.Vector) {
	maxAbs := 0.0
	for _, p := range lifted {
		if a := math.Abs(p.Z); a > maxAbs {
			maxAbs = a
		}
	}
	scale := 1e-9 * (1 + maxAbs) / float64(len(lifted))
	for i := range lifted {
		lifted[i].Z += scale * float64(i)
	}
}

// trivialTriangulation builds the degenerate regular triangulation of
// 1 or 2 sites directly, without going through quickhull.
func trivialTriangulation(sites []Site) *Triangulation {
	t := &Triangulation{sites: sites}
	if len(sites) == 1 {
		t.incidentOffsets = []int{0, 0}
		t.incidentNeighbors = []int{}
		return t
	}
	t.incidentOffsets = []int{0, 1, 2}
	t.incidentNeighbors = []int{1, 0}
	return t
}

func sortNeighborsCCW(center Site, sites []Site, neighbors []int) {
	angle := func(n int) float64 {
		return math.Atan2(sites[n].Y-center.Y, sites[n].X-center.X)
	}
	sort.Slice(neighbors, func(i, j int) bool {
		return angle(neighbors[i]) < angle(neighbors[j])
	})
}
