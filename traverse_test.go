// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package povoro

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/r3"
)

// singleFaceMesh is a one-triangle BackgroundTriangulation with no
// neighbors, enough to exercise Traverse's propagation and seeding
// logic without pulling in the mesh package.
type singleFaceMesh struct {
	a, b, c r3.Vector
}

func (m singleFaceMesh) NumFaces() int { return 1 }
func (m singleFaceMesh) FaceVertices(face int) (a, b, c r3.Vector) {
	return m.a, m.b, m.c
}
func (m singleFaceMesh) FaceNeighbor(face, edge int) int { return -1 }

// twoSiteDiagram is a minimal PowerTriangulation of exactly two
// unweighted sites, mutually incident.
type twoSiteDiagram struct {
	sites [2]WeightedPoint
}

func (d twoSiteDiagram) NumSites() int            { return 2 }
func (d twoSiteDiagram) Site(i int) WeightedPoint { return d.sites[i] }
func (d twoSiteDiagram) NearestSite(p r3.Vector) int {
	d0 := (p.X-d.sites[0].X)*(p.X-d.sites[0].X) + (p.Y-d.sites[0].Y)*(p.Y-d.sites[0].Y)
	d1 := (p.X-d.sites[1].X)*(p.X-d.sites[1].X) + (p.Y-d.sites[1].Y)*(p.Y-d.sites[1].Y)
	if d1 < d0 {
		return 1
	}
	return 0
}
func (d twoSiteDiagram) IncidentEdges(site int) []PowerEdge {
	return []PowerEdge{{Neighbor: 1 - site}}
}

func polygonArea(verts []r3.Vector) float64 {
	var area float64
	for i := 1; i+1 < len(verts); i++ {
		area += cross2(verts[i].Sub(verts[0]), verts[i+1].Sub(verts[0])) / 2
	}
	return area
}

func TestTraverse_SplitsTriangleBetweenTwoSites(t *testing.T) {
	tri := singleFaceMesh{
		a: r3.Vector{X: 0, Y: 0},
		b: r3.Vector{X: 2, Y: 0},
		c: r3.Vector{X: 0, Y: 2},
	}
	diagram := twoSiteDiagram{sites: [2]WeightedPoint{
		{X: 0, Y: 0, W: 0},
		{X: 1, Y: 0, W: 0},
	}}

	var totalArea float64
	bySite := map[int]float64{}
	err := Traverse(tri, diagram, func(p Polygon, face, site int) error {
		area := polygonArea(p.Vertices())
		totalArea += area
		bySite[site] += area
		return nil
	})
	if err != nil {
		t.Fatalf("Traverse(...) error = %v, want nil", err)
	}

	wantTotal := polygonArea([]r3.Vector{tri.a, tri.b, tri.c})
	if math.Abs(totalArea-wantTotal) > 1e-9 {
		t.Errorf("total emitted area = %v, want %v", totalArea, wantTotal)
	}
	if len(bySite) != 2 {
		t.Errorf("Traverse(...) emitted fragments for %d sites, want 2", len(bySite))
	}
	for site, area := range bySite {
		if area <= 0 {
			t.Errorf("bySite[%d] = %v, want a strictly positive area", site, area)
		}
	}
}

// TestTraverse_AllInClipThenSplitIsNotCorrupted guards against a buffer-
// aliasing regression: the seed pair's first neighbor (far) leaves the
// triangle entirely inside (clipHalfPlane's allIn shortcut), and its
// second neighbor (near) then performs a genuine split. If Traverse's
// scratch buffers ever start out nil, the allIn shortcut hands back a
// slice aliasing the clip's input, and the following split corrupts its
// own source while writing output — so this also pins down that the
// total emitted area still equals the triangle's area and both real
// sites receive a strictly positive share.
func TestTraverse_AllInClipThenSplitIsNotCorrupted(t *testing.T) {
	tri := singleFaceMesh{
		a: r3.Vector{X: 0, Y: 0},
		b: r3.Vector{X: 2, Y: 0},
		c: r3.Vector{X: 0, Y: 2},
	}
	diagram := fixedDiagram{
		sites: []WeightedPoint{
			{X: 0, Y: 0, W: 1},       // 0: seed, weighted to win the barycenter query
			{X: 1000, Y: 1000, W: 0}, // 1: far enough that every clip against it is allIn
			{X: 1, Y: 0, W: 0},       // 2: near enough to genuinely split the triangle
		},
		neighbors: [][]int{{1, 2}, {0}, {0}},
	}

	var totalArea float64
	bySite := map[int]float64{}
	err := Traverse(tri, diagram, func(p Polygon, face, site int) error {
		area := polygonArea(p.Vertices())
		totalArea += area
		bySite[site] += area
		return nil
	})
	if err != nil {
		t.Fatalf("Traverse(...) error = %v, want nil", err)
	}

	wantTotal := polygonArea([]r3.Vector{tri.a, tri.b, tri.c})
	if math.Abs(totalArea-wantTotal) > 1e-9 {
		t.Errorf("total emitted area = %v, want %v", totalArea, wantTotal)
	}
	if bySite[0] <= 0 {
		t.Errorf("bySite[0] = %v, want a strictly positive area", bySite[0])
	}
	if bySite[2] <= 0 {
		t.Errorf("bySite[2] = %v, want a strictly positive area", bySite[2])
	}
	if area := bySite[1]; area != 0 {
		t.Errorf("bySite[1] (the never-clipping-close far site) = %v, want 0", area)
	}
}

func TestTraverse_EmptyInputsYieldNoCalls(t *testing.T) {
	tri := singleFaceMesh{a: r3.Vector{X: 0, Y: 0}, b: r3.Vector{X: 1, Y: 0}, c: r3.Vector{X: 0, Y: 1}}
	calls := 0
	err := Traverse(emptyFaces{}, twoSiteDiagram{sites: [2]WeightedPoint{{X: 0, Y: 0}, {X: 1, Y: 1}}}, func(Polygon, int, int) error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("Traverse(emptyFaces, ...) error = %v, want nil", err)
	}
	if calls != 0 {
		t.Errorf("Traverse(emptyFaces, ...) called emit %d times, want 0", calls)
	}

	calls = 0
	err = Traverse(tri, zeroSites{}, func(Polygon, int, int) error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("Traverse(..., zeroSites) error = %v, want nil", err)
	}
	if calls != 0 {
		t.Errorf("Traverse(..., zeroSites) called emit %d times, want 0", calls)
	}
}

func TestTraverse_CallbackErrorWrapsErrAborted(t *testing.T) {
	tri := singleFaceMesh{a: r3.Vector{X: 0, Y: 0}, b: r3.Vector{X: 1, Y: 0}, c: r3.Vector{X: 0, Y: 1}}
	diagram := twoSiteDiagram{sites: [2]WeightedPoint{{X: 0, Y: 0}, {X: 1, Y: 1}}}

	boom := errEmitFailed
	err := Traverse(tri, diagram, func(Polygon, int, int) error { return boom })
	if err == nil {
		t.Fatalf("Traverse(...) error = nil, want non-nil")
	}
	if !errors.Is(err, ErrAborted) {
		t.Errorf("Traverse(...) error = %v, want it to wrap ErrAborted", err)
	}
}

type emptyFaces struct{}

func (emptyFaces) NumFaces() int                               { return 0 }
func (emptyFaces) FaceVertices(int) (a, b, c r3.Vector)        { return }
func (emptyFaces) FaceNeighbor(int, int) int                   { return -1 }

type zeroSites struct{}

func (zeroSites) NumSites() int                     { return 0 }
func (zeroSites) Site(int) WeightedPoint            { return WeightedPoint{} }
func (zeroSites) NearestSite(r3.Vector) int         { return 0 }
func (zeroSites) IncidentEdges(int) []PowerEdge     { return nil }

var errEmitFailed = errBoom{}

type errBoom struct{}

func (errBoom) Error() string { return "boom" }
