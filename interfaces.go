// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package povoro

import "github.com/golang/geo/r3"

// WeightedPoint is a weighted site's position and power weight, as seen
// through the PowerTriangulation interface. Planar points are carried as
// r3.Vector with Z always 0, so the same vector type serves both the
// triangulation-side geometry and the power-triangulation-side geometry
// without a conversion at the boundary between the two.
type WeightedPoint struct {
	X, Y, W float64
}

// BackgroundTriangulation is the narrow read-only view the traversal
// engine needs of the triangulated density domain (spec §6). Callers own
// construction; povoro/mesh provides one concrete implementation.
type BackgroundTriangulation interface {
	// NumFaces returns the number of finite faces.
	NumFaces() int

	// FaceVertices returns the three vertices of face, in the
	// orientation where edge i is opposite vertex i (a is vertex 0, etc).
	FaceVertices(face int) (a, b, c r3.Vector)

	// FaceNeighbor returns the face across edge i of face, or -1 if that
	// edge borders the infinite face (outside the domain).
	FaceNeighbor(face, edge int) int
}

// PowerEdge is one edge incident to a site in the power triangulation,
// as returned by PowerTriangulation.IncidentEdges.
type PowerEdge struct {
	// Neighbor is the site on the other side of this edge.
	Neighbor int
	// Infinite reports whether this edge borders the outer boundary of
	// the triangulation, i.e. the power cell of the owning site is
	// unbounded across it and there is no neighbor to clip against.
	Infinite bool
}

// PowerTriangulation is the narrow read-only view the traversal engine
// needs of the regular (weighted Delaunay) triangulation dual to the
// power diagram (spec §6). Callers own construction; povoro/power
// provides one concrete implementation.
type PowerTriangulation interface {
	// NumSites returns the number of weighted sites.
	NumSites() int

	// Site returns the position and weight of site i.
	Site(i int) WeightedPoint

	// NearestSite returns the index of the site whose power cell
	// contains p, i.e. argmin over sites of the power distance to p.
	NearestSite(p r3.Vector) int

	// IncidentEdges returns the edges incident to site, with neighbors
	// enumerated in CCW order around it.
	IncidentEdges(site int) []PowerEdge
}

// Density evaluates a per-face density function at a point. The
// traversal's moment accumulators assume density is at most linear in x
// and y, per spec §4.5's quadrature rule, but the type itself places no
// such restriction on callers who only need the raw traversal.
type Density func(x, y float64) float64
