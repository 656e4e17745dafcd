// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package povoro

import "github.com/golang/geo/r3"

// fixedDiagram is a PowerTriangulation built directly from an explicit
// adjacency list, for tests that need more than two sites.
type fixedDiagram struct {
	sites     []WeightedPoint
	neighbors [][]int
}

func (d fixedDiagram) NumSites() int            { return len(d.sites) }
func (d fixedDiagram) Site(i int) WeightedPoint { return d.sites[i] }

func (d fixedDiagram) NearestSite(p r3.Vector) int {
	best := 0
	bestDist := powerDistanceFor(p, d.sites[0])
	for i := 1; i < len(d.sites); i++ {
		if dist := powerDistanceFor(p, d.sites[i]); dist < bestDist {
			bestDist = dist
			best = i
		}
	}
	return best
}

func (d fixedDiagram) IncidentEdges(site int) []PowerEdge {
	out := make([]PowerEdge, len(d.neighbors[site]))
	for i, n := range d.neighbors[site] {
		out[i] = PowerEdge{Neighbor: n}
	}
	return out
}

func powerDistanceFor(p r3.Vector, s WeightedPoint) float64 {
	dx, dy := p.X-s.X, p.Y-s.Y
	return dx*dx + dy*dy - s.W
}
