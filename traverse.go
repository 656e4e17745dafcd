// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package povoro

import "fmt"

// pair identifies one (site, face) work item.
type pair struct {
	site, face int
}

func pairKey(p pair) int64 {
	return int64(p.site)<<32 | int64(uint32(p.face))
}

// Emit receives one nonempty intersection piece: the clipped polygon,
// the background face it came from, and the site whose power cell it
// belongs to. Returning a non-nil error aborts the traversal; Traverse
// returns an error that wraps both ErrAborted and the callback's error.
type Emit func(p Polygon, face, site int) error

// Traverse enumerates every (site, face) pair with a nonempty
// intersection exactly once, per spec §4.3. It emits nothing if t has no
// finite faces or d has no sites (spec §4.3 "Failure semantics").
func Traverse(t BackgroundTriangulation, d PowerTriangulation, emit Emit) error {
	numFaces := t.NumFaces()
	numSites := d.NumSites()
	if numFaces == 0 || numSites == 0 {
		return nil
	}

	visited := make(map[int64]struct{})
	queue := make([]pair, 0, numFaces)

	// Seed from every finite face's barycenter rather than a single
	// global seed (spec §9's "safer" resolution of the seeding open
	// question): this guarantees the BFS starts inside the correct cell
	// for every face, regardless of how cells and faces interleave.
	for f := 0; f < numFaces; f++ {
		a, b, c := t.FaceVertices(f)
		bary := a.Add(b).Add(c).Mul(1.0 / 3.0)
		seed := pair{site: d.NearestSite(bary), face: f}
		key := pairKey(seed)
		if _, ok := visited[key]; !ok {
			visited[key] = struct{}{}
			queue = append(queue, seed)
		}
	}

	// Two scratch buffers for the per-step clip, swapped between calls
	// to clipHalfPlane rather than reallocated (spec §5). Both must start
	// non-nil: clipHalfPlane's allIn shortcut treats a nil dst as "no
	// buffer to reuse" and hands back the source slice verbatim, which
	// would alias cur2 after the first swap below and corrupt the next
	// clip's input while it's still being read.
	bufA := make([]TaggedEdge, 0, 8)
	bufB := make([]TaggedEdge, 0, 8)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		a, b, c := t.FaceVertices(cur.face)
		site := d.Site(cur.site)
		edges := Triangle(a, b, c).Edges

		cur2, next := bufA[:0], bufB[:0]
		cur2 = append(cur2, edges...)
		for _, ne := range d.IncidentEdges(cur.site) {
			if ne.Infinite {
				continue
			}
			next = clipHalfPlane(cur2, cur.site, site, ne.Neighbor, d.Site(ne.Neighbor), next)
			cur2, next = next, cur2
			if len(cur2) == 0 {
				break
			}
		}
		bufA, bufB = cur2, next

		if len(cur2) < 3 {
			continue
		}

		result := Polygon{Edges: append([]TaggedEdge(nil), cur2...)}
		if err := emit(result, cur.face, cur.site); err != nil {
			return fmt.Errorf("%w: %w", ErrAborted, err)
		}

		for _, e := range result.Edges {
			var next pair
			switch e.Tag.Kind {
			case KindPower:
				next = pair{site: e.Tag.Value, face: cur.face}
			case KindTriangulation:
				nf := t.FaceNeighbor(cur.face, e.Tag.Value)
				if nf < 0 {
					continue
				}
				next = pair{site: cur.site, face: nf}
			default:
				continue
			}
			key := pairKey(next)
			if _, ok := visited[key]; ok {
				continue
			}
			visited[key] = struct{}{}
			queue = append(queue, next)
		}
	}

	return nil
}
