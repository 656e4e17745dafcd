// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package mesh provides a concrete, explicitly-constructed background
// triangulation implementing povoro.BackgroundTriangulation. Building a
// general-purpose mesh generator is out of scope (the density domain is
// an external collaborator); this package only assembles triangle-soup
// input into the adjacency structure the traversal needs, plus a few
// canned shapes for tests.
package mesh

import (
	"errors"
	"fmt"

	"github.com/golang/geo/r3"
)

// Triangulation is an explicit triangle mesh. It implements
// povoro.BackgroundTriangulation.
type Triangulation struct {
	vertices  []r3.Vector
	faces     [][3]int
	neighbors [][3]int
}

// NumFaces implements povoro.BackgroundTriangulation.
func (t *Triangulation) NumFaces() int { return len(t.faces) }

// FaceVertices implements povoro.BackgroundTriangulation.
func (t *Triangulation) FaceVertices(face int) (a, b, c r3.Vector) {
	f := t.faces[face]
	return t.vertices[f[0]], t.vertices[f[1]], t.vertices[f[2]]
}

// FaceNeighbor implements povoro.BackgroundTriangulation.
func (t *Triangulation) FaceNeighbor(face, edge int) int {
	return t.neighbors[face][edge]
}

// edge i of a face is opposite vertex i: edge 0 is (v1,v2), edge 1 is
// (v2,v0), edge 2 is (v0,v1). faceEdge returns the two endpoints of
// edge i of face f, directed the way the triangle winds.
func faceEdge(f [3]int, i int) (int, int) {
	switch i {
	case 0:
		return f[1], f[2]
	case 1:
		return f[2], f[0]
	default:
		return f[0], f[1]
	}
}

// NewTriangulation assembles vertices and faces (each a triple of
// indices into vertices) into a Triangulation, building face adjacency
// by matching shared edges. Faces are reordered to be CCW if given CW;
// an edge shared by more than two faces, or a vertex index out of
// range, is an error.
func NewTriangulation(vertices []r3.Vector, faces [][3]int) (*Triangulation, error) {
	t := &Triangulation{
		vertices: vertices,
		faces:    make([][3]int, len(faces)),
	}
	copy(t.faces, faces)

	for i, f := range t.faces {
		for _, v := range f {
			if v < 0 || v >= len(vertices) {
				return nil, fmt.Errorf("mesh: face %d references out-of-range vertex %d", i, v)
			}
		}
		a, b, c := vertices[f[0]], vertices[f[1]], vertices[f[2]]
		if signedArea2(a, b, c) < 0 {
			t.faces[i][1], t.faces[i][2] = f[2], f[1]
		}
	}

	type edgeOwner struct {
		face, edge int
	}
	owners := make(map[[2]int]edgeOwner)
	t.neighbors = make([][3]int, len(t.faces))
	for i := range t.neighbors {
		t.neighbors[i] = [3]int{-1, -1, -1}
	}

	for fi, f := range t.faces {
		for e := 0; e < 3; e++ {
			a, b := faceEdge(f, e)
			key := [2]int{a, b}
			if _, dup := owners[key]; dup {
				return nil, fmt.Errorf("mesh: edge (%d,%d) is shared by more than one face with the same winding", a, b)
			}
			owners[key] = edgeOwner{face: fi, edge: e}
		}
	}
	for fi, f := range t.faces {
		for e := 0; e < 3; e++ {
			a, b := faceEdge(f, e)
			if owner, ok := owners[[2]int{b, a}]; ok {
				t.neighbors[fi][e] = owner.face
			}
		}
	}

	return t, nil
}

// signedArea2 is twice the signed area of triangle (a,b,c); positive
// for CCW winding.
func signedArea2(a, b, c r3.Vector) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// NewSingleTriangle builds a one-face Triangulation, useful for
// exercising the traversal against a single cell without a grid.
func NewSingleTriangle(a, b, c r3.Vector) (*Triangulation, error) {
	return NewTriangulation([]r3.Vector{a, b, c}, [][3]int{{0, 1, 2}})
}

// NewRectangleGrid tessellates the axis-aligned rectangle
// [minX,maxX]x[minY,maxY] into nx*ny cells, each split into two
// triangles, for a total of 2*nx*ny faces.
func NewRectangleGrid(minX, minY, maxX, maxY float64, nx, ny int) (*Triangulation, error) {
	if nx < 1 || ny < 1 {
		return nil, errors.New("mesh: NewRectangleGrid requires nx >= 1 and ny >= 1")
	}

	verts := make([]r3.Vector, (nx+1)*(ny+1))
	idx := func(i, j int) int { return j*(nx+1) + i }
	for j := 0; j <= ny; j++ {
		y := minY + (maxY-minY)*float64(j)/float64(ny)
		for i := 0; i <= nx; i++ {
			x := minX + (maxX-minX)*float64(i)/float64(nx)
			verts[idx(i, j)] = r3.Vector{X: x, Y: y}
		}
	}

	faces := make([][3]int, 0, 2*nx*ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			v00, v10 := idx(i, j), idx(i+1, j)
			v01, v11 := idx(i, j+1), idx(i+1, j+1)
			faces = append(faces, [3]int{v00, v10, v11})
			faces = append(faces, [3]int{v00, v11, v01})
		}
	}

	return NewTriangulation(verts, faces)
}

// NewUnitSquare is NewRectangleGrid(0, 0, 1, 1, 1, 1), a convenience for
// tests and examples that just need a bounded domain.
func NewUnitSquare() (*Triangulation, error) {
	return NewRectangleGrid(0, 0, 1, 1, 1, 1)
}
