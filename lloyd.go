// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package povoro

import "github.com/golang/geo/r3"

// Lloyd computes one step of Lloyd relaxation: the mass and centroid of
// every site's power cell, per spec §4.6. Unlike FirstMoment, an empty
// cell is a failure here rather than a zero-value row, since the
// centroid a caller would feed back into the next iteration is
// undefined for a site with no mass. The error wraps ErrEmptyCell and
// names the offending site; spec §4.6 expects callers to respond by
// shifting or perturbing that site and retrying.
func Lloyd(t BackgroundTriangulation, f []Density, d PowerTriangulation) (mass []float64, centroid []r3.Vector, err error) {
	moments, err := FirstMoment(t, f, d)
	if err != nil {
		return nil, nil, err
	}

	mass = make([]float64, len(moments))
	centroid = make([]r3.Vector, len(moments))
	for i, m := range moments {
		if m.Mass == 0 {
			return nil, nil, &EmptyCellError{Site: i}
		}
		mass[i] = m.Mass
		centroid[i] = r3.Vector{X: m.CentroidX, Y: m.CentroidY}
	}
	return mass, centroid, nil
}
