// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package povoro intersects a power diagram of weighted sites with a
// background triangulation carrying a piecewise density, integrating
// the density over every nonempty (triangle ∩ power-cell) piece.
//
// The package consumes two narrow interfaces — BackgroundTriangulation
// and PowerTriangulation — rather than constructing either triangulation
// itself; see the povoro/mesh and povoro/power packages for concrete,
// swappable implementations used by this module's own tests and
// examples.
package povoro
