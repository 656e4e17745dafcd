// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package povoro

import (
	"math"

	"github.com/golang/geo/r3"
)

// Orientation is the sign of a planar geometric predicate.
type Orientation int

const (
	Clockwise        Orientation = -1
	Collinear        Orientation = 0
	CounterClockwise Orientation = 1
)

// dblEpsilon is the C++ DBL_EPSILON equivalent.
const dblEpsilon = 2.220446049250313e-16

// orientErrorMultiplier bounds the relative error of a triage-level
// cross-product sign test over planar (Z=0) vectors of magnitude O(1).
// It plays the same role as the S2 library's detErrorMultiplier for the
// spherical orientation predicate, scaled for a 2D cross rather than a
// 3D scalar triple product.
const orientErrorMultiplier = 3.25 * dblEpsilon

// orientation2 reports the sign of the cross product (b-a) x (c-a),
// i.e. whether a, b, c turn counterclockwise, clockwise, or are
// collinear. Inputs are planar vectors (Z assumed 0).
//
// Implementation follows a triage -> stable -> exact escalation in the
// style of a robust geometric Sign predicate: cheap floating point first,
// arbitrary precision only when the cheap test is inconclusive.
func orientation2(a, b, c r3.Vector) Orientation {
	if o := triageOrient(a, b, c); o != Collinear {
		return o
	}
	if o := stableOrient(a, b, c); o != Collinear {
		return o
	}
	return exactOrient(a, b, c)
}

func cross2(u, v r3.Vector) float64 {
	return u.Cross(v).Z
}

func triageOrient(a, b, c r3.Vector) Orientation {
	ab := b.Sub(a)
	ac := c.Sub(a)
	det := cross2(ab, ac)
	maxErr := orientErrorMultiplier * (ab.Norm() * ac.Norm())
	if det > maxErr {
		return CounterClockwise
	}
	if det < -maxErr {
		return Clockwise
	}
	return Collinear
}

// stableOrient recomputes the determinant using the two shortest edges
// pointing away from their common vertex, which minimizes cancellation
// error relative to triageOrient's naive formulation. Mirrors S2's
// stableSign, specialized to the planar cross product.
func stableOrient(a, b, c r3.Vector) Orientation {
	ab := b.Sub(a)
	bc := c.Sub(b)
	ca := a.Sub(c)
	ab2, bc2, ca2 := ab.Norm2(), bc.Norm2(), ca.Norm2()

	var e1, e2 r3.Vector
	switch {
	case ab2 >= bc2 && ab2 >= ca2:
		e1, e2 = ca, bc
	case bc2 >= ca2:
		e1, e2 = ab, ca
	default:
		e1, e2 = bc, ab
	}

	det := -cross2(e1, e2)
	maxErr := orientErrorMultiplier * math.Sqrt(e1.Norm2()*e2.Norm2())
	if det > maxErr {
		return CounterClockwise
	}
	if det < -maxErr {
		return Clockwise
	}
	return Collinear
}

// exactOrient resolves the sign using arbitrary-precision arithmetic.
// The 2D cross product of (b-a) and (c-a) is computed as the Z
// component of the precise 3D cross product, which is exact because
// PreciseVector carries big.Float components with no rounding.
func exactOrient(a, b, c r3.Vector) Orientation {
	pa := r3.PreciseVectorFromVector(a)
	pb := r3.PreciseVectorFromVector(b)
	pc := r3.PreciseVectorFromVector(c)
	ab := pb.Sub(pa)
	ac := pc.Sub(pa)
	det := ab.Cross(ac)
	switch det.Z.Sign() {
	case 1:
		return CounterClockwise
	case -1:
		return Clockwise
	default:
		return Collinear
	}
}

// powerSide reports the sign of power_site(q) - power_against(q), i.e.
// which of two sites' power cells q belongs to. A negative result means
// q is strictly closer (in the power sense) to site; a positive result
// means it is strictly closer to against; zero is an exact tie, resolved
// by the caller using the sites' ids (spec §4.1's symbolic tie-break).
//
// power_p(q) = |q-p|^2 - w_p expands to an affine function of q, so the
// same triage/exact escalation used for orientation2 applies unchanged,
// just against a 2-term linear functional instead of a 2x2 determinant.
func powerSide(q r3.Vector, site, against WeightedPoint) Orientation {
	a := 2 * (against.X - site.X)
	b := 2 * (against.Y - site.Y)
	c := (site.X*site.X + site.Y*site.Y - site.W) - (against.X*against.X + against.Y*against.Y - against.W)

	val := a*q.X + b*q.Y + c
	maxErr := orientErrorMultiplier * (math.Abs(a*q.X) + math.Abs(b*q.Y) + math.Abs(c) + 1)
	if val > maxErr {
		return CounterClockwise // arbitrary convention: "closer to against"
	}
	if val < -maxErr {
		return Clockwise // "closer to site"
	}
	return exactPowerSide(q, site, against)
}

// insideCell reports whether q belongs to siteID's power cell rather
// than againstID's. Exact ties (q lies precisely on the bisector) are
// broken by comparing ids, so that of any two sites with equal power
// distance to q, the lower id owns the boundary point — spec §4.1's
// "consistent symbolic tie-breaking... no overlapping or missing
// slivers".
func insideCell(q r3.Vector, siteID int, site WeightedPoint, againstID int, against WeightedPoint) bool {
	switch powerSide(q, site, against) {
	case Clockwise: // strictly closer to site
		return true
	case CounterClockwise: // strictly closer to against
		return false
	default: // exact tie
		return siteID < againstID
	}
}

// exactPowerSide recomputes powerSide's affine functional with
// arbitrary precision. Because the functional is exactly affine (no
// cancellation-prone cross terms), a single precise evaluation suffices;
// there is no intermediate "stable" tier as there is for orientation2.
func exactPowerSide(q r3.Vector, site, against WeightedPoint) Orientation {
	bigA := newBigFloat()
	bigA.Sub(newBigFloatFrom(against.X), newBigFloatFrom(site.X))
	bigA.Mul(bigA, newBigFloatFrom(2))

	bigB := newBigFloat()
	bigB.Sub(newBigFloatFrom(against.Y), newBigFloatFrom(site.Y))
	bigB.Mul(bigB, newBigFloatFrom(2))

	siteConst := newBigFloat()
	siteConst.Mul(newBigFloatFrom(site.X), newBigFloatFrom(site.X))
	tmp := newBigFloat()
	tmp.Mul(newBigFloatFrom(site.Y), newBigFloatFrom(site.Y))
	siteConst.Add(siteConst, tmp)
	siteConst.Sub(siteConst, newBigFloatFrom(site.W))

	againstConst := newBigFloat()
	againstConst.Mul(newBigFloatFrom(against.X), newBigFloatFrom(against.X))
	tmp2 := newBigFloat()
	tmp2.Mul(newBigFloatFrom(against.Y), newBigFloatFrom(against.Y))
	againstConst.Add(againstConst, tmp2)
	againstConst.Sub(againstConst, newBigFloatFrom(against.W))

	c := newBigFloat()
	c.Sub(siteConst, againstConst)

	val := newBigFloat()
	val.Mul(bigA, newBigFloatFrom(q.X))
	t := newBigFloat()
	t.Mul(bigB, newBigFloatFrom(q.Y))
	val.Add(val, t)
	val.Add(val, c)

	switch val.Sign() {
	case 1:
		return CounterClockwise
	case -1:
		return Clockwise
	default:
		return Collinear
	}
}
