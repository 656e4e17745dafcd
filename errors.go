// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package povoro

import (
	"errors"
	"strconv"
)

// Sentinel error kinds. Callers should use errors.Is against these,
// since the package always wraps them with contextual detail via
// fmt.Errorf's %w verb.
var (
	// ErrDegenerateInput is returned when a moment or Lloyd call is given
	// an empty background triangulation, an empty site set, or a density
	// slice whose length does not match the number of faces.
	ErrDegenerateInput = errors.New("povoro: degenerate input")

	// ErrEmptyCell is returned by Lloyd for any site whose power cell has
	// zero mass, since the centroid is undefined in that case. The first
	// and second moment APIs do not return this error; they report a
	// zero mass row instead.
	ErrEmptyCell = errors.New("povoro: empty cell")

	// ErrPredicateExhausted names the failure mode of a filtered
	// geometric predicate that cannot resolve a sign even after falling
	// back to exact arithmetic and symbolic tie-breaking (spec §7's
	// "should be impossible" internal invariant). It is declared but
	// never returned: exactOrient and exactPowerSide resolve every case
	// their triage/stable tiers leave open, since a big.Float evaluation
	// of an affine or determinant expression is exact and its Sign() is
	// always -1, 0, or 1. Kept as the named target for that guard should
	// a future predicate be added whose exact tier can itself be
	// inconclusive (e.g. one needing a further symbolic perturbation
	// stage beyond id comparison).
	ErrPredicateExhausted = errors.New("povoro: predicate could not be resolved")

	// ErrAborted marks early termination of a traversal requested by an
	// Emit callback. The error Traverse returns wraps both ErrAborted and
	// whatever error the callback returned.
	ErrAborted = errors.New("povoro: traversal aborted by callback")
)

// EmptyCellError is the concrete error Lloyd returns for a zero-mass
// site, naming the offending site so a caller can shift or perturb it
// and retry (spec §4.6). It unwraps to ErrEmptyCell.
type EmptyCellError struct {
	Site int
}

func (e *EmptyCellError) Error() string {
	return "povoro: empty cell: site " + strconv.Itoa(e.Site)
}

func (e *EmptyCellError) Unwrap() error { return ErrEmptyCell }
