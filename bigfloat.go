// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package povoro

import "math/big"

// newBigFloat constructs a new big.Float with maximum precision, mirroring
// the helper used throughout robust geometric predicate implementations.
func newBigFloat() *big.Float { return new(big.Float).SetPrec(big.MaxPrec) }

func newBigFloatFrom(v float64) *big.Float { return newBigFloat().SetFloat64(v) }
