// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides utility functions for generating weighted
// sites for power diagrams.
package utils

import (
	"math/rand"

	"github.com/cellint/povoro/power"
)

// GenerateRandomSites generates cnt weighted sites uniformly distributed
// in [minX,maxX]x[minY,maxY], with weights uniform in [0,maxWeight].
// The seed parameter ensures reproducibility.
func GenerateRandomSites(cnt int, seed int64, minX, minY, maxX, maxY, maxWeight float64) []power.Site {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	sites := make([]power.Site, cnt)

	for i := range cnt {
		sites[i] = power.Site{
			X: minX + random.Float64()*(maxX-minX),
			Y: minY + random.Float64()*(maxY-minY),
			W: random.Float64() * maxWeight,
		}
	}

	return sites
}
