// Copyright 2017 The Godic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dic holds the data model for digital image correlation measurements:
// coordinate grids, displacement gradients, derived strains and the stress
// maps computed from them
package dic

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch indicates input grids with inconsistent dimensions
var ErrShapeMismatch = errors.New("dic: grids have mismatched shapes")

// GridSize returns the number of rows and columns of grid g
func GridSize(g [][]float64) (m, n int) {
	m = len(g)
	if m > 0 {
		n = len(g[0])
	}
	return
}

// SameShape tells whether grids a and b have identical dimensions
func SameShape(a, b [][]float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
	}
	return true
}

// CheckShapes verifies that all grids share the shape of the first one and
// that no grid has ragged rows. names labels each grid in error messages.
func CheckShapes(names []string, grids ...[][]float64) error {
	if len(grids) == 0 {
		return nil
	}
	m, n := GridSize(grids[0])
	for k, g := range grids {
		if len(g) != m {
			return fmt.Errorf("%q has %d rows but %q has %d: %w", names[k], len(g), names[0], m, ErrShapeMismatch)
		}
		for i := range g {
			if len(g[i]) != n {
				return fmt.Errorf("%q row %d has %d columns but %d are expected: %w", names[k], i, len(g[i]), n, ErrShapeMismatch)
			}
		}
	}
	return nil
}
