// Copyright 2017 The Godic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dic

import "github.com/cpmech/gosl/utl"

// StrainField holds the grids measured by a DIC run, all co-indexed:
// coordinates, displacements and the four displacement gradients.
// The displacements are carried for overlay positioning only; the stress
// computation uses the gradients
type StrainField struct {
	X, Y       [][]float64 // coordinates
	U, V       [][]float64 // displacements
	DuDx, DvDx [][]float64 // gradients of u and v with respect to x
	DuDy, DvDy [][]float64 // gradients of u and v with respect to y
}

// NewStrainField allocates all grids of a strain field with m rows and n columns
func NewStrainField(m, n int) *StrainField {
	return &StrainField{
		X:    utl.Alloc(m, n),
		Y:    utl.Alloc(m, n),
		U:    utl.Alloc(m, n),
		V:    utl.Alloc(m, n),
		DuDx: utl.Alloc(m, n),
		DvDx: utl.Alloc(m, n),
		DuDy: utl.Alloc(m, n),
		DvDy: utl.Alloc(m, n),
	}
}

// Check verifies that all grids of this field are co-indexed
func (o *StrainField) Check() error {
	return CheckShapes(
		[]string{"x", "y", "u", "v", "dudx", "dvdx", "dudy", "dvdy"},
		o.X, o.Y, o.U, o.V, o.DuDx, o.DvDx, o.DuDy, o.DvDy,
	)
}

// Size returns the number of rows and columns of this field
func (o *StrainField) Size() (m, n int) {
	return GridSize(o.X)
}

// Strains computes the small-strain components at cell (i,j):
//
//	exx = du/dx   eyy = dv/dy   exy = ½(dv/dx + du/dy)
//
// exy is symmetric by construction (exy = eyx)
func (o *StrainField) Strains(i, j int) (exx, eyy, exy float64) {
	exx = o.DuDx[i][j]
	eyy = o.DvDy[i][j]
	exy = 0.5 * (o.DvDx[i][j] + o.DuDy[i][j])
	return
}

// StrainGrids fills three new grids with the derived strain components
func (o *StrainField) StrainGrids() (exx, eyy, exy [][]float64) {
	m, n := o.Size()
	exx, eyy, exy = utl.Alloc(m, n), utl.Alloc(m, n), utl.Alloc(m, n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			exx[i][j], eyy[i][j], exy[i][j] = o.Strains(i, j)
		}
	}
	return
}
