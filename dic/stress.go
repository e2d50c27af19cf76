// Copyright 2017 The Godic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dic

import "github.com/cpmech/gosl/utl"

// StressField holds the stress maps derived from one strain field, co-indexed
// with the input grids. Fields are computed once per evaluation and must be
// treated as immutable afterwards
type StressField struct {

	// stress tensor components
	Sxx [][]float64 // σxx
	Sxy [][]float64 // σxy
	Syy [][]float64 // σyy
	Szz [][]float64 // σzz out-of-plane; zeros under plane stress

	// derived maps
	Smax   [][]float64 // maximum principal stress in the xy-plane
	Smin   [][]float64 // minimum principal stress in the xy-plane
	TmaxP  [][]float64 // maximum in-plane shear
	Tmax3D [][]float64 // maximum shear considering the out-of-plane direction
	Svm    [][]float64 // von Mises equivalent stress
}

// NewStressField allocates all maps with m rows and n columns
func NewStressField(m, n int) *StressField {
	return &StressField{
		Sxx:    utl.Alloc(m, n),
		Sxy:    utl.Alloc(m, n),
		Syy:    utl.Alloc(m, n),
		Szz:    utl.Alloc(m, n),
		Smax:   utl.Alloc(m, n),
		Smin:   utl.Alloc(m, n),
		TmaxP:  utl.Alloc(m, n),
		Tmax3D: utl.Alloc(m, n),
		Svm:    utl.Alloc(m, n),
	}
}

// Size returns the number of rows and columns of this field
func (o *StressField) Size() (m, n int) {
	return GridSize(o.Sxx)
}
