// Copyright 2017 The Godic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions used to verify the stress maps
package ana

import (
	"math"

	"github.com/cpmech/godic/dic"
	"github.com/cpmech/godic/mdl/elast"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// UniformStrain implements the homogeneous-field solution: a constant strain
// state produces a constant stress state everywhere (the DIC analog of a
// patch test)
type UniformStrain struct {

	// input
	Exx, Eyy, Exy float64 // imposed strain state

	// derived
	model elast.Model
}

// Init initialises this structure, allocating the material model named
// modelname with parameters prms
func (o *UniformStrain) Init(modelname string, prms dbf.Params) (err error) {
	o.model, err = elast.New(modelname)
	if err != nil {
		return
	}
	return o.model.Init(prms)
}

// Stress returns the constant stress state corresponding to the imposed strains
func (o *UniformStrain) Stress() (sxx, syy, sxy, szz float64) {
	return o.model.Stress(o.Exx, o.Eyy, o.Exy)
}

// Field builds a strain field with m×n cells over the rectangle [0,lx]×[0,ly]
// carrying the imposed constant gradients and the compatible displacements
//
//	u = exx·x + exy·y   v = exy·x + eyy·y
func (o *UniformStrain) Field(lx, ly float64, m, n int) *dic.StrainField {
	f := dic.NewStrainField(m, n)
	xx := utl.LinSpace(0, lx, n)
	yy := utl.LinSpace(0, ly, m)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			x, y := xx[j], yy[i]
			f.X[i][j] = x
			f.Y[i][j] = y
			f.U[i][j] = o.Exx*x + o.Exy*y
			f.V[i][j] = o.Exy*x + o.Eyy*y
			f.DuDx[i][j] = o.Exx
			f.DvDy[i][j] = o.Eyy
			f.DuDy[i][j] = o.Exy
			f.DvDx[i][j] = o.Exy
		}
	}
	return f
}

// CompareStress compares a computed stress field against the constant solution
//
//	Output:
//	 emax -- largest absolute error over all cells and tensor components
func (o *UniformStrain) CompareStress(s *dic.StressField, tol float64, verbose bool) (emax float64) {
	sxx, syy, sxy, szz := o.Stress()
	if verbose {
		chk.PrintAnaNum("σxx", tol, sxx, s.Sxx[0][0], verbose)
		chk.PrintAnaNum("σyy", tol, syy, s.Syy[0][0], verbose)
		chk.PrintAnaNum("σxy", tol, sxy, s.Sxy[0][0], verbose)
		chk.PrintAnaNum("σzz", tol, szz, s.Szz[0][0], verbose)
	}
	m, n := s.Size()
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			emax = utl.Max(emax, math.Abs(s.Sxx[i][j]-sxx))
			emax = utl.Max(emax, math.Abs(s.Syy[i][j]-syy))
			emax = utl.Max(emax, math.Abs(s.Sxy[i][j]-sxy))
			emax = utl.Max(emax, math.Abs(s.Szz[i][j]-szz))
		}
	}
	return
}
