// Copyright 2017 The Godic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elast

import (
	"github.com/cpmech/godic/dic"
	"github.com/cpmech/gosl/fun/dbf"
)

// Evaluate computes all stress maps for a measured strain field using an
// initialised material model. The computation is element-wise with no
// coupling between grid cells and has no side effects; on error, no partial
// output is returned
func Evaluate(f *dic.StrainField, m Model) (*dic.StressField, error) {
	if err := f.Check(); err != nil {
		return nil, err
	}
	nr, nc := f.Size()
	s := dic.NewStressField(nr, nc)
	pstress := m.Pstress()
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			exx, eyy, exy := f.Strains(i, j)
			sxx, syy, sxy, szz := m.Stress(exx, eyy, exy)
			smax, smin, tmaxp := PrincipalStresses(sxx, syy, sxy)
			s.Sxx[i][j] = sxx
			s.Sxy[i][j] = sxy
			s.Syy[i][j] = syy
			s.Szz[i][j] = szz
			s.Smax[i][j] = smax
			s.Smin[i][j] = smin
			s.TmaxP[i][j] = tmaxp
			s.Tmax3D[i][j] = MaxShear3D(pstress, tmaxp, smax, smin, szz)
			s.Svm[i][j] = VonMises(smax, smin, szz)
		}
	}
	return s, nil
}

// Calc allocates the model named modelname, initialises it with prms and
// evaluates the strain field in one call
func Calc(f *dic.StrainField, modelname string, prms dbf.Params) (*dic.StressField, error) {
	m, err := New(modelname)
	if err != nil {
		return nil, err
	}
	if err := m.Init(prms); err != nil {
		return nil, err
	}
	return Evaluate(f, m)
}
