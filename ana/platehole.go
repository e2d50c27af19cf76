// Copyright 2017 The Godic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/godic/dic"
	"github.com/cpmech/godic/mdl/elast"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// PlateHole implements Kirsch's solution to a 2D plate with a circular hole
// loaded by remote distributed loads. It serves as a physically meaningful
// generator of synthetic DIC strain fields
//
//	y ^
//	  |    qnV
//	  ↓↓↓↓↓↓↓↓↓↓↓↓↓
//	  ------------- ←
//	  |           | ←
//	 ▷|      E    | ←
//	  |      ν    | ← qnH
//	  `'-.        | ←
//	      \       | ←
//	   r   -------- ← ---> x
//	          △
type PlateHole struct {

	// input
	r     float64 // radius
	qnV   float64 // vertical distributed load
	qnH   float64 // horizontal distributed load
	model elast.Model
}

// Init initialises this structure. modelname selects the elastic law used to
// derive strains from the analytical stresses
func (o *PlateHole) Init(modelname string, prms dbf.Params) (err error) {

	// default values
	o.r = 1.0
	o.qnV = 0.0
	o.qnH = 10.0

	// parameters
	var mprms dbf.Params
	for _, p := range prms {
		switch p.N {
		case "r":
			o.r = p.V
		case "qnV":
			o.qnV = p.V
		case "qnH":
			o.qnH = p.V
		default:
			mprms = append(mprms, p)
		}
	}

	// material model
	o.model, err = elast.New(modelname)
	if err != nil {
		return
	}
	return o.model.Init(mprms)
}

// Stress computes the in-plane stresses at (x,y). Points must lie outside
// the hole (x² + y² ≥ r²)
func (o *PlateHole) Stress(x, y float64) (sxx, syy, sxy float64) {

	// polar coordinates
	d := math.Sqrt(x*x + y*y)
	c, s := x/d, y/d
	cc, ss := c*c, s*s
	cs := c * s
	c2t := cc - ss
	s2t := 2.0 * c * s

	// solution in polar coordinates
	pm := (o.qnH + o.qnV) / 2.0
	pd := (o.qnH - o.qnV) / 2.0
	b := o.r * o.r / (d * d)
	sr := pm*(1.0-b) + pd*(1.0-4.0*b+3.0*b*b)*c2t
	st := pm*(1.0+b) - pd*(1.0+3.0*b*b)*c2t
	srt := -pd * (1.0 + 2.0*b - 3.0*b*b) * s2t

	// rotation to x-y coordinates
	sxx = cc*sr + ss*st - 2.0*cs*srt
	syy = ss*sr + cc*st + 2.0*cs*srt
	sxy = cs*sr - cs*st + (cc-ss)*srt
	return
}

// StrainField builds a synthetic m×n DIC field over [x0,x0+lx]×[y0,y0+ly] by
// sampling the analytical stresses and inverting the elastic law. The region
// must not intersect the hole; x0 ≥ r and y0 ≥ 0 guarantees that
func (o *PlateHole) StrainField(x0, y0, lx, ly float64, m, n int) (*dic.StrainField, error) {
	if x0 < o.r {
		return nil, chk.Err("sampling region starting at x0=%g intersects the hole with radius r=%g", x0, o.r)
	}
	f := dic.NewStrainField(m, n)
	xx := utl.LinSpace(x0, x0+lx, n)
	yy := utl.LinSpace(y0, y0+ly, m)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			x, y := xx[j], yy[i]
			sxx, syy, sxy := o.Stress(x, y)
			exx, eyy, exy := o.model.Strain(sxx, syy, sxy)
			f.X[i][j] = x
			f.Y[i][j] = y
			f.DuDx[i][j] = exx
			f.DvDy[i][j] = eyy
			f.DuDy[i][j] = exy
			f.DvDx[i][j] = exy
		}
	}
	return f, nil
}

// CompareStress compares a computed stress field against the analytical
// solution at every cell
//
//	Output:
//	 emax -- largest absolute error over σxx, σyy and σxy
func (o *PlateHole) CompareStress(f *dic.StrainField, s *dic.StressField, verbose bool) (emax float64) {
	m, n := s.Size()
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			sxx, syy, sxy := o.Stress(f.X[i][j], f.Y[i][j])
			emax = utl.Max(emax, math.Abs(s.Sxx[i][j]-sxx))
			emax = utl.Max(emax, math.Abs(s.Syy[i][j]-syy))
			emax = utl.Max(emax, math.Abs(s.Sxy[i][j]-sxy))
			if verbose && i == 0 && j == 0 {
				chk.PrintAnaNum("σxx(x0,y0)", 1e-13, sxx, s.Sxx[i][j], verbose)
				chk.PrintAnaNum("σyy(x0,y0)", 1e-13, syy, s.Syy[i][j], verbose)
				chk.PrintAnaNum("σxy(x0,y0)", 1e-13, sxy, s.Sxy[i][j], verbose)
			}
		}
	}
	return
}
