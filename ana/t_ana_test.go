// Copyright 2017 The Godic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/godic/mdl/elast"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_uniform01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("uniform01. homogeneous field, plane stress")

	sol := UniformStrain{Exx: 0.001, Eyy: -0.0004, Exy: 0.0002}
	err := sol.Init("plane-stress", []*dbf.P{
		&dbf.P{N: "E", V: 70000},
		&dbf.P{N: "nu", V: 0.3},
	})
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}

	f := sol.Field(4.0, 2.0, 11, 21)
	s, err := elast.Calc(f, "plane-stress", []*dbf.P{
		&dbf.P{N: "E", V: 70000},
		&dbf.P{N: "nu", V: 0.3},
	})
	if err != nil {
		tst.Errorf("Calc failed:\n%v", err)
		return
	}

	emax := sol.CompareStress(s, 1e-12, chk.Verbose)
	io.Pforan("emax = %v\n", emax)
	chk.Float64(tst, "emax", 1e-12, emax, 0)
}

func Test_uniform02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("uniform02. homogeneous field, plane strain")

	sol := UniformStrain{Exx: 0.001, Eyy: 0.0005, Exy: 0}
	err := sol.Init("plane-strain", []*dbf.P{
		&dbf.P{N: "E", V: 210000},
		&dbf.P{N: "nu", V: 0.29},
	})
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}

	// σzz must be ν(σxx+σyy)
	sxx, syy, _, szz := sol.Stress()
	chk.Float64(tst, "σzz", 1e-11, szz, 0.29*(sxx+syy))

	f := sol.Field(1.0, 1.0, 5, 5)
	s, err := elast.Calc(f, "plane-strain", []*dbf.P{
		&dbf.P{N: "E", V: 210000},
		&dbf.P{N: "nu", V: 0.29},
	})
	if err != nil {
		tst.Errorf("Calc failed:\n%v", err)
		return
	}
	emax := sol.CompareStress(s, 1e-11, chk.Verbose)
	chk.Float64(tst, "emax", 1e-11, emax, 0)
}

func Test_platehole01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("platehole01. Kirsch field round trip")

	prms := []*dbf.P{
		&dbf.P{N: "r", V: 1},
		&dbf.P{N: "qnH", V: 10},
		&dbf.P{N: "E", V: 70000},
		&dbf.P{N: "nu", V: 0.3},
	}
	var sol PlateHole
	err := sol.Init("plane-stress", prms)
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}

	// sampling inside the hole is rejected
	_, err = sol.StrainField(0.5, 0, 2, 2, 5, 5)
	if err == nil {
		tst.Errorf("StrainField should reject a region intersecting the hole")
		return
	}

	// strains sampled from the analytical stresses must map back exactly
	f, err := sol.StrainField(1.0, 0.0, 3.0, 3.0, 41, 41)
	if err != nil {
		tst.Errorf("StrainField failed:\n%v", err)
		return
	}
	s, err := elast.Calc(f, "plane-stress", []*dbf.P{
		&dbf.P{N: "E", V: 70000},
		&dbf.P{N: "nu", V: 0.3},
	})
	if err != nil {
		tst.Errorf("Calc failed:\n%v", err)
		return
	}
	emax := sol.CompareStress(f, s, chk.Verbose)
	io.Pforan("emax = %v\n", emax)
	chk.Float64(tst, "emax", 1e-9, emax, 0)

	// hole boundary: factor-3 concentration at (0,r) and −qnH at (r,0)
	sxx, syy, sxy := sol.Stress(0, 1.0)
	io.Pforan("σxx(0,r)=%v σyy(0,r)=%v\n", sxx, syy)
	chk.Float64(tst, "σxx(0,r)", 1e-12, sxx, 30)
	chk.Float64(tst, "σyy(0,r)", 1e-12, syy, 0)
	chk.Float64(tst, "σxy(0,r)", 1e-12, sxy, 0)
	sxx, syy, _ = sol.Stress(1.0, 0)
	chk.Float64(tst, "σxx(r,0)", 1e-12, sxx, 0)
	chk.Float64(tst, "σyy(r,0)", 1e-12, syy, -10)

	if chk.Verbose {
		plt.Reset(true, &plt.A{Eps: true, Prop: 1.2, WidthPt: 455})
		plt.Subplot(2, 1, 1)
		plt.Plot(f.X[0], s.Sxx[0], &plt.A{C: "r", L: "$\\sigma_{xx}$ @ $y=0$"})
		plt.Plot(f.X[0], s.Syy[0], &plt.A{C: "g", L: "$\\sigma_{yy}$ @ $y=0$"})
		plt.Plot(f.X[0], s.Sxy[0], &plt.A{C: "b", L: "$\\sigma_{xy}$ @ $y=0$"})
		plt.Gll("$x$", "stresses", nil)
		plt.Subplot(2, 1, 2)
		plt.Plot(f.X[0], s.Svm[0], &plt.A{C: "m", L: "$\\sigma_{vM}$ @ $y=0$"})
		plt.Gll("$x$", "von Mises", nil)
		plt.Save("/tmp/godic", "ana_platehole01")
	}
}
