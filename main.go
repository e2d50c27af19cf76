// Copyright 2017 The Godic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/godic/ana"
	"github.com/cpmech/godic/inp"
	"github.com/cpmech/godic/mdl/elast"
	"github.com/cpmech/godic/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
		}
	}()

	// read input parameters
	matfn, _ := io.ArgToFilename(0, "", ".mat", false)
	matname := io.ArgToString(1, "aluminium")
	verbose := io.ArgToBool(2, true)
	hasmat := matfn != ""

	// message
	if verbose {
		io.PfWhite("\nGodic -- DIC strain maps to linear-elastic stress maps\n")
		io.Pf("Copyright 2017 The Godic Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"materials file", "matfn", matfn,
			"material name", "matname", matname,
			"show messages", "verbose", verbose,
		))
	}

	// material model
	modelname := "plane-stress"
	prms := dbf.Params{
		&dbf.P{N: "E", V: 70000},
		&dbf.P{N: "nu", V: 0.3},
	}
	if hasmat {
		mdb, err := inp.ReadMat("", matfn)
		if err != nil {
			chk.Panic("cannot read materials file:\n%v", err)
		}
		mat := mdb.Get(matname)
		if mat == nil {
			chk.Panic("material %q is not in file %q", matname, matfn)
		}
		modelname = mat.Model
		prms = mat.Prms
	}

	// synthetic strain field: plate with hole under remote horizontal load
	var sol ana.PlateHole
	err := sol.Init(modelname, append(dbf.Params{
		&dbf.P{N: "r", V: 1},
		&dbf.P{N: "qnH", V: 10},
	}, prms...))
	if err != nil {
		chk.Panic("cannot initialise plate-hole solution:\n%v", err)
	}
	field, err := sol.StrainField(1.0, 0.0, 3.0, 3.0, 101, 101)
	if err != nil {
		chk.Panic("cannot build strain field:\n%v", err)
	}

	// stress maps
	stress, err := elast.Calc(field, modelname, prms)
	if err != nil {
		chk.Panic("stress evaluation failed:\n%v", err)
	}

	// report ranges
	fields := out.Fields(stress)
	lo, hi := out.Range(fields)
	if verbose {
		io.Pf("model = %q\n\n", modelname)
		for _, f := range fields {
			flo, fhi := out.Range([]out.Field{f})
			io.Pf("%-8s : min=%12.6f  max=%12.6f\n", f.Key, flo, fhi)
		}
		io.Pf("\nshared colorbar range: [%g, %g]\n", lo, hi)
	}
}
