// Copyright 2017 The Godic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elast

import (
	"fmt"
	"math"

	"github.com/cpmech/gosl/fun/dbf"
)

// tolerance for vanishing formula denominators
const zeroDen = 1e-10

// PlaneStress implements the linear-elastic law for thin sheets where the
// out-of-plane stresses vanish:
//
//	σxx = E/(1−ν²)·(exx + ν·eyy)
//	σyy = E/(1−ν²)·(ν·exx + eyy)
//	σxy = E/(1+ν)·exy
type PlaneStress struct {

	// parameters
	E float64 // Young's modulus
	ν float64 // Poisson's coefficient

	// derived
	c0 float64 // E/(1−ν²)
	c1 float64 // E/(1+ν)
}

// add model to factory
func init() {
	allocators["plane-stress"] = func() Model { return new(PlaneStress) }
}

// Init initialises model
func (o *PlaneStress) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.ν = p.V
		default:
			return fmt.Errorf("plane-stress: parameter named %q is incorrect: %w", p.N, ErrInvalidParameters)
		}
	}
	if o.E <= 0 {
		return fmt.Errorf("plane-stress: E=%g must be positive: %w", o.E, ErrInvalidParameters)
	}
	den := 1.0 - o.ν*o.ν
	if math.Abs(den) < zeroDen {
		return fmt.Errorf("plane-stress: nu=%g makes 1-nu² vanish: %w", o.ν, ErrInvalidParameters)
	}
	o.c0 = o.E / den
	o.c1 = o.E / (1.0 + o.ν)
	return
}

// GetPrms gets (an example) of parameters
func (o PlaneStress) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: 70000},
		&dbf.P{N: "nu", V: 0.3},
	}
}

// Pstress returns true
func (o PlaneStress) Pstress() bool {
	return true
}

// Stress computes stresses for given strains. szz is always zero
func (o PlaneStress) Stress(exx, eyy, exy float64) (sxx, syy, sxy, szz float64) {
	sxx = o.c0 * (exx + o.ν*eyy)
	syy = o.c0 * (o.ν*exx + eyy)
	sxy = o.c1 * exy
	return
}

// Strain computes strains for given stresses (compliance form)
func (o PlaneStress) Strain(sxx, syy, sxy float64) (exx, eyy, exy float64) {
	exx = (sxx - o.ν*syy) / o.E
	eyy = (syy - o.ν*sxx) / o.E
	exy = (1.0 + o.ν) * sxy / o.E
	return
}
