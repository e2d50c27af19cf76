// Copyright 2017 The Godic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elast

import (
	"fmt"
	"math"

	"github.com/cpmech/gosl/fun/dbf"
)

// PlaneStrain implements the linear-elastic law for thick or constrained
// bodies where the out-of-plane strain vanishes:
//
//	σxx = E(1−ν)/((1+ν)(1−2ν))·(exx + ν/(1−ν)·eyy)
//	σyy = E(1−ν)/((1+ν)(1−2ν))·(eyy + ν/(1−ν)·exx)
//	σxy = E/(1+ν)·exy
//	σzz = ν·(σxx + σyy)
type PlaneStrain struct {

	// parameters
	E float64 // Young's modulus
	ν float64 // Poisson's coefficient

	// derived
	c0 float64 // E(1−ν)/((1+ν)(1−2ν))
	c1 float64 // ν/(1−ν)
	c2 float64 // E/(1+ν)
}

// add model to factory
func init() {
	allocators["plane-strain"] = func() Model { return new(PlaneStrain) }
}

// Init initialises model
func (o *PlaneStrain) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.ν = p.V
		default:
			return fmt.Errorf("plane-strain: parameter named %q is incorrect: %w", p.N, ErrInvalidParameters)
		}
	}
	if o.E <= 0 {
		return fmt.Errorf("plane-strain: E=%g must be positive: %w", o.E, ErrInvalidParameters)
	}
	if math.Abs(1.0-o.ν) < zeroDen {
		return fmt.Errorf("plane-strain: nu=%g makes 1-nu vanish: %w", o.ν, ErrInvalidParameters)
	}
	den := (1.0 + o.ν) * (1.0 - 2.0*o.ν)
	if math.Abs(den) < zeroDen {
		return fmt.Errorf("plane-strain: nu=%g makes (1+nu)(1-2nu) vanish: %w", o.ν, ErrInvalidParameters)
	}
	o.c0 = o.E * (1.0 - o.ν) / den
	o.c1 = o.ν / (1.0 - o.ν)
	o.c2 = o.E / (1.0 + o.ν)
	return
}

// GetPrms gets (an example) of parameters
func (o PlaneStrain) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: 70000},
		&dbf.P{N: "nu", V: 0.3},
	}
}

// Pstress returns false
func (o PlaneStrain) Pstress() bool {
	return false
}

// Stress computes stresses for given strains, including the out-of-plane σzz
func (o PlaneStrain) Stress(exx, eyy, exy float64) (sxx, syy, sxy, szz float64) {
	sxx = o.c0 * (exx + o.c1*eyy)
	syy = o.c0 * (eyy + o.c1*exx)
	sxy = o.c2 * exy
	szz = o.ν * (sxx + syy)
	return
}

// Strain computes strains for given in-plane stresses (compliance form)
func (o PlaneStrain) Strain(sxx, syy, sxy float64) (exx, eyy, exy float64) {
	exx = (1.0 + o.ν) * ((1.0-o.ν)*sxx - o.ν*syy) / o.E
	eyy = (1.0 + o.ν) * ((1.0-o.ν)*syy - o.ν*sxx) / o.E
	exy = (1.0 + o.ν) * sxy / o.E
	return
}
