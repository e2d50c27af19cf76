// Copyright 2017 The Godic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package elast implements plane linear-elastic constitutive models mapping
// measured strains to stresses, together with the derived stress invariants
// (principal stresses, maximum shear, von Mises)
package elast

import (
	"errors"
	"fmt"

	"github.com/cpmech/gosl/fun/dbf"
)

// errors reported by model allocation and initialisation
var (
	// ErrUnsupportedModel indicates a model selector outside the implemented set
	ErrUnsupportedModel = errors.New("elast: unsupported material model")

	// ErrInvalidParameters indicates a non-physical E or a ν hitting a zero denominator
	ErrInvalidParameters = errors.New("elast: invalid material parameters")
)

// Model defines the pointwise linear-elastic law. Implementations are pure:
// no state, no coupling between grid cells
type Model interface {

	// Init initialises and validates the model parameters
	Init(prms dbf.Params) error

	// GetPrms gets (an example) of parameters
	GetPrms() dbf.Params

	// Pstress tells whether this is a plane-stress model (σzz = 0)
	Pstress() bool

	// Stress computes the stress components for given strains at one point.
	// szz is zero under plane stress
	Stress(exx, eyy, exy float64) (sxx, syy, sxy, szz float64)

	// Strain inverts the law, computing strains for given in-plane stresses
	Strain(sxx, syy, sxy float64) (exx, eyy, exy float64)
}

// New returns a new material model
func New(name string) (Model, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, fmt.Errorf("model %q is not available in 'elast' database: %w", name, ErrUnsupportedModel)
	}
	return allocator(), nil
}

// allocators holds all available models; modelname => allocator
var allocators = map[string]func() Model{}
