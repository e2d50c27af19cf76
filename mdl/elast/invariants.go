// Copyright 2017 The Godic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elast

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// PrincipalStresses computes the in-plane principal stresses and the maximum
// in-plane shear at one point. smin ≤ smax always, with equality iff tmaxp = 0
func PrincipalStresses(sxx, syy, sxy float64) (smax, smin, tmaxp float64) {
	d := 0.5 * (sxx - syy)
	c := 0.5 * (sxx + syy)
	tmaxp = math.Sqrt(d*d + sxy*sxy)
	smax = c + tmaxp
	smin = c - tmaxp
	return
}

// MaxShear3D computes the maximum shear considering the out-of-plane
// direction, with the third principal stress equal to szz (zero under plane
// stress). The plane-stress branch keeps only the σmax candidate; this
// asymmetry follows the physics of the thin-sheet assumption
func MaxShear3D(pstress bool, tmaxp, smax, smin, szz float64) float64 {
	if pstress {
		return utl.Max(tmaxp, 0.5*math.Abs(smax))
	}
	return utl.Max(tmaxp, utl.Max(0.5*math.Abs(smax-szz), 0.5*math.Abs(smin-szz)))
}

// VonMises computes the von Mises equivalent stress from the in-plane
// principal stresses and the third principal stress szz:
//
//	σvm = sqrt( ½·[ (σmax−σmin)² + (σmax−σzz)² + (σmin−σzz)² ] )
//
// The result is non-negative and vanishes iff all three coincide
func VonMises(smax, smin, szz float64) float64 {
	a := smax - smin
	b := smax - szz
	c := smin - szz
	return math.Sqrt(0.5 * (a*a + b*b + c*c))
}
