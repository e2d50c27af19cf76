// Copyright 2017 The Godic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out assembles the derived stress maps into the named fields
// consumed by the presentation collaborator
package out

import (
	"image"

	"github.com/cpmech/godic/dic"
	"github.com/cpmech/gosl/utl"
)

// Field pairs one scalar map with its identification for display
type Field struct {
	Key   string      // short name; e.g. "sxx"
	Label string      // display label; e.g. "$\sigma_{xx}$"
	Z     [][]float64 // scalar grid, co-indexed with the input coordinates
}

// Fields returns the eight maps of a stress field in display order. Each one
// is intended for exactly one overlay plot
func Fields(s *dic.StressField) []Field {
	return []Field{
		{"sxx", "$\\sigma_{xx}$", s.Sxx},
		{"sxy", "$\\sigma_{xy}$", s.Sxy},
		{"syy", "$\\sigma_{yy}$", s.Syy},
		{"smax", "$\\sigma_{max}$", s.Smax},
		{"smin", "$\\sigma_{min}$", s.Smin},
		{"tmax_xy", "$\\tau_{max}^{xy}$", s.TmaxP},
		{"tmax_3d", "$\\tau_{max}^{xyz}$", s.Tmax3D},
		{"svm", "$\\sigma_{vM}$", s.Svm},
	}
}

// Range returns the smallest and largest values over a set of fields so that
// the renderer can share one colorbar across all overlays
func Range(fields []Field) (lo, hi float64) {
	first := true
	for _, f := range fields {
		for i := range f.Z {
			for j := range f.Z[i] {
				v := f.Z[i][j]
				if first {
					lo, hi = v, v
					first = false
					continue
				}
				lo = utl.Min(lo, v)
				hi = utl.Max(hi, v)
			}
		}
	}
	return
}

// Render sends every field to the renderer together with the coordinate grids
// and the background image. It stops at the first error
func Render(r dic.Renderer, f *dic.StrainField, s *dic.StressField, img image.Image) error {
	for _, fld := range Fields(s) {
		if err := r.Render(fld.Key, fld.Label, f.X, f.Y, fld.Z, img); err != nil {
			return err
		}
	}
	return nil
}
