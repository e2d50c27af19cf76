// Copyright 2017 The Godic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dic

import "image"

// StrainProvider supplies measured strain fields; e.g. a reader of DIC
// correlation output. Implementations live outside this module
type StrainProvider interface {
	StrainField() (*StrainField, error)
}

// ImageProvider returns the decoded experiment image used as background for
// overlays, together with the physical size of one pixel. Decoding and file
// access are external concerns
type ImageProvider interface {
	Image() (image.Image, error)
	PixelSize() float64 // physical units per pixel
}

// Renderer displays one named scalar map over the experiment image.
// x, y and z are co-indexed grids. Colormaps, transparency and axis styling
// belong to the implementation
type Renderer interface {
	Render(key, label string, x, y, z [][]float64, img image.Image) error
}
