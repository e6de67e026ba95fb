// seehuhn.de/go/region - integer region algebra
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package testcases

import (
	"image"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/region/scan"
)

// TestCase defines a single path-to-region conversion.
type TestCase struct {
	Name   string            // lowercase a-z, 0-9 and _ only
	Path   *path.Data        // the geometry to fill
	Rule   scan.FillRule     // fill rule
	Width  int               // canvas width in pixels
	Height int               // canvas height in pixels
	CTM    matrix.Matrix     // transformation matrix (zero-value means no transform)
	Clip   []image.Rectangle // optional clip, as a union of rectangles; nil means the canvas
}

// Canvas returns the rectangle covered by the test case's canvas.
func (tc TestCase) Canvas() image.Rectangle {
	return image.Rect(0, 0, tc.Width, tc.Height)
}

// Scanner returns a scanner configured for the test case.
func (tc TestCase) Scanner() *scan.Scanner {
	s := scan.NewScanner(tc.Canvas())
	if tc.CTM != (matrix.Matrix{}) {
		s.CTM = tc.CTM
	}
	return s
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// kappa is the control point distance for approximating a quarter circle
// of radius 1 by a cubic Bézier curve.
const kappa = 0.5522847498307936
