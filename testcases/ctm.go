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
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/region/scan"
)

var ctmCases = []TestCase{
	// uniform scaling
	{
		Name:   "scale_2x",
		Path:   rectangle(0, 0, 20, 20),
		Rule:   scan.NonZero,
		Width:  128,
		Height: 128,
		CTM:    matrix.Scale(2, 2).Translate(24, 24),
	},
	{
		Name:   "scale_half",
		Path:   rectangle(0, 0, 80, 80),
		Rule:   scan.NonZero,
		Width:  64,
		Height: 64,
		CTM:    matrix.Scale(0.5, 0.5).Translate(12, 12),
	},

	// rotation
	{
		Name:   "rotate_45deg",
		Path:   rectangle(-10, -10, 10, 10),
		Rule:   scan.NonZero,
		Width:  64,
		Height: 64,
		CTM:    matrix.RotateDeg(45).Translate(32, 32),
	},
	{
		Name:   "rotate_90deg",
		Path:   rectangle(-15, -10, 15, 10),
		Rule:   scan.NonZero,
		Width:  64,
		Height: 64,
		CTM:    matrix.RotateDeg(90).Translate(32, 32),
	},
	{
		Name:   "rotate_5deg",
		Path:   rectangle(-20, -10, 20, 10),
		Rule:   scan.NonZero,
		Width:  64,
		Height: 64,
		CTM:    matrix.RotateDeg(5).Translate(32, 32),
	},

	// non-uniform scaling
	{
		Name:   "circle_to_ellipse",
		Path:   circle(0, 0, 15),
		Rule:   scan.NonZero,
		Width:  128,
		Height: 64,
		CTM:    matrix.Scale(2, 1).Translate(64, 32),
	},

	// shear
	{
		Name:   "shear_horizontal",
		Path:   rectangle(-15, -15, 15, 15),
		Rule:   scan.NonZero,
		Width:  64,
		Height: 64,
		CTM:    matrix.Matrix{1, 0, 0.5, 1, 0, 0}.Translate(32, 32),
	},
	{
		Name:   "shear_vertical",
		Path:   rectangle(-15, -15, 15, 15),
		Rule:   scan.NonZero,
		Width:  64,
		Height: 64,
		CTM:    matrix.Matrix{1, 0.5, 0, 1, 0, 0}.Translate(32, 32),
	},

	// y axis pointing up, as in PDF user space
	{
		Name:   "flip_y",
		Path:   triangle(10, 10, 32, 54, 54, 10),
		Rule:   scan.NonZero,
		Width:  64,
		Height: 64,
		CTM:    matrix.Matrix{1, 0, 0, -1, 0, 64},
	},
}
