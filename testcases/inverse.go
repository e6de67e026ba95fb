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

	"seehuhn.de/go/region/scan"
)

var inverseCases = []TestCase{
	{
		Name:   "inverse_rectangle",
		Path:   rectangle(10, 10, 44, 44),
		Rule:   scan.InverseNonZero,
		Width:  64,
		Height: 64,
	},
	{
		Name:   "inverse_star_evenodd",
		Path:   fivePointStar(32, 32, 25),
		Rule:   scan.InverseEvenOdd,
		Width:  64,
		Height: 64,
	},
	{
		Name:   "inverse_outside_canvas",
		Path:   rectangle(100, 100, 120, 120),
		Rule:   scan.InverseNonZero,
		Width:  64,
		Height: 64,
	},
	{
		Name:   "inverse_covers_canvas",
		Path:   rectangle(-10, -10, 74, 74),
		Rule:   scan.InverseNonZero,
		Width:  64,
		Height: 64,
	},
}

// clipCases restrict the output to a clip region other than the canvas.
var clipCases = []TestCase{
	{
		Name:   "clip_rect",
		Path:   circle(32, 32, 28),
		Rule:   scan.NonZero,
		Width:  64,
		Height: 64,
		Clip:   []image.Rectangle{image.Rect(16, 8, 60, 40)},
	},
	{
		Name:   "clip_two_rects",
		Path:   circle(32, 32, 28),
		Rule:   scan.NonZero,
		Width:  64,
		Height: 64,
		Clip: []image.Rectangle{
			image.Rect(0, 0, 24, 24),
			image.Rect(40, 40, 64, 64),
		},
	},
	{
		Name:   "clip_bars",
		Path:   diamond(32, 32, 30),
		Rule:   scan.EvenOdd,
		Width:  64,
		Height: 64,
		Clip: []image.Rectangle{
			image.Rect(0, 0, 8, 64),
			image.Rect(16, 0, 24, 64),
			image.Rect(32, 0, 40, 64),
			image.Rect(48, 0, 56, 64),
		},
	},
	{
		Name:   "clip_inverse",
		Path:   circle(32, 32, 16),
		Rule:   scan.InverseNonZero,
		Width:  64,
		Height: 64,
		Clip: []image.Rectangle{
			image.Rect(4, 4, 60, 30),
			image.Rect(4, 34, 60, 60),
		},
	},
}
