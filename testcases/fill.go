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
	"math"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/region/scan"
)

var fillCases = []TestCase{
	{
		Name:   "triangle_nonzero",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Rule:   scan.NonZero,
		Width:  64,
		Height: 64,
	},
	{
		Name:   "triangle_evenodd",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Rule:   scan.EvenOdd,
		Width:  64,
		Height: 64,
	},
	{
		Name:   "star_nonzero",
		Path:   fivePointStar(32, 32, 25),
		Rule:   scan.NonZero,
		Width:  64,
		Height: 64,
	},
	{
		Name:   "star_evenodd",
		Path:   fivePointStar(32, 32, 25),
		Rule:   scan.EvenOdd,
		Width:  64,
		Height: 64,
	},
	{
		Name:   "rectangle",
		Path:   rectangle(10, 10, 44, 44),
		Rule:   scan.NonZero,
		Width:  64,
		Height: 64,
	},
	{
		Name:   "staircase",
		Path:   staircase(8, 8, 6, 6),
		Rule:   scan.NonZero,
		Width:  64,
		Height: 64,
	},
	{
		Name:   "empty_outside_canvas",
		Path:   rectangle(70, 70, 90, 90),
		Rule:   scan.NonZero,
		Width:  64,
		Height: 64,
	},
}

// triangle builds a triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3)).
		Close()
}

// fivePointStar builds a five-pointed star (self-intersecting).
func fivePointStar(cx, cy, r float64) *path.Data {
	p := &path.Data{}
	// connect every second point: 0 -> 2 -> 4 -> 1 -> 3
	for k, i := range []int{0, 2, 4, 1, 3} {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		v := pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
		if k == 0 {
			p = p.MoveTo(v)
		} else {
			p = p.LineTo(v)
		}
	}
	return p.Close()
}

// rectangle builds a rectangular path.
func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}

// staircase builds a polygon with n steps of the given size, going down
// and to the right from (x, y).
func staircase(x, y float64, n int, step float64) *path.Data {
	p := (&path.Data{}).MoveTo(pt(x, y))
	for i := range n {
		p = p.LineTo(pt(x+float64(i+1)*step, y+float64(i)*step))
		p = p.LineTo(pt(x+float64(i+1)*step, y+float64(i+1)*step))
	}
	return p.LineTo(pt(x, y+float64(n)*step)).Close()
}
