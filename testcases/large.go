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
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/region/scan"
)

// largeCases contain regions with many rows and intervals.
var largeCases = []TestCase{
	{
		Name:   "large_rectangle",
		Path:   rectangle(50, 50, 462, 462),
		Rule:   scan.NonZero,
		Width:  512,
		Height: 512,
	},
	{
		Name:   "large_concentric_nonzero",
		Path:   concentricRectangles(256, 256, 200, 100),
		Rule:   scan.NonZero,
		Width:  512,
		Height: 512,
	},
	{
		Name:   "large_concentric_evenodd",
		Path:   concentricRectangles(256, 256, 200, 100),
		Rule:   scan.EvenOdd,
		Width:  512,
		Height: 512,
	},
	{
		Name:   "large_diamond",
		Path:   diamond(256, 256, 180),
		Rule:   scan.NonZero,
		Width:  512,
		Height: 512,
	},
	{
		Name:   "large_grid",
		Path:   rectangleGrid(8, 8, 512, 512, 4),
		Rule:   scan.NonZero,
		Width:  512,
		Height: 512,
	},
	{
		Name:   "large_clipped",
		Path:   rectangle(-100, 100, 612, 400),
		Rule:   scan.NonZero,
		Width:  512,
		Height: 512,
	},
	{
		Name:   "large_checkerboard",
		Path:   checkerboard(16, 16, 32),
		Rule:   scan.NonZero,
		Width:  512,
		Height: 512,
	},
}

// concentricRectangles builds two nested squares of the same orientation.
func concentricRectangles(cx, cy, outer, inner float64) *path.Data {
	return ringShape(cx, cy, outer, inner)
}

// diamond builds a square rotated by 45 degrees.
func diamond(cx, cy, r float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(cx, cy-r)).
		LineTo(pt(cx+r, cy)).
		LineTo(pt(cx, cy+r)).
		LineTo(pt(cx-r, cy)).
		Close()
}

// rectangleGrid builds a grid of rectangles.
func rectangleGrid(rows, cols, width, height int, gap float64) *path.Data {
	cellW := float64(width) / float64(cols)
	cellH := float64(height) / float64(rows)

	p := &path.Data{}
	for row := range rows {
		for col := range cols {
			x1 := float64(col)*cellW + gap
			y1 := float64(row)*cellH + gap
			x2 := float64(col+1)*cellW - gap
			y2 := float64(row+1)*cellH - gap
			p = appendRectangle(p, x1, y1, x2, y2)
		}
	}
	return p
}

// checkerboard builds the black fields of a rows×cols checkerboard.
// Diagonally adjacent fields touch at their corners.
func checkerboard(rows, cols int, size float64) *path.Data {
	p := &path.Data{}
	for row := range rows {
		for col := range cols {
			if (row+col)%2 != 0 {
				continue
			}
			x := float64(col) * size
			y := float64(row) * size
			p = appendRectangle(p, x, y, x+size, y+size)
		}
	}
	return p
}
