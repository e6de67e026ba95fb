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

var subpathCases = []TestCase{
	{
		Name:   "two_triangles",
		Path:   twoTriangles(20, 32, 44, 32, 10),
		Rule:   scan.NonZero,
		Width:  64,
		Height: 64,
	},
	{
		Name:   "overlapping_rect_nonzero",
		Path:   overlappingRectangles(10, 10, 40, 40, 24, 24, 54, 54),
		Rule:   scan.NonZero,
		Width:  64,
		Height: 64,
	},
	{
		Name:   "overlapping_rect_evenodd",
		Path:   overlappingRectangles(10, 10, 40, 40, 24, 24, 54, 54),
		Rule:   scan.EvenOdd,
		Width:  64,
		Height: 64,
	},
	{
		Name:   "ring_evenodd",
		Path:   ringShape(32, 32, 24, 10),
		Rule:   scan.EvenOdd,
		Width:  64,
		Height: 64,
	},
	{
		Name:   "ring_nonzero",
		Path:   ringShape(32, 32, 24, 10),
		Rule:   scan.NonZero,
		Width:  64,
		Height: 64,
	},
	{
		Name:   "letter_o",
		Path:   letterO(32, 32, 28, 18),
		Rule:   scan.NonZero,
		Width:  64,
		Height: 64,
	},
	{
		Name:   "multiple_rings",
		Path:   multipleRings(64, 64),
		Rule:   scan.EvenOdd,
		Width:  128,
		Height: 128,
	},
	{
		Name:   "many_small_shapes",
		Path:   manySmallShapes(8, 8),
		Rule:   scan.NonZero,
		Width:  128,
		Height: 128,
	},
	{
		Name:   "open_subpaths",
		Path:   openSubpaths(),
		Rule:   scan.NonZero,
		Width:  64,
		Height: 64,
	},
}

// twoTriangles builds two separate, disjoint triangles.
func twoTriangles(cx1, cy1, cx2, cy2 float64, size float64) *path.Data {
	p := &path.Data{}
	for _, c := range [][2]float64{{cx1, cy1}, {cx2, cy2}} {
		p = p.MoveTo(pt(c[0], c[1]-size)).
			LineTo(pt(c[0]+size, c[1]+size)).
			LineTo(pt(c[0]-size, c[1]+size)).
			Close()
	}
	return p
}

// overlappingRectangles builds two overlapping rectangles with the same
// orientation.
func overlappingRectangles(x1a, y1a, x2a, y2a, x1b, y1b, x2b, y2b float64) *path.Data {
	p := rectangle(x1a, y1a, x2a, y2a)
	return appendRectangle(p, x1b, y1b, x2b, y2b)
}

// appendRectangle adds a closed rectangular subpath to p.
func appendRectangle(p *path.Data, x1, y1, x2, y2 float64) *path.Data {
	return p.MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}

// ringShape builds a square ring.  Both squares have the same orientation,
// so the hole only appears with the even-odd rule.
func ringShape(cx, cy, outerSize, innerSize float64) *path.Data {
	p := rectangle(cx-outerSize, cy-outerSize, cx+outerSize, cy+outerSize)
	return appendRectangle(p, cx-innerSize, cy-innerSize, cx+innerSize, cy+innerSize)
}

// letterO builds an "O" from two circles of opposite orientation, which
// has a hole under both fill rules.
func letterO(cx, cy, outerR, innerR float64) *path.Data {
	p := circle(cx, cy, outerR)
	k := innerR * kappa
	return p.MoveTo(pt(cx+innerR, cy)).
		CubeTo(pt(cx+innerR, cy+k), pt(cx+k, cy+innerR), pt(cx, cy+innerR)).
		CubeTo(pt(cx-k, cy+innerR), pt(cx-innerR, cy+k), pt(cx-innerR, cy)).
		CubeTo(pt(cx-innerR, cy-k), pt(cx-k, cy-innerR), pt(cx, cy-innerR)).
		CubeTo(pt(cx+k, cy-innerR), pt(cx+innerR, cy-k), pt(cx+innerR, cy)).
		Close()
}

// multipleRings builds three square rings.
func multipleRings(cx, cy float64) *path.Data {
	p := &path.Data{}
	rings := []struct{ cx, cy, outer, inner float64 }{
		{cx - 30, cy - 30, 20, 10},
		{cx + 30, cy - 30, 20, 10},
		{cx, cy + 30, 20, 10},
	}
	for _, r := range rings {
		p = appendRectangle(p, r.cx-r.outer, r.cy-r.outer, r.cx+r.outer, r.cy+r.outer)
		p = appendRectangle(p, r.cx-r.inner, r.cy-r.inner, r.cx+r.inner, r.cy+r.inner)
	}
	return p
}

// manySmallShapes builds a grid of small triangles.
func manySmallShapes(rows, cols int) *path.Data {
	const size = 5.0
	const spacing = 14.0

	p := &path.Data{}
	for row := range rows {
		for col := range cols {
			cx := 10.0 + float64(col)*spacing
			cy := 10.0 + float64(row)*spacing
			p = p.MoveTo(pt(cx, cy-size)).
				LineTo(pt(cx+size, cy+size)).
				LineTo(pt(cx-size, cy+size)).
				Close()
		}
	}
	return p
}

// openSubpaths builds two triangles without ClosePath commands.  Filling
// closes them implicitly.
func openSubpaths() *path.Data {
	return (&path.Data{}).
		MoveTo(pt(5, 5)).
		LineTo(pt(30, 5)).
		LineTo(pt(5, 30)).
		MoveTo(pt(59, 34)).
		LineTo(pt(59, 59)).
		LineTo(pt(34, 59))
}
