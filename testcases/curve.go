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

var curveCases = []TestCase{
	{
		Name:   "quadratic",
		Path:   quadraticCurve(10, 50, 32, 5, 54, 50),
		Rule:   scan.NonZero,
		Width:  64,
		Height: 64,
	},
	{
		Name:   "cubic",
		Path:   cubicCurve(10, 50, 10, 5, 54, 5, 54, 50),
		Rule:   scan.NonZero,
		Width:  64,
		Height: 64,
	},
	{
		Name:   "cubic_loop",
		Path:   cubicCurve(10, 32, 70, 0, -6, 0, 54, 32),
		Rule:   scan.EvenOdd,
		Width:  64,
		Height: 64,
	},
	{
		Name:   "s_curve",
		Path:   sCurveQuadratic(10, 40, 54, 24),
		Rule:   scan.NonZero,
		Width:  64,
		Height: 64,
	},
	{
		Name:   "circle",
		Path:   circle(32, 32, 20),
		Rule:   scan.NonZero,
		Width:  64,
		Height: 64,
	},
	{
		Name:   "circle_small",
		Path:   circle(32, 32, 3),
		Rule:   scan.NonZero,
		Width:  64,
		Height: 64,
	},
	{
		Name:   "ellipse",
		Path:   ellipse(32, 32, 28, 12),
		Rule:   scan.NonZero,
		Width:  64,
		Height: 64,
	},
	{
		Name:   "pie_slice",
		Path:   arc(32, 32, 24, 3),
		Rule:   scan.NonZero,
		Width:  64,
		Height: 64,
	},
}

// quadraticCurve builds a closed shape with a quadratic Bézier curve.
func quadraticCurve(x1, y1, cx, cy, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt(cx, cy), pt(x2, y2)).
		Close()
}

// cubicCurve builds a closed shape with a cubic Bézier curve.
func cubicCurve(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		CubeTo(pt(c1x, c1y), pt(c2x, c2y), pt(x2, y2)).
		Close()
}

// sCurveQuadratic builds a closed S-shaped path from two quadratic Bézier
// curves.
func sCurveQuadratic(x1, y1, x2, y2 float64) *path.Data {
	midX := (x1 + x2) / 2
	midY := (y1 + y2) / 2

	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt((x1+midX)/2, y1-20), pt(midX, midY)).
		QuadTo(pt((midX+x2)/2, y2+20), pt(x2, y2)).
		Close()
}

// circle builds an approximate circle using four cubic Bézier curves.
func circle(cx, cy, r float64) *path.Data {
	return ellipse(cx, cy, r, r)
}

// ellipse builds an approximate ellipse using four cubic Bézier curves.
func ellipse(cx, cy, rx, ry float64) *path.Data {
	kx := rx * kappa
	ky := ry * kappa

	return (&path.Data{}).
		MoveTo(pt(cx+rx, cy)).
		CubeTo(pt(cx+rx, cy-ky), pt(cx+kx, cy-ry), pt(cx, cy-ry)).
		CubeTo(pt(cx-kx, cy-ry), pt(cx-rx, cy-ky), pt(cx-rx, cy)).
		CubeTo(pt(cx-rx, cy+ky), pt(cx-kx, cy+ry), pt(cx, cy+ry)).
		CubeTo(pt(cx+kx, cy+ry), pt(cx+rx, cy+ky), pt(cx+rx, cy)).
		Close()
}

// arc builds a pie slice consisting of the given number of quarter
// circles, counter-clockwise from the right.
func arc(cx, cy, r float64, quadrants int) *path.Data {
	k := r * kappa
	quarters := [4][3][2]float64{
		{{r, -k}, {k, -r}, {0, -r}},
		{{-k, -r}, {-r, -k}, {-r, 0}},
		{{-r, k}, {-k, r}, {0, r}},
		{{k, r}, {r, k}, {r, 0}},
	}

	p := (&path.Data{}).
		MoveTo(pt(cx, cy)).
		LineTo(pt(cx+r, cy))
	for _, q := range quarters[:min(max(quadrants, 1), 4)] {
		p = p.CubeTo(
			pt(cx+q[0][0], cy+q[0][1]),
			pt(cx+q[1][0], cy+q[1][1]),
			pt(cx+q[2][0], cy+q[2][1]))
	}
	return p.Close()
}
