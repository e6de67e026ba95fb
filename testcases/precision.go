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

// precisionCases check that pixels are sampled at their centers.
var precisionCases = []TestCase{
	{
		Name:   "subpixel_offset_00",
		Path:   offsetRectangle(20, 20, 24, 24, 0.0),
		Rule:   scan.NonZero,
		Width:  64,
		Height: 64,
	},
	{
		Name:   "subpixel_offset_25",
		Path:   offsetRectangle(20, 20, 24, 24, 0.25),
		Rule:   scan.NonZero,
		Width:  64,
		Height: 64,
	},
	{
		Name:   "subpixel_offset_50",
		Path:   offsetRectangle(20, 20, 24, 24, 0.5),
		Rule:   scan.NonZero,
		Width:  64,
		Height: 64,
	},
	{
		Name:   "subpixel_offset_75",
		Path:   offsetRectangle(20, 20, 24, 24, 0.75),
		Rule:   scan.NonZero,
		Width:  64,
		Height: 64,
	},
	{
		Name:   "thin_sliver",
		Path:   rectangle(5, 10.2, 59, 10.8),
		Rule:   scan.NonZero,
		Width:  64,
		Height: 64,
	},
	{
		Name:   "sliver_missing_centers",
		Path:   rectangle(5, 10.6, 59, 11.4),
		Rule:   scan.NonZero,
		Width:  64,
		Height: 64,
	},
	{
		Name:   "small_shape_large_offset",
		Path:   largeOffsetRectangle(1e6, 1e6, 0.8),
		Rule:   scan.NonZero,
		Width:  64,
		Height: 64,
	},
	{
		Name:   "float64_precision",
		Path:   float64PrecisionShape(),
		Rule:   scan.NonZero,
		Width:  64,
		Height: 64,
	},
}

// offsetRectangle builds a rectangular path with a subpixel offset applied
// to all coordinates.
func offsetRectangle(x1, y1, w, h, offset float64) *path.Data {
	return rectangle(x1+offset, y1+offset, x1+w+offset, y1+h+offset)
}

// largeOffsetRectangle builds a square of the given size around (cx, cy),
// computed at large coordinates and shifted back to the canvas center.
func largeOffsetRectangle(cx, cy, size float64) *path.Data {
	dx := 32 - cx
	dy := 32 - cy
	return rectangle(cx-size/2+dx, cy-size/2+dy, cx+size/2+dx, cy+size/2+dy)
}

// float64PrecisionShape builds a shape using coordinates that require
// full float64 precision to represent accurately.
func float64PrecisionShape() *path.Data {
	const base = 32.0
	const delta1 = 0.123456789012345
	const delta2 = 0.123456789012346
	return rectangle(base-10+delta1, base-10+delta1, base+10+delta2, base+10+delta2)
}
