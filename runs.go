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

package region

import (
	"image"
	"math"
)

// Run layout of a complex region:
//
//	Top
//	[ Bottom, IntervalCount, [Left, Right]..., X-Sentinel ]
//	...
//	Y-Sentinel
//
// Each row covers [previous bottom, Bottom).  Rows with zero intervals are
// allowed in the interior, to keep the rows vertically contiguous.

// runSentinel terminates a row (X-sentinel) and the whole region
// (Y-sentinel).  It is never a valid coordinate.
const runSentinel int32 = math.MaxInt32

// rectRegionRuns is the number of run values needed to encode a single
// rectangle: top, bottom, count, left, right, X-sentinel, Y-sentinel.
const rectRegionRuns = 7

// Representable coordinate range.  The sentinel is excluded.
const (
	MinCoord = math.MinInt32
	MaxCoord = math.MaxInt32 - 1
)

// rowCursor walks the rows of an encoded run array without copying.
// pos is the index of the current row's Bottom value; once all rows are
// consumed, runs[pos] is the Y-sentinel.
type rowCursor struct {
	runs []int32
	pos  int
}

// newRowCursor positions a cursor at the first row of runs.
func newRowCursor(runs []int32) rowCursor {
	return rowCursor{runs: runs, pos: 1}
}

// top returns the region's top, stored before the first row.
func (c *rowCursor) top() int32 {
	return c.runs[0]
}

// done reports whether the cursor has passed the last row.
func (c *rowCursor) done() bool {
	return c.runs[c.pos] == runSentinel
}

// bottom returns the exclusive lower y bound of the current row, or the
// sentinel once the cursor is done.
func (c *rowCursor) bottom() int32 {
	return c.runs[c.pos]
}

// intervals returns the current row's [Left, Right] pairs as a flat slice
// into the run array, without the X-sentinel.
func (c *rowCursor) intervals() []int32 {
	n := int(c.runs[c.pos+1])
	start := c.pos + 2
	return c.runs[start : start+2*n]
}

// next advances to the following row.
func (c *rowCursor) next() {
	c.pos = scanlineNext(c.runs, c.pos)
}

// scanlineNext returns the index of the row following the row whose
// Bottom is at runs[i].
func scanlineNext(runs []int32, i int) int {
	// skip [B N [L R]... S]
	return i + 2 + 2*int(runs[i+1]) + 1
}

// findScanline returns the index of the Bottom value of the row containing
// y.  The caller guarantees that y lies inside the region's bounds.
func findScanline(runs []int32, y int32) int {
	i := 1
	for y >= runs[i] {
		i = scanlineNext(runs, i)
	}
	return i
}

// runsAreARect reports whether runs encode exactly one rectangle, and
// returns that rectangle.
func runsAreARect(runs []int32) (image.Rectangle, bool) {
	if len(runs) != rectRegionRuns {
		return image.Rectangle{}, false
	}
	return image.Rect(int(runs[3]), int(runs[0]), int(runs[4]), int(runs[1])), true
}

// buildRectRuns writes the encoding of a non-empty rectangle into dst.
func buildRectRuns(r image.Rectangle, dst *[rectRegionRuns]int32) []int32 {
	dst[0] = int32(r.Min.Y)
	dst[1] = int32(r.Max.Y)
	dst[2] = 1
	dst[3] = int32(r.Min.X)
	dst[4] = int32(r.Max.X)
	dst[5] = runSentinel
	dst[6] = runSentinel
	return dst[:]
}

// runStats summarises an encoded run array.
type runStats struct {
	bounds        image.Rectangle
	ySpanCount    int
	intervalCount int
}

// computeRunBounds derives the bounding box and the row and interval
// counts from well-formed runs.  Rows without intervals do not contribute
// to the horizontal extent.
func computeRunBounds(runs []int32) runStats {
	left := int32(math.MaxInt32)
	right := int32(math.MinInt32)
	var st runStats

	c := newRowCursor(runs)
	bot := c.top()
	for !c.done() {
		bot = c.bottom()
		iv := c.intervals()
		if len(iv) > 0 {
			left = min(left, iv[0])
			right = max(right, iv[len(iv)-1])
		}
		st.ySpanCount++
		st.intervalCount += len(iv) / 2
		c.next()
	}
	st.bounds = image.Rect(int(left), int(runs[0]), int(right), int(bot))
	return st
}

// trimEmptyRows removes rows without intervals from the top and the bottom
// of runs, adjusting Top.  Interior empty rows are kept, because they
// carry the vertical gap between the rows around them.  The returned slice
// shares storage with runs, which may be modified.  Nil is returned when
// no row has intervals.
func trimEmptyRows(runs []int32) []int32 {
	top := runs[0]
	i := 1
	for runs[i] != runSentinel && runs[i+1] == 0 {
		top = runs[i]
		i = scanlineNext(runs, i)
	}
	if runs[i] == runSentinel {
		return nil
	}

	end := i
	for j := i; runs[j] != runSentinel; {
		next := scanlineNext(runs, j)
		if runs[j+1] > 0 {
			end = next
		}
		j = next
	}

	// runs[i-1] is either the old Top or the X-sentinel of a dropped row;
	// runs[end] is either the Y-sentinel or the Bottom of a dropped row.
	out := runs[i-1 : end+1]
	out[0] = top
	out[len(out)-1] = runSentinel
	return out
}

// translateRuns writes src shifted by (dx, dy) into dst, which must have
// the same length.  dst and src may be the same slice.
func translateRuns(dst, src []int32, dx, dy int32) {
	dst[0] = src[0] + dy
	i := 1
	for src[i] != runSentinel {
		n := int(src[i+1])
		dst[i] = src[i] + dy
		dst[i+1] = src[i+1]
		j := i + 2
		for range 2 * n {
			dst[j] = src[j] + dx
			j++
		}
		dst[j] = runSentinel
		i = j + 1
	}
	dst[i] = runSentinel
}
