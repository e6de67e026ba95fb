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
	"iter"
)

// Rects iterates over the disjoint rectangles making up r, row by row from
// top to bottom and from left to right within each row.
func (r *Region) Rects() iter.Seq[image.Rectangle] {
	return func(yield func(image.Rectangle) bool) {
		if r.IsEmpty() {
			return
		}
		if r.IsRect() {
			yield(r.bounds)
			return
		}

		c := newRowCursor(r.head.runs)
		top := c.top()
		for !c.done() {
			bot := c.bottom()
			iv := c.intervals()
			for k := 0; k < len(iv); k += 2 {
				rc := image.Rect(int(iv[k]), int(top), int(iv[k+1]), int(bot))
				if !yield(rc) {
					return
				}
			}
			top = bot
			c.next()
		}
	}
}

// ClipRects iterates over the non-empty intersections of clip with the
// rectangles of r.
func (r *Region) ClipRects(clip image.Rectangle) iter.Seq[image.Rectangle] {
	return func(yield func(image.Rectangle) bool) {
		if r.QuickReject(clip) {
			return
		}
		for rc := range r.Rects() {
			if rc.Min.Y >= clip.Max.Y {
				return
			}
			sect := rc.Intersect(clip)
			if sect.Empty() {
				continue
			}
			if !yield(sect) {
				return
			}
		}
	}
}

// Spans iterates over the parts of row y of r which lie inside
// [left, right).  Each part is yielded as its start and end x.
func (r *Region) Spans(y, left, right int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		b := r.bounds
		if r.IsEmpty() || y < b.Min.Y || y >= b.Max.Y || right <= b.Min.X || left >= b.Max.X {
			return
		}
		if r.IsRect() {
			yield(max(left, b.Min.X), min(right, b.Max.X))
			return
		}

		// a clamped right is below the X-sentinel, which ends the loop
		right = min(right, b.Max.X)
		runs := r.head.runs
		i := findScanline(runs, int32(y))
		for j := i + 2; int(runs[j]) < right; j += 2 {
			if int(runs[j+1]) <= left {
				continue
			}
			if !yield(max(left, int(runs[j])), min(right, int(runs[j+1]))) {
				return
			}
		}
	}
}
