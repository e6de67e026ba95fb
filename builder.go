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

import "slices"

// rgnBuilder collects horizontal spans, delivered in increasing y order
// and in increasing x order within a row, and writes them directly in run
// encoding.  Consecutive rows with equal intervals are stored once, and
// vertical gaps between rows become empty rows.
type rgnBuilder struct {
	runs []int32

	started bool
	curY    int32 // row currently being filled
	rowPos  int   // index of the current row's Bottom value
	right   int32 // right end of the last span in the current row

	// index of the previous row's Bottom value, or -1 if the previous
	// row cannot be extended
	prevPos int
}

// maxBuilderReserve caps the number of run values reserved up front.
// Larger outputs grow the buffer on demand.
const maxBuilderReserve = 1 << 16

// init prepares b for a region of at most maxHeight rows with at most
// maxTransitions span end points per row.  It panics with ErrTooLarge if
// the worst case encoding would not fit into a run buffer.
func (b *rgnBuilder) init(maxHeight, maxTransitions int) {
	// each row: Bottom, Count, end points, X-sentinel; gap rows share the
	// budget of the rows they separate
	perRow := int64(3 + maxTransitions)
	count := (int64(maxHeight)+1)*perRow + 2
	checkRunCount(count)

	*b = rgnBuilder{
		runs:    make([]int32, 0, min(count, maxBuilderReserve)),
		prevPos: -1,
	}
}

// BlitH records that the pixels x, ..., x+width-1 of row y are inside.
func (b *rgnBuilder) BlitH(x, y, width int) {
	if width <= 0 {
		return
	}
	left, right := int32(x), int32(x+width)
	y32 := int32(y)

	if !b.started {
		b.started = true
		b.runs = append(b.runs[:0], y32) // Top
		b.openRow(y32)
	} else if y32 != b.curY {
		b.closeRow()
		if y32 > b.curY+1 {
			// rows curY+1, ..., y-1 are empty
			b.runs = append(b.runs, y32, 0, runSentinel)
			b.prevPos = -1
		}
		b.openRow(y32)
	}

	if b.right == left {
		// touches the previous span
		b.runs[len(b.runs)-1] = right
	} else {
		b.runs = append(b.runs, left, right)
	}
	b.right = right
}

func (b *rgnBuilder) openRow(y int32) {
	b.curY = y
	b.rowPos = len(b.runs)
	b.runs = append(b.runs, 0, 0) // Bottom and Count are filled in later
	b.right = runSentinel
}

// closeRow completes the current row.  If it has the same intervals as the
// previous row, the previous row is extended instead.
func (b *rgnBuilder) closeRow() {
	pos := b.rowPos
	n := len(b.runs) - (pos + 2)
	bottom := b.curY + 1

	if b.prevPos >= 0 {
		prevN := int(b.runs[b.prevPos+1]) * 2
		prev := b.runs[b.prevPos+2 : b.prevPos+2+prevN]
		if b.runs[b.prevPos] == b.curY && slices.Equal(prev, b.runs[pos+2:]) {
			b.runs[b.prevPos] = bottom
			b.runs = b.runs[:pos]
			return
		}
	}

	b.runs[pos] = bottom
	b.runs[pos+1] = int32(n / 2)
	b.runs = append(b.runs, runSentinel)
	b.prevPos = pos
}

// done completes the encoding and returns it.  The result is nil if no
// span was recorded.
func (b *rgnBuilder) done() []int32 {
	if !b.started {
		return nil
	}
	b.closeRow()
	b.runs = append(b.runs, runSentinel)
	return b.runs
}
