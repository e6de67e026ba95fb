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
	"fmt"
	"image"
	"slices"
)

// Op is a boolean operation combining two regions A and B.
type Op int

// These are the supported operations.
const (
	Difference        Op = iota // A minus B
	Intersect                   // points in both A and B
	Union                       // points in A or B
	XOR                         // points in exactly one of A and B
	ReverseDifference           // B minus A
	Replace                     // B
)

func (op Op) String() string {
	switch op {
	case Difference:
		return "Difference"
	case Intersect:
		return "Intersect"
	case Union:
		return "Union"
	case XOR:
		return "XOR"
	case ReverseDifference:
		return "ReverseDifference"
	case Replace:
		return "Replace"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// Inside-codes classify an x-interval of the sweep: 1 for A only, 2 for B
// only, 3 for both.  An operation keeps the intervals whose code lies in
// the operation's range.
var opMinMax = [...]struct{ min, max uint8 }{
	Difference: {1, 1},
	Intersect:  {3, 3},
	Union:      {1, 3},
	XOR:        {1, 2},
}

// Op sets r to the result of combining a and b.  Either a or b may be r
// itself.  The return value reports whether r is non-empty.
func (r *Region) Op(a, b *Region, op Op) bool {
	return oper(a, b, op, r)
}

// OpRect sets r to the result of combining r and rc.
func (r *Region) OpRect(rc image.Rectangle, op Op) bool {
	tmp := NewRect(rc)
	return oper(r, tmp, op, r)
}

// OpRectRegion sets r to the result of combining rc and b.
func (r *Region) OpRectRegion(rc image.Rectangle, b *Region, op Op) bool {
	tmp := NewRect(rc)
	return oper(tmp, b, op, r)
}

func setEmptyCheck(result *Region) bool {
	if result == nil {
		return false
	}
	return result.SetEmpty()
}

func setRectCheck(result *Region, rc image.Rectangle) bool {
	if result == nil {
		return !rc.Empty()
	}
	return result.setRectangle(rc)
}

func setRegionCheck(result, rgn *Region) bool {
	if result == nil {
		return !rgn.IsEmpty()
	}
	return result.Set(rgn)
}

// oper combines a and b and stores the outcome in result.  If result is
// nil, only emptiness of the outcome is computed and the sweep stops at
// the first non-empty row.  The return value reports whether the outcome
// is non-empty.
func oper(a, b *Region, op Op, result *Region) bool {
	switch op {
	case Replace:
		return setRegionCheck(result, b)
	case ReverseDifference:
		a, b = b, a
		op = Difference
	}

	aEmpty, bEmpty := a.IsEmpty(), b.IsEmpty()
	aRect, bRect := a.IsRect(), b.IsRect()

	switch op {
	case Difference:
		if aEmpty {
			return setEmptyCheck(result)
		}
		if bEmpty || !a.bounds.Overlaps(b.bounds) {
			return setRegionCheck(result, a)
		}
		if bRect && a.bounds.In(b.bounds) {
			return setEmptyCheck(result)
		}

	case Intersect:
		if aEmpty || bEmpty {
			return setEmptyCheck(result)
		}
		sect := a.bounds.Intersect(b.bounds)
		if sect.Empty() {
			return setEmptyCheck(result)
		}
		if aRect && bRect {
			return setRectCheck(result, sect)
		}
		if aRect && b.bounds.In(a.bounds) {
			return setRegionCheck(result, b)
		}
		if bRect && a.bounds.In(b.bounds) {
			return setRegionCheck(result, a)
		}

	case Union:
		if aEmpty {
			return setRegionCheck(result, b)
		}
		if bEmpty {
			return setRegionCheck(result, a)
		}
		if aRect && b.bounds.In(a.bounds) {
			return setRegionCheck(result, a)
		}
		if bRect && a.bounds.In(b.bounds) {
			return setRegionCheck(result, b)
		}

	case XOR:
		if aEmpty {
			return setRegionCheck(result, b)
		}
		if bEmpty {
			return setRegionCheck(result, a)
		}

	default:
		panic("region: unknown operation " + op.String())
	}

	var tmpA, tmpB [rectRegionRuns]int32
	aRuns := a.getRuns(&tmpA)
	bRuns := b.getRuns(&tmpB)

	dst := make([]int32, 0, scratchRunCount(len(aRuns), len(bRuns)))
	dst, nonEmpty := operate(aRuns, bRuns, dst, op, result == nil)
	if result == nil {
		return nonEmpty
	}
	return result.setRuns(dst)
}

// scratchRunCount returns the initial capacity of the output buffer for
// combining runs of the given lengths.  Rows of the output are appended,
// so the estimate only needs to be good, not an upper bound.
func scratchRunCount(aCount, bCount int) int {
	n := 3 * int64(max(aCount, bCount))
	checkRunCount(n)
	return int(n)
}

// operate merges the two run arrays row by row and appends the encoded
// result to dst.  If quickExit is set, operate returns as soon as the
// result is known to be non-empty; the returned runs are then incomplete.
func operate(aRuns, bRuns []int32, dst []int32, op Op, quickExit bool) ([]int32, bool) {
	a := newRowCursor(aRuns)
	b := newRowCursor(bRuns)
	aTop, aBot := a.top(), a.bottom()
	bTop, bBot := b.top(), b.bottom()

	o := newRgnOper(min(aTop, bTop), dst, op)

	prevBot := runSentinel // fails the first test
	for aBot < runSentinel || bBot < runSentinel {
		var top, bot int32
		var run0, run1 []int32
		aFlush, bFlush := false, false

		switch {
		case aTop < bTop:
			top = aTop
			run0 = a.intervals()
			if aBot <= bTop { // [...] <...>
				bot = aBot
				aFlush = true
			} else { // [...<..]...> or [...<...>...]
				bot = bTop
				aTop = bTop
			}
		case bTop < aTop:
			top = bTop
			run1 = b.intervals()
			if bBot <= aTop {
				bot = bBot
				bFlush = true
			} else {
				bot = aTop
				bTop = aTop
			}
		default: // aTop == bTop
			top = aTop
			run0 = a.intervals()
			run1 = b.intervals()
			if aBot <= bBot {
				bot = aBot
				bTop = aBot
				aFlush = true
			}
			if bBot <= aBot {
				bot = bBot
				aTop = bBot
				bFlush = true
			}
		}

		if top > prevBot {
			// vertical gap between the inputs
			o.addSpan(top, nil, nil)
		}
		o.addSpan(bot, run0, run1)

		if quickExit && !o.isEmpty() {
			return nil, true
		}

		if aFlush {
			a.next()
			aTop = aBot
			aBot = a.bottom()
			if aBot == runSentinel {
				aTop = aBot
			}
		}
		if bFlush {
			b.next()
			bTop = bBot
			bBot = b.bottom()
			if bBot == runSentinel {
				bTop = bBot
			}
		}

		prevBot = bot
	}

	dst = o.flush()
	return dst, len(dst) > 2
}

// rgnOper accumulates the output rows of a set operation.  A row equal to
// the previous one extends the previous row instead of being appended.
type rgnOper struct {
	dst       []int32
	prevStart int // index of the first interval of the previous row
	prevLen   int // length of the previous row's intervals plus sentinel
	top       int32
	min, max  uint8
}

func newRgnOper(top int32, dst []int32, op Op) *rgnOper {
	mm := opMinMax[op]
	return &rgnOper{
		dst: append(dst[:0], top), // slot for Top
		top: top,
		min: mm.min,
		max: mm.max,
	}
}

// addSpan emits the row ending at bottom, combining the interval lists a
// and b.  Nil lists are treated as empty.
func (o *rgnOper) addSpan(bottom int32, a, b []int32) {
	rowStart := len(o.dst)
	o.dst = append(o.dst, bottom, 0) // Bottom and IntervalCount
	start := len(o.dst)
	o.dst = operateOnSpan(a, b, o.dst, o.min, o.max)
	n := len(o.dst) - start

	switch {
	case o.prevLen == n && slices.Equal(o.dst[o.prevStart:o.prevStart+n-1], o.dst[start:start+n-1]):
		// same intervals as the previous row: just move its bottom down
		o.dst[o.prevStart-2] = bottom
		o.dst = o.dst[:rowStart]
	case n == 1 && o.prevLen == 0:
		// leading empty row: move the top down instead
		o.top = bottom
		o.dst = o.dst[:rowStart]
	default:
		o.dst[rowStart+1] = int32(n >> 1)
		o.prevStart = start
		o.prevLen = n
	}
}

func (o *rgnOper) isEmpty() bool {
	return o.prevLen == 0
}

// flush completes the encoding and returns it.  If no row was emitted, the
// result has length 2.
func (o *rgnOper) flush() []int32 {
	o.dst[0] = o.top
	if o.prevLen == 0 {
		return append(o.dst[:1], runSentinel)
	}
	return append(o.dst, runSentinel)
}

// spanMerger walks two sorted interval lists and cuts the x-axis into
// pieces on which the inside-code is constant.
type spanMerger struct {
	a, b         []int32
	aLeft, aRite int32
	bLeft, bRite int32
	left, rite   int32
	inside       uint8
}

func (s *spanMerger) init(a, b []int32) {
	s.a, s.b = a, b
	s.aLeft, s.aRite = s.popA()
	s.bLeft, s.bRite = s.popB()
}

// popA returns the next interval of a, or the sentinel pair.
func (s *spanMerger) popA() (int32, int32) {
	if len(s.a) == 0 {
		return runSentinel, runSentinel
	}
	l, r := s.a[0], s.a[1]
	s.a = s.a[2:]
	return l, r
}

func (s *spanMerger) popB() (int32, int32) {
	if len(s.b) == 0 {
		return runSentinel, runSentinel
	}
	l, r := s.b[0], s.b[1]
	s.b = s.b[2:]
	return l, r
}

func (s *spanMerger) done() bool {
	return s.aLeft == runSentinel && s.bLeft == runSentinel
}

// next computes the next piece [left, rite) with its inside-code.
func (s *spanMerger) next() {
	aLeft, aRite := s.aLeft, s.aRite
	bLeft, bRite := s.bLeft, s.bRite
	aFlush, bFlush := false, false

	var inside uint8
	var left, rite int32
	switch {
	case aLeft < bLeft:
		inside = 1
		left = aLeft
		if aRite <= bLeft { // [...] <...>
			rite = aRite
			aFlush = true
		} else { // [...<..]...> or [...<...>...]
			rite = bLeft
			aLeft = bLeft
		}
	case bLeft < aLeft:
		inside = 2
		left = bLeft
		if bRite <= aLeft {
			rite = bRite
			bFlush = true
		} else {
			rite = aLeft
			bLeft = aLeft
		}
	default: // aLeft == bLeft
		inside = 3
		left = aLeft
		if aRite <= bRite {
			rite = aRite
			bLeft = aRite
			aFlush = true
		}
		if bRite <= aRite {
			rite = bRite
			aLeft = bRite
			bFlush = true
		}
	}

	if aFlush {
		aLeft, aRite = s.popA()
	}
	if bFlush {
		bLeft, bRite = s.popB()
	}

	s.aLeft, s.aRite = aLeft, aRite
	s.bLeft, s.bRite = bLeft, bRite
	s.left, s.rite = left, rite
	s.inside = inside
}

// operateOnSpan appends to dst the intervals of one output row, followed
// by the X-sentinel.  Touching intervals are merged.
func operateOnSpan(a, b []int32, dst []int32, lo, hi uint8) []int32 {
	var s spanMerger
	s.init(a, b)
	first := len(dst)
	for !s.done() {
		s.next()
		left, rite := s.left, s.rite
		if s.inside < lo || s.inside > hi || left >= rite {
			continue
		}
		if len(dst) == first || dst[len(dst)-1] < left {
			dst = append(dst, left, rite)
		} else {
			dst[len(dst)-1] = rite
		}
	}
	return append(dst, runSentinel)
}
