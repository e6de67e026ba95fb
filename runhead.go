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
	"errors"
	"math"
	"sync/atomic"
)

// ErrTooLarge is passed to panic if a run buffer cannot be allocated
// because its size does not fit into memory.
var ErrTooLarge = errors.New("region: run buffer too large")

// maxRunCount bounds the number of run values in a single buffer.  The
// encoded size (4 bytes per value, plus header) must fit into an int32
// length field of the serialized form.
const maxRunCount = (math.MaxInt32 - 5*4) / 4

// runHead is a shared, reference counted run buffer.  Several regions may
// point to the same runHead; its runs are only modified after
// ensureWritable has made sure that the caller is the sole owner.
type runHead struct {
	refCnt        atomic.Int32
	ySpanCount    int
	intervalCount int
	runs          []int32
}

// allocRuns returns a runHead with reference count one and room for count
// run values.
func allocRuns(count int) *runHead {
	checkRunCount(int64(count))
	h := &runHead{runs: make([]int32, count)}
	h.refCnt.Store(1)
	return h
}

// checkRunCount panics with ErrTooLarge if count run values cannot be
// stored in one buffer.  The argument is 64 bits wide so that callers can
// pass products without overflowing first.
func checkRunCount(count int64) {
	if count < 0 || count > maxRunCount {
		panic(ErrTooLarge)
	}
}

// retain records one more owner.
func (h *runHead) retain() {
	h.refCnt.Add(1)
}

// release drops one owner.  The memory is reclaimed by the garbage
// collector once the last owner is gone.
func (h *runHead) release() {
	if h.refCnt.Add(-1) < 0 {
		panic("region: run buffer released too often")
	}
}

// ensureWritable returns a runHead owned only by the caller, holding the
// same runs as h.  If h is shared, its contents are copied first and the
// caller's reference to h is dropped afterwards.
func (h *runHead) ensureWritable() *runHead {
	if h.refCnt.Load() == 1 {
		return h
	}

	c := allocRuns(len(h.runs))
	copy(c.runs, h.runs)
	c.ySpanCount = h.ySpanCount
	c.intervalCount = h.intervalCount

	// h must stay referenced until the copy is complete.
	h.release()
	return c
}

// updateStats recomputes the row and interval counts from the runs and
// returns the bounding box.
func (h *runHead) updateStats() runStats {
	st := computeRunBounds(h.runs)
	h.ySpanCount = st.ySpanCount
	h.intervalCount = st.intervalCount
	return st
}
