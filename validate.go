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
	"fmt"
	"slices"
)

// Validate checks the internal consistency of r.  It returns nil for every
// region built through the methods of this package.
func (r *Region) Validate() error {
	switch {
	case r.IsEmpty():
		return nil
	case r.IsRect():
		if r.bounds.Empty() {
			return fmt.Errorf("region: rectangle %v is empty", r.bounds)
		}
		return nil
	}

	if n := r.head.refCnt.Load(); n < 1 {
		return fmt.Errorf("region: reference count %d", n)
	}
	if err := validateRuns(r.head.runs); err != nil {
		return err
	}
	st := computeRunBounds(r.head.runs)
	if st.bounds != r.bounds {
		return fmt.Errorf("region: bounds %v do not match runs %v", r.bounds, st.bounds)
	}
	if st.ySpanCount != r.head.ySpanCount || st.intervalCount != r.head.intervalCount {
		return fmt.Errorf("region: stale counts %d/%d, want %d/%d",
			r.head.ySpanCount, r.head.intervalCount, st.ySpanCount, st.intervalCount)
	}
	return nil
}

// validateRuns checks that runs is the canonical encoding of a complex
// region: every index is in range, intervals are sorted, non-empty and
// separated by gaps, bottoms increase, identical rows are not repeated,
// the first and last rows have intervals and the whole is not a single
// rectangle.  Nothing is read outside of runs, so the function is safe to
// use on untrusted data.
func validateRuns(runs []int32) error {
	n := len(runs)
	if n <= rectRegionRuns {
		return errors.New("too few runs")
	}
	if runs[n-1] != runSentinel {
		return errors.New("missing final sentinel")
	}

	prevBottom := runs[0]
	if prevBottom == runSentinel {
		return errors.New("missing top")
	}
	var prevRow []int32
	lastCount := -1
	i := 1
	for {
		if i >= n {
			return errors.New("truncated runs")
		}
		bottom := runs[i]
		if bottom == runSentinel {
			break
		}
		if bottom <= prevBottom {
			return fmt.Errorf("row %d: bottom %d not below %d", i, bottom, prevBottom)
		}
		if i+1 >= n {
			return errors.New("truncated row header")
		}
		count := int(runs[i+1])
		if count < 0 || count > (n-i-3)/2 {
			return fmt.Errorf("row %d: bad interval count %d", i, count)
		}
		if i == 1 && count == 0 {
			return errors.New("empty first row")
		}
		row := runs[i+2 : i+2+2*count]
		prevRight := int32(MinCoord)
		for k := 0; k < len(row); k += 2 {
			left, right := row[k], row[k+1]
			if right == runSentinel || left >= right {
				return fmt.Errorf("row %d: bad interval [%d, %d)", i, left, right)
			}
			if k > 0 && left <= prevRight {
				return fmt.Errorf("row %d: intervals touch or overlap at %d", i, left)
			}
			prevRight = right
		}
		if runs[i+2+2*count] != runSentinel {
			return fmt.Errorf("row %d: missing row sentinel", i)
		}
		if prevRow != nil && slices.Equal(prevRow, row) {
			return fmt.Errorf("row %d: repeats previous row", i)
		}

		prevRow = row
		prevBottom = bottom
		lastCount = count
		i = i + 2 + 2*count + 1
	}
	if i != n-1 {
		return fmt.Errorf("%d values after final sentinel", n-1-i)
	}
	if lastCount == 0 {
		return errors.New("empty last row")
	}
	if _, isRect := runsAreARect(runs); isRect {
		return errors.New("single rectangle stored as complex region")
	}
	return nil
}
