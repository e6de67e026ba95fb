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

// Package region implements sets of integer pixel coordinates, stored as
// run-length encoded scanlines of disjoint intervals.
//
// A Region is either empty, a single rectangle, or "complex".  Empty and
// rectangular regions need no heap memory.  Complex regions share their
// run buffer with copies and only duplicate it when one of the copies is
// modified.  Regions are combined with the boolean operations of [Op],
// built from filled paths with [Region.SetPath], and converted back to
// outline paths with [Region.BoundaryPath].
package region

import (
	"image"
	"image/color"
	"math"
	"slices"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/rect"
)

// Region is a set of integer points in the plane.  The zero value is the
// empty region.
//
// A Region must not be copied after first use; use [Region.Set] or
// [Region.Clone] to obtain a copy which shares the run buffer.  Reading a
// Region from several goroutines is safe, as is modifying different
// Regions which share a run buffer.
type Region struct {
	_ noCopy

	// bounds is the tight bounding box, or the zero rectangle if the
	// region is empty.
	bounds image.Rectangle

	// head is nil for empty and rectangular regions.
	head *runHead
}

// noCopy lets "go vet" report copies of a Region.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// NewRect returns a region consisting of the given rectangle.
// Rectangles with Min.X >= Max.X or Min.Y >= Max.Y give the empty region.
func NewRect(r image.Rectangle) *Region {
	rgn := &Region{}
	rgn.SetRect(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
	return rgn
}

// Clone returns a new region which shares the run buffer with r.
func (r *Region) Clone() *Region {
	c := &Region{}
	c.Set(r)
	return c
}

// IsEmpty reports whether r contains no points.
func (r *Region) IsEmpty() bool {
	return r.head == nil && r.bounds == image.Rectangle{}
}

// IsRect reports whether r is a single, non-empty rectangle.
func (r *Region) IsRect() bool {
	return r.head == nil && r.bounds != image.Rectangle{}
}

// IsComplex reports whether r needs more than one rectangle.
func (r *Region) IsComplex() bool {
	return r.head != nil
}

// Bounds returns the tight bounding box of r.  The result is the zero
// rectangle if r is empty.
func (r *Region) Bounds() image.Rectangle {
	return r.bounds
}

// Complexity returns 0 for the empty region, 1 for a rectangle, and the
// total number of intervals otherwise.
func (r *Region) Complexity() int {
	switch {
	case r.IsEmpty():
		return 0
	case r.IsRect():
		return 1
	default:
		return r.head.intervalCount
	}
}

// freeRuns drops r's reference to its run buffer, if any.
func (r *Region) freeRuns() {
	if r.head != nil {
		r.head.release()
		r.head = nil
	}
}

// SetEmpty makes r the empty region.  The return value is always false,
// so that callers can write "return r.SetEmpty()".
func (r *Region) SetEmpty() bool {
	r.freeRuns()
	r.bounds = image.Rectangle{}
	return false
}

// SetRect makes r the rectangle [left, right) × [top, bottom).  If the
// rectangle is empty, or if a coordinate is outside MinCoord..MaxCoord,
// r becomes empty.  The return value reports whether r is non-empty.
func (r *Region) SetRect(left, top, right, bottom int) bool {
	if left >= right || top >= bottom ||
		!inCoordRange(left) || !inCoordRange(top) ||
		!inCoordRange(right) || !inCoordRange(bottom) {
		return r.SetEmpty()
	}
	r.freeRuns()
	r.bounds = image.Rect(left, top, right, bottom)
	return true
}

// setRectangle is SetRect for a rectangle which is already normalised.
func (r *Region) setRectangle(b image.Rectangle) bool {
	return r.SetRect(b.Min.X, b.Min.Y, b.Max.X, b.Max.Y)
}

func inCoordRange(v int) bool {
	return v >= MinCoord && v <= MaxCoord
}

// SetRects makes r the union of the given rectangles.
// The return value reports whether r is non-empty.
func (r *Region) SetRects(rects []image.Rectangle) bool {
	if len(rects) == 0 {
		return r.SetEmpty()
	}
	r.setRectangle(rects[0])
	for _, rc := range rects[1:] {
		r.OpRect(rc, Union)
	}
	return !r.IsEmpty()
}

// Set makes r a copy of src.  No runs are copied: both regions share the
// run buffer until one of them is modified.
// The return value reports whether r is non-empty.
func (r *Region) Set(src *Region) bool {
	if r != src {
		if src.head != nil {
			src.head.retain()
		}
		r.freeRuns()
		r.bounds = src.bounds
		r.head = src.head
	}
	return !r.IsEmpty()
}

// Swap exchanges the contents of r and other.
func (r *Region) Swap(other *Region) {
	r.bounds, other.bounds = other.bounds, r.bounds
	r.head, other.head = other.head, r.head
}

// setRuns makes r the region encoded by runs, which may contain leading or
// trailing empty rows and may describe a single rectangle.  runs is used
// as scratch space and is not retained.
func (r *Region) setRuns(runs []int32) bool {
	if len(runs) <= 2 {
		return r.SetEmpty()
	}

	runs = trimEmptyRows(runs)
	if runs == nil {
		return r.SetEmpty()
	}

	if b, ok := runsAreARect(runs); ok {
		return r.setRectangle(b)
	}

	if r.head == nil || len(r.head.runs) != len(runs) {
		r.freeRuns()
		r.head = allocRuns(len(runs))
	}

	// r.head may be shared with another region
	r.head = r.head.ensureWritable()
	copy(r.head.runs, runs)
	r.bounds = r.head.updateStats().bounds
	return true
}

// getRuns returns the run encoding of r.  For rectangles the encoding is
// built in tmp.  For the empty region the result is nil.
func (r *Region) getRuns(tmp *[rectRegionRuns]int32) []int32 {
	switch {
	case r.IsEmpty():
		return nil
	case r.IsRect():
		return buildRectRuns(r.bounds, tmp)
	default:
		return r.head.runs
	}
}

// Contains reports whether the point (x, y) is in r.
func (r *Region) Contains(x, y int) bool {
	if !image.Pt(x, y).In(r.bounds) {
		return false
	}
	if r.IsRect() {
		return true
	}

	runs := r.head.runs
	i := findScanline(runs, int32(y))
	x32 := int32(x)
	for j := i + 2; ; j += 2 {
		// the X-sentinel is larger than any x
		if x32 < runs[j] {
			return false
		}
		if x32 < runs[j+1] {
			return true
		}
	}
}

// ContainsRect reports whether every point of rc is in r.  An empty rc is
// never contained.
func (r *Region) ContainsRect(rc image.Rectangle) bool {
	if rc.Empty() || r.IsEmpty() || !rc.In(r.bounds) {
		return false
	}
	if r.IsRect() {
		return true
	}

	runs := r.head.runs
	i := findScanline(runs, int32(rc.Min.Y))
	for {
		if !scanlineContains(runs, i, int32(rc.Min.X), int32(rc.Max.X)) {
			return false
		}
		if int32(rc.Max.Y) <= runs[i] {
			return true
		}
		i = scanlineNext(runs, i)
	}
}

// scanlineContains reports whether a single interval of the row at i
// covers [left, right).
func scanlineContains(runs []int32, i int, left, right int32) bool {
	for j := i + 2; left >= runs[j]; j += 2 {
		if right <= runs[j+1] {
			return true
		}
	}
	return false
}

// ContainsRegion reports whether every point of other is in r.
// An empty other is never contained.
func (r *Region) ContainsRegion(other *Region) bool {
	if r.IsEmpty() || other.IsEmpty() || !other.bounds.In(r.bounds) {
		return false
	}
	if r.IsRect() {
		return true
	}
	if other.IsRect() {
		return r.ContainsRect(other.bounds)
	}

	// r contains other iff other - r is empty
	return !oper(other, r, Difference, nil)
}

// QuickContains reports whether r is a rectangle containing rc.  A false
// result does not mean that rc is outside r.
func (r *Region) QuickContains(rc image.Rectangle) bool {
	return r.IsRect() && !rc.Empty() && rc.In(r.bounds)
}

// QuickReject reports whether rc and the bounds of r are disjoint.  If the
// result is true, rc certainly does not intersect r.
func (r *Region) QuickReject(rc image.Rectangle) bool {
	return r.IsEmpty() || rc.Empty() || !rc.Overlaps(r.bounds)
}

// QuickRejectRegion reports whether the bounds of r and other are disjoint.
func (r *Region) QuickRejectRegion(other *Region) bool {
	return r.IsEmpty() || other.IsEmpty() || !other.bounds.Overlaps(r.bounds)
}

// Intersects reports whether r and rc have a point in common.
func (r *Region) Intersects(rc image.Rectangle) bool {
	if r.IsEmpty() || rc.Empty() {
		return false
	}
	sect := r.bounds.Intersect(rc)
	if sect.Empty() {
		return false
	}
	if r.IsRect() {
		return true
	}

	runs := r.head.runs
	i := findScanline(runs, int32(sect.Min.Y))
	for {
		if scanlineIntersects(runs, i, int32(sect.Min.X), int32(sect.Max.X)) {
			return true
		}
		if int32(sect.Max.Y) <= runs[i] {
			return false
		}
		i = scanlineNext(runs, i)
	}
}

// scanlineIntersects reports whether an interval of the row at i overlaps
// [left, right).
func scanlineIntersects(runs []int32, i int, left, right int32) bool {
	for j := i + 2; right > runs[j]; j += 2 {
		if left < runs[j+1] {
			return true
		}
	}
	return false
}

// IntersectsRegion reports whether r and other have a point in common.
func (r *Region) IntersectsRegion(other *Region) bool {
	if r.QuickRejectRegion(other) {
		return false
	}
	switch {
	case r.IsRect() && other.IsRect():
		return true
	case r.IsRect():
		return other.Intersects(r.bounds)
	case other.IsRect():
		return r.Intersects(other.bounds)
	}
	return oper(r, other, Intersect, nil)
}

// Equal reports whether r and other contain the same points.
func (r *Region) Equal(other *Region) bool {
	if r == other {
		return true
	}
	if r.bounds != other.bounds {
		return false
	}
	ah, bh := r.head, other.head
	if ah == bh {
		// both empty, both the same rectangle, or shared runs
		return true
	}
	if ah == nil || bh == nil {
		return false
	}
	return slices.Equal(ah.runs, bh.runs)
}

// Translate stores r shifted by (dx, dy) in dst, which may be r itself.
// If a shifted coordinate leaves MinCoord..MaxCoord, dst becomes empty.
func (r *Region) Translate(dx, dy int, dst *Region) {
	if dst == nil {
		return
	}
	if r.IsEmpty() {
		dst.SetEmpty()
		return
	}

	b := r.bounds.Add(image.Pt(dx, dy))
	if !inCoordRange(b.Min.X) || !inCoordRange(b.Min.Y) ||
		!inCoordRange(b.Max.X) || !inCoordRange(b.Max.Y) {
		dst.SetEmpty()
		return
	}
	if r.IsRect() {
		dst.setRectangle(b)
		return
	}

	src := r.head
	if dst == r {
		dst.head = dst.head.ensureWritable()
	} else {
		h := allocRuns(len(src.runs))
		h.ySpanCount = src.ySpanCount
		h.intervalCount = src.intervalCount
		dst.freeRuns()
		dst.head = h
	}
	// For dst == r, src may be the buffer we just detached from; it is
	// only read.
	translateRuns(dst.head.runs, src.runs, int32(dx), int32(dy))
	dst.bounds = b
}

// Offset shifts r by (dx, dy).
func (r *Region) Offset(dx, dy int) {
	r.Translate(dx, dy, r)
}

// String returns a description listing the rectangles of r.
func (r *Region) String() string {
	var sb strings.Builder
	sb.WriteString("Region(")
	for rc := range r.Rects() {
		sb.WriteByte('(')
		sb.WriteString(strconv.Itoa(rc.Min.X))
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(rc.Min.Y))
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(rc.Max.X))
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(rc.Max.Y))
		sb.WriteByte(')')
	}
	sb.WriteByte(')')
	return sb.String()
}

var _ image.Image = (*Region)(nil)

// ColorModel implements the image.Image interface.
func (r *Region) ColorModel() color.Model {
	return color.Alpha16Model
}

// At implements the image.Image interface.  Points in r are opaque, all
// other points are transparent.  This allows to use a Region as the mask
// argument of draw.DrawMask.
func (r *Region) At(x, y int) color.Color {
	if r.Contains(x, y) {
		return color.Opaque
	}
	return color.Transparent
}

// RoundOut returns the smallest integer rectangle containing rc.
func RoundOut(rc rect.Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(rc.LLx)), int(math.Floor(rc.LLy)),
		int(math.Ceil(rc.URx)), int(math.Ceil(rc.URy)))
}
