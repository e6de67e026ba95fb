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

// Package scan converts filled vector paths into horizontal pixel spans.
//
// A pixel (x, y) is inside the path if its center (x+0.5, y+0.5) is inside
// according to the fill rule.  There is no anti-aliasing.  The spans of
// each row are reported in increasing x order, and rows are reported in
// increasing y order.
package scan

import (
	"cmp"
	"image"
	"math"
	"slices"
	"strconv"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Blitter receives the output of a Scanner.
type Blitter interface {
	// BlitH reports that the pixels x, ..., x+width-1 of row y are inside.
	BlitH(x, y, width int)
}

// FillRule decides which points are inside a path.
type FillRule int

// These are the supported fill rules.  The inverse rules fill the part of
// the clip rectangle which is outside the path.
const (
	NonZero FillRule = iota
	EvenOdd
	InverseNonZero
	InverseEvenOdd
)

// IsInverse reports whether the rule fills the outside of the path.
func (f FillRule) IsInverse() bool {
	return f == InverseNonZero || f == InverseEvenOdd
}

func (f FillRule) String() string {
	switch f {
	case NonZero:
		return "NonZero"
	case EvenOdd:
		return "EvenOdd"
	case InverseNonZero:
		return "InverseNonZero"
	case InverseEvenOdd:
		return "InverseEvenOdd"
	default:
		return "FillRule(" + strconv.Itoa(int(f)) + ")"
	}
}

func (f FillRule) inside(winding int) bool {
	switch f {
	case EvenOdd, InverseEvenOdd:
		return winding&1 != 0
	default:
		return winding != 0
	}
}

// Extent describes the output of a prepared path.
type Extent struct {
	// Top and Bottom give the range Top <= y < Bottom of rows for which
	// BlitH may be called.
	Top, Bottom int

	// Transitions is an upper bound on the number of span end points in
	// a single row.
	Transitions int
}

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64 // start point
	x1, y1 float64 // end point
	dxdy   float64 // (x1-x0)/(y1-y0)
	yMin   float64
	yMax   float64
	dir    int // +1 for downward edges, -1 for upward edges
}

// crossing is the intersection of an active edge with a sample line.
type crossing struct {
	x   float64
	dir int
}

// Scanner converts paths to spans.  Create one instance and reuse it for
// many paths.  Internal buffers grow as needed but never shrink.
//
// A Scanner is not safe for concurrent use.
type Scanner struct {
	// CTM transforms from path coordinates to device space.
	CTM matrix.Matrix

	// Clip restricts the output to this device-space rectangle.
	Clip image.Rectangle

	// Flatness controls curve approximation accuracy in device pixels.
	// Must be positive.
	Flatness float64

	edges     []edge
	active    []int
	crossings []crossing
	spans     []int // pairs of span end points for the current row

	// device space bounding box of the edges
	edgeBBoxFirst bool
	edgeDevXMin   float64
	edgeDevXMax   float64
	edgeDevYMin   float64
	edgeDevYMax   float64

	ext      Extent
	prepared bool
}

// defaultFlatness is the default curve flattening tolerance in device
// pixels.
const defaultFlatness = 0.25

// horizontalEdgeThreshold is the minimum vertical extent of an edge.
// Flatter edges never cross a sample line and are skipped.
const horizontalEdgeThreshold = 1e-10

// NewScanner returns a Scanner with the given clip rectangle, the identity
// CTM, and the default flatness.
func NewScanner(clip image.Rectangle) *Scanner {
	return &Scanner{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultFlatness,
	}
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is kept.
func (s *Scanner) Reset(clip image.Rectangle) {
	s.CTM = matrix.Identity
	s.Clip = clip
	s.Flatness = defaultFlatness
	s.edges = s.edges[:0]
	s.active = s.active[:0]
	s.crossings = s.crossings[:0]
	s.spans = s.spans[:0]
	s.prepared = false
}

// Scan fills p using the given rule and sends the spans to b.
func (s *Scanner) Scan(p *path.Data, rule FillRule, b Blitter) {
	if _, ok := s.Prepare(p, rule); ok {
		s.Fill(rule, b)
	}
}

// Prepare converts p to device space edges and computes the extent of the
// output.  If the output is certainly empty, ok is false.  After a
// successful call, Fill must be called with the same rule.
func (s *Scanner) Prepare(p *path.Data, rule FillRule) (ext Extent, ok bool) {
	s.prepared = false
	s.collectPathEdges(p)

	clip := s.Clip
	if clip.Empty() {
		return Extent{}, false
	}

	if rule.IsInverse() {
		ext = Extent{
			Top:         clip.Min.Y,
			Bottom:      clip.Max.Y,
			Transitions: len(s.edges) + 2,
		}
	} else {
		if len(s.edges) == 0 || !s.bboxIsFinite() {
			return Extent{}, false
		}
		// row y is sampled at y+0.5, and an edge covers yMin <= y+0.5 < yMax
		top := clampFloor(math.Ceil(s.edgeDevYMin-0.5), clip.Min.Y, clip.Max.Y)
		bottom := clampFloor(math.Ceil(s.edgeDevYMax-0.5), clip.Min.Y, clip.Max.Y)
		if top >= bottom {
			return Extent{}, false
		}
		ext = Extent{
			Top:         top,
			Bottom:      bottom,
			Transitions: len(s.edges),
		}
	}

	slices.SortFunc(s.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin, b.yMin)
	})
	s.ext = ext
	s.prepared = true
	return ext, true
}

// PathBounds returns the device space bounding box of the edges found by
// the last call to Prepare.
func (s *Scanner) PathBounds() rect.Rect {
	if len(s.edges) == 0 {
		return rect.Rect{}
	}
	return rect.Rect{
		LLx: s.edgeDevXMin,
		LLy: s.edgeDevYMin,
		URx: s.edgeDevXMax,
		URy: s.edgeDevYMax,
	}
}

// Fill emits the spans of the path passed to the preceding Prepare call.
func (s *Scanner) Fill(rule FillRule, b Blitter) {
	if !s.prepared {
		return
	}
	s.prepared = false

	clipL, clipR := s.Clip.Min.X, s.Clip.Max.X
	inverse := rule.IsInverse()

	s.active = s.active[:0]
	nextEdge := 0
	for y := s.ext.Top; y < s.ext.Bottom; y++ {
		yc := float64(y) + 0.5

		for nextEdge < len(s.edges) && s.edges[nextEdge].yMin <= yc {
			s.active = append(s.active, nextEdge)
			nextEdge++
		}

		// find crossings, dropping edges which end above the sample line
		s.crossings = s.crossings[:0]
		for i := 0; i < len(s.active); {
			e := &s.edges[s.active[i]]
			if e.yMax <= yc {
				s.active[i] = s.active[len(s.active)-1]
				s.active = s.active[:len(s.active)-1]
				continue
			}
			s.crossings = append(s.crossings, crossing{
				x:   e.x0 + e.dxdy*(yc-e.y0),
				dir: e.dir,
			})
			i++
		}
		slices.SortFunc(s.crossings, func(a, b crossing) int {
			return cmp.Compare(a.x, b.x)
		})

		// spans inside the path, as pixel ranges
		s.spans = s.spans[:0]
		winding := 0
		for _, c := range s.crossings {
			wasInside := rule.inside(winding)
			winding += c.dir
			if rule.inside(winding) == wasInside {
				continue
			}
			// pixel x is inside iff xa <= x+0.5 < xb
			s.spans = append(s.spans, clampFloor(math.Ceil(c.x-0.5), clipL, clipR))
		}

		if inverse {
			s.emitComplement(y, clipL, clipR, b)
		} else {
			s.emitSpans(y, b)
		}
	}
}

// emitSpans sends the pairs in s.spans to b, merging touching spans.
func (s *Scanner) emitSpans(y int, b Blitter) {
	spans := s.spans
	for i := 0; i+1 < len(spans); i += 2 {
		left, right := spans[i], spans[i+1]
		for i+3 < len(spans) && spans[i+2] <= right {
			right = max(right, spans[i+3])
			i += 2
		}
		if left < right {
			b.BlitH(left, y, right-left)
		}
	}
}

// emitComplement sends the gaps between the pairs in s.spans, inside
// [clipL, clipR), to b.
func (s *Scanner) emitComplement(y, clipL, clipR int, b Blitter) {
	x := clipL
	spans := s.spans
	for i := 0; i+1 < len(spans); i += 2 {
		left, right := spans[i], spans[i+1]
		if left > x {
			b.BlitH(x, y, left-x)
		}
		x = max(x, right)
	}
	if x < clipR {
		b.BlitH(x, y, clipR-x)
	}
}

// collectPathEdges walks the path, transforms it to device space, and
// builds the edge list.  Open subpaths are closed implicitly.
func (s *Scanner) collectPathEdges(p *path.Data) {
	s.edges = s.edges[:0]
	s.edgeBBoxFirst = true
	if p == nil {
		return
	}

	var current vec.Vec2 // current point
	var subpath vec.Vec2 // start of the current subpath

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if current != subpath {
				s.addEdge(current, subpath)
			}
			current = p.Coords[coordIdx]
			subpath = current
			coordIdx++

		case path.CmdLineTo:
			s.addEdge(current, p.Coords[coordIdx])
			current = p.Coords[coordIdx]
			coordIdx++

		case path.CmdQuadTo:
			s.flattenQuadratic(current, p.Coords[coordIdx], p.Coords[coordIdx+1])
			current = p.Coords[coordIdx+1]
			coordIdx += 2

		case path.CmdCubeTo:
			s.flattenCubic(current, p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2])
			current = p.Coords[coordIdx+2]
			coordIdx += 3

		case path.CmdClose:
			if current != subpath {
				s.addEdge(current, subpath)
			}
			current = subpath
		}
	}
	if current != subpath {
		s.addEdge(current, subpath)
	}
}

// transform maps a point from path coordinates to device space.
func (s *Scanner) transform(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: s.CTM[0]*p.X + s.CTM[2]*p.Y + s.CTM[4],
		Y: s.CTM[1]*p.X + s.CTM[3]*p.Y + s.CTM[5],
	}
}

// transformLinear applies the 2×2 linear part of the CTM to a vector.
func (s *Scanner) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: s.CTM[0]*v.X + s.CTM[2]*v.Y,
		Y: s.CTM[1]*v.X + s.CTM[3]*v.Y,
	}
}

// addEdge adds the segment from p0 to p1, given in path coordinates.
func (s *Scanner) addEdge(p0, p1 vec.Vec2) {
	d0 := s.transform(p0)
	d1 := s.transform(p1)

	dy := d1.Y - d0.Y
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}

	e := edge{
		x0: d0.X, y0: d0.Y,
		x1: d1.X, y1: d1.Y,
		dxdy: (d1.X - d0.X) / dy,
		yMin: d0.Y,
		yMax: d1.Y,
		dir:  1,
	}
	if dy < 0 {
		e.yMin, e.yMax = d1.Y, d0.Y
		e.dir = -1
	}
	s.edges = append(s.edges, e)

	xMin, xMax := min(d0.X, d1.X), max(d0.X, d1.X)
	if s.edgeBBoxFirst {
		s.edgeDevXMin, s.edgeDevXMax = xMin, xMax
		s.edgeDevYMin, s.edgeDevYMax = e.yMin, e.yMax
		s.edgeBBoxFirst = false
	} else {
		s.edgeDevXMin = min(s.edgeDevXMin, xMin)
		s.edgeDevXMax = max(s.edgeDevXMax, xMax)
		s.edgeDevYMin = min(s.edgeDevYMin, e.yMin)
		s.edgeDevYMax = max(s.edgeDevYMax, e.yMax)
	}
}

// flattenQuadratic approximates a quadratic Bézier curve by line segments.
// p0 is the current point, p1 the control point and p2 the end point.
func (s *Scanner) flattenQuadratic(p0, p1, p2 vec.Vec2) {
	// e = (P0 - 2*P1 + P2) / 4 bounds the distance to the chord
	e := s.transformLinear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))

	n := 1
	if errDev := e.Length(); errDev > s.Flatness {
		n = int(math.Ceil(math.Sqrt(errDev / s.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		s.addEdge(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates a cubic Bézier curve by line segments, using
// Wang's formula for the number of segments.
func (s *Scanner) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	d1 := s.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := s.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))

	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if nf := math.Sqrt(3 * m / (4 * s.Flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		s.addEdge(prev, pt)
		prev = pt
	}
}

func (s *Scanner) bboxIsFinite() bool {
	for _, v := range []float64{s.edgeDevXMin, s.edgeDevXMax, s.edgeDevYMin, s.edgeDevYMax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// clampFloor converts the integral value v to an int in [lo, hi].
// NaN maps to lo.
func clampFloor(v float64, lo, hi int) int {
	switch {
	case !(v > float64(lo)):
		return lo
	case v >= float64(hi):
		return hi
	default:
		return int(v)
	}
}
