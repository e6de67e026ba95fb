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

package scan_test

import (
	"image"
	"image/color"
	"maps"
	"math"
	"slices"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/region/scan"
	"seehuhn.de/go/region/testcases"
)

type span struct {
	x, y, w int
}

// recorder is a Blitter which stores all spans.
type recorder struct {
	spans []span
}

func (r *recorder) BlitH(x, y, width int) {
	r.spans = append(r.spans, span{x, y, width})
}

// mask returns the recorded pixels as a w×h bitmap.
func (r *recorder) mask(w, h int) []bool {
	m := make([]bool, w*h)
	for _, s := range r.spans {
		for x := s.x; x < s.x+s.w; x++ {
			m[s.y*w+x] = true
		}
	}
	return m
}

func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x2, Y: y1}).
		LineTo(vec.Vec2{X: x2, Y: y2}).
		LineTo(vec.Vec2{X: x1, Y: y2}).
		Close()
}

func TestRectangleSpans(t *testing.T) {
	s := scan.NewScanner(image.Rect(0, 0, 64, 64))
	var rec recorder
	s.Scan(rectangle(10, 20, 30, 50), scan.NonZero, &rec)

	if len(rec.spans) != 30 {
		t.Fatalf("got %d spans, want 30", len(rec.spans))
	}
	for i, sp := range rec.spans {
		want := span{10, 20 + i, 20}
		if sp != want {
			t.Errorf("span %d: got %v, want %v", i, sp, want)
		}
	}
}

// TestTriangleCenters checks pixel center sampling on a triangle with a
// diagonal edge y = x/10.  On row 0 the edge crosses the sample line at
// x = 5, so exactly the pixels 5, ..., 9 are inside.
func TestTriangleCenters(t *testing.T) {
	triangle := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	s := scan.NewScanner(image.Rect(0, 0, 10, 1))
	var rec recorder
	s.Scan(triangle, scan.NonZero, &rec)

	want := []span{{5, 0, 5}}
	if !slices.Equal(rec.spans, want) {
		t.Errorf("got %v, want %v", rec.spans, want)
	}
}

func TestSubpixelOffsets(t *testing.T) {
	cases := []struct {
		offset float64
		left   int
	}{
		{0, 20},
		{0.25, 20},
		{0.5, 20},
		{0.75, 21},
	}
	for _, c := range cases {
		s := scan.NewScanner(image.Rect(0, 0, 64, 64))
		var rec recorder
		o := c.offset
		s.Scan(rectangle(20+o, 20+o, 44+o, 44+o), scan.NonZero, &rec)

		if len(rec.spans) != 24 {
			t.Errorf("offset %g: got %d rows, want 24", o, len(rec.spans))
			continue
		}
		first := rec.spans[0]
		if first != (span{c.left, c.left, 24}) {
			t.Errorf("offset %g: first span %v, want %v", o, first, span{c.left, c.left, 24})
		}
	}
}

func TestFillRules(t *testing.T) {
	// two nested squares with the same orientation
	p := rectangle(0, 0, 30, 30)
	p = p.MoveTo(vec.Vec2{X: 10, Y: 10}).
		LineTo(vec.Vec2{X: 20, Y: 10}).
		LineTo(vec.Vec2{X: 20, Y: 20}).
		LineTo(vec.Vec2{X: 10, Y: 20}).
		Close()

	clip := image.Rect(0, 0, 30, 30)
	cases := []struct {
		rule       scan.FillRule
		in00, in15 bool
	}{
		{scan.NonZero, true, true},
		{scan.EvenOdd, true, false},
		{scan.InverseNonZero, false, false},
		{scan.InverseEvenOdd, false, true},
	}
	for _, c := range cases {
		t.Run(c.rule.String(), func(t *testing.T) {
			s := scan.NewScanner(clip)
			var rec recorder
			s.Scan(p, c.rule, &rec)
			m := rec.mask(30, 30)
			if m[0] != c.in00 {
				t.Errorf("pixel (0,0): got %t, want %t", m[0], c.in00)
			}
			if m[15*30+15] != c.in15 {
				t.Errorf("pixel (15,15): got %t, want %t", m[15*30+15], c.in15)
			}
		})
	}
}

func TestInverseEmptyPath(t *testing.T) {
	clip := image.Rect(3, 4, 10, 8)
	s := scan.NewScanner(clip)
	var rec recorder
	s.Scan(&path.Data{}, scan.InverseNonZero, &rec)

	var want []span
	for y := 4; y < 8; y++ {
		want = append(want, span{3, y, 7})
	}
	if !slices.Equal(rec.spans, want) {
		t.Errorf("got %v, want %v", rec.spans, want)
	}
}

func TestPrepare(t *testing.T) {
	s := scan.NewScanner(image.Rect(0, 0, 64, 64))

	ext, ok := s.Prepare(rectangle(10.2, 20.7, 30, 50.5), scan.NonZero)
	if !ok {
		t.Fatal("Prepare failed")
	}
	// rows 21..49 have their centers inside
	if ext.Top != 21 || ext.Bottom != 50 {
		t.Errorf("rows %d..%d, want 21..50", ext.Top, ext.Bottom)
	}
	if ext.Transitions < 2 {
		t.Errorf("transitions %d, want at least 2", ext.Transitions)
	}
	b := s.PathBounds()
	if b.LLx != 10.2 || b.URy != 50.5 {
		t.Errorf("unexpected path bounds %v", b)
	}

	empty := []*path.Data{
		nil,
		{},
		rectangle(70, 70, 80, 80),
		rectangle(10, 10.6, 20, 11.4), // misses all pixel centers
		rectangle(0, math.NaN(), 10, 10),
	}
	for i, p := range empty {
		if _, ok := s.Prepare(p, scan.NonZero); ok {
			t.Errorf("%d: Prepare succeeded", i)
		}
	}

	s.Clip = image.Rectangle{}
	if _, ok := s.Prepare(rectangle(0, 0, 1, 1), scan.InverseNonZero); ok {
		t.Error("inverse fill of empty clip succeeded")
	}
}

// TestSpanOrder checks the Blitter contract on all test cases: rows are
// increasing, spans are sorted, separated and inside the clip.
func TestSpanOrder(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				s := tc.Scanner()
				var rec recorder
				s.Scan(tc.Path, tc.Rule, &rec)

				canvas := tc.Canvas()
				for i, sp := range rec.spans {
					if sp.w <= 0 {
						t.Fatalf("span %d has width %d", i, sp.w)
					}
					r := image.Rect(sp.x, sp.y, sp.x+sp.w, sp.y+1)
					if !r.In(canvas) {
						t.Fatalf("span %d outside canvas: %v", i, r)
					}
					if i == 0 {
						continue
					}
					prev := rec.spans[i-1]
					if sp.y < prev.y || sp.y == prev.y && sp.x <= prev.x+prev.w {
						t.Fatalf("span %d (%v) out of order after %v", i, sp, prev)
					}
				}
			})
		}
	}
}

// TestAgainstVector compares with the anti-aliased rasterizer from
// golang.org/x/image/vector.  Fully covered pixels must be inside, and
// pixels without coverage must be outside.
func TestAgainstVector(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			if tc.Rule != scan.NonZero && tc.Rule != scan.InverseNonZero {
				continue // vector only implements the nonzero rule
			}
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				w, h := tc.Width, tc.Height

				s := tc.Scanner()
				s.Prepare(tc.Path, tc.Rule)
				pb := s.PathBounds()
				if pb.LLx < 0 || pb.LLy < 0 || pb.URx > float64(w) || pb.URy > float64(h) {
					t.Skip("path extends beyond the canvas")
				}

				ref := vectorCoverage(tc)
				var rec recorder
				s.Scan(tc.Path, tc.Rule, &rec)
				got := rec.mask(w, h)

				bad := 0
				for i, alpha := range ref {
					inside := alpha == 255
					outside := alpha < 2
					if tc.Rule == scan.InverseNonZero {
						inside, outside = outside, inside
					}
					if inside && !got[i] || outside && got[i] {
						if bad < 5 {
							t.Errorf("pixel (%d,%d): alpha %d, got %t", i%w, i/w, alpha, got[i])
						}
						bad++
					}
				}
				if bad > 0 {
					t.Errorf("%d pixels differ", bad)
				}
			})
		}
	}
}

// vectorCoverage renders the test case with x/image/vector.
func vectorCoverage(tc testcases.TestCase) []uint8 {
	w, h := tc.Width, tc.Height
	r := vector.NewRasterizer(w, h)

	ctm := tc.CTM
	if ctm == (matrix.Matrix{}) {
		ctm = matrix.Identity
	}
	dev := func(v vec.Vec2) (float32, float32) {
		return float32(ctm[0]*v.X + ctm[2]*v.Y + ctm[4]),
			float32(ctm[1]*v.X + ctm[3]*v.Y + ctm[5])
	}

	started := false
	for cmd, pts := range tc.Path.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			if started {
				r.ClosePath()
			}
			r.MoveTo(dev(pts[0]))
			started = true
		case path.CmdLineTo:
			r.LineTo(dev(pts[0]))
		case path.CmdQuadTo:
			x1, y1 := dev(pts[0])
			x2, y2 := dev(pts[1])
			r.QuadTo(x1, y1, x2, y2)
		case path.CmdCubeTo:
			x1, y1 := dev(pts[0])
			x2, y2 := dev(pts[1])
			x3, y3 := dev(pts[2])
			r.CubeTo(x1, y1, x2, y2, x3, y3)
		case path.CmdClose:
			r.ClosePath()
		}
	}
	if started {
		r.ClosePath()
	}

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(dst, dst.Bounds(), image.NewUniform(color.Alpha{255}), image.Point{})
	return dst.Pix
}

func TestReset(t *testing.T) {
	s := scan.NewScanner(image.Rect(0, 0, 10, 10))
	s.CTM = matrix.Scale(2, 2)
	s.Flatness = 3

	s.Reset(image.Rect(0, 0, 5, 5))
	if s.CTM != matrix.Identity {
		t.Errorf("CTM not reset: %v", s.CTM)
	}
	if s.Flatness != 0.25 {
		t.Errorf("Flatness not reset: %g", s.Flatness)
	}
	if s.Clip != image.Rect(0, 0, 5, 5) {
		t.Errorf("wrong clip %v", s.Clip)
	}

	// Fill without Prepare does nothing
	var rec recorder
	s.Fill(scan.InverseNonZero, &rec)
	if len(rec.spans) != 0 {
		t.Errorf("unexpected spans %v", rec.spans)
	}
}

func BenchmarkScanAll(b *testing.B) {
	var cases []testcases.TestCase
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		cases = append(cases, testcases.All[category]...)
	}

	s := scan.NewScanner(image.Rectangle{})
	var rec recorder

	b.ResetTimer()
	for b.Loop() {
		for _, tc := range cases {
			s.Reset(tc.Canvas())
			if tc.CTM != (matrix.Matrix{}) {
				s.CTM = tc.CTM
			}
			rec.spans = rec.spans[:0]
			s.Scan(tc.Path, tc.Rule, &rec)
		}
	}
}
