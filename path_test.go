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
	"maps"
	"slices"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/region/scan"
	"seehuhn.de/go/region/testcases"
)

func TestBuilder(t *testing.T) {
	var b rgnBuilder
	b.init(10, 4)
	b.BlitH(0, 0, 5)
	b.BlitH(5, 0, 3) // touches the previous span
	b.BlitH(0, 1, 8) // same as row 0
	b.BlitH(3, 1, 0) // ignored
	b.BlitH(2, 4, 2) // rows 2 and 3 are empty

	S := runSentinel
	want := []int32{0, 2, 1, 0, 8, S, 4, 0, S, 5, 1, 2, 4, S, S}
	got := b.done()
	if !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	r := &Region{}
	r.setRuns(got)
	checkValid(t, r)
	if r.Bounds() != image.Rect(0, 0, 8, 5) {
		t.Errorf("bounds %v", r.Bounds())
	}
}

func TestBuilderRectangle(t *testing.T) {
	var b rgnBuilder
	b.init(3, 2)
	for y := 10; y < 13; y++ {
		b.BlitH(-4, y, 6)
	}

	r := &Region{}
	r.setRuns(b.done())
	if !r.IsRect() || r.Bounds() != image.Rect(-4, 10, 2, 13) {
		t.Errorf("got %s", r)
	}

	var empty rgnBuilder
	empty.init(3, 2)
	if runs := empty.done(); runs != nil {
		t.Errorf("empty builder returned %v", runs)
	}
}

func TestBuilderTooLarge(t *testing.T) {
	defer func() {
		if recover() != ErrTooLarge {
			t.Error("no ErrTooLarge panic")
		}
	}()
	var b rgnBuilder
	b.init(1<<30, 1<<20)
}

func rectPath(x0, y0, x1, y1 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x0, Y: y1}).
		Close()
}

func TestSetPathRect(t *testing.T) {
	clip := NewRect(image.Rect(0, 0, 64, 64))

	r := &Region{}
	if !r.SetPath(rectPath(10, 20, 30, 50), scan.NonZero, clip) {
		t.Fatal("SetPath returned false")
	}
	if !r.IsRect() || r.Bounds() != image.Rect(10, 20, 30, 50) {
		t.Errorf("got %s", r)
	}

	// the clip cuts off the right part
	r.SetPath(rectPath(50, 20, 80, 50), scan.NonZero, clip)
	if r.Bounds() != image.Rect(50, 20, 64, 50) {
		t.Errorf("got %s", r)
	}

	if r.SetPath(rectPath(10, 20, 30, 50), scan.NonZero, nil) || !r.IsEmpty() {
		t.Errorf("nil clip gave %s", r)
	}
	if r.SetPath(rectPath(10, 20, 30, 50), scan.NonZero, &Region{}) || !r.IsEmpty() {
		t.Errorf("empty clip gave %s", r)
	}
	if r.SetPath(&path.Data{}, scan.NonZero, clip) || !r.IsEmpty() {
		t.Errorf("empty path gave %s", r)
	}
}

func TestSetPathInverse(t *testing.T) {
	canvas := image.Rect(0, 0, 64, 64)
	clip := NewRect(canvas)

	r := &Region{}
	r.SetPath(rectPath(10, 20, 30, 50), scan.InverseNonZero, clip)
	checkValid(t, r)

	want := NewRect(canvas)
	want.OpRect(image.Rect(10, 20, 30, 50), Difference)
	if !r.Equal(want) {
		t.Errorf("got %s, want %s", r, want)
	}

	// an empty path with an inverse rule covers the whole clip
	complexClip := fromRects(image.Rect(0, 0, 10, 10), image.Rect(20, 5, 30, 15))
	r.SetPath(&path.Data{}, scan.InverseEvenOdd, complexClip)
	if !r.Equal(complexClip) {
		t.Errorf("got %s, want %s", r, complexClip)
	}
}

func TestRoundOut(t *testing.T) {
	got := RoundOut(rect.Rect{LLx: -0.5, LLy: 1, URx: 2.25, URy: 3.75})
	if want := image.Rect(-1, 1, 3, 4); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSetPathCTM(t *testing.T) {
	s := scan.NewScanner(image.Rectangle{})
	s.CTM = matrix.Matrix{2, 0, 0, 3, 5, 7}

	r := &Region{}
	clip := NewRect(image.Rect(0, 0, 100, 100))
	r.SetPathWith(s, rectPath(0, 0, 10, 10), scan.NonZero, clip)
	if r.Bounds() != image.Rect(5, 7, 25, 37) {
		t.Errorf("got %s", r)
	}
}

// clipRegion returns the clip region of a test case.
func clipRegion(tc testcases.TestCase) *Region {
	clip := NewRect(tc.Canvas())
	if tc.Clip != nil {
		c := fromRects(tc.Clip...)
		clip.Op(clip, c, Intersect)
	}
	return clip
}

// TestSetPathAgainstScanner checks that SetPath selects exactly the
// pixels found by the scanner, restricted to the clip.
func TestSetPathAgainstScanner(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"/"+tc.Name, func(t *testing.T) {
				w, h := tc.Width, tc.Height
				ref := make([]bool, w*h)
				s := tc.Scanner()
				s.Scan(tc.Path, tc.Rule, blitFunc(func(x, y, width int) {
					for i := x; i < x+width; i++ {
						ref[y*w+i] = true
					}
				}))

				clip := clipRegion(tc)
				r := &Region{}
				s = tc.Scanner()
				nonEmpty := r.SetPathWith(s, tc.Path, tc.Rule, clip)
				checkValid(t, r)
				if nonEmpty == r.IsEmpty() {
					t.Errorf("return value %t for %s", nonEmpty, r)
				}
				if !r.IsEmpty() && !r.Bounds().In(clip.Bounds()) {
					t.Fatalf("bounds %v outside clip %v", r.Bounds(), clip.Bounds())
				}
				if pb := RoundOut(s.PathBounds()); !tc.Rule.IsInverse() && !r.IsEmpty() && !r.Bounds().In(pb) {
					t.Fatalf("bounds %v outside path bounds %v", r.Bounds(), pb)
				}

				bad := 0
				for y := range h {
					for x := range w {
						want := ref[y*w+x] && clip.Contains(x, y)
						if r.Contains(x, y) != want {
							bad++
						}
					}
				}
				if bad > 0 {
					t.Errorf("%d pixels differ", bad)
				}
			})
		}
	}
}

type blitFunc func(x, y, width int)

func (f blitFunc) BlitH(x, y, width int) {
	f(x, y, width)
}
