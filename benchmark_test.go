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
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/region/scan"
)

// BenchmarkSetPathO converts an "O" shape into a region.
func BenchmarkSetPathO(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := NewRect(image.Rect(0, 0, size, size))
			s := scan.NewScanner(image.Rectangle{})

			center := float64(size) / 2
			oPath := makeOPath(center, center, float64(size)*0.45, float64(size)*0.30)

			r := &Region{}
			b.ReportAllocs()
			for b.Loop() {
				r.SetPathWith(s, oPath, scan.NonZero, clip)
			}
		})
	}
}

// BenchmarkVectorO draws the same "O" shape with x/image/vector, for
// comparison.
func BenchmarkVectorO(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			center := float32(size) / 2
			outerR := float32(size) * 0.45
			innerR := float32(size) * 0.30

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				addCircleToVector(r, center, center, outerR, false)
				addCircleToVector(r, center, center, innerR, true)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

func BenchmarkBoundaryPath(b *testing.B) {
	r := &Region{}
	r.SetPath(makeOPath(100, 100, 90, 60), scan.NonZero, NewRect(image.Rect(0, 0, 200, 200)))

	b.ReportAllocs()
	for b.Loop() {
		r.BoundaryPath()
	}
}

func BenchmarkMarshal(b *testing.B) {
	r := &Region{}
	r.SetPath(makeOPath(100, 100, 90, 60), scan.NonZero, NewRect(image.Rect(0, 0, 200, 200)))
	buf := make([]byte, r.SizeInMemory())

	b.Run("write", func(b *testing.B) {
		for b.Loop() {
			r.WriteToMemory(buf)
		}
	})
	b.Run("read", func(b *testing.B) {
		dst := &Region{}
		for b.Loop() {
			dst.ReadFromMemory(buf)
		}
	})
}

// makeOPath creates an "O" shape: the outer circle is counter-clockwise,
// the inner circle is clockwise.
func makeOPath(cx, cy, outerR, innerR float64) *path.Data {
	p := &path.Data{}
	addCircleToPath(p, cx, cy, outerR, false)
	addCircleToPath(p, cx, cy, innerR, true)
	return p
}

// addCircleToPath adds a circle made of four cubic Bézier curves to p.
func addCircleToPath(p *path.Data, cx, cy, r float64, clockwise bool) {
	const k = 0.5522847498
	kr := k * r
	v := func(x, y float64) vec.Vec2 { return vec.Vec2{X: x, Y: y} }

	p.MoveTo(v(cx, cy-r))
	if clockwise {
		p.CubeTo(v(cx-kr, cy-r), v(cx-r, cy-kr), v(cx-r, cy))
		p.CubeTo(v(cx-r, cy+kr), v(cx-kr, cy+r), v(cx, cy+r))
		p.CubeTo(v(cx+kr, cy+r), v(cx+r, cy+kr), v(cx+r, cy))
		p.CubeTo(v(cx+r, cy-kr), v(cx+kr, cy-r), v(cx, cy-r))
	} else {
		p.CubeTo(v(cx+kr, cy-r), v(cx+r, cy-kr), v(cx+r, cy))
		p.CubeTo(v(cx+r, cy+kr), v(cx+kr, cy+r), v(cx, cy+r))
		p.CubeTo(v(cx-kr, cy+r), v(cx-r, cy+kr), v(cx-r, cy))
		p.CubeTo(v(cx-r, cy-kr), v(cx-kr, cy-r), v(cx, cy-r))
	}
	p.Close()
}

// addCircleToVector adds a circle to a vector.Rasterizer using cubic Bézier curves.
func addCircleToVector(r *vector.Rasterizer, cx, cy, radius float32, clockwise bool) {
	const k = float32(0.5522847498)
	kr := k * radius

	r.MoveTo(cx, cy-radius)
	if clockwise {
		r.CubeTo(cx-kr, cy-radius, cx-radius, cy-kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy+kr, cx-kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx+kr, cy+radius, cx+radius, cy+kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy-kr, cx+kr, cy-radius, cx, cy-radius)
	} else {
		r.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
	}
	r.ClosePath()
}
