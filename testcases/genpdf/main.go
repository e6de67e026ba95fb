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

// Command genpdf draws every test case into a PDF file, for visual
// inspection.  The region is filled in white on a black background, using
// its boundary path, and the source path is outlined in gray on top.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/region"
	"seehuhn.de/go/region/testcases"
)

const outDir = "testdata/regions"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")
			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

// buildRegion converts a test case into a region.
func buildRegion(tc testcases.TestCase) *region.Region {
	clip := region.NewRect(tc.Canvas())
	if tc.Clip != nil {
		clip.SetRects(tc.Clip)
		clip.OpRect(tc.Canvas(), region.Intersect)
	}
	rgn := &region.Region{}
	rgn.SetPathWith(tc.Scanner(), tc.Path, tc.Rule, clip)
	return rgn
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF origin is bottom-left; regions use top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	rgn := buildRegion(tc)
	if !rgn.IsEmpty() {
		page.SetFillColor(color.DeviceGray(1))
		drawPath(page, rgn.BoundaryPath())
		page.Fill()
	}

	if tc.CTM != (matrix.Matrix{}) && tc.CTM != matrix.Identity {
		page.Transform(tc.CTM)
	}
	page.SetStrokeColor(color.DeviceGray(0.5))
	page.SetLineWidth(0.25)
	drawPath(page, tc.Path)
	page.Stroke()

	return page.Close()
}

// pathBuilder is the part of the PDF content stream writer used by drawPath.
type pathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

// drawPath adds p to the current path of the page.  Quadratic segments are
// converted to cubic ones, since PDF has no quadratic curves.
func drawPath(page pathBuilder, p *path.Data) {
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}
