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

// Command export writes the test cases, together with the regions built
// from them, to JSON.  The output allows to compare the region code with
// other implementations.  Run from the module root directory.
package main

import (
	"encoding/json"
	"image"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/region"
	"seehuhn.de/go/region/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/regions.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name     string        `json:"name"`
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	CTM      []float64     `json:"ctm,omitempty"`
	Clip     [][4]int      `json:"clip,omitempty"`
	Path     []jsonSegment `json:"path"`
	FillRule string        `json:"fill_rule"`
	Bounds   [4]int        `json:"bounds"`
	Rects    [][4]int      `json:"rects"`
	Encoded  []byte        `json:"encoded"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	clip := region.NewRect(tc.Canvas())
	if tc.Clip != nil {
		clip.SetRects(tc.Clip)
		clip.OpRect(tc.Canvas(), region.Intersect)
	}
	rgn := &region.Region{}
	rgn.SetPathWith(tc.Scanner(), tc.Path, tc.Rule, clip)

	encoded, err := rgn.MarshalBinary()
	if err != nil {
		panic(err)
	}

	jtc := jsonTestCase{
		Name:     category + "_" + tc.Name,
		Width:    tc.Width,
		Height:   tc.Height,
		Path:     pathToJSON(tc.Path),
		FillRule: tc.Rule.String(),
		Bounds:   rectToJSON(rgn.Bounds()),
		Rects:    [][4]int{},
		Encoded:  encoded,
	}
	if tc.CTM != (matrix.Matrix{}) {
		jtc.CTM = tc.CTM[:]
	}
	for _, rc := range tc.Clip {
		jtc.Clip = append(jtc.Clip, rectToJSON(rc))
	}
	for rc := range rgn.Rects() {
		jtc.Rects = append(jtc.Rects, rectToJSON(rc))
	}
	return jtc
}

func rectToJSON(rc image.Rectangle) [4]int {
	return [4]int{rc.Min.X, rc.Min.Y, rc.Max.X, rc.Max.Y}
}

func pathToJSON(p *path.Data) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p.Iter() {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
