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
	"sync"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/region/scan"
)

var scannerPool = sync.Pool{
	New: func() any {
		return scan.NewScanner(image.Rectangle{})
	},
}

// SetPath makes r the set of pixels inside p, restricted to clip.  Pixels
// are sampled at their centers, and p is given in device coordinates.
// With an inverse fill rule, r becomes the part of clip outside of p.
// The return value reports whether r is non-empty.
func (r *Region) SetPath(p *path.Data, rule scan.FillRule, clip *Region) bool {
	s := scannerPool.Get().(*scan.Scanner)
	defer scannerPool.Put(s)
	s.Reset(image.Rectangle{})
	return r.SetPathWith(s, p, rule, clip)
}

// SetPathWith is like SetPath, but uses the given scanner.  The CTM and
// Flatness fields of s are used to convert p to device space; the Clip
// field is overwritten.
func (r *Region) SetPathWith(s *scan.Scanner, p *path.Data, rule scan.FillRule, clip *Region) bool {
	if clip == nil || clip.IsEmpty() {
		return r.SetEmpty()
	}

	s.Clip = clip.bounds
	ext, ok := s.Prepare(p, rule)
	if !ok {
		return r.SetEmpty()
	}

	clipTransitions := 2
	if clip.IsComplex() {
		clipTransitions = 2 * clip.head.intervalCount
	}

	var b rgnBuilder
	b.init(ext.Bottom-ext.Top, ext.Transitions+clipTransitions)

	var blitter scan.Blitter = &b
	if clip.IsComplex() {
		blitter = &clipBlitter{clip: clip, dst: &b}
	}
	s.Fill(rule, blitter)

	runs := b.done()
	if runs == nil {
		return r.SetEmpty()
	}
	return r.setRuns(runs)
}

// clipBlitter forwards the parts of each span which lie inside clip.
type clipBlitter struct {
	clip *Region
	dst  scan.Blitter
}

func (c *clipBlitter) BlitH(x, y, width int) {
	for left, right := range c.clip.Spans(y, x, x+width) {
		c.dst.BlitH(left, y, right-left)
	}
}
