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
	"cmp"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// vEdge is a vertical edge of one of the region's rectangles, directed
// from y0 to y1.  Left edges point up, right edges point down.
type vEdge struct {
	x      int
	y0, y1 int
	flags  uint8
	next   int // index of the edge which follows this one on the outline
}

const (
	linkY0       = 1 << 0 // some edge ends at y0 and links to this one
	linkY1       = 1 << 1 // this edge links to an edge starting at y1
	linkComplete = linkY0 | linkY1
)

func (e *vEdge) top() int {
	return min(e.y0, e.y1)
}

// BoundaryPath returns the outline of r as a path of closed polygons with
// horizontal and vertical sides.  Filling the path with the nonzero
// winding rule gives back r.  The result is empty if r is empty.
func (r *Region) BoundaryPath() *path.Data {
	p := &path.Data{}
	switch {
	case r.IsEmpty():
		return p
	case r.IsRect():
		b := r.bounds
		return p.MoveTo(pt(b.Min.X, b.Min.Y)).
			LineTo(pt(b.Max.X, b.Min.Y)).
			LineTo(pt(b.Max.X, b.Max.Y)).
			LineTo(pt(b.Min.X, b.Max.Y)).
			Close()
	}

	edges := make([]vEdge, 0, 2*r.head.intervalCount)
	for rc := range r.Rects() {
		edges = append(edges,
			vEdge{x: rc.Min.X, y0: rc.Max.Y, y1: rc.Min.Y},
			vEdge{x: rc.Max.X, y0: rc.Min.Y, y1: rc.Max.Y})
	}
	slices.SortFunc(edges, func(a, b vEdge) int {
		if c := cmp.Compare(a.x, b.x); c != 0 {
			return c
		}
		return cmp.Compare(a.top(), b.top())
	})

	for i := range edges {
		findLink(edges, i)
	}

	count := len(edges)
	start := 0
	for count > 0 {
		var n int
		n, start = extractPath(edges, start, p)
		count -= n
	}
	return p
}

// findLink connects edges[base] to its neighbours on the outline.  In the
// sorted edge list, both neighbours which are not yet linked come after
// base.
func findLink(edges []vEdge, base int) {
	e := &edges[base]
	if e.flags == linkComplete {
		return
	}

	if e.flags&linkY0 == 0 {
		j := base + 1
		for ; j < len(edges); j++ {
			if edges[j].flags&linkY1 == 0 && edges[j].y1 == e.y0 {
				edges[j].next = base
				edges[j].flags |= linkY1
				break
			}
		}
		if j == len(edges) {
			panic("region: broken boundary at y0")
		}
	}

	if e.flags&linkY1 == 0 {
		j := base + 1
		for ; j < len(edges); j++ {
			if edges[j].flags&linkY0 == 0 && edges[j].y0 == e.y1 {
				e.next = j
				edges[j].flags |= linkY0
				break
			}
		}
		if j == len(edges) {
			panic("region: broken boundary at y1")
		}
	}

	e.flags = linkComplete
}

// extractPath appends the polygon through the first unused edge at or
// after start to p.  It returns the number of edges used and the index at
// which to continue searching.
func extractPath(edges []vEdge, start int, p *path.Data) (int, int) {
	for edges[start].flags == 0 {
		start++
	}

	base := start
	prev := &edges[base]
	cur := prev.next
	count := 1
	p.MoveTo(pt(prev.x, prev.y0))
	prev.flags = 0
	for {
		e := &edges[cur]
		if prev.x != e.x || prev.y1 != e.y0 {
			// vertical line along prev, then horizontal line to e
			p.LineTo(pt(prev.x, prev.y1))
			p.LineTo(pt(e.x, e.y0))
		}
		prev = e
		cur = e.next
		count++
		prev.flags = 0
		if cur == base {
			break
		}
	}
	if prev.x != edges[base].x {
		p.LineTo(pt(prev.x, prev.y1))
	}
	p.Close()
	return count, base + 1
}

func pt(x, y int) vec.Vec2 {
	return vec.Vec2{X: float64(x), Y: float64(y)}
}
