// seehuhn.de/go/fractal - golden spiral fractals
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

// Package raster draws render trees into grayscale images.
//
// The [Rasterizer] computes exact area coverage for filled and stroked
// paths.  [Render] uses it to paint all glyphs of a tree, honouring the
// transforms of the enclosing groups.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of one row of pixels, starting at
// column xMin.  Coverage values range from 0 (outside) to 1 (inside).
// The slice is only valid during the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a line segment in device coordinates, with y0 < y1.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
	dir    float32 // +1 if the segment originally pointed down, -1 otherwise
}

// Rasterizer converts paths to pixel coverage values.  Internal buffers
// are reused between calls, so one Rasterizer should be used for many
// paths.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space.
	CTM matrix.Matrix

	// Clip restricts the output to this integer-aligned device rectangle.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the line segments approximating it.
	Flatness float64

	// Width is the stroke width in user space units.
	Width float64

	// Cap is the shape of the ends of open stroked subpaths.  Joins are
	// always round.
	Cap graphics.LineCapStyle

	edges   []edge
	active  []int
	cover   []float32
	area    []float32
	poly    []vec.Vec2
	outline []vec.Vec2

	bboxEmpty          bool
	bboxXMin, bboxXMax float64
	bboxYMin, bboxYMax float64
}

// NewRasterizer returns a Rasterizer for the given clip rectangle, with
// an identity CTM and unit stroke width.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	r := &Rasterizer{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle.
// The internal buffers are kept.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
}

// FillNonZero fills p using the nonzero winding rule.
func (r *Rasterizer) FillNonZero(p *path.Data, emit EmitFunc) {
	r.startEdges()
	r.flatten(p, r.addPolygon)
	r.scan(integrateNonZero, emit)
}

// FillEvenOdd fills p using the even-odd rule.
func (r *Rasterizer) FillEvenOdd(p *path.Data, emit EmitFunc) {
	r.startEdges()
	r.flatten(p, r.addPolygon)
	r.scan(integrateEvenOdd, emit)
}

// flatten walks p, replaces curves by line segments, and calls fn once
// for every subpath with at least two vertices.  The vertices are given in
// user space.
func (r *Rasterizer) flatten(p *path.Data, fn func(pts []vec.Vec2, closed bool)) {
	var cur, start vec.Vec2
	r.poly = r.poly[:0]
	begin := func() {
		if len(r.poly) == 0 {
			r.poly = append(r.poly, cur)
		}
	}
	lineTo := func(_, to vec.Vec2) {
		r.poly = append(r.poly, to)
	}
	flush := func(closed bool) {
		if len(r.poly) > 1 {
			fn(r.poly, closed)
		}
		r.poly = r.poly[:0]
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			flush(false)
			cur = p.Coords[k]
			start = cur
			begin()
			k++
		case path.CmdLineTo:
			begin()
			cur = p.Coords[k]
			r.poly = append(r.poly, cur)
			k++
		case path.CmdQuadTo:
			begin()
			r.flattenQuadratic(cur, p.Coords[k], p.Coords[k+1], lineTo)
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			begin()
			r.flattenCubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2], lineTo)
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			flush(true)
			cur = start
		}
	}
	flush(false)
}

// linear applies the linear part of the CTM to v.
func (r *Rasterizer) linear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuadratic emits line segments approximating the quadratic Bézier
// curve p0, p1, p2.
func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	dev := r.linear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Length()
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic emits line segments approximating the cubic Bézier curve
// p0, p1, p2, p3.  The number of segments is given by Wang's formula.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := r.linear(p0.Sub(p1.Mul(2)).Add(p2)).Length()
	d2 := r.linear(p1.Sub(p2.Mul(2)).Add(p3)).Length()
	n := 1
	if m := max(d1, d2); m > 0 {
		if x := math.Sqrt(3 * m / (4 * r.Flatness)); x > 1 {
			n = int(math.Ceil(x))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

func (r *Rasterizer) startEdges() {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
}

// addPolygon adds the edges of the closed polygon pts.
func (r *Rasterizer) addPolygon(pts []vec.Vec2, _ bool) {
	n := len(pts)
	if n < 2 {
		return
	}
	for i := range n {
		r.addEdge(pts[i], pts[(i+1)%n])
	}
}

// addEdge adds the segment from p0 to p1, given in user space.
func (r *Rasterizer) addEdge(p0, p1 vec.Vec2) {
	m := &r.CTM
	x0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	y0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	x1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	y1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	if math.Abs(y1-y0) < horizontalEdgeThreshold {
		return
	}
	dir := float32(1)
	if y1 < y0 {
		x0, y0, x1, y1 = x1, y1, x0, y0
		dir = -1
	}
	r.edges = append(r.edges, edge{
		x0: x0, y0: y0,
		x1: x1, y1: y1,
		dxdy: (x1 - x0) / (y1 - y0),
		dir:  dir,
	})

	if r.bboxEmpty {
		r.bboxXMin, r.bboxXMax = min(x0, x1), max(x0, x1)
		r.bboxYMin, r.bboxYMax = y0, y1
		r.bboxEmpty = false
		return
	}
	r.bboxXMin = min(r.bboxXMin, x0, x1)
	r.bboxXMax = max(r.bboxXMax, x0, x1)
	r.bboxYMin = min(r.bboxYMin, y0)
	r.bboxYMax = max(r.bboxYMax, y1)
}

// Coverage is accumulated per scanline in two buffers.  An edge crossing
// pixel i with signed vertical extent c contributes c to cover[i] and
// c times the uncovered fraction of the pixel to area[i].  The coverage of
// pixel i is then the running sum of cover over all pixels to the left,
// plus area[i].

// scan converts the collected edges into coverage values, one scanline at
// a time, using an active edge list.
func (r *Rasterizer) scan(integrate func(cover, area []float32), emit EmitFunc) {
	if len(r.edges) == 0 {
		return
	}
	xMin := max(int(math.Floor(r.bboxXMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.bboxXMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.bboxYMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.bboxYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.y0, b.y0)
	})
	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top, bottom := float64(y), float64(y+1)
		for next < len(r.edges) && r.edges[next].y0 < bottom {
			r.active = append(r.active, next)
			next++
		}
		r.active = slices.DeleteFunc(r.active, func(i int) bool {
			return r.edges[i].y1 <= top
		})
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		for _, i := range r.active {
			r.accumulate(&r.edges[i], top, bottom, xMin, xMax)
		}
		integrate(r.cover, r.area)
		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// accumulate adds the part of e between the scanlines top and bottom to
// the coverage buffers, which represent the columns xMin to xMax-1.
func (r *Rasterizer) accumulate(e *edge, top, bottom float64, xMin, xMax int) {
	yA := max(top, e.y0)
	yB := min(bottom, e.y1)
	if yB <= yA {
		return
	}
	xA := e.x0 + e.dxdy*(yA-e.y0)
	xB := e.x0 + e.dxdy*(yB-e.y0)
	if xA > xB {
		xA, xB = xB, xA
	}

	colA := int(math.Floor(xA))
	colB := int(math.Floor(xB))
	if colA == colB {
		r.deposit(colA, e.dir*float32(yB-yA), (xA+xB)/2, xMin, xMax)
		return
	}

	// Split the segment at the column boundaries.  The vertical extent of
	// each piece is proportional to its horizontal extent.
	dy := (yB - yA) / (xB - xA)
	for col := colA; col <= colB; col++ {
		left := max(xA, float64(col))
		right := min(xB, float64(col+1))
		if right <= left {
			continue
		}
		r.deposit(col, e.dir*float32((right-left)*dy), (left+right)/2, xMin, xMax)
	}
}

// deposit records a crossing of the given column with signed vertical
// extent c, at mean horizontal position x.
func (r *Rasterizer) deposit(col int, c float32, x float64, xMin, xMax int) {
	switch {
	case col < xMin:
		r.cover[0] += c
		r.area[0] += c
	case col < xMax:
		i := col - xMin
		r.cover[i] += c
		r.area[i] += c * float32(1-(x-float64(col)))
	}
}

// integrateNonZero turns accumulated cover and area values into coverage,
// using the nonzero winding rule.  The result is stored in cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		cover[i] = min(raw, 1)
	}
}

// integrateEvenOdd is like integrateNonZero, but uses the even-odd rule.
func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		m := raw - 2*float32(int(raw/2))
		if m > 1 {
			m = 2 - m
		}
		cover[i] = m
	}
}

// trimZeros returns the part of coverage between the first and the last
// non-zero value, and the offset of the first non-zero value.  If all
// values are zero, nil is returned.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	if lo == len(coverage) {
		return nil, 0
	}
	hi := len(coverage)
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

const (
	// defaultFlatness is below the threshold of visual perception.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the minimal vertical extent of an edge.
	// Flatter edges do not contribute to coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the minimal length of a stroked segment.
	zeroLengthThreshold = 1e-10
)
