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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke paints the outline of p, using Width and Cap.
//
// Every segment of the flattened path is covered by a rectangle, and every
// vertex by a disc.  Since all these shapes have the same orientation,
// filling them with the nonzero rule gives their union.
func (r *Rasterizer) Stroke(p *path.Data, emit EmitFunc) {
	r.startEdges()
	if r.Width > 0 {
		r.flatten(p, r.strokeSubpath)
	}
	r.scan(integrateNonZero, emit)
}

func (r *Rasterizer) strokeSubpath(pts []vec.Vec2, closed bool) {
	d := r.Width / 2
	n := len(pts)

	segments := n - 1
	if closed {
		segments = n
	}
	drawn := 0
	for i := range segments {
		a, b := pts[i], pts[(i+1)%n]
		ab := b.Sub(a)
		length := ab.Length()
		if length < zeroLengthThreshold {
			continue
		}
		t := ab.Mul(1 / length)
		if !closed && r.Cap == graphics.LineCapSquare {
			if i == 0 {
				a = a.Sub(t.Mul(d))
			}
			if i == segments-1 {
				b = b.Add(t.Mul(d))
			}
		}
		nv := vec.Vec2{X: -t.Y, Y: t.X}.Mul(d)
		r.addQuad(a.Sub(nv), b.Sub(nv), b.Add(nv), a.Add(nv))
		drawn++
	}

	if drawn == 0 {
		// all points coincide
		if r.Cap == graphics.LineCapRound {
			r.addDisc(pts[0], d)
		}
		return
	}

	for i, pt := range pts {
		isEnd := !closed && (i == 0 || i == n-1)
		if isEnd && r.Cap != graphics.LineCapRound {
			continue
		}
		r.addDisc(pt, d)
	}
}

func (r *Rasterizer) addQuad(a, b, c, d vec.Vec2) {
	r.outline = append(r.outline[:0], a, b, c, d)
	r.addPolygon(r.outline, true)
}

// addDisc adds a counter-clockwise polygon approximating the disc of
// radius rad about center.  The number of vertices depends on the device
// space radius and on Flatness.
func (r *Rasterizer) addDisc(center vec.Vec2, rad float64) {
	devRad := max(
		r.linear(vec.Vec2{X: rad}).Length(),
		r.linear(vec.Vec2{Y: rad}).Length())

	n := 4
	if devRad > r.Flatness {
		// The chord for an angle θ deviates from the circle by
		// rad*(1-cos(θ/2)).
		step := 2 * math.Acos(1-r.Flatness/devRad)
		n = max(int(math.Ceil(2*math.Pi/step)), n)
	}

	r.outline = r.outline[:0]
	for i := range n {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		r.outline = append(r.outline, vec.Vec2{
			X: center.X + rad*cos,
			Y: center.Y + rad*sin,
		})
	}
	r.addPolygon(r.outline, true)
}
