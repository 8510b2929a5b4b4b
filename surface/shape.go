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

package surface

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/fractal/geometry"
)

// Shape is a drawable element together with its placement.
type Shape struct {
	Node    *Node
	CTM     matrix.Matrix // maps the coordinates of Outline to the page
	Outline *path.Data
}

// Shapes calls yield for every drawable element of the tree rooted at
// root, in painting order.  The "transform" attributes of the elements are
// composed with ctm.  Iteration stops at the first error returned by
// yield.
func Shapes(root *Node, ctm matrix.Matrix, yield func(Shape) error) error {
	if s, ok := root.Attr("transform"); ok {
		local, err := geometry.ParseTransform(s)
		if err != nil {
			return fmt.Errorf("%s: %w", root, err)
		}
		ctm = local.Mul(ctm)
	}

	outline, err := root.Outline()
	if err != nil {
		return fmt.Errorf("%s: %w", root, err)
	}
	if outline != nil {
		if err := yield(Shape{Node: root, CTM: ctm, Outline: outline}); err != nil {
			return err
		}
	}

	for _, c := range root.children {
		if err := Shapes(c, ctm, yield); err != nil {
			return err
		}
	}
	return nil
}

// Outline returns the geometry of a "rect" or "path" element.  The result
// is nil for other elements, and for elements which cover no area.
func (n *Node) Outline() (*path.Data, error) {
	switch n.Kind {
	case "rect":
		var v [4]float64
		for i, name := range []string{"x", "y", "width", "height"} {
			if _, ok := n.Attr(name); !ok {
				continue
			}
			x, err := n.AttrFloat(name)
			if err != nil {
				return nil, err
			}
			v[i] = x
		}
		x, y, w, h := v[0], v[1], v[2], v[3]
		if w <= 0 || h <= 0 {
			return nil, nil
		}
		return (&path.Data{}).
			MoveTo(vec.Vec2{X: x, Y: y}).
			LineTo(vec.Vec2{X: x + w, Y: y}).
			LineTo(vec.Vec2{X: x + w, Y: y + h}).
			LineTo(vec.Vec2{X: x, Y: y + h}).
			Close(), nil
	case "path":
		d, ok := n.Attr("d")
		if !ok {
			return nil, nil
		}
		return geometry.ParsePath(d)
	}
	return nil, nil
}
