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

// Package geometry provides the numeric helpers used to lay out golden
// spiral figures: the golden ratio, SVG-style transform strings and the
// path commands for the quarter-circle spiral segments.
//
// Transform and path strings are produced in the SVG attribute syntax,
// and can be parsed back into [matrix.Matrix] and [path.Data] values for
// the raster and PDF back ends.
package geometry

import (
	"strconv"
	"strings"
)

// Phi is the golden ratio, rounded to the precision used for all layout
// computations.
const Phi = 1.61803398875

// Kappa is the distance of the control points from the end points, as a
// fraction of the radius, when a quarter circle is approximated by a
// single cubic Bézier curve.
const Kappa = 0.5522847498307936

// Format renders v in the shortest decimal form which parses back to the
// same float64.
func Format(v float64) string {
	if v == 0 {
		// avoid "-0"
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Px formats v as a CSS pixel length, for example "247.2px".
func Px(v float64) string {
	return Format(v) + "px"
}

// ParseLength parses a number with an optional "px" suffix.
func ParseLength(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "px")
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// Translate returns the transform string "translate(x,y)".
func Translate(x, y float64) string {
	return "translate(" + Format(x) + "," + Format(y) + ")"
}

// Rotate returns the transform string "rotate(deg)".
func Rotate(deg float64) string {
	return "rotate(" + Format(deg) + ")"
}

// RotateAbout returns the transform string "rotate(deg x y)", which
// rotates by deg degrees about the point (x, y).
func RotateAbout(deg, x, y float64) string {
	return "rotate(" + Format(deg) + " " + Format(x) + " " + Format(y) + ")"
}

// Chain joins transform strings so that the right-most transform is
// applied first.
func Chain(transforms ...string) string {
	return strings.Join(transforms, " ")
}
