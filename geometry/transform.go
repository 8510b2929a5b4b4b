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

package geometry

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/matrix"
)

// ErrSyntax is returned when a transform or path string cannot be parsed.
var ErrSyntax = errors.New("geometry: syntax error")

// RotateMatrix returns the matrix for a rotation by deg degrees about the
// point (cx, cy).  In a y-down coordinate system positive angles turn
// clockwise, as in SVG.
func RotateMatrix(deg, cx, cy float64) matrix.Matrix {
	if cx == 0 && cy == 0 {
		return matrix.RotateDeg(deg)
	}
	return matrix.Translate(-cx, -cy).RotateDeg(deg).Translate(cx, cy)
}

// ParseTransform parses an SVG transform list, for example
// "rotate(90 50 50) translate(0,-30.9)".  The empty string gives the
// identity matrix.  Supported functions are matrix, translate, rotate and
// scale.
func ParseTransform(s string) (matrix.Matrix, error) {
	m := matrix.Identity
	rest := strings.TrimSpace(s)
	var steps []matrix.Matrix
	for rest != "" {
		open := strings.IndexByte(rest, '(')
		closing := strings.IndexByte(rest, ')')
		if open < 0 || closing < open {
			return matrix.Identity, fmt.Errorf("%w: transform %q", ErrSyntax, s)
		}
		name := strings.TrimSpace(rest[:open])
		args, err := parseNumbers(rest[open+1 : closing])
		if err != nil {
			return matrix.Identity, fmt.Errorf("%w: transform %q", ErrSyntax, s)
		}
		step, err := transformStep(name, args)
		if err != nil {
			return matrix.Identity, fmt.Errorf("%w: transform %q: %v", ErrSyntax, s, err)
		}
		steps = append(steps, step)
		rest = strings.TrimLeft(rest[closing+1:], " \t\n,")
	}

	// The right-most transform acts first.
	for i := len(steps) - 1; i >= 0; i-- {
		m = m.Mul(steps[i])
	}
	return m, nil
}

func transformStep(name string, args []float64) (matrix.Matrix, error) {
	switch {
	case name == "matrix" && len(args) == 6:
		return matrix.Matrix{args[0], args[1], args[2], args[3], args[4], args[5]}, nil
	case name == "translate" && len(args) == 1:
		return matrix.Translate(args[0], 0), nil
	case name == "translate" && len(args) == 2:
		return matrix.Translate(args[0], args[1]), nil
	case name == "scale" && len(args) == 1:
		return matrix.Scale(args[0], args[0]), nil
	case name == "scale" && len(args) == 2:
		return matrix.Scale(args[0], args[1]), nil
	case name == "rotate" && len(args) == 1:
		return RotateMatrix(args[0], 0, 0), nil
	case name == "rotate" && len(args) == 3:
		return RotateMatrix(args[0], args[1], args[2]), nil
	}
	return matrix.Identity, fmt.Errorf("%s with %d arguments", name, len(args))
}

// parseNumbers splits a comma and/or whitespace separated list of numbers.
func parseNumbers(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	res := make([]float64, 0, len(fields))
	for _, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		res = append(res, x)
	}
	return res, nil
}
