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

package goldenspiral

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"seehuhn.de/go/fractal/surface"
)

// StrokeFunc computes the stroke colour for the spiral segment of a
// region.
type StrokeFunc func(region surface.Datum) string

const (
	defaultRampFrom = "#000"
	defaultRampTo   = "#fff"

	// rampDomainMax is the upper end of the ramp domain [1, rampDomainMax].
	rampDomainMax = 11
)

// DefaultStroke colours spiral segments from black to white, depending on
// the number of secondary recursions which led to the region.
var DefaultStroke = mustLogRamp(defaultRampFrom, defaultRampTo)

// LogRamp returns a stroke function which maps SecondaryCount+1 on a
// logarithmic scale over [1, 11] onto the colours between from and to.
// Counts beyond the domain give the end colour.
func LogRamp(from, to string) (StrokeFunc, error) {
	c0, err := colorful.Hex(from)
	if err != nil {
		return nil, fmt.Errorf("colour %q: %w", from, err)
	}
	c1, err := colorful.Hex(to)
	if err != nil {
		return nil, fmt.Errorf("colour %q: %w", to, err)
	}
	return func(region surface.Datum) string {
		x := float64(max(region.SecondaryCount, 0) + 1)
		t := min(math.Log(x)/math.Log(rampDomainMax), 1)
		return c0.BlendRgb(c1, t).Clamped().Hex()
	}, nil
}

func mustLogRamp(from, to string) StrokeFunc {
	fn, err := LogRamp(from, to)
	if err != nil {
		panic(err)
	}
	return fn
}

// Ramp describes a stroke function in configuration files.  An empty
// ramp means plain black strokes, a ramp with two colours selects
// [LogRamp].
type Ramp []string

// Func returns the stroke function described by r.
func (r Ramp) Func() (StrokeFunc, error) {
	switch len(r) {
	case 0:
		return nil, nil
	case 2:
		return LogRamp(r[0], r[1])
	}
	return nil, fmt.Errorf("need two colours, got %d", len(r))
}
