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

package testcases

import "seehuhn.de/go/fractal/goldenspiral"

// All contains all test cases, grouped by category.
// The category name is used as a prefix in reference file names.
var All = map[string][]TestCase{
	"depth":      depthCases,
	"glyphs":     glyphCases,
	"branching":  branchingCases,
	"dimensions": dimensionCases,
}

var depthCases = []TestCase{
	{Name: "one", Width: 400, Height: 250, Depth: 1, Options: goldenspiral.DefaultOptions()},
	{Name: "default", Width: 400, Height: 250, Depth: 5, Options: goldenspiral.DefaultOptions()},
	{Name: "ten", Width: 400, Height: 250, Depth: 10, Options: goldenspiral.DefaultOptions()},
}

var glyphCases = []TestCase{
	{
		Name: "all", Width: 400, Height: 250, Depth: 6,
		Options: options(func(o *goldenspiral.Options) {
			o.Glyphs.Square.Enabled = true
			o.Glyphs.Rectangle.Enabled = true
		}),
	},
	{
		// the configuration of the animated demo
		Name: "last_only", Width: 400, Height: 250, Depth: 7,
		Options: options(func(o *goldenspiral.Options) {
			o.Glyphs.Square = goldenspiral.SquareOptions{Enabled: true, LastOnly: true}
			o.Glyphs.Rectangle = goldenspiral.RectangleOptions{Enabled: true, LastOnly: true}
			o.SecondarySpiral = false
		}),
	},
	{
		Name: "spiral_last_only", Width: 400, Height: 250, Depth: 5,
		Options: options(func(o *goldenspiral.Options) {
			o.Glyphs.Square.Enabled = true
			o.Glyphs.Spiral.LastOnly = true
		}),
	},
	{
		Name: "no_highlight", Width: 400, Height: 250, Depth: 4,
		Options: options(func(o *goldenspiral.Options) {
			o.Glyphs.Rectangle = goldenspiral.RectangleOptions{Enabled: true, NoLastHighlight: true}
		}),
	},
	{
		Name: "bezier", Width: 400, Height: 250, Depth: 6,
		Options: options(func(o *goldenspiral.Options) {
			o.Glyphs.Spiral.Bezier = true
			o.Glyphs.Spiral.PathAttrs = map[string]string{"stroke-linecap": "round"}
		}),
	},
	{
		Name: "squares_only", Width: 400, Height: 250, Depth: 5,
		Options: options(func(o *goldenspiral.Options) {
			o.Glyphs.Square.Enabled = true
			o.Glyphs.Spiral.Enabled = false
		}),
	},
	{
		Name: "black", Width: 400, Height: 250, Depth: 5,
		Options: options(func(o *goldenspiral.Options) {
			o.Glyphs.Spiral.StrokeFn = nil
		}),
	},
}

var branchingCases = []TestCase{
	{
		Name: "primary_only", Width: 400, Height: 250, Depth: 10,
		Options: options(func(o *goldenspiral.Options) {
			o.SecondarySpiral = false
		}),
	},
	{
		Name: "secondary", Width: 400, Height: 250, Depth: 8,
		Options: options(func(o *goldenspiral.Options) {
			o.Glyphs.Rectangle.Enabled = true
		}),
	},
}

var dimensionCases = []TestCase{
	{Name: "golden", Width: 323.606797749979, Height: 200, Depth: 5, Options: goldenspiral.DefaultOptions()},
	{Name: "square", Width: 300, Height: 300, Depth: 5, Options: goldenspiral.DefaultOptions()},
	{Name: "small", Width: 40, Height: 25, Depth: 5, Options: goldenspiral.DefaultOptions()},
	{Name: "large", Width: 4000, Height: 2500, Depth: 7, Options: goldenspiral.DefaultOptions()},
}
