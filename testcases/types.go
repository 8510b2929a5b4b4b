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

import (
	"seehuhn.de/go/fractal"
	"seehuhn.de/go/fractal/goldenspiral"
	"seehuhn.de/go/fractal/surface"
)

// TestCase defines a single figure.
type TestCase struct {
	Name    string  // lowercase a-z, 0-9 and _ only
	Width   float64 // width of the root element
	Height  float64 // height of the root element
	Depth   int     // number of levels
	Options goldenspiral.Options
}

// Draw creates the tree for tc.
func Draw(tc TestCase) (*surface.Node, error) {
	root := surface.NewRoot(tc.Width, tc.Height)
	e, err := fractal.New(root, goldenspiral.New(tc.Options), fractal.WithDepth(tc.Depth))
	if err != nil {
		return nil, err
	}
	if err := e.Draw(); err != nil {
		return nil, err
	}
	return root, nil
}

// options returns the default options, modified by fn.
func options(fn func(o *goldenspiral.Options)) goldenspiral.Options {
	o := goldenspiral.DefaultOptions()
	fn(&o)
	return o
}
