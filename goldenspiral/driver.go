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

// Package goldenspiral implements a [fractal.Driver] which draws golden
// spirals.
//
// Every region of the figure is a golden rectangle.  The rectangle is
// split into a square and a smaller golden rectangle, and a quarter circle
// is drawn inside the square.  The smaller rectangle is the primary child
// region; optionally a secondary child region of the same size is placed
// in the square, which gives a doubly recursive figure.
package goldenspiral

import (
	"fmt"
	"maps"
	"slices"

	"seehuhn.de/go/fractal"
	"seehuhn.de/go/fractal/geometry"
	"seehuhn.de/go/fractal/surface"
)

// Glyph classes used by the driver.
const (
	ClassSquare   = "gs-square"
	ClassRect     = "gs-rect"
	ClassRectLast = "gs-rect-last"
	ClassSpiral   = "gs-spiral"
)

// Driver draws golden spirals.
type Driver struct {
	opts Options
}

var _ fractal.Driver = (*Driver)(nil)

// New returns a driver using the given options.
func New(opts Options) *Driver {
	return &Driver{opts: opts}
}

// Default returns a driver using [DefaultOptions].
func Default() *Driver {
	return New(DefaultOptions())
}

// Options returns the options of the driver.
func (d *Driver) Options() Options {
	return d.opts
}

// Initialize implements the [fractal.Driver] interface.
//
// The width and height attributes of root give the size of the figure.
// The figure fills the full width, and its height is reduced to width/phi.
func (d *Driver) Initialize(root *surface.Node) error {
	width, err := root.AttrFloat("width")
	if err != nil {
		return fmt.Errorf("%w: %w", fractal.ErrInvalidDimensions, err)
	}
	height, err := root.AttrFloat("height")
	if err != nil {
		return fmt.Errorf("%w: %w", fractal.ErrInvalidDimensions, err)
	}
	if err := fractal.CheckDimensions(width, height); err != nil {
		return err
	}

	base := width / geometry.Phi
	root.SetDatum(surface.Datum{
		Depth: 0,
		Width: width,
		Base:  base,
	})
	root.SetAttr("width", geometry.Px(width))
	root.SetAttr("height", geometry.Px(base))
	return nil
}

// MakeGlyphsData implements the [fractal.Driver] interface.
func (d *Driver) MakeGlyphsData(depth int, isLastDepth bool) []fractal.Glyph {
	var glyphs []fractal.Glyph
	g := &d.opts.Glyphs
	if g.Square.Enabled && (!g.Square.LastOnly || isLastDepth) {
		glyphs = append(glyphs, fractal.Glyph{Tag: "rect", Class: ClassSquare})
	}
	if g.Rectangle.Enabled && (!g.Rectangle.LastOnly || isLastDepth) {
		glyphs = append(glyphs, fractal.Glyph{Tag: "rect", Class: ClassRect})
	}
	if g.Spiral.Enabled && (!g.Spiral.LastOnly || isLastDepth) {
		glyphs = append(glyphs, fractal.Glyph{Tag: "path", Class: ClassSpiral})
	}
	return glyphs
}

// FormGlyph implements the [fractal.Driver] interface.
func (d *Driver) FormGlyph(el *surface.Node, depth int, isLastDepth bool, g fractal.Glyph, i int) {
	// The engine only forms glyphs inside regions which carry a datum.
	// Elements outside of a region are left unchanged.
	parent := el.Parent()
	if parent == nil {
		return
	}
	region, ok := parent.Datum()
	if !ok {
		return
	}
	base := region.Base

	el.SetClass(g.Class, true)
	switch g.Class {
	case ClassSquare:
		el.SetAttr("width", geometry.Format(base))
		el.SetAttr("height", geometry.Format(base))

	case ClassRect:
		el.SetAttr("width", geometry.Format(region.Width-base))
		el.SetAttr("height", geometry.Format(base))
		el.SetAttr("transform", geometry.Translate(base, 0))
		el.SetClass(ClassRectLast, isLastDepth && !d.opts.Glyphs.Rectangle.NoLastHighlight)

	case ClassSpiral:
		spiral := &d.opts.Glyphs.Spiral
		if spiral.Bezier {
			el.SetAttr("d", geometry.SpiralQuad(base))
		} else {
			el.SetAttr("d", geometry.SpiralArc(base))
		}
		stroke := "#000"
		if spiral.StrokeFn != nil {
			stroke = spiral.StrokeFn(region)
		}
		el.SetAttr("stroke", stroke)
		el.SetAttr("fill", "transparent")
		for _, name := range slices.Sorted(maps.Keys(spiral.PathAttrs)) {
			el.SetAttr(name, spiral.PathAttrs[name])
		}
	}
}

// MakeSubunitsData implements the [fractal.Driver] interface.
//
// The primary child region is the golden rectangle left over after the
// square has been cut off.  With the secondary spiral enabled, a second
// region of the same size is returned, which counts one more secondary
// recursion.
func (d *Driver) MakeSubunitsData(newDepth int, parent surface.Datum) []surface.Datum {
	child := surface.Datum{
		Depth:          newDepth,
		Width:          parent.Base,
		Base:           parent.Base*geometry.Phi - parent.Base,
		ParentBase:     parent.Base,
		SecondaryCount: parent.SecondaryCount,
	}
	res := []surface.Datum{child}
	if d.opts.SecondarySpiral {
		child.SecondaryCount++
		res = append(res, child)
	}
	return res
}

// FormSubunit implements the [fractal.Driver] interface.
//
// The primary region is turned by 90 degrees and moved next to the
// parent's square.  The secondary region is moved to the bottom of the
// parent's square.
func (d *Driver) FormSubunit(el *surface.Node, datum surface.Datum, i int) error {
	pb := datum.ParentBase
	var transform string
	switch i {
	case 0:
		transform = geometry.Chain(
			geometry.RotateAbout(90, pb/2, pb/2),
			geometry.Translate(0, -pb/geometry.Phi))
	case 1:
		transform = geometry.Translate(0, pb-datum.Base)
	default:
		return fmt.Errorf("%w: %d", fractal.ErrUnexpectedIndex, i)
	}
	el.SetAttr("width", geometry.Px(datum.Width))
	el.SetAttr("height", geometry.Px(pb))
	el.SetAttr("transform", transform)
	return nil
}
