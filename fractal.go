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

// Package fractal grows self-similar figures in a render tree.
//
// An [Engine] walks a figure level by level, starting from a root
// [surface.Node].  At every level a [Driver] decides which shapes
// ("glyphs") to draw in each region and how each region splits into child
// regions.  The engine reconciles the driver's answer with what is already
// in the tree: missing nodes are created, existing nodes are kept and
// refreshed, and surplus nodes are removed.  Redrawing at a different depth
// therefore only touches the levels which change.
//
// The reference driver, which draws golden spirals, is in the goldenspiral
// package.
package fractal

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/fractal/geometry"
	"seehuhn.de/go/fractal/surface"
)

// DefaultDepth is the number of levels drawn when no depth has been set.
const DefaultDepth = 5

// Glyph describes a shape to be drawn inside a region.
type Glyph struct {
	// Tag is the element kind, for example "rect" or "path".
	Tag string

	// Class identifies the glyph.  It must be unique among the glyphs of a
	// region and stable across redraws, since it is used to match glyphs
	// to existing nodes.
	Class string
}

// Driver supplies the geometry of a figure to an [Engine].
//
// Drivers must treat the data passed to them as read-only and must not
// retain node references between calls.  All state needed for a redraw is
// kept in the datums attached to the nodes.
type Driver interface {
	// Initialize prepares the root node of a new figure.  It must attach a
	// datum describing the whole figure to root.  Initialize is called
	// by the first Draw call for a root which has no datum.
	Initialize(root *surface.Node) error

	// MakeGlyphsData lists the glyphs to draw in every region at the
	// given depth.  It is called once per region and must not modify the
	// tree.
	MakeGlyphsData(depth int, isLastDepth bool) []Glyph

	// FormGlyph sets the attributes of a glyph node.  It is called for new
	// and for existing glyphs on every draw.  The datum of the enclosing
	// region can be obtained from el.Parent().  The index i is the position
	// of g in the list returned by MakeGlyphsData.
	FormGlyph(el *surface.Node, depth int, isLastDepth bool, g Glyph, i int)

	// MakeSubunitsData returns the child regions of the region described
	// by parent.  newDepth is parent.Depth+1.  Child regions are matched to
	// existing nodes by their position in the returned slice.
	MakeSubunitsData(newDepth int, parent surface.Datum) []surface.Datum

	// FormSubunit places a newly created child region.  The index i is
	// the position of d in the slice returned by MakeSubunitsData.  An
	// error indicates a bug in the driver.
	FormSubunit(el *surface.Node, d surface.Datum, i int) error
}

var (
	// ErrNoDriver is returned when an engine is configured without a
	// driver.
	ErrNoDriver = errors.New("fractal: no driver")

	// ErrNoSurface is returned when an engine is configured without a
	// root node.
	ErrNoSurface = errors.New("fractal: no root node")

	// ErrNoDatum indicates that a region has no datum attached.
	ErrNoDatum = errors.New("fractal: region has no datum")

	// ErrInvalidDimensions indicates that the root node has unusable width
	// and height attributes.
	ErrInvalidDimensions = errors.New("fractal: invalid dimensions")

	// ErrUnexpectedIndex is returned by drivers which are asked to place a
	// child region they did not ask for.
	ErrUnexpectedIndex = errors.New("fractal: unexpected region index")
)

// CheckDimensions verifies that a figure of the given size can hold a
// golden rectangle, i.e. that both sides are positive and that the aspect
// ratio width/height does not exceed [geometry.Phi].
func CheckDimensions(width, height float64) error {
	if !(width > 0) || math.IsInf(width, 0) {
		return fmt.Errorf("%w: width %g", ErrInvalidDimensions, width)
	}
	if !(height > 0) || math.IsInf(height, 0) {
		return fmt.Errorf("%w: height %g", ErrInvalidDimensions, height)
	}
	if width/height > geometry.Phi*(1+1e-9) {
		return fmt.Errorf("%w: width/height = %g exceeds phi", ErrInvalidDimensions, width/height)
	}
	return nil
}

// depthClass returns the class marking nodes which belong to the given
// level.
func depthClass(depth int) string {
	return fmt.Sprintf("depth-%d", depth)
}
