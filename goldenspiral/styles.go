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

import "seehuhn.de/go/fractal/surface"

// Styles is the presentation of the glyph classes used by the driver.
// Spiral colours are set as attributes by the driver and are not part of
// the stylesheet.
var Styles = surface.Stylesheet{
	{Class: ClassSquare, Style: surface.Style{Fill: "none", Stroke: "#bbb", StrokeWidth: 0.5}},
	{Class: ClassRect, Style: surface.Style{Fill: "none", Stroke: "#bbb", StrokeWidth: 0.5}},
	{Class: ClassRectLast, Style: surface.Style{Fill: "#e6e6e6"}},
	{Class: ClassSpiral, Style: surface.Style{Fill: "none", StrokeWidth: 1.5}},
}
