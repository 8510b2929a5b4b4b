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
	"fmt"
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/fractal/surface"
)

// Options control [Render].  The zero value is valid.
type Options struct {
	// Styles supplies the presentation of classes.
	Styles surface.Stylesheet

	// Scale is the number of pixels per user space unit.  Zero means 1.
	Scale float64
}

// Render paints the tree rooted at root into a new grayscale image on a
// white background.  The image size is given by the width and height
// attributes of root, multiplied by the scale.
func Render(root *surface.Node, opts *Options) (*image.Gray, error) {
	if opts == nil {
		opts = &Options{}
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	width, err := root.AttrFloat("width")
	if err != nil {
		return nil, fmt.Errorf("raster: %w", err)
	}
	height, err := root.AttrFloat("height")
	if err != nil {
		return nil, fmt.Errorf("raster: %w", err)
	}
	w := int(math.Ceil(width * scale))
	h := int(math.Ceil(height * scale))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("raster: invalid image size %dx%d", w, h)
	}

	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}
	p := &painter{
		img:    img,
		r:      NewRasterizer(rect.Rect{URx: float64(w), URy: float64(h)}),
		styles: opts.Styles,
	}
	ctm := matrix.Matrix{scale, 0, 0, scale, 0, 0}
	if err := surface.Shapes(root, ctm, p.paint); err != nil {
		return nil, fmt.Errorf("raster: %w", err)
	}
	return img, nil
}

type painter struct {
	img    *image.Gray
	r      *Rasterizer
	styles surface.Stylesheet
}

func (p *painter) paint(sh surface.Shape) error {
	st, err := p.styles.Resolve(sh.Node)
	if err != nil {
		return fmt.Errorf("%s: %w", sh.Node, err)
	}
	p.r.CTM = sh.CTM
	if surface.Painted(st.Fill) {
		gray, err := grayOf(st.Fill)
		if err != nil {
			return fmt.Errorf("%s: %w", sh.Node, err)
		}
		p.r.FillNonZero(sh.Outline, p.composite(gray))
	}
	if surface.Painted(st.Stroke) && st.StrokeWidth > 0 {
		gray, err := grayOf(st.Stroke)
		if err != nil {
			return fmt.Errorf("%s: %w", sh.Node, err)
		}
		p.r.Width = st.StrokeWidth
		p.r.Cap = graphics.LineCapButt
		p.r.Stroke(sh.Outline, p.composite(gray))
	}
	return nil
}

// composite returns an EmitFunc which blends the given gray level into the
// image, weighted by coverage.
func (p *painter) composite(gray uint8) EmitFunc {
	g := float32(gray)
	return func(y, xMin int, coverage []float32) {
		row := p.img.Pix[y*p.img.Stride+xMin:]
		for i, c := range coverage {
			old := float32(row[i])
			row[i] = uint8(old + (g-old)*c + 0.5)
		}
	}
}

// grayOf converts a CSS colour to a gray level.
func grayOf(s string) (uint8, error) {
	c, err := surface.ParseColor(s)
	if err != nil {
		return 0, err
	}
	return color.GrayModel.Convert(c).(color.Gray).Y, nil
}
