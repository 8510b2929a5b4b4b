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

// Package pdfdoc stores figures as single page PDF files.
//
// The page size in PDF points equals the width and height attributes of
// the root element.  Only gray levels are written: colours are converted
// to their luminance.
package pdfdoc

import (
	"fmt"
	"image/color"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/fractal/surface"
)

// Write creates the PDF file fname, containing the figure rooted at root.
func Write(fname string, root *surface.Node, styles surface.Stylesheet) error {
	width, err := root.AttrFloat("width")
	if err != nil {
		return fmt.Errorf("pdfdoc: %w", err)
	}
	height, err := root.AttrFloat("height")
	if err != nil {
		return fmt.Errorf("pdfdoc: %w", err)
	}
	if !(width > 0 && height > 0) {
		return fmt.Errorf("pdfdoc: invalid page size %gx%g", width, height)
	}

	paper := &pdf.Rectangle{URx: width, URy: height}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left, figures use top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, height})
	page.SetLineCap(graphics.LineCapButt)
	page.SetLineJoin(graphics.LineJoinRound)

	w := &writer{page: page, styles: styles}
	err = surface.Shapes(root, matrix.Identity, w.draw)
	if cerr := page.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("pdfdoc: %w", err)
	}
	return nil
}

type writer struct {
	page   *document.Page
	styles surface.Stylesheet
}

func (w *writer) draw(sh surface.Shape) error {
	st, err := w.styles.Resolve(sh.Node)
	if err != nil {
		return fmt.Errorf("%s: %w", sh.Node, err)
	}
	if surface.Painted(st.Fill) {
		g, err := gray(st.Fill)
		if err != nil {
			return fmt.Errorf("%s: %w", sh.Node, err)
		}
		w.page.SetFillColor(g)
		w.outline(sh)
		w.page.Fill()
	}
	if surface.Painted(st.Stroke) && st.StrokeWidth > 0 {
		g, err := gray(st.Stroke)
		if err != nil {
			return fmt.Errorf("%s: %w", sh.Node, err)
		}
		w.page.SetStrokeColor(g)
		// The coordinates are transformed below, so the line width must
		// be scaled here.
		m := sh.CTM
		w.page.SetLineWidth(st.StrokeWidth * math.Sqrt(math.Abs(m[0]*m[3]-m[1]*m[2])))
		w.outline(sh)
		w.page.Stroke()
	}
	return nil
}

// outline constructs the path of sh in page coordinates.
func (w *writer) outline(sh surface.Shape) {
	// PDF has no quadratic Bézier curves.
	for cmd, pts := range sh.Outline.Iter().Transform(sh.CTM).ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			w.page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			w.page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			w.page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			w.page.ClosePath()
		}
	}
}

func gray(s string) (pdfcolor.DeviceGray, error) {
	c, err := surface.ParseColor(s)
	if err != nil {
		return 0, err
	}
	y := color.GrayModel.Convert(c).(color.Gray).Y
	return pdfcolor.DeviceGray(float64(y) / 255), nil
}
