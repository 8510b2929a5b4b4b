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

package preview

import (
	"image"
	"strings"

	"golang.org/x/image/draw"
)

// brailleBuf is a monochrome canvas of terminal cells, each holding 2×4
// dots.
type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell dot mask
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m}
}

// dotBits maps the position of a dot within its cell to the bit of the
// Unicode braille pattern.
var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setDot sets the dot at micro coordinates (mx, my).
func (b *brailleBuf) setDot(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= dotBits[mx%2][my%4]
}

// plot sets all dots where img is darker than threshold.  The image is
// first scaled to w×h dots, in the top left corner of the grid.
func (b *brailleBuf) plot(img *image.Gray, w, h int, threshold uint8) {
	dots := image.NewGray(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dots, dots.Bounds(), img, img.Bounds(), draw.Src, nil)
	for y := range dots.Rect.Dy() {
		row := dots.Pix[y*dots.Stride:]
		for x := range dots.Rect.Dx() {
			if row[x] < threshold {
				b.setDot(x, y)
			}
		}
	}
}

func (b *brailleBuf) String() string {
	lines := make([]string, b.h)
	for y := range b.h {
		row := make([]rune, b.w)
		for x := range b.w {
			if mask := b.m[y][x]; mask == 0 {
				row[x] = ' '
			} else {
				row[x] = rune(0x2800 + int(mask))
			}
		}
		lines[y] = string(row)
	}
	return strings.Join(lines, "\n")
}
