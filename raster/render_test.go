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

package raster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/fractal"
	"seehuhn.de/go/fractal/goldenspiral"
	"seehuhn.de/go/fractal/raster"
	"seehuhn.de/go/fractal/surface"
)

func drawFigure(t testing.TB, depth int) *surface.Node {
	t.Helper()
	opts := goldenspiral.DefaultOptions()
	opts.SecondarySpiral = false
	opts.Glyphs.Square.Enabled = true
	root := surface.NewRoot(400, 250)
	e, err := fractal.New(root, goldenspiral.New(opts), fractal.WithDepth(depth))
	require.NoError(t, err)
	require.NoError(t, e.Draw())
	return root
}

func TestRender(t *testing.T) {
	root := drawFigure(t, 3)

	img, err := raster.Render(root, &raster.Options{Styles: goldenspiral.Styles})
	require.NoError(t, err)

	// The height is reduced to width/φ by the driver.
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 248, img.Bounds().Dy())

	// The outermost spiral arc passes through (r-r/√2, r-r/√2).
	assert.Less(t, img.GrayAt(72, 72).Y, uint8(128))
	// Far from every outline.
	assert.Equal(t, uint8(255), img.GrayAt(10, 240).Y)
	// The outline of the first square is light gray.
	left := img.GrayAt(0, 100).Y
	assert.Greater(t, left, uint8(128))
	assert.Less(t, left, uint8(255))
}

func TestRenderScale(t *testing.T) {
	root := drawFigure(t, 2)

	img, err := raster.Render(root, &raster.Options{Scale: 0.5})
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 124, img.Bounds().Dy())
}

func TestRenderErrors(t *testing.T) {
	root := surface.NewRoot(10, 10)
	p := root.Append("path")
	p.SetAttr("d", "M 0 0 X 1 1")
	_, err := raster.Render(root, nil)
	assert.Error(t, err)

	root = surface.NewRoot(10, 10)
	r := root.Append("rect")
	r.SetAttr("width", "5")
	r.SetAttr("height", "5")
	r.SetAttr("fill", "not-a-colour")
	_, err = raster.Render(root, nil)
	assert.Error(t, err)

	root = surface.NewRoot(10, 10)
	g := root.Append("g")
	g.SetAttr("transform", "skewX(10)")
	_, err = raster.Render(root, nil)
	assert.Error(t, err)

	root = surface.NewRoot(10, 10)
	p = root.Append("path")
	p.SetAttr("d", "M 0 0 L 5 5")
	p.SetAttr("stroke", "#000")
	p.SetAttr("stroke-width", "wide")
	_, err = raster.Render(root, nil)
	assert.Error(t, err)

	root = surface.NewRoot(0, 10)
	_, err = raster.Render(root, nil)
	assert.Error(t, err)
}
