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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/fractal"
	"seehuhn.de/go/fractal/geometry"
	"seehuhn.de/go/fractal/surface"
)

func TestMakeGlyphsData(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, []fractal.Glyph{{Tag: "path", Class: ClassSpiral}}, New(opts).MakeGlyphsData(0, false))

	opts.Glyphs.Square = SquareOptions{Enabled: true, LastOnly: true}
	opts.Glyphs.Rectangle = RectangleOptions{Enabled: true}
	d := New(opts)
	assert.Equal(t, []fractal.Glyph{
		{Tag: "rect", Class: ClassRect},
		{Tag: "path", Class: ClassSpiral},
	}, d.MakeGlyphsData(0, false))
	assert.Equal(t, []fractal.Glyph{
		{Tag: "rect", Class: ClassSquare},
		{Tag: "rect", Class: ClassRect},
		{Tag: "path", Class: ClassSpiral},
	}, d.MakeGlyphsData(3, true))

	opts = DefaultOptions()
	opts.Glyphs.Spiral.LastOnly = true
	d = New(opts)
	assert.Empty(t, d.MakeGlyphsData(1, false))
	assert.Equal(t, []fractal.Glyph{{Tag: "path", Class: ClassSpiral}}, d.MakeGlyphsData(2, true))
}

func TestMakeSubunitsData(t *testing.T) {
	parent := surface.Datum{Depth: 2, Width: 100 * geometry.Phi, Base: 100, SecondaryCount: 3}

	opts := DefaultOptions()
	opts.SecondarySpiral = false
	res := New(opts).MakeSubunitsData(3, parent)
	require.Len(t, res, 1)
	assert.Equal(t, 3, res[0].Depth)
	assert.Equal(t, 100.0, res[0].Width)
	assert.InDelta(t, 100/geometry.Phi, res[0].Base, 1e-9)
	assert.Equal(t, 100.0, res[0].ParentBase)
	assert.Equal(t, 3, res[0].SecondaryCount)
	assert.Less(t, res[0].Base, res[0].Width)

	res = Default().MakeSubunitsData(3, parent)
	require.Len(t, res, 2)
	assert.Equal(t, 3, res[0].SecondaryCount)
	assert.Equal(t, 4, res[1].SecondaryCount)
	res[1].SecondaryCount = 3
	assert.Equal(t, res[0], res[1])
}

func region(base float64) *surface.Node {
	root := surface.NewRoot(base*geometry.Phi, base)
	root.SetDatum(surface.Datum{Width: base * geometry.Phi, Base: base, SecondaryCount: 1})
	return root
}

func attr(t *testing.T, n *surface.Node, name string) string {
	t.Helper()
	v, ok := n.Attr(name)
	require.True(t, ok, name)
	return v
}

func TestFormGlyph(t *testing.T) {
	opts := DefaultOptions()
	opts.Glyphs.Rectangle.Enabled = true
	d := New(opts)
	parent := region(10)

	sq := parent.Append("rect")
	d.FormGlyph(sq, 0, false, fractal.Glyph{Tag: "rect", Class: ClassSquare}, 0)
	assert.True(t, sq.HasClass(ClassSquare))
	assert.Equal(t, "10", attr(t, sq, "width"))
	assert.Equal(t, "10", attr(t, sq, "height"))

	rect := parent.Append("rect")
	g := fractal.Glyph{Tag: "rect", Class: ClassRect}
	d.FormGlyph(rect, 0, true, g, 1)
	pd, _ := parent.Datum()
	assert.Equal(t, geometry.Format(pd.Width-pd.Base), attr(t, rect, "width"))
	assert.Equal(t, "10", attr(t, rect, "height"))
	assert.Equal(t, "translate(10,0)", attr(t, rect, "transform"))
	assert.True(t, rect.HasClass(ClassRectLast))
	d.FormGlyph(rect, 0, false, g, 1)
	assert.False(t, rect.HasClass(ClassRectLast))

	opts.Glyphs.Rectangle.NoLastHighlight = true
	New(opts).FormGlyph(rect, 0, true, g, 1)
	assert.False(t, rect.HasClass(ClassRectLast))

	spiral := parent.Append("path")
	sg := fractal.Glyph{Tag: "path", Class: ClassSpiral}
	d.FormGlyph(spiral, 0, false, sg, 2)
	assert.Equal(t, "M 10 0 A 10 10 0 0 0 0 10", attr(t, spiral, "d"))
	assert.Equal(t, "#4a4a4a", attr(t, spiral, "stroke"))
	assert.Equal(t, "transparent", attr(t, spiral, "fill"))

	opts = DefaultOptions()
	opts.Glyphs.Spiral.Bezier = true
	opts.Glyphs.Spiral.StrokeFn = nil
	opts.Glyphs.Spiral.PathAttrs = map[string]string{"fill": "none", "stroke-width": "2"}
	New(opts).FormGlyph(spiral, 0, false, sg, 2)
	assert.Equal(t, "M 0 10 Q 0 0 10 0", attr(t, spiral, "d"))
	assert.Equal(t, "#000", attr(t, spiral, "stroke"))
	assert.Equal(t, "none", attr(t, spiral, "fill"))
	assert.Equal(t, "2", attr(t, spiral, "stroke-width"))

	opts.Glyphs.Spiral.PathAttrs = map[string]string{"stroke": "red"}
	New(opts).FormGlyph(spiral, 0, false, sg, 2)
	assert.Equal(t, "red", attr(t, spiral, "stroke"))
}

func TestFormGlyphOutsideRegion(t *testing.T) {
	d := New(DefaultOptions())
	root := surface.NewRoot(400, 250)
	el := root.Append("path")
	before := el.Attrs()
	d.FormGlyph(el, 0, true, fractal.Glyph{Tag: "path", Class: ClassSpiral}, 0)
	assert.Equal(t, before, el.Attrs())
	assert.Empty(t, el.Classes())
}

func TestFormSubunit(t *testing.T) {
	d := Default()
	pb := 100.0
	parent := region(pb)
	data := d.MakeSubunitsData(1, surface.Datum{Width: pb * geometry.Phi, Base: pb})

	primary := parent.Append("g")
	require.NoError(t, d.FormSubunit(primary, data[0], 0))
	assert.Equal(t, "100px", attr(t, primary, "width"))
	assert.Equal(t, "100px", attr(t, primary, "height"))
	assert.Equal(t, "rotate(90 50 50) translate(0,"+geometry.Format(-pb/geometry.Phi)+")", attr(t, primary, "transform"))

	secondary := parent.Append("g")
	require.NoError(t, d.FormSubunit(secondary, data[1], 1))
	assert.Equal(t, geometry.Translate(0, pb-data[1].Base), attr(t, secondary, "transform"))

	err := d.FormSubunit(parent.Append("g"), data[0], 2)
	assert.ErrorIs(t, err, fractal.ErrUnexpectedIndex)
	assert.ErrorContains(t, err, "2")
}

func TestLogRamp(t *testing.T) {
	for count, want := range map[int]string{
		0:  "#000000",
		1:  "#4a4a4a",
		10: "#ffffff",
		50: "#ffffff",
	} {
		assert.Equal(t, want, DefaultStroke(surface.Datum{SecondaryCount: count}), count)
	}

	fn, err := LogRamp("#ff0000", "#0000ff")
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", fn(surface.Datum{}))
	assert.Equal(t, "#0000ff", fn(surface.Datum{SecondaryCount: 10}))

	_, err = LogRamp("#000", "white")
	assert.Error(t, err)
}

func decodeYAML(t *testing.T, src string) (Options, error) {
	t.Helper()
	var m map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(src), &m))
	return DecodeOptions(m)
}

func TestDecodeOptions(t *testing.T) {
	opts, err := DecodeOptions(nil)
	require.NoError(t, err)
	assert.True(t, opts.Glyphs.Spiral.Enabled)
	assert.NotNil(t, opts.Glyphs.Spiral.StrokeFn)
	assert.True(t, opts.SecondarySpiral)
	assert.False(t, opts.Glyphs.Square.Enabled)

	opts, err = decodeYAML(t, `
glyphs:
  square:
    lastOnly: true
  rectangle: true
  spiral:
    bezier: true
    strokeFn: false
    pathAttrs:
      stroke-width: 2
secondarySpiral: false
`)
	require.NoError(t, err)
	assert.Equal(t, SquareOptions{Enabled: true, LastOnly: true}, opts.Glyphs.Square)
	assert.Equal(t, RectangleOptions{Enabled: true}, opts.Glyphs.Rectangle)
	sp := opts.Glyphs.Spiral
	assert.True(t, sp.Enabled)
	assert.True(t, sp.Bezier)
	assert.Nil(t, sp.StrokeFn)
	assert.Equal(t, map[string]string{"stroke-width": "2"}, sp.PathAttrs)
	assert.False(t, opts.SecondarySpiral)

	opts, err = decodeYAML(t, `
glyphs:
  spiral: false
  rectangle:
    enabled: false
    noLastHighlight: true
`)
	require.NoError(t, err)
	assert.False(t, opts.Glyphs.Spiral.Enabled)
	assert.Equal(t, RectangleOptions{NoLastHighlight: true}, opts.Glyphs.Rectangle)

	opts, err = decodeYAML(t, `
glyphs:
  spiral:
    strokeFn: ["#ff0000", "#0000ff"]
`)
	require.NoError(t, err)
	require.NotNil(t, opts.Glyphs.Spiral.StrokeFn)
	assert.Equal(t, "#ff0000", opts.Glyphs.Spiral.StrokeFn(surface.Datum{}))

	opts, err = decodeYAML(t, `glyphs: {spiral: {lastOnly: true}}`)
	require.NoError(t, err)
	assert.True(t, opts.Glyphs.Spiral.Enabled)
	assert.True(t, opts.Glyphs.Spiral.LastOnly)

	opts, err = decodeYAML(t, `glyphs: {spiral: {strokeFn: log}}`)
	require.NoError(t, err)
	assert.Equal(t, "#ffffff", opts.Glyphs.Spiral.StrokeFn(surface.Datum{SecondaryCount: 10}))
}

func TestDecodeOptionsErrors(t *testing.T) {
	for _, src := range []string{
		`glyphs: {circle: true}`,
		`glyphs: {spiral: {strokeFn: rainbow}}`,
		`glyphs: {spiral: {strokeFn: ["#000"]}}`,
		`glyphs: {spiral: {strokeFn: ["#000", "nope"]}}`,
		`secondarySpiral: [1, 2]`,
	} {
		_, err := decodeYAML(t, src)
		assert.Error(t, err, src)
	}
}
