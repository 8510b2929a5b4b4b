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

package surface

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(nodes []*Node) []string {
	var res []string
	for _, n := range nodes {
		res = append(res, n.Kind)
	}
	return res
}

func TestTreeEditing(t *testing.T) {
	root := NewRoot(400, 250)
	a := root.Append("a")
	c := root.Append("c")
	b := root.InsertBefore("b", c)
	assert.Equal(t, []string{"a", "b", "c"}, kinds(root.Children()))
	assert.Same(t, root, b.Parent())

	// foreign reference nodes append
	other := NewRoot(1, 1).Append("x")
	root.InsertBefore("d", other)
	assert.Equal(t, []string{"a", "b", "c", "d"}, kinds(root.Children()))

	b.Remove()
	assert.Equal(t, []string{"a", "c", "d"}, kinds(root.Children()))
	assert.Nil(t, b.Parent())
	b.Remove() // no-op

	a.Append("leaf")
	assert.Equal(t, 5, root.Count())

	root.RemoveChildren()
	assert.Empty(t, root.Children())
	assert.Nil(t, a.Parent())
	assert.Equal(t, 1, root.Count())
}

func TestClassesAndSelect(t *testing.T) {
	root := NewRoot(10, 10)
	g1 := root.Append("rect")
	g1.SetClass("glyph", true)
	g1.SetClass("depth-0", true)
	g2 := root.Append("g")
	g2.SetClass("subunit", true)
	g2.SetClass("depth-1", true)

	assert.Equal(t, []*Node{g1}, root.Select("glyph", "depth-0"))
	assert.Empty(t, root.Select("glyph", "depth-1"))
	assert.Len(t, root.Select(), 2)

	g1.SetClass("glyph", true)
	assert.Equal(t, []string{"glyph", "depth-0"}, g1.Classes())
	g1.SetClass("glyph", false)
	assert.False(t, g1.HasClass("glyph"))
	assert.Equal(t, []string{"depth-0"}, g1.Classes())
}

func TestAttributes(t *testing.T) {
	n := NewRoot(400, 250)
	w, err := n.AttrFloat("width")
	require.NoError(t, err)
	assert.Equal(t, 400.0, w)

	n.SetAttr("width", "247.2px")
	w, err = n.AttrFloat("width")
	require.NoError(t, err)
	assert.Equal(t, 247.2, w)
	assert.Equal(t, []Attr{{"width", "247.2px"}, {"height", "250"}}, n.Attrs())

	_, err = n.AttrFloat("missing")
	assert.Error(t, err)
	n.SetAttr("bad", "wide")
	_, err = n.AttrFloat("bad")
	assert.Error(t, err)

	n.RemoveAttr("bad")
	_, ok := n.Attr("bad")
	assert.False(t, ok)
}

func TestDatum(t *testing.T) {
	n := NewRoot(10, 10)
	_, ok := n.Datum()
	assert.False(t, ok)

	d := Datum{Depth: 1, Width: 10, Base: 6, ParentBase: 10, SecondaryCount: 1}
	n.SetDatum(d)
	got, ok := n.Datum()
	assert.True(t, ok)
	assert.Equal(t, d, got)

	// the stored datum is a copy
	d.Depth = 7
	got, _ = n.Datum()
	assert.Equal(t, 1, got.Depth)

	n.ClearDatum()
	_, ok = n.Datum()
	assert.False(t, ok)
}

func TestResolveStyle(t *testing.T) {
	sheet := Stylesheet{
		{Class: "a", Style: Style{Fill: "#eee", Stroke: "#888"}},
		{Class: "b", Style: Style{Fill: "#ccc", StrokeWidth: 2}},
	}
	n := NewRoot(1, 1).Append("rect")
	st, err := sheet.Resolve(n)
	require.NoError(t, err)
	assert.Equal(t, Style{Fill: "#000", Stroke: "none", StrokeWidth: 1}, st)

	n.SetClass("a", true)
	n.SetClass("b", true)
	st, err = sheet.Resolve(n)
	require.NoError(t, err)
	assert.Equal(t, Style{Fill: "#ccc", Stroke: "#888", StrokeWidth: 2}, st)

	n.SetAttr("fill", "transparent")
	n.SetAttr("stroke-width", "3")
	st, err = sheet.Resolve(n)
	require.NoError(t, err)
	assert.Equal(t, Style{Fill: "transparent", Stroke: "#888", StrokeWidth: 3}, st)
	assert.False(t, Painted(st.Fill))
	assert.True(t, Painted(st.Stroke))

	// an explicit zero width switches the stroke off
	n.SetAttr("stroke-width", "0")
	st, err = sheet.Resolve(n)
	require.NoError(t, err)
	assert.Zero(t, st.StrokeWidth)
}

func TestResolveStyleErrors(t *testing.T) {
	for _, w := range []string{"thick", "-1", "2em"} {
		n := NewRoot(1, 1).Append("path")
		n.SetAttr("stroke-width", w)
		_, err := Stylesheet(nil).Resolve(n)
		assert.Error(t, err, w)
	}
}

func TestMarshalJSON(t *testing.T) {
	root := NewRoot(400, 250)
	root.SetDatum(Datum{Width: 400, Base: 247.2})
	child := root.Append("rect")
	child.SetKey("gs-square")
	child.SetClass("glyph", true)

	data, err := json.Marshal(root)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"kind": "g",
		"attrs": {"width": "400", "height": "250"},
		"datum": {"depth": 0, "width": 400, "base": 247.2, "secondaryCount": 0},
		"children": [{"kind": "rect", "key": "gs-square", "classes": ["glyph"]}]
	}`, string(data))

	assert.Equal(t, `rect.glyph["gs-square"]`, child.String())
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#bbb")
	require.NoError(t, err)
	assert.Equal(t, "#bbbbbb", c.Hex())

	c, err = ParseColor("grey")
	require.NoError(t, err)
	assert.Equal(t, "#808080", c.Hex())

	_, err = ParseColor("rgb(1,2,3)")
	assert.Error(t, err)
}
