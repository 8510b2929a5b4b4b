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

package fractal

import (
	"errors"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/fractal/surface"
)

func TestJoinOrder(t *testing.T) {
	parent := surface.NewRoot(1, 1)
	classes := []string{"glyph", "depth-0"}
	kind := func(int) string { return "rect" }

	j := join(parent, classes, []string{"b", "d"}, kind)
	assert.Equal(t, []bool{true, true}, j.entered)
	assert.Empty(t, j.exit)
	other := parent.Append("g") // not matched by the selector

	j = join(parent, classes, []string{"a", "b", "c", "d", "e"}, kind)
	assert.Equal(t, []bool{true, false, true, false, true}, j.entered)
	assert.Empty(t, j.exit)
	assert.Equal(t, []string{"a", "b", "c", "d", "", "e"}, childKeys(parent))
	assert.Same(t, other, parent.Children()[4])
	for _, n := range j.nodes {
		assert.Equal(t, classes, n.Classes())
	}

	j = join(parent, classes, []string{"e", "a"}, kind)
	assert.Equal(t, []bool{false, false}, j.entered)
	assert.Equal(t, []string{"b", "c", "d"}, keysOf(j.exit))
}

func TestJoinDuplicates(t *testing.T) {
	parent := surface.NewRoot(1, 1)
	kind := func(int) string { return "rect" }
	j := join(parent, nil, []string{"x", "x"}, kind)
	assert.Equal(t, []bool{true, true}, j.entered)
	first, second := j.nodes[0], j.nodes[1]

	// the first node with a key wins, the second one leaves
	j = join(parent, nil, []string{"x"}, kind)
	assert.Equal(t, []bool{false}, j.entered)
	assert.Same(t, first, j.nodes[0])
	assert.Equal(t, []*surface.Node{second}, j.exit)
}

func childKeys(n *surface.Node) []string {
	return keysOf(n.Children())
}

func keysOf(nodes []*surface.Node) []string {
	var res []string
	for _, n := range nodes {
		res = append(res, n.Key())
	}
	return res
}

// testDriver draws a fixed set of glyphs and a fixed number of child
// regions at every level.
type testDriver struct {
	glyphs  []Glyph
	regions int
	noDatum bool

	formed []int
	placed int
}

func (d *testDriver) Initialize(root *surface.Node) error {
	if !d.noDatum {
		root.SetDatum(surface.Datum{Width: 2, Base: 1})
	}
	return nil
}

func (d *testDriver) MakeGlyphsData(depth int, isLastDepth bool) []Glyph {
	return slices.Clone(d.glyphs)
}

func (d *testDriver) FormGlyph(el *surface.Node, depth int, isLastDepth bool, g Glyph, i int) {
	el.SetAttr("index", strconv.Itoa(i))
	d.formed = append(d.formed, i)
}

func (d *testDriver) MakeSubunitsData(newDepth int, parent surface.Datum) []surface.Datum {
	res := make([]surface.Datum, d.regions)
	for i := range res {
		res[i] = surface.Datum{Depth: newDepth, Width: 1, Base: 1, SecondaryCount: i}
	}
	return res
}

func (d *testDriver) FormSubunit(el *surface.Node, datum surface.Datum, i int) error {
	if i > 1 {
		return ErrUnexpectedIndex
	}
	d.placed++
	return nil
}

func TestReorderedGlyphs(t *testing.T) {
	drv := &testDriver{
		glyphs:  []Glyph{{"rect", "a"}, {"path", "b"}, {"circle", "c"}},
		regions: 1,
	}
	var events []Event
	root := surface.NewRoot(2, 1)
	e, err := New(root, drv, WithDepth(3), WithHooks(Hooks{
		OnEnter: func(ev Event) { events = append(events, ev) },
		OnExit:  func(ev Event) { events = append(events, ev) },
	}))
	require.NoError(t, err)
	require.NoError(t, e.Draw())
	assert.Len(t, events, 3*3+2)
	assert.Equal(t, 2, drv.placed)

	events = nil
	drv.formed = nil
	slices.Reverse(drv.glyphs)
	require.NoError(t, e.Draw())
	assert.Empty(t, events)
	assert.Equal(t, []int{0, 1, 2, 0, 1, 2, 0, 1, 2}, drv.formed)
	assert.Equal(t, 2, drv.placed)

	// formatting follows the new order
	c := root.Select("glyph", "depth-0")[2]
	assert.Equal(t, "c", c.Key())
	idx, _ := c.Attr("index")
	assert.Equal(t, "0", idx)
}

func TestDriverContractViolation(t *testing.T) {
	drv := &testDriver{regions: 3}
	root := surface.NewRoot(2, 1)
	e, err := New(root, drv, WithDepth(3))
	require.NoError(t, err)

	err = e.Draw()
	assert.ErrorIs(t, err, ErrUnexpectedIndex)

	// no rollback: the regions placed before the failure stay
	assert.Len(t, root.Select("subunit", "depth-1"), 3)
}

func TestInitializeWithoutDatum(t *testing.T) {
	e, err := New(surface.NewRoot(2, 1), &testDriver{noDatum: true})
	require.NoError(t, err)
	assert.ErrorIs(t, e.Draw(), ErrNoDatum)
}

func TestCombineHooks(t *testing.T) {
	var log []string
	h := Combine(
		Hooks{OnEnter: func(Event) { log = append(log, "a") }},
		Hooks{},
		Hooks{
			OnEnter: func(Event) { log = append(log, "b") },
			OnDraw:  func(DrawStats) { log = append(log, "draw") },
		},
	)
	assert.Nil(t, h.OnExit)

	var stats DrawStats
	h.fire(Event{Kind: EventEnter}, &stats)
	h.fire(Event{Kind: EventExit}, &stats)
	h.OnDraw(stats)
	assert.Equal(t, []string{"a", "b", "draw"}, log)
	assert.Equal(t, DrawStats{Entered: 1, Exited: 1}, stats)
}

func TestCheckDimensions(t *testing.T) {
	assert.NoError(t, CheckDimensions(400, 250))
	assert.NoError(t, CheckDimensions(100, 1000))
	for _, wh := range [][2]float64{{0, 1}, {-1, 1}, {1, 0}, {2, 1}} {
		err := CheckDimensions(wh[0], wh[1])
		assert.True(t, errors.Is(err, ErrInvalidDimensions), wh)
	}
}
