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

package testcases

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/fractal/goldenspiral"
	"seehuhn.de/go/fractal/surface"
	"seehuhn.de/go/fractal/svg"
)

// counts are the expected numbers of elements in a figure.
type counts struct {
	glyphs, regions, last, highlighted int
}

// expect computes the element counts of a figure level by level, without
// using the engine.
func expect(tc TestCase) counts {
	var res counts
	g := tc.Options.Glyphs
	depth := max(tc.Depth, 1)
	n := 1 // regions on the current level
	for level := range depth {
		isLast := level == depth-1
		per := 0
		if g.Square.Enabled && (!g.Square.LastOnly || isLast) {
			per++
		}
		if g.Rectangle.Enabled && (!g.Rectangle.LastOnly || isLast) {
			per++
			if isLast && !g.Rectangle.NoLastHighlight {
				res.highlighted += n
			}
		}
		if g.Spiral.Enabled && (!g.Spiral.LastOnly || isLast) {
			per++
		}
		res.glyphs += n * per
		if level > 0 {
			res.regions += n
		}
		if isLast {
			res.last = n
		}
		if tc.Options.SecondarySpiral {
			n *= 2
		}
	}
	return res
}

func count(root *surface.Node) counts {
	var res counts
	root.Walk(func(n *surface.Node, _ int) bool {
		if n.HasClass("glyph") {
			res.glyphs++
		}
		if n.HasClass("subunit") {
			res.regions++
		}
		if n.HasClass("last") {
			res.last++
		}
		if n.HasClass(goldenspiral.ClassRectLast) {
			res.highlighted++
		}
		return true
	})
	return res
}

func TestAll(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, tc := range All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				root, err := Draw(tc)
				require.NoError(t, err)
				assert.Equal(t, expect(tc), count(root))

				var buf bytes.Buffer
				require.NoError(t, svg.Write(&buf, root, &svg.Options{Styles: goldenspiral.Styles}))
				assert.NoError(t, wellFormed(&buf))
			})
		}
	}
}

func TestNames(t *testing.T) {
	seen := make(map[string]bool)
	for category, cases := range All {
		for _, tc := range cases {
			for _, c := range tc.Name {
				ok := c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '_'
				assert.True(t, ok, "bad name %q", tc.Name)
			}
			name := category + "_" + tc.Name
			assert.False(t, seen[name], "duplicate %s", name)
			seen[name] = true
		}
	}
}

func wellFormed(r io.Reader) error {
	dec := xml.NewDecoder(r)
	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
	}
}
