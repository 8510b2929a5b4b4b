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
	"fmt"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// Style holds the presentation properties which the back ends understand.
// Empty strings and zero widths mean "not specified".
type Style struct {
	Fill        string
	Stroke      string
	StrokeWidth float64
}

// Rule applies a style to all elements carrying a class.
type Rule struct {
	Class string
	Style
}

// Stylesheet is an ordered list of rules.  Later rules take precedence.
type Stylesheet []Rule

// Resolve computes the effective style of n.  The defaults are those of
// SVG: black fill, no stroke, and unit stroke width.  Matching stylesheet
// rules override the defaults, and the "fill", "stroke" and
// "stroke-width" attributes of n override the stylesheet.  A stroke-width
// attribute which is not a non-negative number is an error.
func (sheet Stylesheet) Resolve(n *Node) (Style, error) {
	st := Style{Fill: "#000", Stroke: "none", StrokeWidth: 1}
	for _, r := range sheet {
		if !n.HasClass(r.Class) {
			continue
		}
		st.merge(r.Style)
	}

	var attr Style
	attr.Fill, _ = n.Attr("fill")
	attr.Stroke, _ = n.Attr("stroke")
	st.merge(attr)
	if _, ok := n.Attr("stroke-width"); ok {
		w, err := n.AttrFloat("stroke-width")
		if err != nil {
			return Style{}, err
		}
		if w < 0 {
			return Style{}, fmt.Errorf("negative stroke-width %g", w)
		}
		st.StrokeWidth = w
	}
	return st, nil
}

func (st *Style) merge(other Style) {
	if other.Fill != "" {
		st.Fill = other.Fill
	}
	if other.Stroke != "" {
		st.Stroke = other.Stroke
	}
	if other.StrokeWidth > 0 {
		st.StrokeWidth = other.StrokeWidth
	}
}

// Painted reports whether a colour value results in visible paint.
func Painted(color string) bool {
	switch color {
	case "", "none", "transparent":
		return false
	}
	return true
}

var namedColors = map[string]string{
	"black":  "#000000",
	"white":  "#ffffff",
	"gray":   "#808080",
	"grey":   "#808080",
	"silver": "#c0c0c0",
	"red":    "#ff0000",
	"green":  "#008000",
	"blue":   "#0000ff",
}

// ParseColor converts a hex colour, or one of a few CSS colour names, to
// a clamped RGB colour.
func ParseColor(s string) (colorful.Color, error) {
	if hex, ok := namedColors[s]; ok {
		s = hex
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("unsupported colour %q", s)
	}
	return c.Clamped(), nil
}

// jsonNode is the serialised form of a Node.
type jsonNode struct {
	Kind     string            `json:"kind"`
	Key      string            `json:"key,omitempty"`
	Classes  []string          `json:"classes,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Datum    *Datum            `json:"datum,omitempty"`
	Children []*Node           `json:"children,omitempty"`
}

// MarshalJSON implements the [json.Marshaler] interface.
func (n *Node) MarshalJSON() ([]byte, error) {
	out := jsonNode{
		Kind:     n.Kind,
		Key:      n.key,
		Classes:  n.classes,
		Datum:    n.datum,
		Children: n.children,
	}
	if len(n.attrs) > 0 {
		out.Attrs = make(map[string]string, len(n.attrs))
		for _, a := range n.attrs {
			out.Attrs[a.Name] = a.Value
		}
	}
	return json.Marshal(out)
}

// String returns a short description of n, for use in log messages.
func (n *Node) String() string {
	s := n.Kind
	for _, cls := range n.classes {
		s += "." + cls
	}
	if n.key != "" {
		s += "[" + strconv.Quote(n.key) + "]"
	}
	return s
}
