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

// Package svg writes render trees as SVG documents.
package svg

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"seehuhn.de/go/fractal/geometry"
	"seehuhn.de/go/fractal/surface"
)

const namespace = "http://www.w3.org/2000/svg"

// Options control the output of [Write].  The zero value is valid.
type Options struct {
	// Styles is embedded into the document as a CSS style sheet.
	Styles surface.Stylesheet

	// Indent, if non-empty, is used to indent nested elements.
	Indent string
}

// Write encodes the tree rooted at root as a standalone SVG document.  The
// canvas size is taken from the width and height attributes of root.
func Write(w io.Writer, root *surface.Node, opts *Options) error {
	if opts == nil {
		opts = &Options{}
	}
	width, err := root.AttrFloat("width")
	if err != nil {
		return fmt.Errorf("svg: %w", err)
	}
	height, err := root.AttrFloat("height")
	if err != nil {
		return fmt.Errorf("svg: %w", err)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", opts.Indent)

	svg := xml.StartElement{
		Name: xml.Name{Local: "svg"},
		Attr: []xml.Attr{
			attr("xmlns", namespace),
			attr("width", geometry.Format(width)),
			attr("height", geometry.Format(height)),
			attr("viewBox", "0 0 "+geometry.Format(width)+" "+geometry.Format(height)),
		},
	}
	if err := enc.EncodeToken(svg); err != nil {
		return err
	}
	if len(opts.Styles) > 0 {
		style := xml.StartElement{Name: xml.Name{Local: "style"}}
		if err := enc.EncodeToken(style); err != nil {
			return err
		}
		if err := enc.EncodeToken(xml.CharData(CSS(opts.Styles))); err != nil {
			return err
		}
		if err := enc.EncodeToken(style.End()); err != nil {
			return err
		}
	}
	if err := writeNode(enc, root); err != nil {
		return err
	}
	if err := enc.EncodeToken(svg.End()); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

func writeNode(enc *xml.Encoder, n *surface.Node) error {
	start := xml.StartElement{Name: xml.Name{Local: n.Kind}}
	if classes := n.Classes(); len(classes) > 0 {
		start.Attr = append(start.Attr, attr("class", strings.Join(classes, " ")))
	}
	for _, a := range n.Attrs() {
		start.Attr = append(start.Attr, attr(a.Name, a.Value))
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for _, c := range n.Children() {
		if err := writeNode(enc, c); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

// CSS formats a stylesheet as CSS rules, one per line.
func CSS(sheet surface.Stylesheet) string {
	b := &strings.Builder{}
	for _, r := range sheet {
		var decls []string
		if r.Fill != "" {
			decls = append(decls, "fill: "+r.Fill)
		}
		if r.Stroke != "" {
			decls = append(decls, "stroke: "+r.Stroke)
		}
		if r.StrokeWidth > 0 {
			decls = append(decls, "stroke-width: "+geometry.Format(r.StrokeWidth))
		}
		fmt.Fprintf(b, ".%s { %s }\n", r.Class, strings.Join(decls, "; "))
	}
	return b.String()
}
