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

// Command export writes the element trees of all test figures to JSON.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/fractal/surface"
	"seehuhn.de/go/fractal/testcases"
)

func main() {
	var out struct {
		Figures []jsonFigure `json:"figures"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			root, err := testcases.Draw(tc)
			if err != nil {
				panic(err)
			}
			out.Figures = append(out.Figures, jsonFigure{
				Name:   category + "_" + tc.Name,
				Width:  tc.Width,
				Height: tc.Height,
				Depth:  tc.Depth,
				Nodes:  root.Count(),
				Tree:   root,
			})
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/figures.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonFigure struct {
	Name   string        `json:"name"`
	Width  float64       `json:"width"`
	Height float64       `json:"height"`
	Depth  int           `json:"depth"`
	Nodes  int           `json:"nodes"`
	Tree   *surface.Node `json:"tree"`
}
