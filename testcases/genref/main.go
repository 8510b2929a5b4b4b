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

// Command genref writes every test figure as SVG, PNG and PDF, for visual
// inspection.
// Run from the module root directory.
package main

import (
	"fmt"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/fractal/goldenspiral"
	"seehuhn.de/go/fractal/pdfdoc"
	"seehuhn.de/go/fractal/raster"
	"seehuhn.de/go/fractal/svg"
	"seehuhn.de/go/fractal/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := generate(tc, filepath.Join(refDir, name)); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generate(tc testcases.TestCase, base string) error {
	root, err := testcases.Draw(tc)
	if err != nil {
		return err
	}

	err = create(base+".svg", func(f *os.File) error {
		return svg.Write(f, root, &svg.Options{Styles: goldenspiral.Styles, Indent: "  "})
	})
	if err != nil {
		return err
	}

	err = create(base+".png", func(f *os.File) error {
		img, err := raster.Render(root, &raster.Options{Styles: goldenspiral.Styles})
		if err != nil {
			return err
		}
		return png.Encode(f, img)
	})
	if err != nil {
		return err
	}

	return pdfdoc.Write(base+".pdf", root, goldenspiral.Styles)
}

func create(fname string, write func(*os.File) error) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}

