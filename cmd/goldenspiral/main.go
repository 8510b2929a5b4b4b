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

// Command goldenspiral draws golden spiral fractals.
//
// The "render" sub-command writes a figure as SVG, PNG, PDF or JSON, and
// "animate" shows the figure in the terminal while its depth oscillates.
package main

func main() {
	Execute()
}
