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

// Package preview animates a fractal in the terminal.  The figure is drawn
// with braille characters, and its depth oscillates between a minimum and
// a maximum on a timer.
package preview

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"seehuhn.de/go/fractal"
	"seehuhn.de/go/fractal/raster"
	"seehuhn.de/go/fractal/surface"
)

// Options configure the animation.  Zero values select the defaults.
type Options struct {
	MinDepth int           // default 1
	MaxDepth int           // default 10
	Interval time.Duration // default 300ms

	// Threshold is the gray level below which a dot is set.  The default
	// is 224.
	Threshold uint8

	Styles surface.Stylesheet
	Hooks  fractal.Hooks
}

type tickMsg time.Time

// Model is the bubbletea model of the preview.
type Model struct {
	engine *fractal.Engine
	root   *surface.Node
	opts   Options
	last   *fractal.DrawStats

	depth  int
	inc    int
	paused bool

	width  int
	height int
	help   help.Model
	frame  string
	err    error
}

// New draws the figure at the minimal depth and returns the model for
// animating it.
func New(root *surface.Node, driver fractal.Driver, opts Options) (Model, error) {
	if opts.MinDepth <= 0 {
		opts.MinDepth = 1
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = 10
	}
	if opts.MaxDepth < opts.MinDepth {
		return Model{}, fmt.Errorf("preview: depth range %d..%d is empty", opts.MinDepth, opts.MaxDepth)
	}
	if opts.Interval <= 0 {
		opts.Interval = 300 * time.Millisecond
	}
	if opts.Threshold == 0 {
		opts.Threshold = 224
	}

	last := &fractal.DrawStats{}
	record := fractal.Hooks{OnDraw: func(s fractal.DrawStats) { *last = s }}
	e, err := fractal.New(root, driver,
		fractal.WithDepth(opts.MinDepth),
		fractal.WithHooks(fractal.Combine(opts.Hooks, record)))
	if err != nil {
		return Model{}, err
	}

	m := Model{
		engine: e,
		root:   root,
		opts:   opts,
		last:   last,
		depth:  opts.MinDepth,
		inc:    1,
		help:   help.New(),
	}
	if err := e.Draw(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// Init starts the timer.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.opts.Interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Depth returns the depth of the figure on screen.
func (m Model) Depth() int {
	return m.depth
}

// Paused reports whether the animation is stopped.
func (m Model) Paused() bool {
	return m.paused
}

// Err returns the error of the last draw, if any.
func (m Model) Err() error {
	return m.err
}

// Update implements [tea.Model].
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.refresh()
	case tickMsg:
		if !m.paused {
			m.advance()
			m.redraw()
		}
		return m, m.tick()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Pause):
			m.paused = !m.paused
		case key.Matches(msg, keys.Deeper):
			m.paused = true
			if m.depth < m.opts.MaxDepth {
				m.depth++
				m.redraw()
			}
		case key.Matches(msg, keys.Higher):
			m.paused = true
			if m.depth > m.opts.MinDepth {
				m.depth--
				m.redraw()
			}
		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

// advance moves to the next depth of the oscillation.
func (m *Model) advance() {
	if m.opts.MinDepth == m.opts.MaxDepth {
		return
	}
	m.depth += m.inc
	if m.depth >= m.opts.MaxDepth {
		m.depth = m.opts.MaxDepth
		m.inc = -1
	} else if m.depth <= m.opts.MinDepth {
		m.depth = m.opts.MinDepth
		m.inc = 1
	}
}

func (m *Model) redraw() {
	m.engine.SetDepth(m.depth)
	if err := m.engine.Draw(); err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.refresh()
}

// refresh renders the current tree for the current window size.
func (m *Model) refresh() {
	cols, rows := m.canvasSize()
	if cols <= 0 || rows <= 0 {
		m.frame = ""
		return
	}
	frame, err := Frame(m.root, cols, rows, m.opts.Threshold, m.opts.Styles)
	if err != nil {
		m.err = err
		return
	}
	m.frame = frame
}

func (m Model) canvasSize() (int, int) {
	return m.width, m.height - 2
}

// Frame renders the tree rooted at root into at most cols×rows braille
// cells, preserving the aspect ratio of the figure.
func Frame(root *surface.Node, cols, rows int, threshold uint8, styles surface.Stylesheet) (string, error) {
	fw, err := root.AttrFloat("width")
	if err != nil {
		return "", err
	}
	fh, err := root.AttrFloat("height")
	if err != nil {
		return "", err
	}
	if !(fw > 0 && fh > 0) {
		return "", fmt.Errorf("preview: invalid figure size %gx%g", fw, fh)
	}

	// dots per unit
	s := min(float64(2*cols)/fw, float64(4*rows)/fh)
	dw := max(1, int(math.Round(fw*s)))
	dh := max(1, int(math.Round(fh*s)))

	// Render at twice the dot resolution and let plot filter it down.
	img, err := raster.Render(root, &raster.Options{Styles: styles, Scale: 2 * s})
	if err != nil {
		return "", err
	}
	buf := newBrailleBuf((dw+1)/2, (dh+3)/4)
	buf.plot(img, dw, dh, threshold)
	return buf.String(), nil
}
