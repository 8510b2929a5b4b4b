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
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"seehuhn.de/go/fractal/internal/logging"
	"seehuhn.de/go/fractal/surface"
)

// Engine draws a fractal figure into a render tree.
//
// An Engine is not safe for concurrent use.  Calls to Draw, SetDepth and
// SetDriver must be serialised by the caller.
type Engine struct {
	root   *surface.Node
	driver Driver
	depth  int
	log    *slog.Logger
	hooks  Hooks
}

// Option configures an [Engine].
type Option func(*Engine)

// WithDepth sets the number of levels to draw.  Non-positive values select
// [DefaultDepth].
func WithDepth(depth int) Option {
	return func(e *Engine) {
		e.SetDepth(depth)
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// WithHooks registers observability hooks.
func WithHooks(h Hooks) Option {
	return func(e *Engine) {
		e.hooks = h
	}
}

// New returns an engine which draws into root using the given driver.
// The root is initialized by the first call to [Engine.Draw].
func New(root *surface.Node, driver Driver, opts ...Option) (*Engine, error) {
	if root == nil {
		return nil, ErrNoSurface
	}
	if driver == nil {
		return nil, ErrNoDriver
	}
	e := &Engine{
		root:   root,
		driver: driver,
		depth:  DefaultDepth,
		log:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Depth returns the number of levels drawn by Draw.
func (e *Engine) Depth() int {
	return e.depth
}

// SetDepth changes the number of levels drawn by the next call to Draw.
// Non-positive values select [DefaultDepth].
func (e *Engine) SetDepth(depth int) {
	if depth <= 0 {
		depth = DefaultDepth
	}
	e.depth = depth
}

// SetDriver replaces the driver.  Since the existing tree was laid out by
// the previous driver, the root is reset and will be initialized again by
// the next call to Draw.
func (e *Engine) SetDriver(d Driver) error {
	if d == nil {
		return ErrNoDriver
	}
	e.driver = d
	e.root.ClearDatum()
	e.root.RemoveChildren()
	e.root.SetClass("last", false)
	e.log.Debug("driver replaced", "driver", fmt.Sprintf("%T", d))
	return nil
}

// Draw brings the tree up to date with the current depth and driver.
//
// Levels which are unchanged since the previous call are left as they
// are; new levels are added below the previous leaves, and levels beyond
// the current depth are removed.  If an error is returned, the changes
// made to the levels above the failing one are kept.
func (e *Engine) Draw() error {
	start := time.Now()

	if _, ok := e.root.Datum(); !ok {
		if err := e.driver.Initialize(e.root); err != nil {
			return err
		}
		d, ok := e.root.Datum()
		if !ok {
			return fmt.Errorf("after initialize: %w", ErrNoDatum)
		}
		e.log.Debug("figure initialized", "width", d.Width, "base", d.Base)
	}

	stats := DrawStats{Depth: e.depth}
	level := []*surface.Node{e.root}
	for depth := range e.depth {
		isLast := depth == e.depth-1
		var next []*surface.Node
		for _, el := range level {
			regions, err := e.drawRegion(el, depth, isLast, &stats)
			if err != nil {
				return err
			}
			next = append(next, regions...)
		}
		level = next
	}

	stats.Nodes = e.root.Count()
	stats.Elapsed = time.Since(start)
	e.log.Debug("figure drawn",
		"depth", stats.Depth,
		"entered", stats.Entered,
		"updated", stats.Updated,
		"exited", stats.Exited,
		"nodes", stats.Nodes,
		"elapsed", stats.Elapsed)
	if e.hooks.OnDraw != nil {
		e.hooks.OnDraw(stats)
	}
	return nil
}

// drawRegion reconciles the glyphs and the child regions of el, and
// returns the child regions.
func (e *Engine) drawRegion(el *surface.Node, depth int, isLast bool, stats *DrawStats) ([]*surface.Node, error) {
	datum, ok := el.Datum()
	if !ok {
		return nil, fmt.Errorf("depth %d: %s: %w", depth, el, ErrNoDatum)
	}

	// glyphs
	glyphs := e.driver.MakeGlyphsData(depth, isLast)
	keys := make([]string, len(glyphs))
	for i, g := range glyphs {
		keys[i] = g.Class
	}
	j := join(el, []string{"glyph", depthClass(depth)}, keys, func(i int) string {
		return glyphs[i].Tag
	})
	for i, g := range glyphs {
		e.hooks.fire(Event{
			Kind:  kindOf(j.entered[i]),
			Role:  RoleGlyph,
			Depth: depth,
			Key:   g.Class,
		}, stats)
		e.driver.FormGlyph(j.nodes[i], depth, isLast, g, i)
	}
	e.removeAll(j.exit, stats)

	// child regions
	childDepth := depth + 1
	regionClasses := []string{"subunit", depthClass(childDepth)}
	if isLast {
		el.SetClass("last", true)
		e.removeAll(el.Select(regionClasses...), stats)
		return nil, nil
	}
	el.SetClass("last", false)

	regions := e.driver.MakeSubunitsData(childDepth, datum)
	keys = make([]string, len(regions))
	for i := range regions {
		keys[i] = strconv.Itoa(i)
	}
	j = join(el, regionClasses, keys, func(int) string { return "g" })
	for i, d := range regions {
		n := j.nodes[i]
		n.SetDatum(d)
		e.hooks.fire(Event{
			Kind:  kindOf(j.entered[i]),
			Role:  RoleRegion,
			Depth: childDepth,
			Key:   keys[i],
		}, stats)
		if !j.entered[i] {
			// placement is only computed once
			continue
		}
		if err := e.driver.FormSubunit(n, d, i); err != nil {
			return nil, fmt.Errorf("depth %d: %w", childDepth, err)
		}
	}
	e.removeAll(j.exit, stats)
	return j.nodes, nil
}

// removeAll removes the given nodes from the tree, reporting an exit
// event for every node of the removed subtrees.
func (e *Engine) removeAll(nodes []*surface.Node, stats *DrawStats) {
	for _, n := range nodes {
		n.Walk(func(m *surface.Node, _ int) bool {
			role, depth := describe(m)
			e.hooks.fire(Event{
				Kind:  EventExit,
				Role:  role,
				Depth: depth,
				Key:   m.Key(),
			}, stats)
			return true
		})
		n.Remove()
	}
}

func kindOf(entered bool) EventKind {
	if entered {
		return EventEnter
	}
	return EventUpdate
}
