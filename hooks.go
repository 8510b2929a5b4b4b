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
	"time"

	"seehuhn.de/go/fractal/surface"
)

// EventKind says what happened to a node during reconciliation.
type EventKind string

// These are the possible event kinds.
const (
	EventEnter  EventKind = "enter"
	EventUpdate EventKind = "update"
	EventExit   EventKind = "exit"
)

// Role distinguishes glyph nodes from region nodes.
type Role string

// These are the possible roles.
const (
	RoleGlyph  Role = "glyph"
	RoleRegion Role = "region"
)

// Event describes a single node being created, kept or removed.
type Event struct {
	Kind  EventKind
	Role  Role
	Depth int    // level of the region the node belongs to
	Key   string // glyph class or region index
}

// DrawStats summarises a call to [Engine.Draw].
type DrawStats struct {
	Depth   int
	Entered int
	Updated int
	Exited  int
	Nodes   int // size of the tree after drawing
	Elapsed time.Duration
}

// Hooks are optional callbacks which observe an engine.  Nil fields are
// ignored.  The callbacks run synchronously inside Draw and must not
// modify the tree.
type Hooks struct {
	OnEnter  func(Event)
	OnUpdate func(Event)
	OnExit   func(Event)
	OnDraw   func(DrawStats)
}

// Combine returns hooks which call all of the given hooks in order.
func Combine(hooks ...Hooks) Hooks {
	var res Hooks
	for _, h := range hooks {
		res.OnEnter = chainEvent(res.OnEnter, h.OnEnter)
		res.OnUpdate = chainEvent(res.OnUpdate, h.OnUpdate)
		res.OnExit = chainEvent(res.OnExit, h.OnExit)
		if a, b := res.OnDraw, h.OnDraw; a == nil {
			res.OnDraw = b
		} else if b != nil {
			res.OnDraw = func(s DrawStats) { a(s); b(s) }
		}
	}
	return res
}

func chainEvent(a, b func(Event)) func(Event) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(e Event) { a(e); b(e) }
}

func (h *Hooks) fire(e Event, stats *DrawStats) {
	var fn func(Event)
	switch e.Kind {
	case EventEnter:
		fn = h.OnEnter
		stats.Entered++
	case EventUpdate:
		fn = h.OnUpdate
		stats.Updated++
	case EventExit:
		fn = h.OnExit
		stats.Exited++
	}
	if fn != nil {
		fn(e)
	}
}

// describe recovers the role and level of a node created by the engine.
func describe(n *surface.Node) (Role, int) {
	if n.HasClass("subunit") {
		d, _ := n.Datum()
		return RoleRegion, d.Depth
	}
	if p := n.Parent(); p != nil {
		d, _ := p.Datum()
		return RoleGlyph, d.Depth
	}
	return RoleGlyph, 0
}
