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
	"seehuhn.de/go/fractal/surface"
)

// joined is the outcome of matching a list of keys against the existing
// children of a node.
type joined struct {
	// nodes holds one node per key, in key order.
	nodes []*surface.Node

	// entered[i] is true if nodes[i] was created by the join.
	entered []bool

	// exit lists the previously existing nodes which did not match any
	// key, in document order.  They are still attached to the tree.
	exit []*surface.Node
}

// join matches keys against the children of parent which carry all of
// the given classes.  Children are identified by their key; if two
// children share a key, only the first one can match.  Likewise, only the
// first occurrence of a repeated key is matched to an existing node, later
// occurrences get new nodes.
//
// New nodes get the given classes and the element kind returned by kind.
// Each is inserted immediately before the node of the following key, and
// a new node for the last key is appended to parent.
func join(parent *surface.Node, classes []string, keys []string, kind func(i int) string) *joined {
	existing := parent.Select(classes...)

	byKey := make(map[string]*surface.Node, len(existing))
	for _, n := range existing {
		if _, dup := byKey[n.Key()]; !dup {
			byKey[n.Key()] = n
		}
	}

	res := &joined{
		nodes:   make([]*surface.Node, len(keys)),
		entered: make([]bool, len(keys)),
	}
	matched := make(map[*surface.Node]bool, len(existing))
	for i, key := range keys {
		n, ok := byKey[key]
		if !ok {
			continue
		}
		delete(byKey, key)
		res.nodes[i] = n
		matched[n] = true
	}
	for _, n := range existing {
		if !matched[n] {
			res.exit = append(res.exit, n)
		}
	}

	// Create the entering nodes from the back, so that every new node can
	// be placed before its successor.
	var next *surface.Node
	for i := len(keys) - 1; i >= 0; i-- {
		if res.nodes[i] != nil {
			next = res.nodes[i]
			continue
		}
		n := parent.InsertBefore(kind(i), next)
		n.SetKey(keys[i])
		for _, cls := range classes {
			n.SetClass(cls, true)
		}
		res.nodes[i] = n
		res.entered[i] = true
		next = n
	}
	return res
}
