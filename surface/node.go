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

// Package surface implements the render tree which fractal figures are
// drawn into.
//
// A tree is a hierarchy of [Node] values.  Every node has an element kind
// (like "g", "rect" or "path"), a set of classes, string-valued attributes
// and optionally a [Datum] describing the region of the figure it
// represents.  The tree owns all of its nodes; code which modifies the tree
// must not keep node references across redraws.
//
// The tree can be serialised by the svg, raster and pdfdoc packages.
package surface

import (
	"fmt"
	"slices"

	"seehuhn.de/go/fractal/geometry"
)

// Datum describes one region of a fractal figure.
type Datum struct {
	Depth          int     `json:"depth"`
	Width          float64 `json:"width"`
	Base           float64 `json:"base"`
	ParentBase     float64 `json:"parentBase,omitempty"` // zero at the root
	SecondaryCount int     `json:"secondaryCount"`
}

// Attr is a single element attribute.
type Attr struct {
	Name  string
	Value string
}

// Node is an element of the render tree.
//
// A Node is not safe for concurrent use.
type Node struct {
	// Kind is the element type, for example "rect".
	Kind string

	key      string
	classes  []string
	attrs    []Attr
	datum    *Datum
	parent   *Node
	children []*Node
}

// NewRoot returns a detached "g" element of the given size, ready to be
// used as the starting element of a figure.
func NewRoot(width, height float64) *Node {
	n := &Node{Kind: "g"}
	n.SetAttr("width", geometry.Format(width))
	n.SetAttr("height", geometry.Format(height))
	return n
}

// Parent returns the parent of n, or nil if n is a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the children of n in document order.
// The returned slice must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// Append adds a new element of the given kind as the last child of n.
func (n *Node) Append(kind string) *Node {
	return n.InsertBefore(kind, nil)
}

// InsertBefore adds a new element of the given kind as a child of n,
// immediately before ref.  If ref is nil or not a child of n, the new
// element is appended.
func (n *Node) InsertBefore(kind string, ref *Node) *Node {
	child := &Node{Kind: kind, parent: n}
	idx := len(n.children)
	if ref != nil && ref.parent == n {
		if i := slices.Index(n.children, ref); i >= 0 {
			idx = i
		}
	}
	n.children = slices.Insert(n.children, idx, child)
	return child
}

// Remove detaches n, together with its subtree, from its parent.
func (n *Node) Remove() {
	p := n.parent
	if p == nil {
		return
	}
	if i := slices.Index(p.children, n); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
	n.parent = nil
}

// RemoveChildren detaches all children of n.
func (n *Node) RemoveChildren() {
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = nil
}

// Select returns the children of n which carry all of the given classes,
// in document order.
func (n *Node) Select(classes ...string) []*Node {
	var res []*Node
	for _, c := range n.children {
		if c.hasAll(classes) {
			res = append(res, c)
		}
	}
	return res
}

func (n *Node) hasAll(classes []string) bool {
	for _, cls := range classes {
		if !n.HasClass(cls) {
			return false
		}
	}
	return true
}

// Key returns the reconciliation key of n.
func (n *Node) Key() string {
	return n.key
}

// SetKey sets the reconciliation key of n.
func (n *Node) SetKey(key string) {
	n.key = key
}

// Classes returns the classes of n in the order they were added.
// The returned slice must not be modified.
func (n *Node) Classes() []string {
	return n.classes
}

// HasClass reports whether n carries the given class.
func (n *Node) HasClass(cls string) bool {
	return slices.Contains(n.classes, cls)
}

// SetClass adds (on=true) or removes (on=false) a class.
func (n *Node) SetClass(cls string, on bool) {
	i := slices.Index(n.classes, cls)
	switch {
	case on && i < 0:
		n.classes = append(n.classes, cls)
	case !on && i >= 0:
		n.classes = slices.Delete(n.classes, i, i+1)
	}
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// AttrFloat returns the numeric value of the named attribute.  A trailing
// "px" unit is ignored.
func (n *Node) AttrFloat(name string) (float64, error) {
	s, ok := n.Attr(name)
	if !ok {
		return 0, fmt.Errorf("attribute %q not set", name)
	}
	x, err := geometry.ParseLength(s)
	if err != nil {
		return 0, fmt.Errorf("attribute %q: %w", name, err)
	}
	return x, nil
}

// SetAttr sets the named attribute.  New attributes are added after the
// existing ones.
func (n *Node) SetAttr(name, value string) {
	for i := range n.attrs {
		if n.attrs[i].Name == name {
			n.attrs[i].Value = value
			return
		}
	}
	n.attrs = append(n.attrs, Attr{Name: name, Value: value})
}

// RemoveAttr deletes the named attribute, if present.
func (n *Node) RemoveAttr(name string) {
	n.attrs = slices.DeleteFunc(n.attrs, func(a Attr) bool { return a.Name == name })
}

// Attrs returns all attributes of n in insertion order.
// The returned slice must not be modified.
func (n *Node) Attrs() []Attr {
	return n.attrs
}

// Datum returns the datum bound to n, if any.
func (n *Node) Datum() (Datum, bool) {
	if n.datum == nil {
		return Datum{}, false
	}
	return *n.datum, true
}

// SetDatum binds d to n, replacing any previous datum.
func (n *Node) SetDatum(d Datum) {
	n.datum = &d
}

// ClearDatum removes the datum bound to n.
func (n *Node) ClearDatum() {
	n.datum = nil
}

// Walk calls fn for n and all its descendants in document order.  The
// depth argument is 0 for n itself.  If fn returns false, the children of
// the current node are skipped.
func (n *Node) Walk(fn func(n *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.children {
		c.walk(fn, depth+1)
	}
}

// Count returns the number of nodes in the subtree rooted at n,
// including n itself.
func (n *Node) Count() int {
	count := 0
	n.Walk(func(*Node, int) bool {
		count++
		return true
	})
	return count
}
