// Copyright (c) 2025, znzhao.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package tree

import (
	"errors"
	"fmt"
	"strings"
)

// NodeNew creates a new unattached node: it has no parent and no
// children. The optional second argument is the node's content; it
// defaults to null and must be a type ValueNew accepts. Names are not
// required to be unique; they are simply the key every by-name lookup
// matches against.
func NodeNew(name string, content ...interface{}) *Node {
	n := &Node{
		name:    name,
		content: ValueNew(nil),
	}
	if len(content) != 0 {
		n.content = ValueNew(content[0])
	}
	return n
}

// Node is a single vertex in a tree. A node owns its children; the
// parent reference is a non-owning back-pointer used only for
// relationship lookups and never for lifetime management.
type Node struct {
	name     string
	content  *Value
	children []*Node
	parent   *Node
}

// Name returns the node's name.
func (n *Node) Name() string { return n.name }

// SetName replaces the node's name. No uniqueness check is made; the
// session layer enforces tree-wide uniqueness before renaming.
func (n *Node) SetName(name string) { n.name = name }

// Content returns the node's content value. The value is shared, not
// copied; mutating a returned Object or Array mutates the node.
func (n *Node) Content() *Value { return n.content }

// SetContent replaces the node's content unconditionally. The argument
// must be a type ValueNew accepts.
func (n *Node) SetContent(content interface{}) {
	n.content = ValueNew(content)
}

// Parent returns the node's parent, or nil for a detached node or root.
// Note that RemoveChild does not clear the removed child's parent
// pointer, so a detached subtree still reports its former parent here.
func (n *Node) Parent() *Node { return n.parent }

// Length returns the number of direct children.
func (n *Node) Length() int { return len(n.children) }

// AddChild appends child to the node's children and sets the child's
// parent to n. This is the only operation that establishes the
// parent/child invariant. No duplicate check is made; adding the same
// node twice produces two entries with a single parent reference.
func (n *Node) AddChild(child *Node) {
	child.parent = n
	n.children = append(n.children, child)
}

// RemoveChild removes a direct child identified by the selector:
//
//	*Node  removes the first entry that is that node
//	string removes the first child with that name
//	int    removes the child at that index (0-based, in-range only)
//
// Failure to find a match, an out-of-range index, or an unsupported
// selector type is a silent no-op. The removed child's parent pointer is
// left pointing at its former parent.
func (n *Node) RemoveChild(selector interface{}) {
	switch sel := selector.(type) {
	case *Node:
		for i, child := range n.children {
			if child == sel {
				n.removeAt(i)
				return
			}
		}
	case string:
		for i, child := range n.children {
			if child.name == sel {
				n.removeAt(i)
				return
			}
		}
	case int:
		if sel >= 0 && sel < len(n.children) {
			n.removeAt(sel)
		}
	}
}

func (n *Node) removeAt(i int) {
	n.children = append(n.children[:i], n.children[i+1:]...)
}

// Child looks up a direct child only, never a deeper descendant:
//
//	string returns the first child with that name, or nil
//	int    returns the child at that index; negative indices count
//	       from the end
//
// An out-of-range positive index returns nil but an out-of-range
// negative index panics. The asymmetry is deliberate and callers rely
// on it; use try.Apply to recover the panic as an error.
func (n *Node) Child(key interface{}) *Node {
	switch k := key.(type) {
	case string:
		for _, child := range n.children {
			if child.name == k {
				return child
			}
		}
	case int:
		switch {
		case k >= 0 && k < len(n.children):
			return n.children[k]
		case k < 0:
			idx := len(n.children) + k
			if idx < 0 {
				panic(errors.New("child index out of range"))
			}
			return n.children[idx]
		}
	}
	return nil
}

// Subtree searches the subtree rooted at n, depth-first and pre-order
// (self first, then children left to right), for the first node named
// name. It returns nil if there is no match. Every by-name operation on
// Tree is built on this, so their cost is linear in the subtree size.
func (n *Node) Subtree(name string) *Node {
	if n.name == name {
		return n
	}
	for _, child := range n.children {
		if found := child.Subtree(name); found != nil {
			return found
		}
	}
	return nil
}

// Range iterates over the node's direct children in order. Range can
// take a set of functions matched by type. If the function returns a
// bool this is treated as a loop termination variable; if false the
// loop will terminate.
//
//	func(int, *Node) iterates over indices and children.
//	func(int, *Node) bool
//	func(*Node) iterates over only the children
//	func(*Node) bool
func (n *Node) Range(fn interface{}) *Node {
	var f func(int, *Node) bool
	switch fun := fn.(type) {
	case func(int, *Node):
		f = func(i int, child *Node) bool {
			fun(i, child)
			return true
		}
	case func(int, *Node) bool:
		f = fun
	case func(*Node):
		f = func(i int, child *Node) bool {
			fun(child)
			return true
		}
	case func(*Node) bool:
		f = func(i int, child *Node) bool {
			return fun(child)
		}
	default:
		panic("invalid range function")
	}
	for i, child := range n.children {
		if !f(i, child) {
			break
		}
	}
	return n
}

// Copy returns a shallow clone: a new node with the same name, the same
// content value (shared, not duplicated), no children and no parent.
// Mutating shared mutable content affects both nodes.
func (n *Node) Copy() *Node {
	return &Node{
		name:    n.name,
		content: n.content,
	}
}

// DeepCopy returns a fully independent clone of the node and its entire
// subtree. Content is copied recursively and children are reattached
// through AddChild so parent links in the copy point into the copy.
func (n *Node) DeepCopy() *Node {
	out := &Node{
		name:    n.name,
		content: n.content.deepCopy(),
	}
	for _, child := range n.children {
		out.AddChild(child.DeepCopy())
	}
	return out
}

// Count returns the total number of nodes in the subtree rooted at n,
// including n itself.
func (n *Node) Count() int {
	count := 1
	for _, child := range n.children {
		count += child.Count()
	}
	return count
}

// MaxDepth returns the longest path, counted in nodes, from n to any
// leaf of its subtree. A leaf has depth 1.
func (n *Node) MaxDepth() int {
	if len(n.children) == 0 {
		return 1
	}
	max := 0
	for _, child := range n.children {
		if d := child.MaxDepth(); d > max {
			max = d
		}
	}
	return 1 + max
}

// MaxWidth returns the largest direct-children count found anywhere in
// the subtree rooted at n. This is a max-over-local-fan-out measure,
// not a per-depth breadth-first width: two nodes at the same depth with
// two children each yield 2, not 4.
func (n *Node) MaxWidth() int {
	if len(n.children) == 0 {
		return 1
	}
	max := len(n.children)
	for _, child := range n.children {
		if w := child.MaxWidth(); w > max {
			max = w
		}
	}
	return max
}

// Summary returns a human-readable multi-line description of the
// subtree rooted at n: name, content (truncated beyond 40 characters),
// max depth, max width, and node count.
func (n *Node) Summary() string {
	content := []rune(n.content.String())
	if len(content) > 40 {
		content = append(content[:37], []rune("...")...)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", n.name, string(content))
	fmt.Fprintf(&b, "\n  - Max Depth: %d", n.MaxDepth())
	fmt.Fprintf(&b, "\n  - Max Width: %d", n.MaxWidth())
	fmt.Fprintf(&b, "\n  - Node Count: %d", n.Count())
	return b.String()
}

// Equal implements equality for nodes. Two nodes are equal if their
// names, contents, and children are recursively equal. Parent pointers
// do not participate, so equal subtrees compare equal regardless of
// where they are attached.
func (n *Node) Equal(other interface{}) bool {
	on, isNode := other.(*Node)
	if !isNode || on == nil {
		return false
	}
	if n.name != on.name || !equal(n.content, on.content) ||
		len(n.children) != len(on.children) {
		return false
	}
	for i, child := range n.children {
		if !child.Equal(on.children[i]) {
			return false
		}
	}
	return true
}

// String returns a short representation of the node.
func (n *Node) String() string {
	return fmt.Sprintf("Node(name=%s, children=%d)", n.name, len(n.children))
}

// ToNative converts the node and its entire subtree to nested go native
// maps of the form {"name": ..., "content": ..., "children": [...]}.
func (n *Node) ToNative() map[string]interface{} {
	children := make([]interface{}, len(n.children))
	for i, child := range n.children {
		children[i] = child.ToNative()
	}
	return map[string]interface{}{
		"name":     n.name,
		"content":  n.content.ToNative(),
		"children": children,
	}
}

// NodeFromNative reconstructs a node and its subtree from the nested map
// representation produced by ToNative. A missing content member defaults
// to null and a missing children member to no children; a missing name
// is an error. The node is built first and children are attached one by
// one through AddChild, so parent references are correctly established.
func NodeFromNative(data map[string]interface{}) (*Node, error) {
	name, ok := data["name"].(string)
	if !ok {
		return nil, errors.New("node: missing name member")
	}
	n := NodeNew(name, data["content"])
	children, _ := data["children"].([]interface{})
	for _, childData := range children {
		m, isMap := childData.(map[string]interface{})
		if !isMap {
			return nil, errors.New("node: child is not an object")
		}
		child, err := NodeFromNative(m)
		if err != nil {
			return nil, err
		}
		n.AddChild(child)
	}
	return n, nil
}
