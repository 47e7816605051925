// Copyright (c) 2025, znzhao.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package tree

import (
	"errors"
	"fmt"
)

// TreeNew creates a tree rooted at the supplied node. A tree is a view,
// not a copy: it designates the node as a conceptual root and operates
// on everything reachable from it, ignoring anything above. Several
// trees may wrap nodes of the same structure and mutations through one
// are visible through the others.
func TreeNew(root *Node) *Tree {
	return &Tree{
		root: root,
	}
}

// TreeFromNative creates a tree from the nested map representation
// produced by ToNative.
func TreeFromNative(data map[string]interface{}) (*Tree, error) {
	root, err := NodeFromNative(data)
	if err != nil {
		return nil, err
	}
	return TreeNew(root), nil
}

// Tree is a root-relative convenience API layered over Node. It adds
// whole-tree name lookups and sequence-like indexing over the root's
// children.
type Tree struct {
	root *Node
}

// Root returns the tree's root node.
func (t *Tree) Root() *Node {
	return t.root
}

// Insert locates the first node named parentName anywhere in the tree
// and appends node as its child. An unknown parent name is a silent
// no-op; callers that need the distinction should check for the parent
// first.
func (t *Tree) Insert(parentName string, node *Node) *Tree {
	if parent := t.root.Subtree(parentName); parent != nil {
		parent.AddChild(node)
	}
	return t
}

// Delete locates the first node named name and detaches it, and with it
// its whole subtree, from its parent. The root has no parent and can
// never be removed this way; unknown names are a silent no-op.
func (t *Tree) Delete(name string) *Tree {
	node := t.root.Subtree(name)
	if node != nil && node.Parent() != nil {
		node.Parent().RemoveChild(node)
	}
	return t
}

// Alter locates the first node named name and replaces its content.
// Unknown names are a silent no-op.
func (t *Tree) Alter(name string, content interface{}) *Tree {
	if node := t.root.Subtree(name); node != nil {
		node.SetContent(content)
	}
	return t
}

// At returns a tree rooted at the selected node, or nil if there is no
// match. A string key searches the whole tree; an integer key inspects
// the root's direct children only, with Node.Child's negative indexing
// contract. The returned tree shares live nodes with this one.
func (t *Tree) At(key interface{}) *Tree {
	var node *Node
	switch k := key.(type) {
	case string:
		node = t.root.Subtree(k)
	case int:
		node = t.root.Child(k)
	}
	if node == nil {
		return nil
	}
	return TreeNew(node)
}

// Index is the polymorphic access point over the key's shape:
//
//	int           same as At, one tree or nil
//	Slice         the slice of the root's direct children, as a
//	              []*Tree in order; out-of-range slices clamp to an
//	              empty result
//	[]string      At for each name, collecting the non-nil results
//	              in input order
//	[]interface{} as []string; panics if an element is not a string
//	string        same as At
//
// Any other key type returns nil.
func (t *Tree) Index(key interface{}) interface{} {
	switch k := key.(type) {
	case int:
		if sub := t.At(k); sub != nil {
			return sub
		}
		return nil
	case Slice:
		start, stop, step := k.indices(t.root.Length())
		out := []*Tree{}
		if step > 0 {
			for i := start; i < stop; i += step {
				out = append(out, t.At(i))
			}
		} else {
			for i := start; i > stop; i += step {
				out = append(out, t.At(i))
			}
		}
		return out
	case []string:
		return t.byNames(k)
	case []interface{}:
		names := make([]string, len(k))
		for i, elem := range k {
			name, isString := elem.(string)
			if !isString {
				panic(errors.New("list keys must be strings"))
			}
			names[i] = name
		}
		return t.byNames(names)
	case string:
		if sub := t.At(k); sub != nil {
			return sub
		}
		return nil
	default:
		return nil
	}
}

func (t *Tree) byNames(names []string) []*Tree {
	out := []*Tree{}
	for _, name := range names {
		if sub := t.At(name); sub != nil {
			out = append(out, sub)
		}
	}
	return out
}

// Count returns the total number of nodes in the tree.
func (t *Tree) Count() int {
	return t.root.Count()
}

// MaxDepth returns the maximum depth from root to any leaf.
func (t *Tree) MaxDepth() int {
	return t.root.MaxDepth()
}

// MaxWidth returns the root node's MaxWidth measure; see Node.MaxWidth
// for its exact semantics.
func (t *Tree) MaxWidth() int {
	return t.root.MaxWidth()
}

// Summary returns the root node's summary.
func (t *Tree) Summary() string {
	return t.root.Summary()
}

// Copy returns a tree over a shallow clone of the root. Shallow node
// copies drop all children, so the result is a root-only tree sharing
// the root's content value.
func (t *Tree) Copy() *Tree {
	return TreeNew(t.root.Copy())
}

// DeepCopy returns a fully independent clone of the whole tree.
func (t *Tree) DeepCopy() *Tree {
	return TreeNew(t.root.DeepCopy())
}

// ToNative converts the tree to its nested map representation.
func (t *Tree) ToNative() map[string]interface{} {
	return t.root.ToNative()
}

// Equal implements equality for trees by comparing their roots.
func (t *Tree) Equal(other interface{}) bool {
	ot, isTree := other.(*Tree)
	if !isTree || ot == nil {
		return false
	}
	return t.root.Equal(ot.root)
}

// String returns a short representation of the tree.
func (t *Tree) String() string {
	return fmt.Sprintf("Tree(root=%v, depth=%d, width=%d)",
		t.root, t.MaxDepth(), t.MaxWidth())
}
