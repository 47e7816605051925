// Copyright (c) 2025, znzhao.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package tree

import (
	"strings"
	"testing"

	"jsouthworth.net/go/try"
)

func TestNodeNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		n := NodeNew("a")
		assert(n.Name() == "a", func() {
			t.Fatalf("expected %v, got %v\n", "a", n.Name())
		})
		assert(n.Content().IsNull(), func() {
			t.Fatal("expected null content")
		})
		assert(n.Parent() == nil, func() {
			t.Fatal("expected no parent")
		})
		assert(n.Length() == 0, func() {
			t.Fatal("expected no children")
		})
	})
	t.Run("with content", func(t *testing.T) {
		n := NodeNew("a", "payload")
		got := n.Content().AsString()
		assert(got == "payload", func() {
			t.Fatalf("expected %v, got %v\n", "payload", got)
		})
	})
}

func TestNodeAddChild(t *testing.T) {
	parent := NodeNew("p")
	child := NodeNew("c")
	parent.AddChild(child)
	t.Run("child is appended", func(t *testing.T) {
		assert(parent.Child(0) == child, func() {
			t.Fatal("expected child at index 0")
		})
	})
	t.Run("parent is set", func(t *testing.T) {
		assert(child.Parent() == parent, func() {
			t.Fatal("expected child's parent to be set")
		})
	})
	t.Run("order is preserved", func(t *testing.T) {
		second := NodeNew("c2")
		parent.AddChild(second)
		assert(parent.Child(1) == second, func() {
			t.Fatal("expected second child at index 1")
		})
	})
}

func TestNodeRemoveChild(t *testing.T) {
	build := func() (*Node, *Node, *Node) {
		p := NodeNew("p")
		a, b := NodeNew("a"), NodeNew("b")
		p.AddChild(a)
		p.AddChild(b)
		return p, a, b
	}
	t.Run("by reference", func(t *testing.T) {
		p, a, b := build()
		p.RemoveChild(a)
		assert(p.Length() == 1 && p.Child(0) == b, func() {
			t.Fatal("expected only b to remain")
		})
	})
	t.Run("by name removes first match", func(t *testing.T) {
		p, _, _ := build()
		p.AddChild(NodeNew("a", "dup"))
		p.RemoveChild("a")
		assert(p.Length() == 2, func() {
			t.Fatalf("expected %v, got %v\n", 2, p.Length())
		})
		got := p.Child(1).Content().AsString()
		assert(got == "dup", func() {
			t.Fatal("expected the duplicate to survive")
		})
	})
	t.Run("by index", func(t *testing.T) {
		p, a, _ := build()
		p.RemoveChild(1)
		assert(p.Length() == 1 && p.Child(0) == a, func() {
			t.Fatal("expected only a to remain")
		})
	})
	t.Run("missing target is a no-op", func(t *testing.T) {
		p, _, _ := build()
		p.RemoveChild("missing")
		p.RemoveChild(10)
		p.RemoveChild(NodeNew("stranger"))
		assert(p.Length() == 2, func() {
			t.Fatalf("expected %v, got %v\n", 2, p.Length())
		})
	})
	t.Run("removed child keeps its parent pointer", func(t *testing.T) {
		p, a, _ := build()
		p.RemoveChild(a)
		assert(a.Parent() == p, func() {
			t.Fatal("expected the stale parent pointer to remain")
		})
	})
}

func TestNodeChild(t *testing.T) {
	p := NodeNew("p")
	a, b, c := NodeNew("a"), NodeNew("b"), NodeNew("c")
	p.AddChild(a)
	p.AddChild(b)
	p.AddChild(c)
	t.Run("by name", func(t *testing.T) {
		assert(p.Child("b") == b, func() {
			t.Fatal("expected b")
		})
	})
	t.Run("by name only searches direct children", func(t *testing.T) {
		b.AddChild(NodeNew("deep"))
		assert(p.Child("deep") == nil, func() {
			t.Fatal("expected a deep node not to be found")
		})
	})
	t.Run("negative index counts from the end", func(t *testing.T) {
		assert(p.Child(-1) == c, func() {
			t.Fatal("expected the last child")
		})
		assert(p.Child(-3) == a, func() {
			t.Fatal("expected the first child")
		})
	})
	t.Run("positive out of range is nil", func(t *testing.T) {
		assert(p.Child(3) == nil, func() {
			t.Fatal("expected nil")
		})
	})
	t.Run("negative out of range panics", func(t *testing.T) {
		_, err := try.Apply(p.Child, -4)
		if err == nil {
			t.Fatal("lookup should have failed")
		}
	})
}

func TestNodeSubtree(t *testing.T) {
	root := NodeNew("root")
	mid := NodeNew("mid")
	leaf := NodeNew("leaf")
	root.AddChild(mid)
	mid.AddChild(leaf)
	t.Run("finds self", func(t *testing.T) {
		assert(root.Subtree("root") == root, func() {
			t.Fatal("expected the root itself")
		})
	})
	t.Run("finds deep nodes", func(t *testing.T) {
		assert(root.Subtree("leaf") == leaf, func() {
			t.Fatal("expected the leaf")
		})
	})
	t.Run("pre-order picks the shallower duplicate first",
		func(t *testing.T) {
			dup := NodeNew("leaf")
			root.AddChild(dup)
			assert(root.Subtree("leaf") == leaf, func() {
				t.Fatal("expected left-to-right pre-order")
			})
			root.RemoveChild(dup)
		})
	t.Run("missing name is nil", func(t *testing.T) {
		assert(root.Subtree("missing") == nil, func() {
			t.Fatal("expected nil")
		})
	})
}

func TestNodeCopy(t *testing.T) {
	orig := NodeNew("a", map[string]interface{}{"k": "v"})
	orig.AddChild(NodeNew("child"))
	cp := orig.Copy()
	t.Run("children and parent are dropped", func(t *testing.T) {
		assert(cp.Length() == 0 && cp.Parent() == nil, func() {
			t.Fatal("expected a bare node")
		})
	})
	t.Run("content is shared", func(t *testing.T) {
		cp.Content().AsObject().Assoc("k", "changed")
		got := orig.Content().AsObject().At("k")
		assert(got.Equal(ValueNew("changed")), func() {
			t.Fatal("expected the mutation to be visible through both")
		})
	})
}

func TestNodeDeepCopy(t *testing.T) {
	orig := NodeNew("a", map[string]interface{}{"k": "v"})
	child := NodeNew("child", 1)
	orig.AddChild(child)
	cp := orig.DeepCopy()
	t.Run("copies compare equal", func(t *testing.T) {
		assert(cp.Equal(orig), func() {
			t.Fatal("expected the copy to equal the original")
		})
	})
	t.Run("content is independent", func(t *testing.T) {
		cp.Content().AsObject().Assoc("k", "changed")
		got := orig.Content().AsObject().At("k")
		assert(got.Equal(ValueNew("v")), func() {
			t.Fatal("expected the original to be untouched")
		})
	})
	t.Run("children are independent", func(t *testing.T) {
		cp.Child(0).SetName("renamed")
		assert(child.Name() == "child", func() {
			t.Fatal("expected the original child to be untouched")
		})
	})
	t.Run("parent links point into the copy", func(t *testing.T) {
		assert(cp.Child(0).Parent() == cp, func() {
			t.Fatal("expected the copy's child to point at the copy")
		})
	})
}

func TestNodeMeasures(t *testing.T) {
	t.Run("single node", func(t *testing.T) {
		n := NodeNew("a")
		assert(n.Count() == 1, func() {
			t.Fatalf("expected %v, got %v\n", 1, n.Count())
		})
		assert(n.MaxDepth() == 1, func() {
			t.Fatalf("expected %v, got %v\n", 1, n.MaxDepth())
		})
		assert(n.MaxWidth() == 1, func() {
			t.Fatalf("expected %v, got %v\n", 1, n.MaxWidth())
		})
	})
	t.Run("width is the largest fan-out", func(t *testing.T) {
		// Two siblings with two children each: four nodes on
		// one level but no node has more than two children.
		root := NodeNew("root")
		for _, name := range []string{"l", "r"} {
			mid := NodeNew(name)
			mid.AddChild(NodeNew(name + "1"))
			mid.AddChild(NodeNew(name + "2"))
			root.AddChild(mid)
		}
		assert(root.MaxWidth() == 2, func() {
			t.Fatalf("expected %v, got %v\n", 2, root.MaxWidth())
		})
		assert(root.MaxDepth() == 3, func() {
			t.Fatalf("expected %v, got %v\n", 3, root.MaxDepth())
		})
		assert(root.Count() == 7, func() {
			t.Fatalf("expected %v, got %v\n", 7, root.Count())
		})
	})
}

func TestNodeSummary(t *testing.T) {
	t.Run("short content", func(t *testing.T) {
		n := NodeNew("a", "short")
		want := "a: short" +
			"\n  - Max Depth: 1" +
			"\n  - Max Width: 1" +
			"\n  - Node Count: 1"
		got := n.Summary()
		assert(got == want, func() {
			t.Fatalf("expected %v, got %v\n", want, got)
		})
	})
	t.Run("long content is truncated", func(t *testing.T) {
		n := NodeNew("a", strings.Repeat("x", 50))
		got := n.Summary()
		line := strings.SplitN(got, "\n", 2)[0]
		want := "a: " + strings.Repeat("x", 37) + "..."
		assert(line == want, func() {
			t.Fatalf("expected %v, got %v\n", want, line)
		})
	})
}

func TestNodeEqual(t *testing.T) {
	build := func() *Node {
		n := NodeNew("a", 1)
		n.AddChild(NodeNew("b", "x"))
		return n
	}
	t.Run("equal subtrees", func(t *testing.T) {
		assert(build().Equal(build()), func() {
			t.Fatal("expected nodes to be equal")
		})
	})
	t.Run("attachment does not participate", func(t *testing.T) {
		attached := build()
		NodeNew("other").AddChild(attached)
		assert(attached.Equal(build()), func() {
			t.Fatal("expected equality regardless of parent")
		})
	})
	t.Run("different children", func(t *testing.T) {
		other := build()
		other.AddChild(NodeNew("c"))
		assert(!build().Equal(other), func() {
			t.Fatal("expected nodes to differ")
		})
	})
}

func TestNodeNative(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		orig := NodeNew("a", map[string]interface{}{"k": 1})
		orig.AddChild(NodeNew("b"))
		back, err := NodeFromNative(orig.ToNative())
		if err != nil {
			t.Fatal(err)
		}
		assert(back.Equal(orig), func() {
			t.Fatal("expected the round trip to preserve the node")
		})
	})
	t.Run("missing name", func(t *testing.T) {
		_, err := NodeFromNative(map[string]interface{}{
			"content": 1,
		})
		if err == nil {
			t.Fatal("construction should have failed")
		}
	})
	t.Run("missing content defaults to null", func(t *testing.T) {
		n, err := NodeFromNative(map[string]interface{}{
			"name": "a",
		})
		if err != nil {
			t.Fatal(err)
		}
		assert(n.Content().IsNull(), func() {
			t.Fatal("expected null content")
		})
	})
}
