// Copyright (c) 2025, znzhao.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package session

import (
	"fmt"

	"jsouthworth.net/go/immutable/hashmap"

	"github.com/znzhao/flextree/tree"
)

// treeNames indexes every node name in t. The index is rebuilt per
// operation; sessions back interactive editors where tree sizes make
// this cheap.
func treeNames(t *tree.Tree) *hashmap.Map {
	names := hashmap.Empty()
	var walk func(n *tree.Node)
	walk = func(n *tree.Node) {
		names = names.Assoc(n.Name(), n)
		n.Range(func(child *tree.Node) {
			walk(child)
		})
	}
	walk(t.Root())
	return names
}

func nameExists(t *tree.Tree, name string) bool {
	return treeNames(t).Contains(name)
}

// uniqueName returns base if it is not taken, otherwise the first of
// "base (1)", "base (2)", ... that is free.
func uniqueName(base string, taken *hashmap.Map) string {
	if !taken.Contains(base) {
		return base
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s (%d)", base, i)
		if !taken.Contains(candidate) {
			return candidate
		}
	}
}
