// Copyright (c) 2025, znzhao.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

// Package tree implements a named, ordered tree of nodes with arbitrary
// JSON-representable content. The central types are Node, a single vertex
// holding a name, a content Value, an ordered list of children and a
// non-owning reference to its parent, and Tree, a root-relative view over
// a Node providing name- and index-based convenience operations. Content
// is held in the Value type, a restricted form of the go interface{} type
// that may take on Object, Array, int64, uint64, float64, string, bool,
// and nil. Trees round-trip through a recursive JSON representation of
// the form {"name": ..., "content": ..., "children": [...]}.
//
// Nodes and Trees are mutable and assume a single owning goroutine;
// concurrent mutation requires external synchronization.
package tree
