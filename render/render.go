// Copyright (c) 2025, znzhao.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

// Package render draws trees as indented ASCII art using the familiar
// box-drawing connectors. Each node occupies one line of the form
//
//	├── name: display
//
// where display is the node's content, or a single member of it when
// the Key option selects one.
package render

import (
	"fmt"
	"io"

	"github.com/znzhao/flextree/tree"
)

// Option is an option to the Draw functions.
type Option func(*drawer)

// Key restricts the displayed content to the named member when a
// node's content is an object containing it. Nodes whose content is
// not an object, or lacks the member, display their full content.
func Key(key string) Option {
	return func(d *drawer) {
		d.key = key
	}
}

// Draw writes the subtree rooted at n to w, one node per line. The
// first write error stops the walk and is returned.
func Draw(w io.Writer, n *tree.Node, options ...Option) error {
	d := &drawer{w: w}
	for _, option := range options {
		option(d)
	}
	d.draw(n, "", true)
	return d.err
}

// DrawTree is Draw for a whole tree.
func DrawTree(w io.Writer, t *tree.Tree, options ...Option) error {
	return Draw(w, t.Root(), options...)
}

type drawer struct {
	w   io.Writer
	key string
	err error
}

// draw renders n and recurses over its children. The root is drawn as
// the last (and only) entry of an imaginary level above it, so it gets
// the terminal connector and its children indent past it.
func (d *drawer) draw(n *tree.Node, prefix string, isLast bool) {
	connector := "├── "
	childPrefix := prefix + "│   "
	if isLast {
		connector = "└── "
		childPrefix = prefix + "    "
	}
	d.writeLine(prefix + connector + n.Name() + ": " + d.display(n))
	n.Range(func(i int, child *tree.Node) {
		d.draw(child, childPrefix, i == n.Length()-1)
	})
}

func (d *drawer) display(n *tree.Node) string {
	content := n.Content()
	if d.key != "" {
		if obj := content.ToObject(); obj != nil {
			if v, ok := obj.Find(d.key); ok {
				return v.String()
			}
		}
	}
	return content.String()
}

func (d *drawer) writeLine(line string) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintln(d.w, line)
}
