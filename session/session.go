// Copyright (c) 2025, znzhao.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

// Package session wraps a tree in the editing model an interactive
// editor needs: named mutating operations with tree-wide name
// uniqueness, a clipboard with cut/copy/paste, and a bounded undo/redo
// history of full-tree snapshots.
//
// Unlike package tree, whose mutators are silent on missing targets,
// every session operation reports failure with an error. The tree
// package's signalled failures are recovered and returned as errors as
// well, so a session never panics on bad input.
package session

import (
	"errors"
	"fmt"

	"jsouthworth.net/go/try"

	"github.com/znzhao/flextree/tree"
)

// Action identifies the kind of a recorded mutation.
type Action string

const (
	ActionCut    Action = "cut"
	ActionCopy   Action = "copy"
	ActionPaste  Action = "paste"
	ActionDelete Action = "delete"
	ActionInsert Action = "insert"
	ActionRename Action = "rename"
	ActionEdit   Action = "content_edit"
)

// String returns the action's wire name.
func (a Action) String() string { return string(a) }

// Description returns a human-readable name for the action, suitable
// for undo/redo menu labels.
func (a Action) Description() string {
	switch a {
	case ActionCut:
		return "Cut"
	case ActionCopy:
		return "Copy"
	case ActionPaste:
		return "Paste"
	case ActionDelete:
		return "Delete"
	case ActionInsert:
		return "Insert"
	case ActionRename:
		return "Rename"
	case ActionEdit:
		return "Edit Content"
	}
	return string(a)
}

const defaultMaxSteps = 20

// SessionNew starts an editing session over t. The session takes over
// the tree; mutating it directly while the session is live leaves the
// history snapshots out of step with it.
func SessionNew(t *tree.Tree, options ...Option) *Session {
	s := &Session{
		tree:    t,
		history: historyNew(defaultMaxSteps),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Option is an option to the SessionNew function.
type Option func(*Session)

// MaxSteps bounds the undo history to n records. The default is 20.
func MaxSteps(n int) Option {
	return func(s *Session) {
		s.history.maxSteps = n
	}
}

// Session is a stateful editor over a single tree. Sessions are not
// safe for concurrent use.
type Session struct {
	tree          *tree.Tree
	history       *history
	clipboard     []*tree.Node
	clipboardMode Action
	cutOrigins    []*tree.Node
}

// Tree returns the session's current tree. After Undo or Redo the
// session holds a different tree value, so callers should re-fetch
// rather than hold the result.
func (s *Session) Tree() *tree.Tree {
	return s.tree
}

// mutate runs fn between two full snapshots of the tree and records
// the pair in the history when fn succeeds. A panic out of fn is
// recovered, the tree is rolled back to the before snapshot, and the
// panic value's error is returned.
func (s *Session) mutate(action Action, fn func()) error {
	before := s.tree.DeepCopy()
	_, err := try.Apply(func() interface{} {
		fn()
		return nil
	})
	if err != nil {
		s.tree = before
		return err
	}
	s.history.push(record{
		action: action,
		before: before,
		after:  s.tree.DeepCopy(),
	})
	return nil
}

// Insert adds node under the first node named parentName. The new
// node's name must not already be in use anywhere in the tree.
func (s *Session) Insert(parentName string, node *tree.Node) error {
	if s.tree.At(parentName) == nil {
		return fmt.Errorf("no node named %q", parentName)
	}
	if nameExists(s.tree, node.Name()) {
		return fmt.Errorf("name already in use: %q", node.Name())
	}
	return s.mutate(ActionInsert, func() {
		s.tree.Insert(parentName, node)
	})
}

// Delete removes the first node named name along with its subtree.
// The root cannot be deleted.
func (s *Session) Delete(name string) error {
	target := s.tree.At(name)
	if target == nil {
		return fmt.Errorf("no node named %q", name)
	}
	if target.Root() == s.tree.Root() {
		return errors.New("cannot delete the root node")
	}
	return s.mutate(ActionDelete, func() {
		s.tree.Delete(name)
	})
}

// Alter replaces the content of the first node named name.
func (s *Session) Alter(name string, content interface{}) error {
	if s.tree.At(name) == nil {
		return fmt.Errorf("no node named %q", name)
	}
	return s.mutate(ActionEdit, func() {
		s.tree.Alter(name, content)
	})
}

// Rename changes the name of the first node named oldName to newName.
// The new name must not already be in use anywhere in the tree.
func (s *Session) Rename(oldName, newName string) error {
	target := s.tree.At(oldName)
	if target == nil {
		return fmt.Errorf("no node named %q", oldName)
	}
	if oldName == newName {
		return nil
	}
	if nameExists(s.tree, newName) {
		return fmt.Errorf("name already in use: %q", newName)
	}
	return s.mutate(ActionRename, func() {
		target.Root().SetName(newName)
	})
}

// Cut marks the named subtrees for moving. The clipboard holds
// snapshots taken now, so edits made between Cut and Paste are not
// pasted; the originals stay in the tree until the next Paste removes
// them. The root cannot be cut. Cut itself mutates nothing, so it is
// not recorded in the history.
func (s *Session) Cut(names ...string) error {
	nodes, err := s.clip(names)
	if err != nil {
		return err
	}
	s.clipboard = snapshot(nodes)
	s.clipboardMode = ActionCut
	s.cutOrigins = nodes
	return nil
}

// Copy places independent copies of the named subtrees on the
// clipboard. Like Cut it is not recorded in the history.
func (s *Session) Copy(names ...string) error {
	nodes, err := s.clip(names)
	if err != nil {
		return err
	}
	s.clipboard = snapshot(nodes)
	s.clipboardMode = ActionCopy
	s.cutOrigins = nil
	return nil
}

func snapshot(nodes []*tree.Node) []*tree.Node {
	copies := make([]*tree.Node, len(nodes))
	for i, node := range nodes {
		copies[i] = node.DeepCopy()
	}
	return copies
}

func (s *Session) clip(names []string) ([]*tree.Node, error) {
	if len(names) == 0 {
		return nil, errors.New("nothing selected")
	}
	nodes := make([]*tree.Node, len(names))
	for i, name := range names {
		target := s.tree.At(name)
		if target == nil {
			return nil, fmt.Errorf("no node named %q", name)
		}
		if target.Root() == s.tree.Root() {
			return nil, errors.New("cannot cut or copy the root node")
		}
		nodes[i] = target.Root()
	}
	return nodes, nil
}

// Paste attaches fresh copies of the clipboard's snapshots under the
// first node named parentName and returns the names they were attached
// under, made unique tree-wide with a "name (n)" suffix where needed.
// A paste after a cut removes the originals and empties the clipboard,
// so a cut pastes exactly once; copied snapshots stay on the clipboard
// and may be pasted repeatedly.
func (s *Session) Paste(parentName string) ([]string, error) {
	if len(s.clipboard) == 0 {
		return nil, errors.New("clipboard is empty")
	}
	if s.tree.At(parentName) == nil {
		return nil, fmt.Errorf("no node named %q", parentName)
	}
	for _, origin := range s.cutOrigins {
		if origin.Subtree(parentName) != nil {
			return nil, errors.New(
				"cannot paste a cut node into its own subtree")
		}
	}
	var pasted []string
	err := s.mutate(ActionPaste, func() {
		for _, origin := range s.cutOrigins {
			if parent := origin.Parent(); parent != nil {
				parent.RemoveChild(origin)
			}
		}
		for _, node := range s.clipboard {
			dup := node.DeepCopy()
			s.assignUniqueNames(dup)
			s.tree.Insert(parentName, dup)
			pasted = append(pasted, dup.Name())
		}
	})
	if err != nil {
		return nil, err
	}
	if s.clipboardMode == ActionCut {
		s.clipboard = nil
		s.clipboardMode = ""
	}
	s.cutOrigins = nil
	return pasted, nil
}

// assignUniqueNames renames n and its descendants so no name collides
// with one already in the tree. Renaming happens top-down, so an inner
// collision sees the outer renames already applied.
func (s *Session) assignUniqueNames(n *tree.Node) {
	taken := treeNames(s.tree)
	var walk func(n *tree.Node)
	walk = func(n *tree.Node) {
		name := uniqueName(n.Name(), taken)
		n.SetName(name)
		taken = taken.Assoc(name, n)
		n.Range(func(child *tree.Node) {
			walk(child)
		})
	}
	walk(n)
}

// Undo rolls the tree back to the state before the last recorded
// mutation. It returns false when there is nothing to undo.
func (s *Session) Undo() bool {
	rec, ok := s.history.undo()
	if !ok {
		return false
	}
	s.tree = rec.before.DeepCopy()
	return true
}

// Redo reapplies the most recently undone mutation. It returns false
// when there is nothing to redo.
func (s *Session) Redo() bool {
	rec, ok := s.history.redo()
	if !ok {
		return false
	}
	s.tree = rec.after.DeepCopy()
	return true
}

// CanUndo reports whether Undo would do anything.
func (s *Session) CanUndo() bool {
	return s.history.canUndo()
}

// CanRedo reports whether Redo would do anything.
func (s *Session) CanRedo() bool {
	return s.history.canRedo()
}

// ClearHistory drops all undo and redo state.
func (s *Session) ClearHistory() {
	s.history.clear()
}

// LastActionDescription returns a label for the mutation Undo would
// revert, or "" when the history is empty.
func (s *Session) LastActionDescription() string {
	rec, ok := s.history.last()
	if !ok {
		return ""
	}
	return rec.action.Description()
}
