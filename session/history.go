// Copyright (c) 2025, znzhao.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package session

import (
	"jsouthworth.net/go/immutable/vector"

	"github.com/znzhao/flextree/tree"
)

// record is one completed mutation: the action that performed it and
// independent snapshots of the tree on either side of it.
type record struct {
	action Action
	before *tree.Tree
	after  *tree.Tree
}

// history is a bounded undo/redo log. Records up to and including
// index have been applied; records beyond it are the redo tail. A new
// push discards the redo tail, and the log is capped at maxSteps by
// dropping its oldest record.
type history struct {
	records  *vector.Vector
	index    int
	maxSteps int
}

func historyNew(maxSteps int) *history {
	return &history{
		records:  vector.Empty(),
		index:    -1,
		maxSteps: maxSteps,
	}
}

func (h *history) push(rec record) {
	applied := vector.Empty().AsTransient()
	for i := 0; i <= h.index; i++ {
		applied = applied.Append(h.records.At(i))
	}
	applied = applied.Append(rec)
	h.records = applied.AsPersistent()
	if h.records.Length() > h.maxSteps {
		h.records = h.records.Delete(0)
	}
	h.index = h.records.Length() - 1
}

func (h *history) undo() (record, bool) {
	if !h.canUndo() {
		return record{}, false
	}
	rec := h.records.At(h.index).(record)
	h.index--
	return rec, true
}

func (h *history) redo() (record, bool) {
	if !h.canRedo() {
		return record{}, false
	}
	h.index++
	return h.records.At(h.index).(record), true
}

func (h *history) canUndo() bool {
	return h.index >= 0
}

func (h *history) canRedo() bool {
	return h.index < h.records.Length()-1
}

// last returns the most recently applied record.
func (h *history) last() (record, bool) {
	if h.index < 0 {
		return record{}, false
	}
	return h.records.At(h.index).(record), true
}

func (h *history) clear() {
	h.records = vector.Empty()
	h.index = -1
}
