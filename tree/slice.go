// Copyright (c) 2025, znzhao.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package tree

import "errors"

// SliceNew builds a child-range selector for Tree.Index with Python
// slice semantics: negative bounds count from the end, out-of-range
// bounds clamp rather than fail, and a negative step walks backwards.
// Omitted bounds take the usual defaults for the step direction.
//
//	SliceNew()                  every child
//	SliceNew(From(1), To(3))    children 1 and 2
//	SliceNew(From(-2))          the last two children
//	SliceNew(By(-1))            every child, reversed
//
// A zero step panics.
func SliceNew(options ...SliceOption) Slice {
	s := Slice{step: 1}
	for _, option := range options {
		option(&s)
	}
	if s.step == 0 {
		panic(errors.New("slice step cannot be zero"))
	}
	return s
}

// Slice selects a range of a root's direct children.
type Slice struct {
	start, stop, step int
	hasStart, hasStop bool
}

// SliceOption is an option to the SliceNew function.
type SliceOption func(*Slice)

// From sets the slice's start bound.
func From(i int) SliceOption {
	return func(s *Slice) {
		s.start = i
		s.hasStart = true
	}
}

// To sets the slice's stop bound (exclusive).
func To(i int) SliceOption {
	return func(s *Slice) {
		s.stop = i
		s.hasStop = true
	}
}

// By sets the slice's step.
func By(i int) SliceOption {
	return func(s *Slice) {
		s.step = i
	}
}

// indices clamps the slice against a sequence of the given length and
// returns usable start, stop, and step values, mirroring Python's
// slice.indices.
func (s Slice) indices(length int) (int, int, int) {
	step := s.step
	var lower, upper int
	if step < 0 {
		lower, upper = -1, length-1
	} else {
		lower, upper = 0, length
	}

	start := lower
	if step < 0 {
		start = upper
	}
	if s.hasStart {
		start = s.start
		if start < 0 {
			start += length
			if start < lower {
				start = lower
			}
		} else if start > upper {
			start = upper
		}
	}

	stop := upper
	if step < 0 {
		stop = lower
	}
	if s.hasStop {
		stop = s.stop
		if stop < 0 {
			stop += length
			if stop < lower {
				stop = lower
			}
		} else if stop > upper {
			stop = upper
		}
	}

	return start, stop, step
}
