// Copyright (c) 2025, znzhao.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package tree

import (
	"sort"
)

// ArrayNew creates a new empty array.
func ArrayNew() *Array {
	return arrayNew()
}

func arrayNew() *Array {
	return &Array{}
}

// ArrayWith creates an array and initializes it with the provided elements.
func ArrayWith(elements ...interface{}) *Array {
	return ArrayNew().with(elements...)
}

// ArrayFrom creates an array and initializes it with the elements from the
// provided slice.
func ArrayFrom(in []interface{}) *Array {
	return ArrayNew().from(in)
}

// Array is a JSON array. Like Object, arrays are mutable: the mutation
// methods change the array in place and return the receiver so
// operations may be chained.
type Array struct {
	items []*Value
}

func (arr *Array) from(in []interface{}) *Array {
	for _, elem := range in {
		arr.Append(elem)
	}
	return arr
}

func (arr *Array) with(elements ...interface{}) *Array {
	return arr.from(elements)
}

// At returns the value at the index of the array, if the index is out
// of bounds, nil is returned.
func (arr *Array) At(index int) *Value {
	if index >= len(arr.items) || index < 0 {
		return nil
	}
	return arr.items[index]
}

// Contains returns whether the index is in the bounds of the array.
func (arr *Array) Contains(index int) bool {
	return index < len(arr.items) && index >= 0
}

// Find returns the value at the index or nil if it doesn't exist and
// whether the index was in the array.
func (arr *Array) Find(index int) (*Value, bool) {
	if !arr.Contains(index) {
		return nil, false
	}
	return arr.items[index], true
}

// Assoc associates the value with the index in the array. If the
// index is out of bounds the array is padded to that index with null
// values and the value is associated.
func (arr *Array) Assoc(index int, value interface{}) *Array {
	for len(arr.items) <= index {
		arr.items = append(arr.items, ValueNew(nil))
	}
	arr.items[index] = ValueNew(value)
	return arr
}

// Append adds a new value to the end of the array.
func (arr *Array) Append(value interface{}) *Array {
	arr.items = append(arr.items, ValueNew(value))
	return arr
}

// Delete removes the element at the supplied index from the array.
// Out of bounds indices are ignored.
func (arr *Array) Delete(index int) *Array {
	if !arr.Contains(index) {
		return arr
	}
	arr.items = append(arr.items[:index], arr.items[index+1:]...)
	return arr
}

// Length returns the number of elements in the array.
func (arr *Array) Length() int {
	return len(arr.items)
}

// Range iterates over the array's elements. Range can take a set of
// functions matched by type. If the function returns a bool this is
// treated as a loop termination variable; if false the loop will
// terminate.
//
//	func(int, *Value) iterates over indices and values.
//	func(int, *Value) bool
//	func(int) iterates over only the indices
//	func(int) bool
//	func(*Value) iterates over only the values
//	func(*Value) bool
func (arr *Array) Range(fn interface{}) *Array {
	var f func(int, *Value) bool
	switch fun := fn.(type) {
	case func(int, *Value):
		f = func(i int, v *Value) bool {
			fun(i, v)
			return true
		}
	case func(int, *Value) bool:
		f = fun
	case func(int):
		f = func(i int, v *Value) bool {
			fun(i)
			return true
		}
	case func(int) bool:
		f = func(i int, v *Value) bool {
			return fun(i)
		}
	case func(*Value):
		f = func(i int, v *Value) bool {
			fun(v)
			return true
		}
	case func(*Value) bool:
		f = func(i int, v *Value) bool {
			return fun(v)
		}
	default:
		panic("invalid range function")
	}
	for i, item := range arr.items {
		if !f(i, item) {
			break
		}
	}
	return arr
}

// toNative returns a go native []interface{} from the array.
func (arr *Array) toNative() interface{} {
	out := make([]interface{}, len(arr.items))
	arr.Range(func(idx int, value *Value) {
		out[idx] = value.ToNative()
	})
	return out
}

// deepCopy returns a fully independent copy of the array.
func (arr *Array) deepCopy() *Array {
	out := &Array{items: make([]*Value, len(arr.items))}
	for i, item := range arr.items {
		out.items[i] = item.deepCopy()
	}
	return out
}

// Sort sorts the array in place and returns it. By default Sort uses
// dyn.Compare as the comparison operator; this may be overridden using
// the Compare option.
func (arr *Array) Sort(options ...SortOption) *Array {
	var opts sortOpts
	opts.compare = func(v1, v2 *Value) int {
		return v1.Compare(v2)
	}
	for _, opt := range options {
		opt(&opts)
	}
	sort.SliceStable(arr.items, func(i, j int) bool {
		return opts.compare(arr.items[i], arr.items[j]) < 0
	})
	return arr
}

type sortOpts struct {
	compare func(v1, v2 *Value) int
}

// SortOption is an option to the Array.Sort function.
type SortOption func(*sortOpts)

// Compare takes a comparison function and returns a sort option.
// A compare function takes two values and returns a trinary state as
// an integer. Less than zero indicates the first was less than the last,
// zero indicates the two values were equal, and greater than zero
// indicates that the first was greater than the last.
func Compare(fn func(a, b *Value) int) SortOption {
	return func(opts *sortOpts) {
		opts.compare = fn
	}
}

// Equal implements equality for arrays. An array is equal to another
// array if their values at each index are equal. Equality checks are
// linear with respect to the number of elements.
func (arr *Array) Equal(other interface{}) bool {
	oa, isArray := other.(*Array)
	if !isArray || len(oa.items) != len(arr.items) {
		return false
	}
	for i, item := range arr.items {
		if !equal(item, oa.items[i]) {
			return false
		}
	}
	return true
}

// String returns the JSON representation of the Array.
func (arr *Array) String() string {
	data, _ := arr.MarshalJSON()
	return string(data)
}
