// Copyright (c) 2025, znzhao.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package tree

import (
	"fmt"
	"sort"
)

// ObjectNew creates a new empty object.
func ObjectNew() *Object {
	return objectNew()
}

func objectNew() *Object {
	return &Object{}
}

// ObjectWith creates a new object and then populates it with the supplied
// pairs.
func ObjectWith(pairs ...Pair) *Object {
	return ObjectNew().with(pairs...)
}

// ObjectFrom creates a new object and then populates it with the data from
// the supplied map. Go maps have no iteration order, so members are
// inserted in sorted key order to keep the result deterministic.
func ObjectFrom(in map[string]interface{}) *Object {
	return ObjectNew().from(in)
}

// PairNew creates a new pair.
func PairNew(key string, value interface{}) Pair {
	return Pair{key: key, value: ValueNew(value)}
}

// Pair is a key/value pair. These are representations of the members
// of Objects.
type Pair struct {
	key   string
	value *Value
}

// Key returns the key.
func (p Pair) Key() string { return p.key }

// Value returns the value.
func (p Pair) Value() *Value { return p.value }

// String returns a string representation of the Pair.
func (p Pair) String() string { return fmt.Sprintf("[%v %v]", p.key, p.value) }

// Equal implements equality between Pairs.
func (p Pair) Equal(other interface{}) bool {
	op, isPair := other.(Pair)
	if !isPair {
		return false
	}
	return op.key == p.key && equal(op.value, p.value)
}

// Object is a JSON object whose members keep their insertion order.
// Unlike the scalar value types, Objects are mutable: the mutation
// methods change the object in place and return the receiver so
// operations may be chained. Mutating an object that is shared between
// shallow copies of a node is visible through every copy.
type Object struct {
	pairs []Pair
}

// from inserts the members of a native go map in sorted key order.
func (obj *Object) from(in map[string]interface{}) *Object {
	keys := make([]string, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		obj.Assoc(k, in[k])
	}
	return obj
}

// with populates the object from a list of Pairs. This provides a
// declarative mechanism for producing an object.
func (obj *Object) with(pairs ...Pair) *Object {
	for _, pair := range pairs {
		obj.Assoc(pair.Key(), pair.Value())
	}
	return obj
}

func (obj *Object) indexOf(key string) int {
	for i, pair := range obj.pairs {
		if pair.key == key {
			return i
		}
	}
	return -1
}

// At returns the Value at the key's location or nil if it doesn't exist.
func (obj *Object) At(key string) *Value {
	i := obj.indexOf(key)
	if i == -1 {
		return nil
	}
	return obj.pairs[i].value
}

// Contains returns true if the key exists in the object.
func (obj *Object) Contains(key string) bool {
	return obj.indexOf(key) != -1
}

// Find returns the value at the key or nil if it doesn't exist and
// whether the key was in the object.
func (obj *Object) Find(key string) (*Value, bool) {
	i := obj.indexOf(key)
	if i == -1 {
		return nil, false
	}
	return obj.pairs[i].value, true
}

// Assoc associates a new value with the key. An existing member is
// replaced in place and keeps its position; a new member is appended.
func (obj *Object) Assoc(key string, value interface{}) *Object {
	v := ValueNew(value)
	i := obj.indexOf(key)
	if i == -1 {
		obj.pairs = append(obj.pairs, Pair{key: key, value: v})
		return obj
	}
	obj.pairs[i].value = v
	return obj
}

// Delete removes a key from the object. Unknown keys are ignored.
func (obj *Object) Delete(key string) *Object {
	i := obj.indexOf(key)
	if i == -1 {
		return obj
	}
	obj.pairs = append(obj.pairs[:i], obj.pairs[i+1:]...)
	return obj
}

// Length returns the number of members in the object.
func (obj *Object) Length() int {
	return len(obj.pairs)
}

// Range iterates over the object's members in insertion order. Range can
// take a set of functions matched by type. If the function returns a bool
// this is treated as a loop termination variable; if false the loop will
// terminate.
//
//	func(Pair) iterates over Pairs
//	func(Pair) bool
//	func(string, *Value) iterates over keys and values.
//	func(string, *Value) bool
//	func(string) iterates over only the keys
//	func(string) bool
//	func(*Value) iterates over only the values
//	func(*Value) bool
func (obj *Object) Range(fn interface{}) *Object {
	var f func(Pair) bool
	switch fun := fn.(type) {
	case func(Pair):
		f = func(p Pair) bool {
			fun(p)
			return true
		}
	case func(Pair) bool:
		f = fun
	case func(string, *Value):
		f = func(p Pair) bool {
			fun(p.key, p.value)
			return true
		}
	case func(string, *Value) bool:
		f = func(p Pair) bool {
			return fun(p.key, p.value)
		}
	case func(string):
		f = func(p Pair) bool {
			fun(p.key)
			return true
		}
	case func(string) bool:
		f = func(p Pair) bool {
			return fun(p.key)
		}
	case func(*Value):
		f = func(p Pair) bool {
			fun(p.value)
			return true
		}
	case func(*Value) bool:
		f = func(p Pair) bool {
			return fun(p.value)
		}
	default:
		panic("invalid range function")
	}
	for _, pair := range obj.pairs {
		if !f(pair) {
			break
		}
	}
	return obj
}

// toNative produces a go native map[string]interface{} from the object.
func (obj *Object) toNative() interface{} {
	out := make(map[string]interface{})
	obj.Range(func(assoc Pair) {
		out[assoc.Key()] = assoc.Value().ToNative()
	})
	return out
}

// deepCopy returns a fully independent copy of the object.
func (obj *Object) deepCopy() *Object {
	out := &Object{pairs: make([]Pair, len(obj.pairs))}
	for i, pair := range obj.pairs {
		out.pairs[i] = Pair{
			key:   pair.key,
			value: pair.value.deepCopy(),
		}
	}
	return out
}

// Equal implements equality for objects. An object is equal to another
// object if all their keys contain equal values; member order does not
// participate in equality. Equality checks are linear with respect to
// the number of keys.
func (obj *Object) Equal(other interface{}) bool {
	oo, isObject := other.(*Object)
	if !isObject || oo.Length() != obj.Length() {
		return false
	}
	for _, pair := range obj.pairs {
		v, ok := oo.Find(pair.key)
		if !ok || !equal(v, pair.value) {
			return false
		}
	}
	return true
}

// String returns the JSON representation of the Object.
func (obj *Object) String() string {
	data, _ := obj.MarshalJSON()
	return string(data)
}
