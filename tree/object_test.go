// Copyright (c) 2025, znzhao.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package tree

import (
	"strconv"
	"testing"
)

func TestObjectCollectionSemantics(t *testing.T) {
	cons := func(sz int) *Object {
		out := ObjectNew()
		for i := 0; i < sz; i++ {
			out.Assoc(strconv.Itoa(i), i)
		}
		return out
	}
	t.Run("At/coll.Assoc(X,Y);coll.At(X)==Y", func(t *testing.T) {
		coll := cons(1).Assoc("0", 10)
		got := coll.At("0")
		assert(equal(got, ValueNew(10)), func() {
			t.Fatalf("expected %v, got %v\n", 10, got)
		})
	})
	t.Run("At of missing key is nil", func(t *testing.T) {
		got := cons(1).At("missing")
		assert(got == nil, func() {
			t.Fatalf("expected nil, got %v\n", got)
		})
	})
	t.Run("Find", func(t *testing.T) {
		_, ok := cons(2).Find("1")
		assert(ok, func() {
			t.Fatal("expected key to be found")
		})
	})
	t.Run("Length/sz:=coll.Length();coll.Assoc(X);coll.Length()==sz+1",
		func(t *testing.T) {
			coll := cons(0)
			sz := coll.Length()
			coll.Assoc("1", 1)
			assert(coll.Length() == sz+1, func() {
				t.Fatalf("expected %v, got %v\n", sz+1,
					coll.Length())
			})
		})
	t.Run("Delete", func(t *testing.T) {
		sz := cons(2).Delete("1").Length()
		assert(sz == 1, func() {
			t.Fatalf("expected %v, got %v\n", 1, sz)
		})
	})
	t.Run("Delete non-existent", func(t *testing.T) {
		sz := cons(2).Delete("4").Length()
		assert(sz == 2, func() {
			t.Fatalf("expected %v, got %v\n", 2, sz)
		})
	})
}

func TestObjectOrder(t *testing.T) {
	t.Run("members keep insertion order", func(t *testing.T) {
		obj := ObjectNew().
			Assoc("z", 1).
			Assoc("a", 2)
		got := obj.String()
		assert(got == `{"z":1,"a":2}`, func() {
			t.Fatalf("expected %v, got %v\n",
				`{"z":1,"a":2}`, got)
		})
	})
	t.Run("Assoc of existing key keeps position", func(t *testing.T) {
		obj := ObjectNew().
			Assoc("z", 1).
			Assoc("a", 2).
			Assoc("z", 3)
		got := obj.String()
		assert(got == `{"z":3,"a":2}`, func() {
			t.Fatalf("expected %v, got %v\n",
				`{"z":3,"a":2}`, got)
		})
	})
	t.Run("ObjectFrom sorts map keys", func(t *testing.T) {
		obj := ObjectFrom(map[string]interface{}{
			"b": 1, "a": 2, "c": 3,
		})
		got := obj.String()
		assert(got == `{"a":2,"b":1,"c":3}`, func() {
			t.Fatalf("expected %v, got %v\n",
				`{"a":2,"b":1,"c":3}`, got)
		})
	})
}

func TestObjectRange(t *testing.T) {
	obj := ObjectWith(
		PairNew("1", 1),
		PairNew("2", 2),
		PairNew("3", 3))
	t.Run("pairs", func(t *testing.T) {
		obj.Range(func(assoc Pair) {
			if assoc.Key() != strconv.Itoa(int(assoc.Value().AsInt64())) {
				t.Fatal("key and value should match")
			}
		})
	})
	t.Run("values with termination", func(t *testing.T) {
		count := 0
		obj.Range(func(val *Value) bool {
			count++
			return count < 2
		})
		assert(count == 2, func() {
			t.Fatalf("expected %v, got %v\n", 2, count)
		})
	})
	t.Run("invalid function panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("expected a panic")
			}
		}()
		obj.Range(func(i int) {})
	})
}

func TestObjectEqual(t *testing.T) {
	t.Run("order does not participate", func(t *testing.T) {
		o1 := ObjectNew().Assoc("a", 1).Assoc("b", 2)
		o2 := ObjectNew().Assoc("b", 2).Assoc("a", 1)
		assert(o1.Equal(o2), func() {
			t.Fatal("expected objects to be equal")
		})
	})
	t.Run("different values", func(t *testing.T) {
		o1 := ObjectNew().Assoc("a", 1)
		o2 := ObjectNew().Assoc("a", 2)
		assert(!o1.Equal(o2), func() {
			t.Fatal("expected objects to differ")
		})
	})
}
