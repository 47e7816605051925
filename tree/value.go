// Copyright (c) 2025, znzhao.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package tree

import (
	"errors"
	"reflect"
	"strconv"

	"jsouthworth.net/go/dyn"
)

// ValueNew turns a native go value into a Value as long as the type can
// be represented in the JSON data model. ValueNew will panic if the value
// is not a representable type.
func ValueNew(data interface{}) *Value {
	return valueNew(data)
}

func valueNew(data interface{}) *Value {
	if data == nil {
		return &Value{data: nil}
	}
	switch d := data.(type) {
	case *Value:
		return d
	case *Object, *Array:
	case int:
		data = inferInt64Type(int64(d))
	case int8:
		data = inferInt64Type(int64(d))
	case int16:
		data = inferInt64Type(int64(d))
	case int32:
		data = inferInt64Type(int64(d))
	case int64:
		data = inferInt64Type(d)
	case uint:
		data = uint64(d)
	case uint8:
		data = uint64(d)
	case uint16:
		data = uint64(d)
	case uint32:
		data = uint64(d)
	case uint64:
	case float32:
		data = float64(d)
	case float64:
	case bool:
	case string:
	case map[string]interface{}:
		data = ObjectFrom(d)
	case []interface{}:
		data = ArrayFrom(d)
	default:
		panic(errors.New("cannot create value, invalid type"))
	}
	return &Value{
		data: data,
	}
}

// Value holds a node's content. Values may be *Object, *Array, int64,
// uint64, float64, string, bool, or nil. All integer types narrower than
// 64 bits are widened when creating a value; non-negative integers are
// stored as uint64 so that values built natively and values decoded from
// JSON always compare equal.
type Value struct {
	data interface{}
}

var valType = reflect.TypeOf((*Value)(nil))
var interfaceType = reflect.TypeOf((*interface{})(nil)).Elem()

// Perform allows one to match the type of the Value with a behavior
// to perform on that type without resorting to the assertion
// operations. Think of this as the switch v.(type) { ... } analogue for
// content values. It takes a list of func(v vT) oT functions and applies
// the first match to the value.
//
// If vT above is *Value or interface{} it matches all value types. If
// the value is a numeric type and the numeric type is convertible to vT
// then that is considered a match and the conversion is applied first;
// only int64 <-> uint64 is supported and only if the value fits.
func (val *Value) Perform(fns ...interface{}) interface{} {
	if val == nil {
		return nil
	}
	vty := reflect.TypeOf(val.data)
	var action interface{}
	arg := val.data
	for _, fn := range fns {
		if action != nil {
			break
		}
		fnty := reflect.TypeOf(fn)
		if fnty.NumIn() != 1 {
			continue
		}
		inputType := fnty.In(0)
		switch {
		case vty == nil:
			if inputType == interfaceType {
				action = fn
			}
		case inputType == valType:
			arg = val
			action = fn
		case vty.AssignableTo(inputType):
			action = fn
		case canConvertNumeric(vty, inputType, arg):
			arg = convertNumeric(arg, inputType)
			action = fn
		}
	}
	if action == nil {
		return nil
	}
	return dyn.Apply(action, arg)
}

var int64Type = reflect.TypeOf(int64(0))
var uint64Type = reflect.TypeOf(uint64(0))
var float64Type = reflect.TypeOf(float64(0))

func canConvertNumeric(from, to reflect.Type, v interface{}) bool {
	// This is a specific subset of what (reflect.Value).Convert allows;
	// signed and unsigned integers are stored as distinct types but we
	// may not know which the caller wants, so allow the lossless
	// conversions between them.
	if from == to {
		return true
	}
	switch from {
	case int64Type:
		return to == uint64Type && v.(int64) >= 0
	case uint64Type:
		return to == int64Type && v.(uint64) <= (1<<63)-1
	}
	return false
}

func convertNumeric(from interface{}, to reflect.Type) interface{} {
	return reflect.ValueOf(from).
		Convert(to).
		Interface()
}

func inferInt64Type(v int64) interface{} {
	if v >= 0 {
		return uint64(v)
	}
	return v
}

// ToTree returns a *Tree rooted at a fresh node carrying this value as
// its content.
func (val *Value) ToTree(name string) *Tree {
	return TreeNew(NodeNew(name, val))
}

// AsObject returns an *Object if the value is an Object and panics otherwise.
func (val *Value) AsObject() *Object {
	return val.data.(*Object)
}

// IsObject returns if the data stored in the value is an Object.
func (val *Value) IsObject() bool {
	_, isObject := val.data.(*Object)
	return isObject
}

// ToObject returns an *Object and allows the user to define a
// default. The value (*Object)(nil) is returned if no default is defined
// and the value is not an *Object.
func (val *Value) ToObject(defaultVal ...*Object) *Object {
	o, isObject := val.data.(*Object)
	if isObject {
		return o
	}
	if len(defaultVal) != 0 {
		return defaultVal[0]
	}
	return nil
}

// AsArray returns an *Array if the value is an Array and panics otherwise.
func (val *Value) AsArray() *Array {
	return val.data.(*Array)
}

// IsArray returns if the data stored in the value is an Array.
func (val *Value) IsArray() bool {
	_, isArray := val.data.(*Array)
	return isArray
}

// ToArray returns an *Array and allows the user to define a
// default. The value (*Array)(nil) is returned if no default is defined
// and the value is not an *Array.
func (val *Value) ToArray(defaultVal ...*Array) *Array {
	arr, isArray := val.data.(*Array)
	if isArray {
		return arr
	}
	if len(defaultVal) != 0 {
		return defaultVal[0]
	}
	return nil
}

// AsString returns a string if the value is a string and panics otherwise.
func (val *Value) AsString() string {
	return val.data.(string)
}

// IsString returns if the data stored in the value is a string.
func (val *Value) IsString() bool {
	_, isString := val.data.(string)
	return isString
}

// ToString returns a string and allows the user to define a
// default. The value "" is returned if no default is defined
// and the value is not a string.
func (val *Value) ToString(defaultVal ...string) string {
	s, isString := val.data.(string)
	if isString {
		return s
	}
	if len(defaultVal) != 0 {
		return defaultVal[0]
	}
	return ""
}

func convertToInt64(v interface{}) int64 {
	return reflect.ValueOf(v).
		Convert(int64Type).
		Interface().(int64)
}

// AsInt64 returns an int64 if the type is convertible to int64 and panics
// otherwise.
func (val *Value) AsInt64() int64 {
	return convertToInt64(val.data)
}

// IsInt64 returns if the value is representable as an int64.
func (val *Value) IsInt64() bool {
	return canConvertNumeric(reflect.TypeOf(val.data),
		int64Type, val.data)
}

// ToInt64 returns an int64 if the type is convertible to int64 and returns
// the user supplied default or 0 otherwise.
func (val *Value) ToInt64(defaultVal ...int64) int64 {
	if val.data != nil &&
		reflect.TypeOf(val.data).ConvertibleTo(int64Type) {
		return convertToInt64(val.data)
	}
	if len(defaultVal) != 0 {
		return defaultVal[0]
	}
	return 0
}

func convertToUint64(v interface{}) uint64 {
	return reflect.ValueOf(v).
		Convert(uint64Type).
		Interface().(uint64)
}

// AsUint64 returns a uint64 if the type is convertible to uint64 and panics
// otherwise.
func (val *Value) AsUint64() uint64 {
	return convertToUint64(val.data)
}

// IsUint64 returns if the value is representable as a uint64.
func (val *Value) IsUint64() bool {
	return canConvertNumeric(reflect.TypeOf(val.data),
		uint64Type, val.data)
}

// ToUint64 returns a uint64 if the type is convertible to uint64 and returns
// the user supplied default or 0 otherwise.
func (val *Value) ToUint64(defaultVal ...uint64) uint64 {
	if val.data != nil &&
		reflect.TypeOf(val.data).ConvertibleTo(uint64Type) {
		return convertToUint64(val.data)
	}
	if len(defaultVal) != 0 {
		return defaultVal[0]
	}
	return 0
}

func convertToFloat(v interface{}) float64 {
	return reflect.ValueOf(v).
		Convert(float64Type).
		Interface().(float64)
}

// AsFloat returns a float64 if the type is convertible to float64 and panics
// otherwise.
func (val *Value) AsFloat() float64 {
	return convertToFloat(val.data)
}

// IsFloat returns if the value is a float.
func (val *Value) IsFloat() bool {
	_, isFloat := val.data.(float64)
	return isFloat
}

// ToFloat returns a float64 if the type is convertible to float64 and returns
// the user supplied default or 0 otherwise.
func (val *Value) ToFloat(defaultVal ...float64) float64 {
	if val.data != nil &&
		reflect.TypeOf(val.data).ConvertibleTo(float64Type) {
		return convertToFloat(val.data)
	}
	if len(defaultVal) != 0 {
		return defaultVal[0]
	}
	return 0
}

// AsBoolean returns a bool if the value is a bool and panics otherwise.
func (val *Value) AsBoolean() bool {
	return val.data.(bool)
}

// IsBoolean returns if the value is a bool.
func (val *Value) IsBoolean() bool {
	_, isBoolean := val.data.(bool)
	return isBoolean
}

// ToBoolean returns a bool if the value is a bool and returns the user
// supplied default or false otherwise.
func (val *Value) ToBoolean(defaultVal ...bool) bool {
	b, isBool := val.data.(bool)
	if isBool {
		return b
	}
	if len(defaultVal) != 0 {
		return defaultVal[0]
	}
	return false
}

// IsNull returns whether the value's data is nil.
func (val *Value) IsNull() bool {
	return val.data == nil
}

// ToInterface returns the held data directly as a native interface.
// Caution should be used as the integer types may not be the same as
// the type that was passed into the value due to the way they are
// stored internally; all non-negative integers are stored as uint64.
func (val *Value) ToInterface() interface{} {
	return val.data
}

// ToNative converts a value to a go native type. Objects become
// map[string]interface{} and Arrays become []interface{} recursively.
// The integer caveat from ToInterface applies here as well.
func (val *Value) ToNative() interface{} {
	switch v := val.data.(type) {
	case interface {
		toNative() interface{}
	}:
		return v.toNative()
	default:
		return val.data
	}
}

// deepCopy returns a fully independent copy of the value. Scalars are
// immutable and shared; Objects and Arrays are copied recursively.
func (val *Value) deepCopy() *Value {
	if val == nil {
		return nil
	}
	switch v := val.data.(type) {
	case *Object:
		return &Value{data: v.deepCopy()}
	case *Array:
		return &Value{data: v.deepCopy()}
	default:
		return &Value{data: val.data}
	}
}

// Equal provides an implementation of Equality for Value types.
func (val *Value) Equal(other interface{}) bool {
	if other == nil {
		return val == nil
	}
	ov, isValue := other.(*Value)
	if !isValue {
		return false
	}
	if val == nil || ov == nil {
		return val == ov
	}
	return equal(val.data, ov.data)
}

// Compare provides an implementation of Comparison for Value types.
func (val *Value) Compare(other interface{}) int {
	return dyn.Compare(val.data, other.(*Value).data)
}

// String returns a go string representation of the Value. Strings are
// returned bare, everything else renders in its JSON form.
func (val *Value) String() string {
	if val == nil || val.data == nil {
		return "null"
	}
	switch d := val.data.(type) {
	case *Object:
		return d.String()
	case *Array:
		return d.String()
	case string:
		return d
	case bool:
		return strconv.FormatBool(d)
	case int64:
		return strconv.FormatInt(d, 10)
	case uint64:
		return strconv.FormatUint(d, 10)
	case float64:
		return strconv.FormatFloat(d, 'g', -1, 64)
	default:
		return ""
	}
}

func equal(v1, v2 interface{}) bool {
	return dyn.Equal(v1, v2)
}
