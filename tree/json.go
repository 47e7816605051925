// Copyright (c) 2025, znzhao.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package tree

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// The wire format is a recursive JSON object of the shape
//
//	{"name": string, "content": <any JSON value or null>, "children": [...]}
//
// Encoding writes object members in insertion order and leaves
// non-ASCII characters literal. Decoding preserves content member
// order, defaults a missing content to null and missing children to
// none, and rejects a missing name.

// MarshalJSON returns the node and its subtree in the wire format.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	n.marshalJSON(&buf)
	return buf.Bytes(), nil
}

func (n *Node) marshalJSON(buf *bytes.Buffer) {
	buf.WriteString(`{"name":`)
	quoteString(buf, n.name)
	buf.WriteString(`,"content":`)
	n.content.marshalJSON(buf)
	buf.WriteString(`,"children":[`)
	for i, child := range n.children {
		if i > 0 {
			buf.WriteByte(',')
		}
		child.marshalJSON(buf)
	}
	buf.WriteString("]}")
}

// UnmarshalJSON fills out the node from the wire format, replacing any
// existing name, content, and children.
func (n *Node) UnmarshalJSON(msg []byte) error {
	var wire struct {
		Name     *string           `json:"name"`
		Content  json.RawMessage   `json:"content"`
		Children []json.RawMessage `json:"children"`
	}
	if err := json.Unmarshal(msg, &wire); err != nil {
		return err
	}
	if wire.Name == nil {
		return errors.New("node: missing name member")
	}
	n.name = *wire.Name
	n.content = ValueNew(nil)
	if len(wire.Content) != 0 {
		val := valueNew(nil)
		if err := val.UnmarshalJSON(wire.Content); err != nil {
			return err
		}
		n.content = val
	}
	n.children = nil
	for _, raw := range wire.Children {
		child := &Node{}
		if err := child.UnmarshalJSON(raw); err != nil {
			return err
		}
		n.AddChild(child)
	}
	return nil
}

// MarshalJSON returns the tree in the wire format.
func (t *Tree) MarshalJSON() ([]byte, error) {
	return t.root.MarshalJSON()
}

// UnmarshalJSON fills out the tree from the wire format. The result is
// a fresh node graph with no relationship to any prior in-memory tree.
func (t *Tree) UnmarshalJSON(msg []byte) error {
	root := &Node{}
	if err := root.UnmarshalJSON(msg); err != nil {
		return err
	}
	t.root = root
	return nil
}

// Save writes the tree to path as UTF-8 JSON with two-space
// indentation. The write is whole-file; on error nothing useful is
// recoverable from a partially written file.
func (t *Tree) Save(path string) error {
	data, err := t.MarshalJSON()
	if err != nil {
		return err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		return err
	}
	return os.WriteFile(path, out.Bytes(), 0644)
}

// TreeLoad reads a tree from the JSON file at path. File and decode
// errors propagate unmodified.
func TreeLoad(path string) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t := &Tree{}
	if err := t.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return t, nil
}

// MarshalJSON returns the value in its JSON form.
func (val *Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	val.marshalJSON(&buf)
	return buf.Bytes(), nil
}

func (val *Value) marshalJSON(buf *bytes.Buffer) {
	if val == nil || val.data == nil {
		buf.WriteString("null")
		return
	}
	switch d := val.data.(type) {
	case *Object:
		d.marshalJSON(buf)
	case *Array:
		d.marshalJSON(buf)
	case string:
		quoteString(buf, d)
	case bool:
		buf.WriteString(strconv.FormatBool(d))
	case int64:
		buf.WriteString(strconv.FormatInt(d, 10))
	case uint64:
		buf.WriteString(strconv.FormatUint(d, 10))
	case float64:
		buf.WriteString(strconv.FormatFloat(d, 'g', -1, 64))
	}
}

// UnmarshalJSON extracts a value from a JSON encoded message. Content
// object member order is preserved.
func (val *Value) UnmarshalJSON(msg []byte) error {
	dec := json.NewDecoder(bytes.NewReader(msg))
	dec.UseNumber()
	data, err := decodeValue(dec)
	if err != nil {
		return err
	}
	val.data = data
	return nil
}

// MarshalJSON returns the object in its JSON form.
func (obj *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	obj.marshalJSON(&buf)
	return buf.Bytes(), nil
}

func (obj *Object) marshalJSON(buf *bytes.Buffer) {
	buf.WriteByte('{')
	for i, pair := range obj.pairs {
		if i > 0 {
			buf.WriteByte(',')
		}
		quoteString(buf, pair.key)
		buf.WriteByte(':')
		pair.value.marshalJSON(buf)
	}
	buf.WriteByte('}')
}

// MarshalJSON returns the array in its JSON form.
func (arr *Array) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	arr.marshalJSON(&buf)
	return buf.Bytes(), nil
}

func (arr *Array) marshalJSON(buf *bytes.Buffer) {
	buf.WriteByte('[')
	for i, item := range arr.items {
		if i > 0 {
			buf.WriteByte(',')
		}
		item.marshalJSON(buf)
	}
	buf.WriteByte(']')
}

func decodeValue(dec *json.Decoder) (interface{}, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (interface{}, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := objectNew()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key := keyTok.(string)
				v, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				obj.Assoc(key, &Value{data: v})
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return obj, nil
		case '[':
			arr := arrayNew()
			for dec.More() {
				v, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				arr.Append(&Value{data: v})
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v", t)
	case string:
		return t, nil
	case bool:
		return t, nil
	case json.Number:
		return decodeNumber(t)
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

// decodeNumber applies the same normalization as ValueNew: integral
// non-negative numbers decode as uint64, integral negative numbers as
// int64, and everything else as float64, so decoded values compare
// equal to natively built ones.
func decodeNumber(num json.Number) (interface{}, error) {
	s := num.String()
	if !strings.ContainsAny(s, ".eE") {
		if strings.HasPrefix(s, "-") {
			if i, err := strconv.ParseInt(s, 10, 64); err == nil {
				return i, nil
			}
		} else {
			if u, err := strconv.ParseUint(s, 10, 64); err == nil {
				return u, nil
			}
		}
	}
	return num.Float64()
}

// quoteString writes s as a JSON string. Only the quote, the backslash,
// and control characters are escaped; non-ASCII characters are written
// literally so the output stays readable UTF-8.
func quoteString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(buf, `\u%04x`, r)
				continue
			}
			buf.WriteRune(r)
		}
	}
	buf.WriteByte('"')
}
