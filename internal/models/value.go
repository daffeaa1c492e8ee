package models

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Kind discriminates the active variant of a Value.
type Kind int

const (
	KindBoolean Kind = iota
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "unknown"
}

// Value is a JSON value. Exactly one variant's payload is meaningful;
// readers must dispatch on Kind before touching a payload.
//
// Values are shareable references: the same *Value may appear in several
// arrays or objects, and the codec never mutates a tree it is handed.
// Callers that want an exclusively owned tree take a Clone.
type Value struct {
	kind    Kind
	boolean bool
	number  float64
	text    string
	items   []*Value
	members *OrderedMap
}

// Boolean returns a new boolean value.
func Boolean(b bool) *Value {
	return &Value{kind: KindBoolean, boolean: b}
}

// Number returns a new number value.
func Number(n float64) *Value {
	return &Value{kind: KindNumber, number: n}
}

// String returns a new string value.
func String(s string) *Value {
	return &Value{kind: KindString, text: s}
}

// Array returns a new array value holding the given items in order.
func Array(items ...*Value) *Value {
	return &Value{kind: KindArray, items: items}
}

// Object returns a new object value backed by members. A nil members
// map yields an empty object.
func Object(members *OrderedMap) *Value {
	if members == nil {
		members = NewOrderedMap()
	}
	return &Value{kind: KindObject, members: members}
}

// Kind returns the active variant.
func (v *Value) Kind() Kind { return v.kind }

// Bool returns the boolean payload. Meaningful only for KindBoolean.
func (v *Value) Bool() bool { return v.boolean }

// Float returns the number payload. Meaningful only for KindNumber.
func (v *Value) Float() float64 { return v.number }

// Text returns the string payload. Meaningful only for KindString.
func (v *Value) Text() string { return v.text }

// Items returns the array payload. Meaningful only for KindArray.
func (v *Value) Items() []*Value { return v.items }

// Map returns the object payload. Meaningful only for KindObject.
func (v *Value) Map() *OrderedMap { return v.members }

// Append adds items to the end of an array value. Panics if v is not an
// array; appending to another variant is a programming error, not a
// runtime condition.
func (v *Value) Append(items ...*Value) {
	if v.kind != KindArray {
		panic(fmt.Sprintf("models: Append on %s value", v.kind))
	}
	v.items = append(v.items, items...)
}

// Set inserts or overwrites a member of an object value. Panics if v is
// not an object.
func (v *Value) Set(key string, val *Value) {
	if v.kind != KindObject {
		panic(fmt.Sprintf("models: Set on %s value", v.kind))
	}
	v.members.Set(key, val)
}

// Clone returns a deep copy sharing no nodes with v.
func (v *Value) Clone() *Value {
	switch v.kind {
	case KindArray:
		items := make([]*Value, len(v.items))
		for i, item := range v.items {
			items[i] = item.Clone()
		}
		return Array(items...)
	case KindObject:
		return Object(v.members.Clone())
	default:
		c := *v
		return &c
	}
}

// Equal reports whether v and o are structurally equal: same kinds, same
// payloads, same member order.
func (v *Value) Equal(o *Value) bool {
	if v == nil || o == nil {
		return v == o
	}
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindBoolean:
		return v.boolean == o.boolean
	case KindNumber:
		return v.number == o.number
	case KindString:
		return v.text == o.text
	case KindArray:
		if len(v.items) != len(o.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(o.items[i]) {
				return false
			}
		}
		return true
	case KindObject:
		return v.members.Equal(o.members)
	}
	return false
}

// MarshalJSON renders v as strict, escaped, compact JSON. This is the
// standards-conformant bridge; the pretty encoder deliberately is not.
func (v *Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindBoolean:
		return json.Marshal(v.boolean)
	case KindNumber:
		return json.Marshal(v.number)
	case KindString:
		return json.Marshal(v.text)
	case KindArray:
		if v.items == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.items)
	case KindObject:
		return v.members.MarshalJSON()
	}
	return nil, fmt.Errorf("models: cannot marshal value of kind %d", int(v.kind))
}
