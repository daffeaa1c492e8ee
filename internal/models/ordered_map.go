package models

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// Member is one key/value pair of an object.
type Member struct {
	Key   string
	Value *Value
}

// OrderedMap is an insertion-ordered, key-unique association of object
// members. Iteration order equals first-insertion order; re-inserting an
// existing key overwrites the value in place, keeping the key's original
// position. Lookup is a linear scan, which is fine for the small objects
// this codec sees and a known limit for anything bigger.
type OrderedMap struct {
	members []Member
}

// NewOrderedMap returns an empty map.
func NewOrderedMap() *OrderedMap {
	return &OrderedMap{}
}

// Len returns the number of members.
func (m *OrderedMap) Len() int {
	return len(m.members)
}

// Has reports whether key is present.
func (m *OrderedMap) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Get returns the value stored under key.
func (m *OrderedMap) Get(key string) (*Value, bool) {
	for _, e := range m.members {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Set inserts key at the end, or overwrites it in place if present.
func (m *OrderedMap) Set(key string, v *Value) {
	for i := range m.members {
		if m.members[i].Key == key {
			m.members[i].Value = v
			return
		}
	}
	m.members = append(m.members, Member{Key: key, Value: v})
}

// Members returns the members in insertion order. The slice is the
// map's backing storage; callers must not reorder it.
func (m *OrderedMap) Members() []Member {
	return m.members
}

// Keys returns the keys in insertion order.
func (m *OrderedMap) Keys() []string {
	keys := make([]string, len(m.members))
	for i, e := range m.members {
		keys[i] = e.Key
	}
	return keys
}

// Clone returns a deep copy sharing no nodes with m.
func (m *OrderedMap) Clone() *OrderedMap {
	c := &OrderedMap{members: make([]Member, len(m.members))}
	for i, e := range m.members {
		c.members[i] = Member{Key: e.Key, Value: e.Value.Clone()}
	}
	return c
}

// Equal reports whether m and o hold equal members in the same order.
func (m *OrderedMap) Equal(o *OrderedMap) bool {
	if m == nil || o == nil {
		return m == o
	}
	if len(m.members) != len(o.members) {
		return false
	}
	for i := range m.members {
		if m.members[i].Key != o.members[i].Key {
			return false
		}
		if !m.members[i].Value.Equal(o.members[i].Value) {
			return false
		}
	}
	return true
}

// MarshalJSON renders the members as a compact JSON object, preserving
// insertion order. Keys and values go through the strict marshaler, so
// this path escapes where the pretty encoder does not.
func (m *OrderedMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m.members {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
