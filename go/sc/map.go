// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package sc

import (
	"bytes"
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Map is an insertion-ordered mapping of unique string keys to raw byte
// values. It is the untyped storage behind the state, the parameters, and
// the results of an invocation. Values are copied on the way in and on the
// way out, so no caller ever aliases the map's storage.
//
// A Map is not safe for concurrent use.
type Map struct {
	data     *mapData
	readOnly bool
}

type mapData struct {
	keys   []string
	values map[string][]byte
}

// NewMap creates an empty, writable map.
func NewMap() *Map {
	return &Map{data: &mapData{values: map[string][]byte{}}}
}

// Get returns a copy of the value stored under the given key and whether
// the key is present.
func (m *Map) Get(key string) ([]byte, bool) {
	value, found := m.data.values[key]
	if !found {
		return nil, false
	}
	return slices.Clone(value), true
}

// Has reports whether the key is present.
func (m *Map) Has(key string) bool {
	_, found := m.data.values[key]
	return found
}

// Set stores a copy of value under key. A new key is appended to the key
// order, an existing key keeps its position. Setting a key on a read-only
// map panics with ErrReadOnly.
func (m *Map) Set(key string, value []byte) {
	m.mustBeWritable(key)
	if _, found := m.data.values[key]; !found {
		m.data.keys = append(m.data.keys, key)
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	m.data.values[key] = stored
}

// Delete removes the key. Deleting a missing key is a no-op.
func (m *Map) Delete(key string) {
	m.mustBeWritable(key)
	if _, found := m.data.values[key]; !found {
		return
	}
	delete(m.data.values, key)
	m.data.keys = slices.DeleteFunc(m.data.keys, func(k string) bool { return k == key })
}

// Keys returns the keys of the map in insertion order.
func (m *Map) Keys() []string {
	return slices.Clone(m.data.keys)
}

// Len returns the number of keys in the map.
func (m *Map) Len() int {
	return len(m.data.keys)
}

// Clone creates a writable deep copy of the map.
func (m *Map) Clone() *Map {
	values := maps.Clone(m.data.values)
	for key, value := range values {
		values[key] = slices.Clone(value)
	}
	return &Map{data: &mapData{
		keys:   slices.Clone(m.data.keys),
		values: values,
	}}
}

// Restore replaces the content of the map by a copy of the given map's
// content. Views created by ReadOnly observe the restored content.
func (m *Map) Restore(snapshot *Map) {
	m.mustBeWritable("*")
	clone := snapshot.Clone()
	*m.data = *clone.data
}

// ReadOnly returns a view of the map sharing its storage. Mutations of the
// underlying map are visible through the view, while any attempt to mutate
// the view panics with ErrReadOnly.
func (m *Map) ReadOnly() *Map {
	return &Map{data: m.data, readOnly: true}
}

// IsReadOnly reports whether the map rejects mutations.
func (m *Map) IsReadOnly() bool {
	return m.readOnly
}

// Equal reports whether both maps hold the same keys in the same order
// with the same values.
func (m *Map) Equal(other *Map) bool {
	if !slices.Equal(m.data.keys, other.data.keys) {
		return false
	}
	return maps.EqualFunc(m.data.values, other.data.values, bytes.Equal)
}

func (m *Map) String() string {
	res := "{"
	for i, key := range m.data.keys {
		if i > 0 {
			res += ", "
		}
		res += fmt.Sprintf("%s: 0x%x", key, m.data.values[key])
	}
	return res + "}"
}

func (m *Map) mustBeWritable(key string) {
	if m.readOnly {
		panic(fmt.Errorf("%w: cannot modify key %s", ErrReadOnly, key))
	}
}
