// SPDX-License-Identifier: MIT

package container

import (
	"fmt"
	"reflect"
)

// Kind returns the node kind fixed at construction.
func (n *Node) Kind() Kind { return n.kind }

// Len returns the number of entries.
// Complexity: O(1)
func (n *Node) Len() int { return len(n.entries) }

// Get returns the value stored under key and whether it exists.
// Complexity: O(1)
func (n *Node) Get(key any) (any, bool) {
	i, ok := n.slot(key)
	if !ok {
		return nil, false
	}

	return n.entries[i].Value, true
}

// Has reports whether key exists.
func (n *Node) Has(key any) bool {
	_, ok := n.slot(key)
	return ok
}

// Set inserts value under key, or overwrites the existing value in place
// (keeping the entry's position).
//
// Errors:
//   - ErrKeyType if key is not a string (Object), int (Array) or is nil (Map).
//   - ErrIndexOutOfRange if an Array index is outside 0..Len().
//   - ErrKeyNotComparable if a Map key cannot be hashed.
//
// Complexity: O(1) amortized.
func (n *Node) Set(key any, value any) error {
	if err := n.checkKey(key); err != nil {
		return err
	}
	if n.kind == Array {
		i := key.(int)
		if i == len(n.entries) {
			n.entries = append(n.entries, Entry{Key: i, Value: value})
			return nil
		}
		n.entries[i].Value = value

		return nil
	}
	if i, ok := n.index[key]; ok {
		n.entries[i].Value = value
		return nil
	}
	n.index[key] = len(n.entries)
	n.entries = append(n.entries, Entry{Key: key, Value: value})

	return nil
}

// Append adds value at index Len() of an Array.
func (n *Node) Append(value any) error {
	if n.kind != Array {
		return ErrNotArray
	}
	n.entries = append(n.entries, Entry{Key: len(n.entries), Value: value})

	return nil
}

// Swap overwrites the value of an existing key and returns the previous
// value. It never inserts: ok is false when key is absent, and the node is
// left untouched.
// Complexity: O(1)
func (n *Node) Swap(key any, value any) (old any, ok bool) {
	i, ok := n.slot(key)
	if !ok {
		return nil, false
	}
	old = n.entries[i].Value
	n.entries[i].Value = value

	return old, true
}

// Delete removes key from an Object or Map, preserving the order of the
// remaining entries. Arrays are dense, so Delete on an Array returns false.
// Complexity: O(Len)
func (n *Node) Delete(key any) bool {
	if n.kind == Array {
		return false
	}
	i, ok := n.slot(key)
	if !ok {
		return false
	}
	delete(n.index, key)
	n.entries = append(n.entries[:i], n.entries[i+1:]...)
	for j := i; j < len(n.entries); j++ {
		n.index[n.entries[j].Key] = j
	}

	return true
}

// Keys returns the keys in entry order.
func (n *Node) Keys() []any {
	keys := make([]any, len(n.entries))
	for i, e := range n.entries {
		keys[i] = e.Key
	}

	return keys
}

// Entries returns a snapshot of the entries in order. The returned slice is
// owned by the caller: later mutations of n do not change it, and changing
// it does not touch n.
// Complexity: O(Len)
func (n *Node) Entries() []Entry {
	out := make([]Entry, len(n.entries))
	copy(out, n.entries)

	return out
}

// Range calls fn for each entry of a snapshot taken on entry, in order,
// until fn returns false.
func (n *Node) Range(fn func(key, value any) bool) {
	for _, e := range n.Entries() {
		if !fn(e.Key, e.Value) {
			return
		}
	}
}

// String renders a shallow, identity-free summary, e.g. "object(3)".
func (n *Node) String() string {
	return fmt.Sprintf("%s(%d)", n.kind, len(n.entries))
}

// slot resolves key to its position in entries.
func (n *Node) slot(key any) (int, bool) {
	if n.kind == Array {
		i, ok := key.(int)
		if !ok || i < 0 || i >= len(n.entries) {
			return 0, false
		}

		return i, true
	}
	if key == nil || !reflect.ValueOf(key).Comparable() {
		return 0, false
	}
	i, ok := n.index[key]

	return i, ok
}

// checkKey validates key against the node kind before any mutation.
func (n *Node) checkKey(key any) error {
	switch n.kind {
	case Object:
		if _, ok := key.(string); !ok {
			return fmt.Errorf("%w: %s wants string, got %T", ErrKeyType, n.kind, key)
		}
	case Array:
		i, ok := key.(int)
		if !ok {
			return fmt.Errorf("%w: %s wants int, got %T", ErrKeyType, n.kind, key)
		}
		if i < 0 || i > len(n.entries) {
			return fmt.Errorf("%w: %d not in [0,%d]", ErrIndexOutOfRange, i, len(n.entries))
		}
	default:
		if key == nil {
			return fmt.Errorf("%w: %s key is nil", ErrKeyType, n.kind)
		}
		if !reflect.ValueOf(key).Comparable() {
			return fmt.Errorf("%w: %T", ErrKeyNotComparable, key)
		}
	}

	return nil
}
