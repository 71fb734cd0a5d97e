// SPDX-License-Identifier: MIT

package container

import "errors"

// Sentinel errors for container mutation.
var (
	// ErrKeyType indicates a key whose Go type does not match the node kind
	// (string for Object, int for Array, non-nil for Map).
	ErrKeyType = errors.New("container: key type does not match node kind")

	// ErrKeyNotComparable indicates a Map key that cannot be hashed.
	ErrKeyNotComparable = errors.New("container: key is not comparable")

	// ErrIndexOutOfRange indicates an Array index outside 0..Len().
	ErrIndexOutOfRange = errors.New("container: array index out of range")

	// ErrNotArray indicates Append was called on an Object or Map.
	ErrNotArray = errors.New("container: node is not an array")
)

// Kind selects the key discipline of a Node.
type Kind uint8

const (
	Object Kind = iota // string keys, insertion ordered
	Array              // dense int keys
	Map                // arbitrary comparable keys, insertion ordered
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case Object:
		return "object"
	case Array:
		return "array"
	case Map:
		return "map"
	default:
		return "unknown"
	}
}

// Entry is one key/value pair of a Node.
type Entry struct {
	Key   any
	Value any
}

// Node is a container: an ordered set of entries whose values are either
// nested *Node containers or primitives.
//
// entries keeps insertion order; index maps a key to its slot in entries.
// Arrays do not use index, their key is the slot itself.
type Node struct {
	kind    Kind
	entries []Entry
	index   map[any]int
}

// New returns an empty Node of the given kind.
// Complexity: O(1)
func New(kind Kind) *Node {
	n := &Node{kind: kind}
	if kind != Array {
		n.index = make(map[any]int)
	}

	return n
}

// NewObject returns an empty Object node.
func NewObject() *Node { return New(Object) }

// NewArray returns an empty Array node.
func NewArray() *Node { return New(Array) }

// NewMap returns an empty Map node.
func NewMap() *Node { return New(Map) }

// AsNode reports whether v is a container and returns it.
// A nil *Node is not a container.
func AsNode(v any) (*Node, bool) {
	n, ok := v.(*Node)
	if !ok || n == nil {
		return nil, false
	}

	return n, true
}
