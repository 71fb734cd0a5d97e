// Package container defines Node, the composite value that graphclone copies,
// repairs and inspects.
//
// A Node holds an ordered list of key/value entries. Its identity is its
// pointer: two nodes are the same node only when they are the same *Node,
// never because their entries compare equal. This is what lets the cloning
// layers key their bookkeeping by node and keep cycles and shared
// sub-structures intact.
//
// Kinds:
//
//   - Object: string keys, insertion ordered.
//   - Array:  int keys 0..Len()-1, Set(Len(), v) appends.
//   - Map:    any comparable key, insertion ordered.
//
// Values:
//
//	A value is a container iff it is a non-nil *Node (see AsNode).
//	Everything else is a primitive and is copied by assignment.
//
// Errors:
//
//   - ErrKeyType           key has the wrong Go type for the node kind.
//   - ErrKeyNotComparable  key cannot be used as a map key.
//   - ErrIndexOutOfRange   array index outside 0..Len().
//   - ErrNotArray          Append on a non-array node.
//
// Concurrency:
//
//	Node is not safe for concurrent mutation. Entries and Range work on a
//	snapshot, so a caller may mutate the node while iterating the result.
package container
