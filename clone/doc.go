// Package clone deep-copies container graphs, keeping cycles and shared
// sub-structures intact.
//
// A clone runs in two passes over one fresh track.RefMap:
//
//  1. Copy. Each original container gets its clone registered in the
//     reference map before its children are copied. A child that is already
//     registered is a back edge or a second edge into shared structure; by
//     default the copier leaves the original pointer in place (a stale
//     entry) instead of looking it up.
//  2. Repair. resolve.Resolve walks the copied root once with a fresh
//     visited set and rewrites every stale entry to the registered clone.
//
// With WithEagerLinks(true) the copier writes the registered clone directly
// and the repair pass finds nothing to rewrite.
//
// Primitives (any value that is not a non-nil *container.Node) are copied by
// assignment. Keys are copied by assignment, never cloned.
//
// Errors:
//
//   - ErrNilRoot  CloneNode called with a nil root.
//   - wrapped track/container errors if the reference map or a node rejects
//     an insert (only possible if the graph is mutated while it is cloned).
package clone
