// Package resolve implements the cycle-resolution pass of a deep clone.
//
// What:
//
//	After the structural copy, a clone may still hold pointers to original
//	nodes: the copier leaves them wherever it meets a node it has already
//	registered (a back edge of a cycle, or a second edge into shared
//	sub-structure). Resolve walks the clone and rewrites each such stale
//	pointer into the clone that the reference map records for it.
//
// How:
//
//	For each entry of a snapshot of the container's entries:
//	  - primitive value          → skip
//	  - value is a RefMap key    → overwrite entry with RefMap[value]
//	  - value is a fresh clone   → skip if visited, else mark and recurse
//
//	The visited set only grows and recursion descends only into unvisited
//	clones, so the walk terminates on any finite graph and repairs each
//	reachable clone exactly once.
//
// Complexity:
//
//   - Time:   O(total entries of reachable clones).
//   - Memory: O(reachable clones) for the visited set and recursion.
//
// Errors:
//
//	None. Nil arguments are contract violations and panic.
package resolve
