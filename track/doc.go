// Package track holds the per-clone bookkeeping shared by the copier and the
// cycle resolver.
//
//   - RefMap: original node -> clone node. Filled by the copier when it
//     creates each clone, before descending into the original's children.
//     It is a partial injective function: one entry per original, and no
//     clone is the image of two originals.
//   - VisitedSet: clone nodes already repaired by the resolver.
//
// Both are keyed by *container.Node identity and live for exactly one clone
// operation. Neither is safe for concurrent use.
package track
