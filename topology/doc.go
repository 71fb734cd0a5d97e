// Package topology inspects container graphs by node identity: depth-first
// walks, cycle and sharing detection, and structural comparison of two
// graphs.
//
// Functions:
//
//   - Walk(root, opts...)     pre-order DFS with OnVisit hook and MaxDepth.
//   - DetectCycles(root)      back edges found with White/Gray/Black coloring,
//     each reported as the key path from the cycle start back to itself.
//   - InDegree(root)          incoming container edges per reachable node.
//   - Shared(root)            nodes with more than one incoming edge.
//   - Isomorphic(a, b)        same shape, keys, primitives and aliasing.
//   - Disjoint(a, b)          no container reachable from both roots.
//
// Isomorphic and Disjoint together state what a correct deep clone is: the
// copy is isomorphic to its source and shares none of its containers.
//
// Complexity:
//
//	All functions are O(N + E) over reachable containers and entries, except
//	DetectCycles which adds O(D) per back edge to copy the key path (D = depth).
package topology
