// Package graphclone deep-clones in-memory object graphs while keeping their
// topology: cycles stay cycles, shared sub-structures stay shared, and no
// original node is touched.
//
// What is a graph here?
//
//	Containers (container.Node) hold ordered key/value entries. A value is
//	either another container or a primitive. Containers are compared by
//	identity only, so a.self = a and p.x = q.x = s are both expressible.
//
// How a clone works:
//
//	clone.CloneNode copies every container once, registering original→clone
//	in a track.RefMap before descending. Back edges and repeated edges are
//	left pointing at originals; resolve.Resolve then walks the copy once and
//	rewrites each of those stale pointers to the registered clone, repairing
//	every clone container exactly once.
//
// Quick ASCII example:
//
//	original          clone
//	  root              root'
//	 /    \            /    \
//	p      q    ⇒     p'     q'
//	 \    /            \    /
//	 shared            shared'
//
// Subpackages:
//
//	container/       — Node, kinds and entry operations
//	track/           — RefMap (original→clone) and VisitedSet
//	resolve/         — the cycle-resolution pass
//	clone/           — structural copier and entry point
//	topology/        — walks, cycles, sharing, isomorphism checks
//	codec/yamlgraph/ — YAML with anchors/aliases ⇄ graph
//	codec/ctygraph/  — go-cty values ⇄ graph
//	cmd/graphclone   — command line front end
//
//	go get github.com/katalvlaran/graphclone
package graphclone
