// Package yamlgraph converts between YAML documents and container graphs.
//
// YAML anchors and aliases are how the format spells identity: an alias to
// a mapping or sequence decodes to the very same *container.Node as its
// anchor, and an alias that points at an enclosing anchor decodes to a
// cycle. Encode does the reverse, anchoring every container reached more
// than once, so sharing and cycles survive a round trip.
//
//	root: &shared {v: 9}
//	copy: *shared          # same node as root
//	self: &me {loop: *me}  # self-loop
//
// Mappings decode to Object nodes, sequences to Array nodes and scalars to
// the Go value yaml.v3 resolves for them (string, int, float64, bool, nil...).
package yamlgraph
