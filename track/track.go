package track

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphclone/container"
)

var (
	// ErrNilNode is returned when Register receives a nil original or clone.
	ErrNilNode = errors.New("track: node is nil")

	// ErrAlreadyRegistered indicates the original already has a clone.
	ErrAlreadyRegistered = errors.New("track: original already registered")

	// ErrCloneReused indicates the clone is already the image of another original.
	ErrCloneReused = errors.New("track: clone already registered for another original")
)

// RefMap maps original nodes to their clones by identity.
type RefMap struct {
	clones map[*container.Node]*container.Node // original → clone
	images map[*container.Node]struct{}        // set of registered clones
	order  []*container.Node                   // originals in registration order
}

// NewRefMap returns an empty RefMap; sizeHint pre-sizes the tables.
func NewRefMap(sizeHint int) *RefMap {
	if sizeHint < 0 {
		sizeHint = 0
	}

	return &RefMap{
		clones: make(map[*container.Node]*container.Node, sizeHint),
		images: make(map[*container.Node]struct{}, sizeHint),
		order:  make([]*container.Node, 0, sizeHint),
	}
}

// Register records clone as the copy of orig.
// Complexity: O(1)
func (r *RefMap) Register(orig, clone *container.Node) error {
	if orig == nil || clone == nil {
		return ErrNilNode
	}
	if _, ok := r.clones[orig]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, orig)
	}
	if _, ok := r.images[clone]; ok {
		return fmt.Errorf("%w: %s", ErrCloneReused, clone)
	}
	r.clones[orig] = clone
	r.images[clone] = struct{}{}
	r.order = append(r.order, orig)

	return nil
}

// Lookup returns the clone registered for orig.
func (r *RefMap) Lookup(orig *container.Node) (*container.Node, bool) {
	c, ok := r.clones[orig]
	return c, ok
}

// Has reports whether orig has a registered clone.
func (r *RefMap) Has(orig *container.Node) bool {
	_, ok := r.clones[orig]
	return ok
}

// IsClone reports whether n is the registered image of some original.
func (r *RefMap) IsClone(n *container.Node) bool {
	_, ok := r.images[n]
	return ok
}

// Len returns the number of registered originals.
func (r *RefMap) Len() int { return len(r.clones) }

// Range calls fn for each pair in registration order until fn returns false.
func (r *RefMap) Range(fn func(orig, clone *container.Node) bool) {
	for _, o := range r.order {
		if !fn(o, r.clones[o]) {
			return
		}
	}
}

// VisitedSet is an identity set of clone nodes.
type VisitedSet struct {
	seen map[*container.Node]struct{}
}

// NewVisitedSet returns an empty VisitedSet.
func NewVisitedSet() *VisitedSet {
	return &VisitedSet{seen: make(map[*container.Node]struct{})}
}

// Mark inserts n and reports whether it was absent before.
func (v *VisitedSet) Mark(n *container.Node) bool {
	if _, ok := v.seen[n]; ok {
		return false
	}
	v.seen[n] = struct{}{}

	return true
}

// Has reports whether n was marked.
func (v *VisitedSet) Has(n *container.Node) bool {
	_, ok := v.seen[n]
	return ok
}

// Len returns the number of marked nodes.
func (v *VisitedSet) Len() int { return len(v.seen) }
