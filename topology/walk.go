package topology

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/katalvlaran/graphclone/container"
)

// walker encapsulates state during Walk.
type walker struct {
	opts WalkOptions
	res  *WalkResult
}

// Walk performs a pre-order depth-first walk from root, visiting each
// reachable container once.
func Walk(root *container.Node, opts ...Option) (*WalkResult, error) {
	if root == nil {
		return nil, ErrNilRoot
	}

	wopts := DefaultOptions()
	for _, fn := range opts {
		fn(&wopts)
	}

	w := &walker{
		opts: wopts,
		res: &WalkResult{
			Depth:   make(map[*container.Node]int),
			Parent:  make(map[*container.Node]*container.Node),
			Visited: make(map[*container.Node]bool),
		},
	}
	if err := w.traverse(root, 0); err != nil {
		return w.res, err
	}

	return w.res, nil
}

func (w *walker) traverse(n *container.Node, depth int) error {
	w.res.Visited[n] = true
	w.res.Depth[n] = depth
	w.res.Order = append(w.res.Order, n)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(n); err != nil {
			return fmt.Errorf("topology: OnVisit for %s: %w", n, err)
		}
	}

	for _, e := range n.Entries() {
		child, ok := container.AsNode(e.Value)
		if !ok || w.res.Visited[child] {
			continue
		}
		if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
			continue
		}
		w.res.Parent[child] = n
		if err := w.traverse(child, depth+1); err != nil {
			return err
		}
	}

	return nil
}

// cycleFinder keeps the current DFS path: nodes[i] reaches nodes[i+1]
// through keys[i].
type cycleFinder struct {
	state  map[*container.Node]int
	nodes  []*container.Node
	keys   []any
	cycles []Cycle
}

// DetectCycles reports whether any cycle is reachable from root and lists
// one Cycle per back edge, in discovery order. A nil root has no cycles.
func DetectCycles(root *container.Node) (bool, []Cycle) {
	if root == nil {
		return false, nil
	}

	f := &cycleFinder{state: make(map[*container.Node]int)}
	f.visit(root)

	return len(f.cycles) > 0, f.cycles
}

func (f *cycleFinder) visit(n *container.Node) {
	f.state[n] = Gray
	f.nodes = append(f.nodes, n)

	for _, e := range n.Entries() {
		child, ok := container.AsNode(e.Value)
		if !ok {
			continue
		}
		switch f.state[child] {
		case White:
			f.keys = append(f.keys, e.Key)
			f.visit(child)
			f.keys = f.keys[:len(f.keys)-1]
		case Gray:
			idx := indexOf(f.nodes, child)
			path := append(append([]any(nil), f.keys...), e.Key)
			f.cycles = append(f.cycles, Cycle{Start: child, Keys: path[idx:len(path):len(path)], Path: path})
		}
	}

	f.nodes = f.nodes[:len(f.nodes)-1]
	f.state[n] = Black
}

func indexOf(nodes []*container.Node, n *container.Node) int {
	for i := len(nodes) - 1; i >= 0; i-- {
		if nodes[i] == n {
			return i
		}
	}

	return -1
}

// InDegree counts, for every container reachable from root, the entries
// (across all reachable containers) whose value is that container. The root
// has no implicit incoming edge.
func InDegree(root *container.Node) map[*container.Node]int {
	deg := make(map[*container.Node]int)
	if root == nil {
		return deg
	}
	res, _ := Walk(root)
	for _, n := range res.Order {
		if _, ok := deg[n]; !ok {
			deg[n] = 0
		}
		for _, e := range n.Entries() {
			if child, ok := container.AsNode(e.Value); ok {
				deg[child]++
			}
		}
	}

	return deg
}

// Shared returns the containers with more than one incoming edge, in
// discovery order.
func Shared(root *container.Node) []*container.Node {
	if root == nil {
		return nil
	}
	deg := InDegree(root)
	res, _ := Walk(root)

	var out []*container.Node
	for _, n := range res.Order {
		if deg[n] > 1 {
			out = append(out, n)
		}
	}

	return out
}

// primitiveOpts compares primitives structurally, with NaN equal to NaN.
var primitiveOpts = []cmp.Option{
	cmpopts.EquateNaNs(),
	cmp.Exporter(func(reflect.Type) bool { return true }),
}

// matcher builds the node bijection for Isomorphic.
type matcher struct {
	fwd  map[*container.Node]*container.Node
	bwd  map[*container.Node]*container.Node
	path []any
}

// Isomorphic returns nil when a and b have the same shape: a bijection
// between their reachable containers maps kinds, entry keys in order,
// primitive values (cmp.Equal, NaN equal to NaN) and aliasing onto each other.
// Otherwise it returns ErrNotIsomorphic wrapped with the path of the first
// mismatch.
func Isomorphic(a, b *container.Node) error {
	if a == nil || b == nil {
		if a == b {
			return nil
		}
		return fmt.Errorf("%w: at $: nil root", ErrNotIsomorphic)
	}
	m := &matcher{
		fwd: make(map[*container.Node]*container.Node),
		bwd: make(map[*container.Node]*container.Node),
	}

	return m.match(a, b)
}

func (m *matcher) fail(format string, args ...any) error {
	return fmt.Errorf("%w: at %s: %s", ErrNotIsomorphic, FormatPath(m.path), fmt.Sprintf(format, args...))
}

func (m *matcher) match(x, y *container.Node) error {
	if fx, ok := m.fwd[x]; ok {
		if fx != y {
			return m.fail("aliasing differs")
		}
		return nil
	}
	if _, ok := m.bwd[y]; ok {
		return m.fail("aliasing differs")
	}
	m.fwd[x], m.bwd[y] = y, x

	if x.Kind() != y.Kind() {
		return m.fail("kind %s vs %s", x.Kind(), y.Kind())
	}
	ex, ey := x.Entries(), y.Entries()
	if len(ex) != len(ey) {
		return m.fail("%d entries vs %d", len(ex), len(ey))
	}

	for i := range ex {
		if ex[i].Key != ey[i].Key {
			return m.fail("key %v vs %v at position %d", ex[i].Key, ey[i].Key, i)
		}
		m.path = append(m.path, ex[i].Key)

		cx, okx := container.AsNode(ex[i].Value)
		cy, oky := container.AsNode(ey[i].Value)
		switch {
		case okx != oky:
			return m.fail("container vs primitive")
		case okx:
			if err := m.match(cx, cy); err != nil {
				return err
			}
		case !cmp.Equal(ex[i].Value, ey[i].Value, primitiveOpts...):
			return m.fail("value %v vs %v", ex[i].Value, ey[i].Value)
		}

		m.path = m.path[:len(m.path)-1]
	}

	return nil
}

var errShared = errors.New("topology: shared node")

// Disjoint reports whether no container is reachable from both a and b.
func Disjoint(a, b *container.Node) bool {
	if a == nil || b == nil {
		return true
	}
	left, _ := Walk(a)
	_, err := Walk(b, WithOnVisit(func(n *container.Node) error {
		if left.Visited[n] {
			return errShared
		}
		return nil
	}))

	return !errors.Is(err, errShared)
}
