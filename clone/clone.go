package clone

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/graphclone/container"
	"github.com/katalvlaran/graphclone/resolve"
	"github.com/katalvlaran/graphclone/track"
)

// copier holds the state of one clone operation.
type copier struct {
	refs  *track.RefMap
	opts  Options
	stats Stats
}

// Clone deep-copies v. Containers go through CloneNode; primitives are
// returned unchanged.
func Clone(v any, opts ...Option) (*Result, error) {
	root, ok := container.AsNode(v)
	if !ok {
		return &Result{Value: v}, nil
	}

	return CloneNode(root, opts...)
}

// CloneNode deep-copies the graph reachable from root. The returned graph
// shares no container with the original; its cycles and shared edges mirror
// the original's.
//
// Complexity: O(N + E) time and O(N) memory for N containers and E entries.
func CloneNode(root *container.Node, opts ...Option) (*Result, error) {
	if root == nil {
		return nil, ErrNilRoot
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	c := &copier{refs: track.NewRefMap(0), opts: o}

	// 1. Structural copy, registering each clone before its children.
	out, err := c.copyNode(root)
	if err != nil {
		return nil, err
	}

	// 2. Repair pass over the produced graph.
	resolve.Resolve(out, c.refs, track.NewVisitedSet(),
		resolve.WithLogger(o.Logger),
		resolve.WithOnRepair(func(n *container.Node) {
			c.stats.Repaired++
			if o.OnRepair != nil {
				o.OnRepair(n)
			}
		}),
		resolve.WithOnRewrite(func(*container.Node, any, *container.Node, *container.Node) {
			c.stats.Rewrites++
		}),
	)

	o.Logger.Info("clone: done",
		slog.Int("nodes", c.stats.Nodes),
		slog.Int("primitives", c.stats.Primitives),
		slog.Int("stale_links", c.stats.StaleLinks),
		slog.Int("rewrites", c.stats.Rewrites),
		slog.Int("repaired", c.stats.Repaired),
	)

	return &Result{Value: out, Root: out, Stats: c.stats}, nil
}

// copyNode creates and registers the clone of orig, then fills its entries.
func (c *copier) copyNode(orig *container.Node) (*container.Node, error) {
	out := container.New(orig.Kind())
	if err := c.refs.Register(orig, out); err != nil {
		return nil, fmt.Errorf("clone: register %s: %w", orig, err)
	}
	c.stats.Nodes++

	var (
		child *container.Node
		val   any
		ok    bool
		err   error
	)
	for _, e := range orig.Entries() {
		val = e.Value
		if child, ok = container.AsNode(e.Value); !ok {
			c.stats.Primitives++
		} else if registered, seen := c.refs.Lookup(child); seen {
			// Back edge or shared edge: the child's clone already exists.
			c.stats.StaleLinks++
			if c.opts.EagerLinks {
				val = registered
			}
		} else if val, err = c.copyNode(child); err != nil {
			return nil, err
		}

		if err = out.Set(e.Key, val); err != nil {
			return nil, fmt.Errorf("clone: set %v on %s: %w", e.Key, out, err)
		}
	}

	return out, nil
}
