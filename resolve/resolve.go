package resolve

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/graphclone/container"
	"github.com/katalvlaran/graphclone/track"
)

// resolver carries the shared state of one Resolve call down the recursion.
type resolver struct {
	refs     *track.RefMap
	visited  *track.VisitedSet
	opts     Options
	debug    bool
	repaired int
	rewrites int
}

// Resolve repairs c in place: every entry that still points at an original
// node registered in refs is overwritten with that node's clone, and every
// nested clone container not yet in visited is marked and repaired
// recursively.
//
// c is marked in visited before its entries are processed. refs is only
// read; original nodes are never touched.
//
// Resolve panics if c, refs or visited is nil.
func Resolve(c *container.Node, refs *track.RefMap, visited *track.VisitedSet, opts ...Option) {
	if c == nil || refs == nil || visited == nil {
		panic("resolve: nil container, reference map or visited set")
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	r := &resolver{
		refs:    refs,
		visited: visited,
		opts:    o,
		debug:   o.Logger.Enabled(context.Background(), slog.LevelDebug),
	}
	visited.Mark(c)
	r.repair(c)

	o.Logger.Debug("resolve: done",
		slog.Int("repaired", r.repaired),
		slog.Int("rewrites", r.rewrites),
		slog.Int("visited", visited.Len()),
	)
}

// repair processes a snapshot of c's entries, so rewriting an entry never
// changes which entries are still pending.
func (r *resolver) repair(c *container.Node) {
	r.repaired++
	if r.opts.OnRepair != nil {
		r.opts.OnRepair(c)
	}

	var (
		child *container.Node
		fresh *container.Node
		ok    bool
	)
	for _, e := range c.Entries() {
		if child, ok = container.AsNode(e.Value); !ok {
			continue
		}

		// Stale pointer to an original: the reference map is authoritative.
		if fresh, ok = r.refs.Lookup(child); ok {
			c.Swap(e.Key, fresh)
			r.rewrites++
			if r.debug {
				r.opts.Logger.Debug("resolve: rewrite stale entry",
					slog.Any("key", e.Key),
					slog.String("parent", c.String()),
				)
			}
			if r.opts.OnRewrite != nil {
				r.opts.OnRewrite(c, e.Key, child, fresh)
			}
			continue
		}

		// A produced clone: descend once.
		if !r.visited.Mark(child) {
			continue
		}
		r.repair(child)
	}
}
