package topology

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/graphclone/container"
)

// Visitation states used by DetectCycles.
const (
	White = iota // not yet discovered
	Gray         // on the current DFS path
	Black        // fully explored
)

var (
	// ErrNilRoot is returned by Walk when root is nil.
	ErrNilRoot = errors.New("topology: root is nil")

	// ErrNotIsomorphic is wrapped by Isomorphic with the first mismatch.
	ErrNotIsomorphic = errors.New("topology: graphs are not isomorphic")
)

// Option configures Walk.
type Option func(*WalkOptions)

// WalkOptions holds the Walk hooks and limits.
type WalkOptions struct {
	// OnVisit, if non-nil, is called when a node is discovered (pre-order).
	// Returning an error aborts the walk.
	OnVisit func(n *container.Node) error

	// MaxDepth, if non-negative, stops descent below that depth.
	// 0 visits only the root. Default -1 (no limit).
	MaxDepth int
}

// DefaultOptions returns WalkOptions with no hook and no depth limit.
func DefaultOptions() WalkOptions {
	return WalkOptions{OnVisit: nil, MaxDepth: -1}
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(n *container.Node) error) Option {
	return func(o *WalkOptions) { o.OnVisit = fn }
}

// WithMaxDepth limits traversal depth.
func WithMaxDepth(limit int) Option {
	return func(o *WalkOptions) { o.MaxDepth = limit }
}

// WalkResult captures a depth-first walk.
type WalkResult struct {
	// Order lists nodes in discovery (pre-order) order.
	Order []*container.Node

	// Depth maps each visited node to its discovery depth (root = 0).
	Depth map[*container.Node]int

	// Parent maps each visited non-root node to the node it was discovered from.
	Parent map[*container.Node]*container.Node

	// Visited is true for every node in Order.
	Visited map[*container.Node]bool
}

// Cycle is one back edge seen by DetectCycles: following Keys from Start
// leads back to Start.
type Cycle struct {
	Start *container.Node
	Keys  []any

	// Path is the key path from the walk root to the back edge, ending with
	// the same key as Keys.
	Path []any
}

// String renders the cycle as a key path from the root, e.g. "$.a.next.prev".
func (c Cycle) String() string { return FormatPath(c.Path) }

// FormatPath renders keys as "$", ".name" for string keys and "[k]" for
// all others.
func FormatPath(keys []any) string {
	var b strings.Builder
	b.WriteString("$")
	for _, k := range keys {
		if s, ok := k.(string); ok {
			b.WriteString(".")
			b.WriteString(s)
			continue
		}
		fmt.Fprintf(&b, "[%v]", k)
	}

	return b.String()
}
