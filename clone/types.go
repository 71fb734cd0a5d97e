package clone

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/graphclone/container"
)

// ErrNilRoot is returned by CloneNode when root is nil.
var ErrNilRoot = errors.New("clone: root is nil")

// Option configures a clone operation.
type Option func(*Options)

// Options holds the clone configuration.
type Options struct {
	// EagerLinks makes the copier write registered clones for back and shared
	// edges itself instead of leaving stale entries for the repair pass.
	EagerLinks bool

	// OnRepair is forwarded to the repair pass.
	OnRepair func(n *container.Node)

	// Logger receives a summary record per clone; defaults to discard.
	Logger *slog.Logger
}

// DefaultOptions returns lazy links, no hooks and a discarding logger.
func DefaultOptions() Options {
	return Options{
		EagerLinks: false,
		OnRepair:   nil,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithEagerLinks toggles eager resolution of back and shared edges.
func WithEagerLinks(eager bool) Option {
	return func(o *Options) { o.EagerLinks = eager }
}

// WithOnRepair installs a hook called once per repaired clone container.
func WithOnRepair(fn func(n *container.Node)) Option {
	return func(o *Options) { o.OnRepair = fn }
}

// WithLogger sets the logger. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Stats counts what one clone did.
type Stats struct {
	Nodes      int // containers copied
	Primitives int // primitive entries copied
	StaleLinks int // back/shared edges met by the copier (left stale unless EagerLinks)
	Rewrites   int // stale entries rewritten by the repair pass
	Repaired   int // containers processed by the repair pass
}

// Result is the outcome of Clone or CloneNode.
type Result struct {
	// Value is the cloned value: the root clone for containers, the input
	// itself for primitives.
	Value any

	// Root is the root clone, nil when the input was a primitive.
	Root *container.Node

	Stats Stats
}
