package resolve

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/graphclone/container"
)

// Option configures optional behavior of Resolve.
type Option func(*Options)

// Options holds the hooks and logger used by Resolve.
type Options struct {
	// OnRepair, if non-nil, is called once for each container just before its
	// entries are processed.
	OnRepair func(n *container.Node)

	// OnRewrite, if non-nil, is called after a stale entry of parent has been
	// overwritten.
	OnRewrite func(parent *container.Node, key any, stale, fresh *container.Node)

	// Logger receives debug records; defaults to a discarding logger.
	Logger *slog.Logger
}

// DefaultOptions returns Options with no hooks and a discarding logger.
func DefaultOptions() Options {
	return Options{
		OnRepair:  nil,
		OnRewrite: nil,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithOnRepair installs fn as the per-container repair hook.
func WithOnRepair(fn func(n *container.Node)) Option {
	return func(o *Options) {
		o.OnRepair = fn
	}
}

// WithOnRewrite installs fn as the per-entry rewrite hook.
func WithOnRewrite(fn func(parent *container.Node, key any, stale, fresh *container.Node)) Option {
	return func(o *Options) {
		o.OnRewrite = fn
	}
}

// WithLogger sets the logger. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
