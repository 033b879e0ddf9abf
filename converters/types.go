package converters

import (
	"errors"
	"log/slog"
)

// ErrBadHeader indicates that the first line is missing or does not start
// with a non-negative vertex count and an edge count.
var ErrBadHeader = errors.New("converters: bad header line")

// Stats describes what ReadEdgeListStats saw in its input.
type Stats struct {
	Lines         int // lines read, header included
	Edges         int // edge lines accepted
	Skipped       int // non-edge lines after the header
	DeclaredEdges int // edge count announced by the header
}

// Options configures ReadEdgeList.
type Options struct {
	Symmetric bool
	Logger    *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithSymmetric stores every edge in both directions (core.WithSymmetric).
func WithSymmetric() Option {
	return func(o *Options) {
		o.Symmetric = true
	}
}

// WithLogger routes parse diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func resolve(opts []Option) Options {
	o := Options{Logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
