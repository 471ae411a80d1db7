package cluster

import (
	"errors"

	"go.uber.org/zap"
)

var (
	// ErrNonConvergence indicates the edges ran out before all points joined one cluster.
	ErrNonConvergence = errors.New("cluster: edges exhausted before all points joined a single cluster")
	// ErrTooFewClusters indicates fewer clusters exist than the caller asked to combine.
	ErrTooFewClusters = errors.New("cluster: fewer clusters than requested")
	// ErrNegativeConnections indicates a negative edge budget was requested.
	ErrNegativeConnections = errors.New("cluster: number of connections must be non-negative")
)

// Outcome reports what consuming one edge did to the Tracker.
type Outcome int

const (
	// Skipped: both endpoints were already in the same cluster.
	Skipped Outcome = iota
	// Merged: two existing clusters became one.
	Merged
	// Extended: an untouched endpoint joined the other endpoint's cluster.
	Extended
	// Created: both endpoints were untouched and now form a new cluster.
	Created
)

// String returns the lower-case outcome name.
func (o Outcome) String() string {
	switch o {
	case Skipped:
		return "skipped"
	case Merged:
		return "merged"
	case Extended:
		return "extended"
	case Created:
		return "created"
	default:
		return "unknown"
	}
}

// Options configures a Tracker and the queries built on it.
type Options struct {
	// Logger receives debug traces of merges and convergence.
	Logger *zap.Logger
}

// Option modifies Options.
type Option func(*Options)

// WithLogger sets the logger. A nil logger leaves the no-op default in place.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Options with a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
