// Package treesize computes, for every node of a core.Tree, the
// number of nodes in the subtree rooted at it (self included).
//
// Grounded on original_source/tree.py's set_subtree_size (walks
// leaves-to-root by depth stratum); the iterative-queue shape is
// grounded on lvlath's bfs/bfs.go, run in reverse depth order — spec.md
// §4.4 explicitly allows "equivalent post-order accumulation".
// set_subtree_size itself carries no logging.info calls; WithVerbose
// below is this module's own addition, grounded instead on
// placement.go's Options.Logger/WithLogger shape, for parity with the
// other two annotator stages (depth, hemisphere) rather than on a line
// of the original Python.
package treesize

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ee08b397/hypy/core"
)

// ErrOptionViolation indicates a WithX option received a value outside
// its valid domain.
var ErrOptionViolation = errors.New("treesize: invalid option value")

// Options holds the tunable parameters of the subtree sizer.
type Options struct {
	Verbose bool
	Logger  *slog.Logger
	err     error
}

// Option configures Compute via functional arguments.
type Option func(*Options)

// DefaultOptions returns Verbose = false and a logger of
// slog.Default().
func DefaultOptions() Options {
	return Options{Logger: slog.Default()}
}

// WithVerbose turns on a slog.Info record for every accumulation step,
// one per (child, parent) pair, as the child's TreeSize is folded into
// its parent's running total.
func WithVerbose() Option {
	return func(o *Options) { o.Verbose = true }
}

// WithLogger overrides the logger used when WithVerbose is set. A nil
// logger is rejected.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			o.err = fmt.Errorf("%w: logger cannot be nil", ErrOptionViolation)
			return
		}
		o.Logger = l
	}
}

// Compute requires depth.Annotate to have already run (it buckets
// nodes by Depth to process strictly leaves-to-root). It initializes
// TreeSize = 1 on every node, then for each non-root node in order of
// decreasing depth adds that node's TreeSize into its parent's.
func Compute(tree *core.Tree, opts ...Option) error {
	if tree == nil {
		return fmt.Errorf("treesize.Compute: %w", core.ErrTreeNil)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return fmt.Errorf("treesize.Compute: %w", o.err)
	}

	byDepth := make(map[int][]core.NodeID)
	maxDepth := 0
	for _, id := range tree.Nodes() {
		n, err := tree.Node(id)
		if err != nil {
			return fmt.Errorf("treesize.Compute: %w", err)
		}
		n.TreeSize = 1
		byDepth[n.Depth] = append(byDepth[n.Depth], id)
		if n.Depth > maxDepth {
			maxDepth = n.Depth
		}
	}

	for d := maxDepth; d > 0; d-- {
		for _, id := range byDepth[d] {
			n, err := tree.Node(id)
			if err != nil {
				return fmt.Errorf("treesize.Compute: %w", err)
			}
			parent, err := tree.Node(n.Parent)
			if err != nil {
				return fmt.Errorf("treesize.Compute: %w", err)
			}
			parent.TreeSize += n.TreeSize
			if o.Verbose {
				o.Logger.Info("treesize: accumulated", "child", n.ID, "parent", parent.ID, "child_size", n.TreeSize, "parent_size", parent.TreeSize)
			}
		}
	}

	return nil
}
