// Package depth assigns a breadth-first depth to every node of a
// core.Tree and records the tree's overall height.
//
// Grounded on original_source/tree.py's set_node_depth (deque-based
// level-by-level walk) and the iterative queue/visited shape of
// lvlath's bfs/bfs.go, narrowed to a single responsibility: no path
// reconstruction, no visit hooks — spec.md §4.3 asks only for depth
// and height. set_node_depth itself carries no logging.info calls;
// WithVerbose below is this module's own addition, grounded instead on
// placement.go's Options.Logger/WithLogger shape, for parity with the
// other two annotator stages (treesize, hemisphere) rather than on a
// line of the original Python.
package depth

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ee08b397/hypy/core"
)

// ErrOptionViolation indicates a WithX option received a value outside
// its valid domain.
var ErrOptionViolation = errors.New("depth: invalid option value")

// Options holds the tunable parameters of the depth annotator.
type Options struct {
	Verbose bool
	Logger  *slog.Logger
	err     error
}

// Option configures Annotate via functional arguments.
type Option func(*Options)

// DefaultOptions returns Verbose = false and a logger of
// slog.Default().
func DefaultOptions() Options {
	return Options{Logger: slog.Default()}
}

// WithVerbose turns on a slog.Info record for every node as its depth
// is assigned, carrying the same fields as original_source/tree.py's
// print_tree dump (id, parent, depth, #children).
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

// Annotate walks tree breadth-first from its root, writing Depth on
// every node starting at 0, and records the maximum depth observed as
// tree.Height(). It is re-entrant: calling it again after children
// have been reordered (package order) recomputes the same depths,
// since depth depends only on the parent chain, not on sibling order.
func Annotate(tree *core.Tree, opts ...Option) error {
	if tree == nil {
		return fmt.Errorf("depth.Annotate: %w", core.ErrTreeNil)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return fmt.Errorf("depth.Annotate: %w", o.err)
	}

	root, err := tree.Node(tree.Root())
	if err != nil {
		return fmt.Errorf("depth.Annotate: %w", err)
	}

	generation := []core.NodeID{root.ID}
	root.Depth = 0
	height := 0
	if o.Verbose {
		o.Logger.Info("depth: assigned", "node", root.ID, "parent", nil, "depth", 0, "children", len(root.Children))
	}

	for d := 1; len(generation) > 0; d++ {
		var next []core.NodeID
		for _, id := range generation {
			n, err := tree.Node(id)
			if err != nil {
				return fmt.Errorf("depth.Annotate: %w", err)
			}
			for _, c := range n.Children {
				child, err := tree.Node(c)
				if err != nil {
					return fmt.Errorf("depth.Annotate: %w", err)
				}
				child.Depth = d
				if d > height {
					height = d
				}
				if o.Verbose {
					o.Logger.Info("depth: assigned", "node", child.ID, "parent", n.ID, "depth", d, "children", len(child.Children))
				}
				next = append(next, c)
			}
		}
		generation = next
	}

	tree.SetHeight(height)
	return nil
}
