// Package layout wires the builder and every annotator/sizer/ordering/
// placement stage into the single entry point this module exposes to
// callers, and provides the breadth-first coordinate readout.
//
// Grounded on lvlath/builder's api.go (single public entry-point,
// sequential stage application, wrap-once-at-the-boundary error
// policy) and original_source/tree.py's get_layout convenience
// function, which composes the same stages in the same order.
package layout

import (
	"fmt"

	"github.com/ee08b397/hypy/core"
	"github.com/ee08b397/hypy/depth"
	"github.com/ee08b397/hypy/hemisphere"
	"github.com/ee08b397/hypy/order"
	"github.com/ee08b397/hypy/placement"
	"github.com/ee08b397/hypy/treesize"
)

// OrderMode selects which key package order sorts children by before
// placement (spec.md §4.6 / §6).
type OrderMode int

const (
	// ByRadius sorts children descending by hemisphere radius. The
	// primary mode.
	ByRadius OrderMode = iota
	// ByTreeSize sorts children descending by subtree size.
	ByTreeSize
)

// Options configures Layout's full pipeline.
type Options struct {
	Order          OrderMode
	DepthOpts      []depth.Option
	TreeSizeOpts   []treesize.Option
	HemisphereOpts []hemisphere.Option
	PlacementOpts  []placement.Option
}

// Option configures Layout via functional arguments.
type Option func(*Options)

// DefaultOptions returns Order = ByRadius and no stage-specific
// overrides.
func DefaultOptions() Options {
	return Options{Order: ByRadius}
}

// WithOrder overrides the child-ordering mode.
func WithOrder(m OrderMode) Option {
	return func(o *Options) { o.Order = m }
}

// WithDepthOptions forwards options to depth.Annotate, e.g.
// depth.WithVerbose() to log each node's depth as it is assigned.
func WithDepthOptions(opts ...depth.Option) Option {
	return func(o *Options) { o.DepthOpts = append(o.DepthOpts, opts...) }
}

// WithTreeSizeOptions forwards options to treesize.Compute, e.g.
// treesize.WithVerbose() to log each subtree-size accumulation step.
func WithTreeSizeOptions(opts ...treesize.Option) Option {
	return func(o *Options) { o.TreeSizeOpts = append(o.TreeSizeOpts, opts...) }
}

// WithHemisphereOptions forwards options to hemisphere.Size.
func WithHemisphereOptions(opts ...hemisphere.Option) Option {
	return func(o *Options) { o.HemisphereOpts = append(o.HemisphereOpts, opts...) }
}

// WithPlacementOptions forwards options to placement.Place.
func WithPlacementOptions(opts ...placement.Option) Option {
	return func(o *Options) { o.PlacementOpts = append(o.PlacementOpts, opts...) }
}

// Report summarizes one Layout call: the resulting tree's height,
// node count, and any non-fatal placement failures collected along
// the way.
type Report struct {
	Height            int
	NodeCount         int
	PlacementFailures []placement.Failure
}

// Layout builds a tree from root and edges, then runs every stage of
// spec.md §2's pipeline in order: builder, depth annotator, subtree
// sizer, hemisphere sizer, child ordering, placement engine. Builder
// and stage errors (everything except NonFatalPlacementFailure) abort
// and are returned; non-fatal placement failures are collected into
// the returned Report and never abort the layout.
func Layout(root core.NodeID, edges []core.Edge, opts ...Option) (*core.Tree, Report, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	tree, err := core.Build(root, edges)
	if err != nil {
		return nil, Report{}, fmt.Errorf("layout.Layout: %w", err)
	}

	if err := depth.Annotate(tree, o.DepthOpts...); err != nil {
		return nil, Report{}, fmt.Errorf("layout.Layout: %w", err)
	}

	if err := treesize.Compute(tree, o.TreeSizeOpts...); err != nil {
		return nil, Report{}, fmt.Errorf("layout.Layout: %w", err)
	}

	if err := hemisphere.Size(tree, o.HemisphereOpts...); err != nil {
		return nil, Report{}, fmt.Errorf("layout.Layout: %w", err)
	}

	switch o.Order {
	case ByTreeSize:
		err = order.ByTreeSize(tree)
	default:
		err = order.ByRadius(tree)
	}
	if err != nil {
		return nil, Report{}, fmt.Errorf("layout.Layout: %w", err)
	}

	failures, err := placement.Place(tree, o.PlacementOpts...)
	if err != nil {
		return nil, Report{}, fmt.Errorf("layout.Layout: %w", err)
	}

	return tree, Report{
		Height:            tree.Height(),
		NodeCount:         tree.Len(),
		PlacementFailures: failures,
	}, nil
}

// Coordinate is one node's readout: its id and global-frame position.
type Coordinate struct {
	ID      core.NodeID
	X, Y, Z float64
}

// Coordinates enumerates every node of tree in breadth-first (level)
// order, yielding its id and Cartesian position. Pure function of an
// already laid-out tree (spec.md §4.8); grounded on
// original_source/tree.py's print_tree/scatter_plot BFS-enumeration
// shape, stripped of rendering.
func Coordinates(tree *core.Tree) ([]Coordinate, error) {
	if tree == nil {
		return nil, fmt.Errorf("layout.Coordinates: %w", core.ErrTreeNil)
	}

	root, err := tree.Node(tree.Root())
	if err != nil {
		return nil, fmt.Errorf("layout.Coordinates: %w", err)
	}

	out := make([]Coordinate, 0, tree.Len())
	queue := []core.NodeID{root.ID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		n, err := tree.Node(id)
		if err != nil {
			return nil, fmt.Errorf("layout.Coordinates: %w", err)
		}
		out = append(out, Coordinate{ID: n.ID, X: n.Coord.X, Y: n.Coord.Y, Z: n.Coord.Z})
		queue = append(queue, n.Children...)
	}

	return out, nil
}
