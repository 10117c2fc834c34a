// Package hemisphere propagates each node's hemisphere radius and
// reserved area from leaves to root.
//
// Grounded on original_source/tree.py's set_subtree_radius (a
// depth-stratum reverse walk applying the 7.2x loose-packing factor
// and the fixed leaf seed radius compute_radius(0.0025)); the
// functional-options shape is grounded on lvlath's bfs/types.go
// (BFSOptions / WithMaxDepth's validate-and-record-err pattern).
// set_subtree_radius is the one stage in the original that actually
// calls logging.info per node ("leaf node ...", "node ..., child ...,
// child_area+ ...", "---> node ..., radius ..., area ..."); WithVerbose
// below reproduces those three records under a Logger field shaped
// like placement.go's Options.Logger/WithLogger.
package hemisphere

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ee08b397/hypy/core"
	"github.com/ee08b397/hypy/hyperbolic"
)

// DefaultLeafSeedArea is the hyperbolic area seeded onto every leaf's
// hemisphere; radius_for_area(0.0025) per spec.md §4.5. Normative
// default per spec.md §9 — the N/alpha rule referenced in the
// original Python's comments is available only via WithAlphaSeeding.
const DefaultLeafSeedArea = 0.0025

// DefaultLoosePackingFactor is the constant by which summed child
// hyperbolic-disc areas are inflated to reserve spacing on the parent
// hemisphere (spec.md's "loose-packing factor").
const DefaultLoosePackingFactor = 7.2

// ErrOptionViolation indicates a WithX option received a value outside
// its valid domain.
var ErrOptionViolation = errors.New("hemisphere: invalid option value")

// Options holds the tunable parameters of the hemisphere sizer.
type Options struct {
	LeafSeedArea       float64
	LoosePackingFactor float64
	Verbose            bool
	Logger             *slog.Logger
	alphaSeeding       bool
	alpha              float64
	err                error
}

// Option configures Size via functional arguments. An invalid Option
// is recorded internally and surfaced as ErrOptionViolation when Size
// runs.
type Option func(*Options)

// DefaultOptions returns the spec-normative defaults: leaf seed area
// 0.0025, loose-packing factor 7.2, alpha-based leaf seeding disabled.
func DefaultOptions() Options {
	return Options{
		LeafSeedArea:       DefaultLeafSeedArea,
		LoosePackingFactor: DefaultLoosePackingFactor,
		Logger:             slog.Default(),
	}
}

// WithVerbose turns on the per-node slog.Info records that
// original_source/tree.py's set_subtree_radius emits via logging.info:
// one for every leaf's seeded radius, one for every child area folded
// into a parent, and one for every parent's resulting radius/area.
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

// WithLeafSeedArea overrides the hyperbolic area seeded onto leaves.
// a < 0 is rejected.
func WithLeafSeedArea(a float64) Option {
	return func(o *Options) {
		if a < 0 {
			o.err = fmt.Errorf("%w: leaf seed area cannot be negative (%v)", ErrOptionViolation, a)
			return
		}
		o.LeafSeedArea = a
	}
}

// WithLoosePackingFactor overrides the 7.2 reserve multiplier applied
// to a non-leaf's summed child areas. f <= 0 is rejected.
func WithLoosePackingFactor(f float64) Option {
	return func(o *Options) {
		if f <= 0 {
			o.err = fmt.Errorf("%w: loose-packing factor must be positive (%v)", ErrOptionViolation, f)
			return
		}
		o.LoosePackingFactor = f
	}
}

// WithAlphaSeeding switches leaf seeding from the fixed
// DefaultLeafSeedArea to the original H3 prescription referenced in
// original_source/tree.py's comment: radius_for_area(siblingCount /
// alpha), where siblingCount is the number of children of the leaf's
// parent. Off by default per spec.md §9 ("implementers should treat
// the constant as normative and expose alpha-based seeding only as an
// option"). alpha <= 0 is rejected.
func WithAlphaSeeding(alpha float64) Option {
	return func(o *Options) {
		if alpha <= 0 {
			o.err = fmt.Errorf("%w: alpha must be positive (%v)", ErrOptionViolation, alpha)
			return
		}
		o.alphaSeeding = true
		o.alpha = alpha
	}
}

// Size requires depth.Annotate to have already run. It seeds every
// leaf's Radius from the configured leaf-seed rule, then walks
// non-leaves from depth = tree.Height()-1 down to 0, setting
// n.Area = factor * sum(HyperbolicArea(child.Radius)) and
// n.Radius = RadiusForArea(n.Area).
func Size(tree *core.Tree, opts ...Option) error {
	if tree == nil {
		return fmt.Errorf("hemisphere.Size: %w", core.ErrTreeNil)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return fmt.Errorf("hemisphere.Size: %w", o.err)
	}

	byDepth := make(map[int][]core.NodeID)
	for _, id := range tree.Nodes() {
		n, err := tree.Node(id)
		if err != nil {
			return fmt.Errorf("hemisphere.Size: %w", err)
		}
		byDepth[n.Depth] = append(byDepth[n.Depth], id)
	}

	for _, id := range tree.Nodes() {
		n, err := tree.Node(id)
		if err != nil {
			return fmt.Errorf("hemisphere.Size: %w", err)
		}
		if !n.IsLeaf() {
			continue
		}
		area := o.LeafSeedArea
		if o.alphaSeeding && n.HasParent() {
			parent, err := tree.Node(n.Parent)
			if err != nil {
				return fmt.Errorf("hemisphere.Size: %w", err)
			}
			area = float64(len(parent.Children)) / o.alpha
		}
		r, err := hyperbolic.RadiusForArea(area)
		if err != nil {
			return fmt.Errorf("hemisphere.Size: leaf %d: %w", id, err)
		}
		n.Radius = r
		if o.Verbose {
			o.Logger.Info("hemisphere: leaf seeded", "node", n.ID, "parent", n.Parent, "radius", n.Radius)
		}
	}

	for d := tree.Height() - 1; d >= 0; d-- {
		for _, id := range byDepth[d] {
			n, err := tree.Node(id)
			if err != nil {
				return fmt.Errorf("hemisphere.Size: %w", err)
			}
			if n.IsLeaf() {
				continue
			}
			var area float64
			for _, c := range n.Children {
				child, err := tree.Node(c)
				if err != nil {
					return fmt.Errorf("hemisphere.Size: %w", err)
				}
				area += o.LoosePackingFactor * hyperbolic.HyperbolicArea(child.Radius)
				if o.Verbose {
					o.Logger.Info("hemisphere: child area folded", "node", n.ID, "child", child.ID, "child_area", hyperbolic.HyperbolicArea(child.Radius), "radius", child.Radius, "area", area)
				}
			}
			n.Area = area
			r, err := hyperbolic.RadiusForArea(area)
			if err != nil {
				return fmt.Errorf("hemisphere.Size: node %d: %w", id, err)
			}
			n.Radius = r
			if o.Verbose {
				o.Logger.Info("hemisphere: node sized", "node", n.ID, "radius", n.Radius, "area", n.Area)
			}
		}
	}

	return nil
}
