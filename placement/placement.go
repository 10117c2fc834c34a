// Package placement computes each node's (band, theta, phi) on its
// parent's hemisphere and its resulting Cartesian coordinate in the
// global frame.
//
// Grounded on original_source/tree.py's set_placement: the
// sentinel-phi trick that avoids the phi==0 singularity, and the
// same-band/new-band bookkeeping including the last_max_phi
// truthiness quirk preserved verbatim per spec.md §9's open question.
// Rather than detecting a parent change by comparing consecutive
// children's parent ids (the Python's approach), this module follows
// DESIGN.md's stated preference and traverses parent-by-parent: an
// outer BFS loop over parents, an inner loop over that parent's
// children, so the per-parent packing state's scope is explicit.
package placement

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/ee08b397/hypy/core"
	"github.com/ee08b397/hypy/hyperbolic"
)

// DefaultEpsilon is the azimuthal sentinel used to seed phi for the
// first child of every parent, avoiding the phi==0 singularity in
// DeltaTheta (spec.md §4.7).
const DefaultEpsilon = 1e-6

// ErrOptionViolation indicates a WithX option received a value outside
// its valid domain.
var ErrOptionViolation = errors.New("placement: invalid option value")

// Failure records one NonFatalPlacementFailure: a division-by-zero or
// out-of-domain result while placing a single child. The child keeps
// whatever partial band/theta/phi/coord it already had (spec.md §7)
// and the traversal continues.
type Failure struct {
	Node         core.NodeID
	Parent       core.NodeID
	Radius       float64
	ParentRadius float64
	Phi          float64
	Err          error
}

// Options holds the tunable parameters of the placement engine.
type Options struct {
	Epsilon   float64
	Logger    *slog.Logger
	OnFailure func(Failure)
	err       error
}

// Option configures Place via functional arguments.
type Option func(*Options)

// DefaultOptions returns Epsilon = DefaultEpsilon and a logger of
// slog.Default(); OnFailure is nil (Place always appends to its
// returned []Failure regardless of OnFailure).
func DefaultOptions() Options {
	return Options{Epsilon: DefaultEpsilon, Logger: slog.Default()}
}

// WithEpsilon overrides the azimuthal sentinel. eps <= 0 is rejected.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps <= 0 {
			o.err = fmt.Errorf("%w: epsilon must be positive (%v)", ErrOptionViolation, eps)
			return
		}
		o.Epsilon = eps
	}
}

// WithLogger overrides the logger used to report NonFatalPlacementFailures
// at Warn level. A nil logger is rejected.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			o.err = fmt.Errorf("%w: logger cannot be nil", ErrOptionViolation)
			return
		}
		o.Logger = l
	}
}

// WithOnFailure registers a hook invoked, in addition to logging, for
// every NonFatalPlacementFailure. The hook's return value is void: per
// spec.md §7 a non-fatal failure must never abort the layout, so this
// hook has no way to signal otherwise (unlike bfs.WithOnVisit's
// error-returning hook).
func WithOnFailure(fn func(Failure)) Option {
	return func(o *Options) { o.OnFailure = fn }
}

// perParentState is the packing state the placement engine carries
// while emitting one parent's children, reinitialized at the start of
// every parent (spec.md §4.7).
type perParentState struct {
	phi         float64
	theta       float64
	band        int
	lastMaxPhi  float64
	firstPlaced bool
}

// Place requires hemisphere.Size and an ordering pass (order.ByRadius
// or order.ByTreeSize) to have already run. It sets Coord = Origin on
// the root, then walks parents breadth-first starting at the root,
// placing each parent's children in order onto bands of constant
// polar angle and converting each placement to a Cartesian coordinate
// in the global frame.
//
// Numerical failures (sin(phi) == 0, or any other out-of-domain angle)
// are reported as Failure values — logged at Warn and, if
// WithOnFailure was supplied, passed to that hook — and never abort
// the layout: the affected child keeps its prior (possibly zero)
// band/theta/phi/coord and the traversal continues (spec.md §7). A
// parent with children whose Radius is not positive is a fatal
// precondition violation: Place returns hyperbolic.ErrNonPositiveRadius.
func Place(tree *core.Tree, opts ...Option) ([]Failure, error) {
	if tree == nil {
		return nil, fmt.Errorf("placement.Place: %w", core.ErrTreeNil)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, fmt.Errorf("placement.Place: %w", o.err)
	}

	root, err := tree.Node(tree.Root())
	if err != nil {
		return nil, fmt.Errorf("placement.Place: %w", err)
	}
	root.Coord = hyperbolic.Origin

	var failures []Failure
	placed := 0
	queue := []core.NodeID{root.ID}

	for len(queue) > 0 {
		parentID := queue[0]
		queue = queue[1:]

		parent, err := tree.Node(parentID)
		if err != nil {
			return failures, fmt.Errorf("placement.Place: %w", err)
		}
		if len(parent.Children) == 0 {
			continue
		}
		if parent.Radius <= 0 {
			return failures, fmt.Errorf("placement.Place: node %d: %w", parent.ID, hyperbolic.ErrNonPositiveRadius)
		}

		st := perParentState{phi: o.Epsilon, band: 1}

		for _, childID := range parent.Children {
			child, err := tree.Node(childID)
			if err != nil {
				return failures, fmt.Errorf("placement.Place: %w", err)
			}

			placeOneChild(tree, &o, &st, parent, child, &failures)
			placed++
			queue = append(queue, childID)
		}
	}

	if placed != tree.Len()-1 {
		return failures, fmt.Errorf("placement.Place: placed %d children, want %d", placed, tree.Len()-1)
	}

	return failures, nil
}

// placeOneChild runs one step of the §4.7 state machine for child on
// parent's hemisphere, then converts the result to a Cartesian
// coordinate in the global frame.
func placeOneChild(tree *core.Tree, o *Options, st *perParentState, parent, child *core.Node, failures *[]Failure) {
	rp := parent.Radius
	rc := child.Radius

	report := func(err error) {
		f := Failure{Node: child.ID, Parent: parent.ID, Radius: rc, ParentRadius: rp, Phi: st.phi, Err: err}
		*failures = append(*failures, f)
		o.Logger.Warn("placement: non-fatal placement failure",
			"node", child.ID, "parent", parent.ID, "radius", rc, "parent_radius", rp, "phi", st.phi, "err", err)
		if o.OnFailure != nil {
			o.OnFailure(f)
		}
	}

	if !st.firstPlaced {
		st.firstPlaced = true
		dPhi, err := hyperbolic.DeltaPhi(rc, rp)
		if err != nil {
			report(err)
			return
		}
		st.phi += dPhi
		child.Band = 0
		child.Theta = 0
		child.Phi = st.phi
	} else {
		dTheta, err := hyperbolic.DeltaTheta(rc, rp, st.phi)
		if err != nil {
			report(err)
			return
		}
		if st.theta+dTheta <= 2*math.Pi {
			st.theta += dTheta
			if st.lastMaxPhi > 0 {
				dPhi, err := hyperbolic.DeltaPhi(rc, rp)
				if err != nil {
					report(err)
					return
				}
				st.lastMaxPhi = dPhi
				st.phi += dPhi
			}
		} else {
			st.band++
			st.theta = dTheta
			dPhi, err := hyperbolic.DeltaPhi(rc, rp)
			if err != nil {
				report(err)
				return
			}
			st.phi += st.lastMaxPhi + dPhi
			st.lastMaxPhi = 0
		}

		child.Band = st.band
		child.Theta = st.theta
		child.Phi = st.phi
		st.theta += dTheta // reserve the other half of the placed hemisphere
	}

	child.Coord = hyperbolic.SphToCart(child.Theta, child.Phi, rp)
	if parent.HasParent() {
		child.Coord = hyperbolic.CoordTransform(child.Coord, parent.Theta, parent.Phi)
		child.Coord = hyperbolic.CartOffset(child.Coord, parent.Coord)
	}
}
