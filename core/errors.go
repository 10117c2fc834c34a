package core

import "errors"

// Sentinel errors for the tree builder and tree accessors.
//
// Error policy (mirrors lvlath/core, lvlath/builder): only package-level
// sentinels are exposed; callers branch with errors.Is. Build wraps
// these with %w and a short method-name prefix; it never stringifies
// a sentinel into a new message at the definition site.
var (
	// ErrDuplicateRoot indicates the edge list declares a second root:
	// any edge with an unset parent, since Build has already installed
	// its root argument. Fatal; spec.md §7.
	ErrDuplicateRoot = errors.New("core: duplicate root")

	// ErrCycleToRoot indicates an edge (root, p) with p set — the
	// declared root cannot also be someone's child. Fatal; spec.md §7.
	ErrCycleToRoot = errors.New("core: cycle back to root")

	// ErrMalformedInput indicates a structurally invalid edge list: a
	// re-parenting edge for a node that already has a different
	// parent (see DESIGN.md's "Re-parenting tolerance" decision). An
	// empty edge list is not rejected; Build returns the one-node tree.
	ErrMalformedInput = errors.New("core: malformed input")

	// ErrNodeNotFound indicates an accessor referenced a node id that
	// is not present in the tree's arena.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrTreeNil indicates a function received a nil *Tree.
	ErrTreeNil = errors.New("core: tree is nil")
)
