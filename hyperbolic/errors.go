package hyperbolic

import "errors"

// Sentinel errors for the hyperbolic math kernel.
//
// Error policy (mirrors lvlath/core, lvlath/builder): only package-level
// sentinels are exposed; callers branch with errors.Is. These two are
// fatal precondition violations per spec — callers must abort rather
// than substitute a default.
var (
	// ErrNegativeArea indicates RadiusForArea was called with a < 0.
	ErrNegativeArea = errors.New("hyperbolic: area must be non-negative")

	// ErrNonPositiveRadius indicates DeltaTheta or DeltaPhi was called
	// with a parent hemisphere radius rp <= 0.
	ErrNonPositiveRadius = errors.New("hyperbolic: parent radius must be positive")

	// ErrSingularAngle indicates DeltaTheta hit a division-by-zero (or a
	// result outside the real domain) because sin(phi) is effectively
	// zero. Callers in the placement engine treat this as a non-fatal
	// placement failure: log it, keep the node's prior partial state,
	// and continue.
	ErrSingularAngle = errors.New("hyperbolic: singular angle (sin(phi) == 0)")
)
