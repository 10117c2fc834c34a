package hyperbolic

import "math"

// Point4d is a homogeneous 4D point (x, y, z, w). w is always 1 for
// points produced by this package; it is carried so translation
// (CartOffset) and rotation (CoordTransform) compose the way affine
// transforms normally do.
type Point4d struct {
	X, Y, Z, W float64
}

// Origin is the global-frame coordinate of a tree's root.
var Origin = Point4d{X: 0, Y: 0, Z: 0, W: 1}

// HyperbolicArea returns the area of a hyperbolic disc of radius r:
// 4*pi*sinh^2(r/2).
func HyperbolicArea(r float64) float64 {
	s := math.Sinh(r / 2)
	return 4 * math.Pi * s * s
}

// RadiusForArea is the inverse of HyperbolicArea: 2*asinh(sqrt(a/(4*pi))).
// a == 0 returns 0. a < 0 is a fatal precondition violation
// (ErrNegativeArea).
func RadiusForArea(a float64) (float64, error) {
	if a < 0 {
		return 0, ErrNegativeArea
	}
	if a == 0 {
		return 0, nil
	}
	return 2 * math.Asinh(math.Sqrt(a/(4*math.Pi))), nil
}

// clamp confines x to [lo, hi].
func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// DeltaTheta returns the azimuthal half-width consumed by a child
// hemisphere of radius rc placed at polar angle phi on a parent
// hemisphere of radius rp:
//
//	asin( sinh(rc) / (sinh(rp) * sin(phi)) )
//
// clamped to [0, pi]. rp <= 0 is a fatal precondition violation
// (ErrNonPositiveRadius). A division-by-zero or out-of-domain result
// (sin(phi) == 0, the phi == 0 singularity) returns ErrSingularAngle;
// callers must treat that as non-fatal.
func DeltaTheta(rc, rp, phi float64) (float64, error) {
	if rp <= 0 {
		return 0, ErrNonPositiveRadius
	}
	denom := math.Sinh(rp) * math.Sin(phi)
	x := math.Sinh(rc) / denom
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, ErrSingularAngle
	}
	theta := math.Asin(clamp(x, -1, 1))
	return clamp(theta, 0, math.Pi), nil
}

// DeltaPhi returns the polar-angle width consumed by a child hemisphere
// of radius rc on a parent hemisphere of radius rp:
//
//	asin( sinh(rc) / sinh(rp) )
//
// clamped to [0, pi/2]. rp <= 0 is a fatal precondition violation
// (ErrNonPositiveRadius).
func DeltaPhi(rc, rp float64) (float64, error) {
	if rp <= 0 {
		return 0, ErrNonPositiveRadius
	}
	x := math.Sinh(rc) / math.Sinh(rp)
	phi := math.Asin(clamp(x, -1, 1))
	return clamp(phi, 0, math.Pi/2), nil
}

// SphToCart maps spherical coordinates (theta, phi, r) on a hemisphere
// to a local Cartesian Point4d:
//
//	x = r*sin(phi)*cos(theta), y = r*sin(phi)*sin(theta), z = r*cos(phi)
func SphToCart(theta, phi, r float64) Point4d {
	sp, cp := math.Sincos(phi)
	st, ct := math.Sincos(theta)
	return Point4d{
		X: r * sp * ct,
		Y: r * sp * st,
		Z: r * cp,
		W: 1,
	}
}

// CoordTransform rotates p so that the local +z axis (the pole p was
// placed relative to) is realigned with the direction (thetaP, phiP) in
// the parent's frame. Equivalent to applying R_z(thetaP) * R_y(phiP) to
// p.
func CoordTransform(p Point4d, thetaP, phiP float64) Point4d {
	sp, cp := math.Sincos(phiP)
	st, ct := math.Sincos(thetaP)

	// Rotate about Y by phiP.
	x1 := p.X*cp + p.Z*sp
	y1 := p.Y
	z1 := -p.X*sp + p.Z*cp

	// Rotate about Z by thetaP.
	x2 := x1*ct - y1*st
	y2 := x1*st + y1*ct
	z2 := z1

	return Point4d{X: x2, Y: y2, Z: z2, W: 1}
}

// CartOffset translates p by q, component-wise over x, y, z; w is
// always set to 1.
func CartOffset(p, q Point4d) Point4d {
	return Point4d{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z, W: 1}
}
