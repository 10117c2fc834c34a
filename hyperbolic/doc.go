// Package hyperbolic provides the pure-math kernel behind the H3-style
// hemisphere layout: area/radius conversions for hyperbolic discs, the
// angular widths a child hemisphere consumes on its parent's hemisphere,
// and the spherical-to-Cartesian conversions used to compose nested
// placements into one global frame.
//
// Every function here is a pure, side-effect-free transform over
// float64 scalars and Point4d values; nothing in this package allocates
// beyond its return value, and nothing here touches a Tree or Node.
package hyperbolic
