// Package hypy lays a rooted tree onto a set of nested hemispheres,
// producing 3D Cartesian coordinates suitable for visualization — the
// H3-style hyperbolic tree layout.
//
// Given an edge list and a declared root, the engine sizes every
// subtree's hemisphere so it is just large enough to hold the
// hemispheres of its children without overlap, packs those children
// onto their parent's hemisphere in latitude bands, and composes the
// nested local placements into one global Cartesian frame centered at
// the root.
//
// The pipeline runs in strict stages, each reading the outputs of the
// ones before it:
//
//	core/       — Node/Tree arena and the edge-list builder
//	depth/      — breadth-first depth assignment + tree height
//	treesize/   — bottom-up subtree-size accumulation
//	hyperbolic/ — the pure hyperbolic-trig math kernel
//	hemisphere/ — bottom-up hemisphere radius/area sizing
//	order/      — child reordering before placement
//	placement/  — angular packing + Cartesian coordinate composition
//	layout/     — orchestrates the stages above, plus coordinate readout
//	render/     — optional ASCII diagnostic dump (not part of the pipeline)
//
// layout.Layout is the single entry point most callers need:
//
//	tree, report, err := layout.Layout(root, edges)
//	coords, err := layout.Coordinates(tree)
//
// Generation of input graphs, 3D scatter/equator rendering, CLI and
// benchmark drivers, and CSV export are external collaborators and
// are not part of this module.
package hypy
