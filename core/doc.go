// Package core defines the in-memory tree model for the hyperbolic
// H3-style layout engine: NodeID, Edge, Node, and Tree, plus the
// builder that assembles a Tree from an edge list.
//
// A Tree owns its nodes in a single arena keyed by NodeID; every
// reference within the package — parent, children, root — is by id,
// never by live pointer, so the arena can be walked, resized, and
// eventually discarded as one unit (spec.md §9, "graph-by-index, not
// by pointer").
//
// The Tree is built once by Build and then mutated only by the
// annotator/sizer/placement stages that live in sibling packages
// (depth, treesize, hemisphere, order, placement); nothing in this
// package computes depth, size, radius, or placement itself.
package core
