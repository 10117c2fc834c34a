package core

import "fmt"

// Build assembles a Tree rooted at root from edges, an ordered
// sequence of (child, parent) pairs, mirroring
// original_source/tree.py's Tree.__init__/insert_edge: a parent that
// has not yet appeared as a child is materialized as a placeholder
// node so edges may arrive before their parent does.
//
// root is installed as the tree's root before any edge is processed
// (spec.md §6 lists it as a distinct input alongside the edge list;
// this also gives the single-node boundary case — edges == nil — a
// tree of exactly one node).
//
// Build rejects:
//   - a root-declaring edge (NewRootEdge, i.e. HasParent() == false)
//     once a root has already been installed (ErrDuplicateRoot);
//   - an edge naming root as a child with a parent (ErrCycleToRoot);
//   - an edge that would re-parent a node already given a different
//     parent by an earlier edge (ErrMalformedInput — see DESIGN.md's
//     "Re-parenting tolerance" decision: this module rejects rather
//     than last-writer-wins).
//
// Build does not detect general cycles beyond the cycle-to-root check;
// callers are expected to supply a tree edge set (spec.md §4.2).
func Build(root NodeID, edges []Edge) (*Tree, error) {
	t := &Tree{nodes: make(map[NodeID]*Node), root: root}
	t.ensureNode(root)

	for _, e := range edges {
		if !e.HasParent() {
			return nil, fmt.Errorf("core.Build: %w", ErrDuplicateRoot)
		}
		if e.Child == root {
			return nil, fmt.Errorf("core.Build: %w", ErrCycleToRoot)
		}

		child := t.ensureNode(e.Child)
		if child.hasParent && child.Parent != e.Parent {
			return nil, fmt.Errorf("core.Build: node %d already has parent %d, got %d: %w",
				e.Child, child.Parent, e.Parent, ErrMalformedInput)
		}

		parent := t.ensureNode(e.Parent)
		if !child.hasParent {
			parent.Children = append(parent.Children, e.Child)
			child.Parent = e.Parent
			child.hasParent = true
		}
	}

	return t, nil
}

// ensureNode returns the node for id, materializing an empty
// placeholder if it has not been seen yet.
func (t *Tree) ensureNode(id NodeID) *Node {
	if n, ok := t.nodes[id]; ok {
		return n
	}
	n := &Node{ID: id, Parent: noParent, TreeSize: 1}
	t.nodes[id] = n
	return n
}
