package core

import "github.com/ee08b397/hypy/hyperbolic"

// NodeID uniquely identifies a Node within a Tree's arena.
type NodeID int

// noParent is the sentinel "unset" parent value for the root node.
const noParent NodeID = -1

// Edge is a (child, parent) pair as consumed by Build. Parent is
// unset (see HasParent) for the edge that declares the root.
type Edge struct {
	Child  NodeID
	Parent NodeID

	// parentSet distinguishes "parent omitted" from "parent ==
	// NodeID(0)" — zero is a legitimate node id.
	parentSet bool
}

// NewEdge builds a (child, parent) edge.
func NewEdge(child, parent NodeID) Edge {
	return Edge{Child: child, Parent: parent, parentSet: true}
}

// NewRootEdge builds an edge with no parent, naming child as a root.
// Build takes the tree's root from its own root argument, so it rejects
// any such edge with ErrDuplicateRoot.
func NewRootEdge(child NodeID) Edge {
	return Edge{Child: child, parentSet: false}
}

// HasParent reports whether this edge carries a parent (false only
// for the root-declaring edge).
func (e Edge) HasParent() bool { return e.parentSet }

// Node is one vertex of the tree. Fields are written only by the
// builder (Parent, Children) and by the annotator/sizer/ordering/
// placement stages in sibling packages, in the order spec.md §2
// prescribes; nothing in this package mutates a Node after Build
// returns.
type Node struct {
	ID NodeID

	// Parent is unset (HasParent reports false) only for the root.
	Parent    NodeID
	hasParent bool

	// Children is ordered; order is semantically significant — it
	// dictates angular placement (spec.md §3).
	Children []NodeID

	Depth    int
	TreeSize int

	Radius float64
	Area   float64

	Band  int
	Theta float64
	Phi   float64

	Coord hyperbolic.Point4d
}

// HasParent reports whether n has a parent; it is false only for the
// root.
func (n *Node) HasParent() bool { return n.hasParent }

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// Tree is a mapping from NodeID to Node, plus the declared root and
// the overall height recorded by the depth annotator. The zero value
// is not usable; construct with Build.
type Tree struct {
	nodes map[NodeID]*Node
	root  NodeID
	// height is set by the depth annotator (package depth); it is
	// read here only so layout.Report can surface it without an
	// import cycle back into depth.
	height int
}

// Root returns the tree's root id.
func (t *Tree) Root() NodeID { return t.root }

// Height returns the last height recorded by the depth annotator (0
// until depth.Annotate has run).
func (t *Tree) Height() int { return t.height }

// SetHeight records the overall tree height. Called by package depth
// after its BFS pass; exported so depth does not need unsafe or
// reflection to reach into an unexported field from another package.
func (t *Tree) SetHeight(h int) { t.height = h }

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int { return len(t.nodes) }

// Node returns the node for id, or ErrNodeNotFound if id is absent.
func (t *Tree) Node(id NodeID) (*Node, error) {
	n, ok := t.nodes[id]
	if !ok {
		return nil, ErrNodeNotFound
	}
	return n, nil
}

// Nodes returns every node id in the tree, in arbitrary map order.
// Callers that need a deterministic order should traverse via a BFS
// walker (see depth, treesize, placement) rather than this accessor.
func (t *Tree) Nodes() []NodeID {
	ids := make([]NodeID, 0, len(t.nodes))
	for id := range t.nodes {
		ids = append(ids, id)
	}
	return ids
}
