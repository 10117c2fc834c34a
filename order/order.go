// Package order reorders each node's Children slice in place,
// descending by a chosen key, so the placement engine (package
// placement) packs the largest hemispheres closest to the pole first.
//
// Grounded on original_source/tree.py's sort_children_by_radius /
// sort_children_by_tree_size (BFS + sort(key=itemgetter(1),
// reverse=True)); this module uses sort.SliceStable for the same
// stable-tie-break guarantee, mirroring lvlath's own preference for
// stdlib sort wrappers over hand-rolled comparators
// (core/adjacency_list.go's use of sort.Strings for deterministic
// iteration).
package order

import (
	"fmt"
	"sort"

	"github.com/ee08b397/hypy/core"
)

// ByRadius sorts every node's Children descending by child.Radius,
// stable on ties. This is the primary child-ordering mode (spec.md
// §4.6).
func ByRadius(tree *core.Tree) error {
	return reorder(tree, "order.ByRadius", func(n *core.Node) float64 { return n.Radius })
}

// ByTreeSize sorts every node's Children descending by
// child.TreeSize, stable on ties. Alternative mode to ByRadius.
func ByTreeSize(tree *core.Tree) error {
	return reorder(tree, "order.ByTreeSize", func(n *core.Node) float64 { return float64(n.TreeSize) })
}

// keyedChild pairs a child id with its sort key so sort.SliceStable
// permutes the key alongside the id it was computed from.
type keyedChild struct {
	id  core.NodeID
	key float64
}

func reorder(tree *core.Tree, caller string, key func(*core.Node) float64) error {
	if tree == nil {
		return fmt.Errorf("%s: %w", caller, core.ErrTreeNil)
	}

	for _, id := range tree.Nodes() {
		n, err := tree.Node(id)
		if err != nil {
			return fmt.Errorf("%s: %w", caller, err)
		}
		if len(n.Children) < 2 {
			continue
		}

		pairs := make([]keyedChild, len(n.Children))
		for i, c := range n.Children {
			cn, err := tree.Node(c)
			if err != nil {
				return fmt.Errorf("%s: %w", caller, err)
			}
			pairs[i] = keyedChild{id: c, key: key(cn)}
		}

		sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].key > pairs[j].key })

		for i, p := range pairs {
			n.Children[i] = p.id
		}
	}

	return nil
}
