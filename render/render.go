// Package render provides an optional ASCII diagnostic dump of a
// laid-out tree. It is not part of the core pipeline (spec.md §1 lists
// rendering as an external collaborator) — nothing in layout,
// placement, or hemisphere imports it.
//
// Grounded on other_examples' thediveo-go-asciitree example
// (struct-tag-driven asciitree.Render), substituting for the original
// Python's dropped Tree.print_tree/Tree.scatter_plot debug aids
// (SPEC_FULL.md §4) without reimplementing the out-of-scope 3D
// scatter/equator renderer.
package render

import (
	"fmt"

	asciitree "github.com/thediveo/go-asciitree"

	"github.com/ee08b397/hypy/core"
)

// node is the struct-tag-annotated shape asciitree.Render walks. Its
// label carries id, depth, size, radius and band; the parent id and
// the number of children are not in the label, being implicit in the
// rendered tree's own nesting.
type node struct {
	Label    string `asciitree:"label"`
	Children []node `asciitree:"children"`
}

// Dump renders tree as an ASCII tree, one line per node, each labeled
// with its id, depth, subtree size, hemisphere radius, and band on its
// parent's hemisphere. Nodes are built bottom-up (iterative reverse
// BFS by depth) rather than by recursive descent, consistent with
// spec.md §9's "iterative traversal... tolerate tree heights that can
// approach n".
func Dump(tree *core.Tree) (string, error) {
	if tree == nil {
		return "", fmt.Errorf("render.Dump: %w", core.ErrTreeNil)
	}

	byDepth := make(map[int][]core.NodeID)
	maxDepth := 0
	for _, id := range tree.Nodes() {
		n, err := tree.Node(id)
		if err != nil {
			return "", fmt.Errorf("render.Dump: %w", err)
		}
		byDepth[n.Depth] = append(byDepth[n.Depth], id)
		if n.Depth > maxDepth {
			maxDepth = n.Depth
		}
	}

	built := make(map[core.NodeID]node, tree.Len())
	for d := maxDepth; d >= 0; d-- {
		for _, id := range byDepth[d] {
			n, err := tree.Node(id)
			if err != nil {
				return "", fmt.Errorf("render.Dump: %w", err)
			}
			children := make([]node, 0, len(n.Children))
			for _, c := range n.Children {
				children = append(children, built[c])
			}
			built[id] = node{
				Label: fmt.Sprintf("id:%d depth:%d size:%d radius:%.6f band:%d",
					n.ID, n.Depth, n.TreeSize, n.Radius, n.Band),
				Children: children,
			}
		}
	}

	return asciitree.RenderFancy(built[tree.Root()]), nil
}
