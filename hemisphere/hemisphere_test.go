package hemisphere_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ee08b397/hypy/core"
	"github.com/ee08b397/hypy/depth"
	"github.com/ee08b397/hypy/hemisphere"
	"github.com/ee08b397/hypy/hyperbolic"
)

func layout(t *testing.T, root core.NodeID, edges []core.Edge) *core.Tree {
	tr, err := core.Build(root, edges)
	require.NoError(t, err)
	require.NoError(t, depth.Annotate(tr))
	return tr
}

func TestSizeSingleLeafRoot(t *testing.T) {
	tr := layout(t, 0, nil)
	require.NoError(t, hemisphere.Size(tr))

	root, _ := tr.Node(0)
	want, err := hyperbolic.RadiusForArea(hemisphere.DefaultLeafSeedArea)
	require.NoError(t, err)
	assert.InDelta(t, want, root.Radius, 1e-12)
}

func TestSizeHemisphereRuleHoldsAtEveryNonLeaf(t *testing.T) {
	tr := layout(t, 0, []core.Edge{
		core.NewEdge(1, 0), core.NewEdge(2, 0),
		core.NewEdge(3, 1), core.NewEdge(4, 1),
	})
	require.NoError(t, hemisphere.Size(tr))

	for _, id := range tr.Nodes() {
		n, _ := tr.Node(id)
		if n.IsLeaf() {
			continue
		}
		var sum float64
		for _, c := range n.Children {
			cn, _ := tr.Node(c)
			sum += hyperbolic.HyperbolicArea(cn.Radius)
		}
		want := hemisphere.DefaultLoosePackingFactor * sum
		assert.InDelta(t, want, n.Area, 1e-9, "node %d area", id)
		assert.InDelta(t, hyperbolic.HyperbolicArea(n.Radius), n.Area, 1e-9, "node %d radius<->area", id)
	}
}

func TestSizeInvalidLoosePackingFactor(t *testing.T) {
	tr := layout(t, 0, []core.Edge{core.NewEdge(1, 0)})
	err := hemisphere.Size(tr, hemisphere.WithLoosePackingFactor(0))
	assert.ErrorIs(t, err, hemisphere.ErrOptionViolation)
}

func TestSizeAlphaSeedingOptIn(t *testing.T) {
	tr := layout(t, 0, []core.Edge{
		core.NewEdge(1, 0), core.NewEdge(2, 0), core.NewEdge(3, 0),
	})
	require.NoError(t, hemisphere.Size(tr, hemisphere.WithAlphaSeeding(10.2)))

	leaf, _ := tr.Node(1)
	want, err := hyperbolic.RadiusForArea(3.0 / 10.2)
	require.NoError(t, err)
	assert.InDelta(t, want, leaf.Radius, 1e-12)
}

func TestSizeNilTree(t *testing.T) {
	assert.ErrorIs(t, hemisphere.Size(nil), core.ErrTreeNil)
}

func TestSizeWithVerboseLogsLeavesAndFoldIns(t *testing.T) {
	tr := layout(t, 0, []core.Edge{
		core.NewEdge(1, 0), core.NewEdge(2, 0),
		core.NewEdge(3, 1), core.NewEdge(4, 1),
	})

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	require.NoError(t, hemisphere.Size(tr, hemisphere.WithVerbose(), hemisphere.WithLogger(logger)))

	out := buf.String()
	assert.Contains(t, out, "hemisphere: leaf seeded")
	assert.Contains(t, out, "hemisphere: child area folded")
	assert.Contains(t, out, "hemisphere: node sized")
}

func TestSizeWithLoggerNilRejected(t *testing.T) {
	tr := layout(t, 0, []core.Edge{core.NewEdge(1, 0)})
	err := hemisphere.Size(tr, hemisphere.WithLogger(nil))
	assert.ErrorIs(t, err, hemisphere.ErrOptionViolation)
}
