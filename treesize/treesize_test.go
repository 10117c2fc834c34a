package treesize_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ee08b397/hypy/core"
	"github.com/ee08b397/hypy/depth"
	"github.com/ee08b397/hypy/treesize"
)

func build(t *testing.T, root core.NodeID, edges []core.Edge) *core.Tree {
	tr, err := core.Build(root, edges)
	require.NoError(t, err)
	require.NoError(t, depth.Annotate(tr))
	return tr
}

func TestComputeSingleNode(t *testing.T) {
	tr := build(t, 0, nil)
	require.NoError(t, treesize.Compute(tr))
	root, _ := tr.Node(0)
	assert.Equal(t, 1, root.TreeSize)
}

func TestComputeLinearChain(t *testing.T) {
	tr := build(t, 0, []core.Edge{
		core.NewEdge(1, 0), core.NewEdge(2, 1), core.NewEdge(3, 2),
	})
	require.NoError(t, treesize.Compute(tr))

	for id, want := range map[core.NodeID]int{3: 1, 2: 2, 1: 3, 0: 4} {
		n, _ := tr.Node(id)
		assert.Equal(t, want, n.TreeSize, "node %d", id)
	}
}

func TestComputeStarAccumulation(t *testing.T) {
	tr := build(t, 0, []core.Edge{
		core.NewEdge(1, 0), core.NewEdge(2, 0), core.NewEdge(3, 0),
	})
	require.NoError(t, treesize.Compute(tr))

	root, _ := tr.Node(0)
	assert.Equal(t, 4, root.TreeSize)
	assert.Equal(t, root.TreeSize, tr.Len())
}

func TestComputeSizeAccumulationInvariant(t *testing.T) {
	tr := build(t, 0, []core.Edge{
		core.NewEdge(1, 0), core.NewEdge(2, 0),
		core.NewEdge(3, 1), core.NewEdge(4, 1),
	})
	require.NoError(t, treesize.Compute(tr))

	for _, id := range tr.Nodes() {
		n, _ := tr.Node(id)
		sum := 1
		for _, c := range n.Children {
			cn, _ := tr.Node(c)
			sum += cn.TreeSize
		}
		assert.Equal(t, sum, n.TreeSize, "node %d", id)
	}
	root, _ := tr.Node(0)
	assert.Equal(t, tr.Len(), root.TreeSize)
}

func TestComputeWithVerboseLogsEveryAccumulation(t *testing.T) {
	tr := build(t, 0, []core.Edge{core.NewEdge(1, 0), core.NewEdge(2, 0)})

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	require.NoError(t, treesize.Compute(tr, treesize.WithVerbose(), treesize.WithLogger(logger)))

	out := buf.String()
	assert.Equal(t, 2, bytes.Count([]byte(out), []byte("treesize: accumulated")))
}

func TestComputeWithLoggerNilRejected(t *testing.T) {
	tr := build(t, 0, nil)
	err := treesize.Compute(tr, treesize.WithLogger(nil))
	assert.ErrorIs(t, err, treesize.ErrOptionViolation)
}
