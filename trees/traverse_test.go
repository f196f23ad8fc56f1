package trees_test

import (
	"testing"

	"github.com/Kennaoui/COMP272-Spring2026/trees"
	"github.com/stretchr/testify/require"
)

func elements(nodes []*trees.Node[string]) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Element()
	}
	return out
}

func TestNodesPreorder(t *testing.T) {
	tr, _ := buildSample(t)
	require.Equal(t, []string{"A", "B", "D", "C"}, elements(tr.Nodes()))
}

func TestNodesRepeatable(t *testing.T) {
	tr, _ := buildSample(t)
	first := tr.Nodes()
	second := tr.Nodes()
	require.Equal(t, first, second)

	// sequences are independent snapshots
	first[0] = nil
	require.NotNil(t, second[0])
}

func TestNodesStartsAtRoot(t *testing.T) {
	tr, _ := buildSample(t)
	nodes := tr.Nodes()
	require.Len(t, nodes, tr.Size())
	require.Same(t, tr.Root(), nodes[0])
}

func TestNodesWiderTree(t *testing.T) {
	tr := trees.New[string]()
	root, err := tr.AddRoot("r")
	require.NoError(t, err)
	var last *trees.Node[string]
	for _, label := range []string{"a", "b", "c"} {
		last, err = tr.AddChild(root, label)
		require.NoError(t, err)
	}
	for _, label := range []string{"c1", "c2"} {
		_, err = tr.AddChild(last, label)
		require.NoError(t, err)
	}
	require.Equal(t, []string{"r", "a", "b", "c", "c1", "c2"}, elements(tr.Nodes()))
}

func TestAllMatchesNodes(t *testing.T) {
	tr, _ := buildSample(t)
	var got []*trees.Node[string]
	for n := range tr.All() {
		got = append(got, n)
	}
	require.Equal(t, tr.Nodes(), got)
}

func TestAllEarlyBreak(t *testing.T) {
	tr, nodes := buildSample(t)
	for n := range tr.All() {
		require.Same(t, nodes["A"], n)
		break
	}
}
