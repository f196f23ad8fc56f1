package bench_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/Kennaoui/COMP272-Spring2026/bench"
)

func TestBuildTree(t *testing.T) {
	added := prometheus.NewCounter(prometheus.CounterOpts{Name: "nodes_added"})
	size := prometheus.NewGauge(prometheus.GaugeOpts{Name: "tree_size"})
	height := prometheus.NewGauge(prometheus.GaugeOpts{Name: "tree_height"})

	ctx := &bench.RunContext{
		Context:          context.Background(),
		Log:              zerolog.Nop(),
		MetricNodesAdded: added,
		MetricTreeSize:   size,
		MetricTreeHeight: height,
	}

	gen := bench.ShallowWideGenerator(42, 2_000)
	tree, err := ctx.BuildTree(gen)
	require.NoError(t, err)
	require.Equal(t, 2_000, tree.Size())
	require.Len(t, tree.Nodes(), 2_000)

	h, err := tree.Height(tree.Root())
	require.NoError(t, err)
	require.Equal(t, float64(2_000), testutil.ToFloat64(added))
	require.Equal(t, float64(2_000), testutil.ToFloat64(size))
	require.Equal(t, float64(h), testutil.ToFloat64(height))
}

func TestBuildTreeDeterministicShape(t *testing.T) {
	ctx := &bench.RunContext{Context: context.Background(), Log: zerolog.Nop()}

	gen := bench.DeepNarrowGenerator(7, 500)
	first, err := ctx.BuildTree(gen)
	require.NoError(t, err)
	second, err := ctx.BuildTree(gen)
	require.NoError(t, err)

	firstLabels := make([]string, 0, first.Size())
	for n := range first.All() {
		firstLabels = append(firstLabels, n.Element())
	}
	secondLabels := make([]string, 0, second.Size())
	for n := range second.All() {
		secondLabels = append(secondLabels, n.Element())
	}
	require.Equal(t, firstLabels, secondLabels)
}

func TestBuildTreeCancelled(t *testing.T) {
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	ctx := &bench.RunContext{Context: cancelled, Log: zerolog.Nop()}

	_, err := ctx.BuildTree(bench.ShallowWideGenerator(1, 100))
	require.ErrorIs(t, err, context.Canceled)
}
