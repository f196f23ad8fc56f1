package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/Kennaoui/COMP272-Spring2026/trees"
)

// RunContext carries everything a build run needs: a logger, optional
// prometheus instruments, and how often to report progress.
type RunContext struct {
	context.Context

	Log zerolog.Logger

	// ProgressInterval is the number of inserts between progress log
	// lines. Zero disables progress logging.
	ProgressInterval int

	MetricNodesAdded prometheus.Counter
	MetricTreeSize   prometheus.Gauge
	MetricTreeHeight prometheus.Gauge
}

// BuildTree drives a generator's insert sequence into a fresh tree,
// logging progress and updating metrics along the way.
func (c *RunContext) BuildTree(gen TreeGenerator) (*trees.Tree[string], error) {
	itr, err := gen.Iterator()
	if err != nil {
		return nil, err
	}

	tree := trees.New[string]()
	// handles maps creation-order index to the node the tree returned.
	handles := make([]*trees.Node[string], 0, gen.Nodes)

	cnt := 0
	since := time.Now()
	for ; itr.Valid(); itr.Next() {
		if err := c.Err(); err != nil {
			return nil, err
		}

		ins := itr.Insert
		var node *trees.Node[string]
		if ins.Parent < 0 {
			node, err = tree.AddRoot(ins.Label)
		} else {
			node, err = tree.AddChild(handles[ins.Parent], ins.Label)
		}
		if err != nil {
			return nil, fmt.Errorf("error applying insert %d: %w", cnt, err)
		}
		handles = append(handles, node)

		if c.MetricNodesAdded != nil {
			c.MetricNodesAdded.Inc()
		}

		cnt++
		if c.ProgressInterval > 0 && cnt%c.ProgressInterval == 0 {
			c.Log.Info().Msgf("added %s nodes in %s; %s nodes/s",
				humanize.Comma(int64(cnt)),
				time.Since(since),
				humanize.Comma(int64(float64(c.ProgressInterval)/time.Since(since).Seconds())))
			since = time.Now()
		}
	}

	height, err := tree.Height(tree.Root())
	if err != nil {
		return nil, fmt.Errorf("error computing final height: %w", err)
	}
	if c.MetricTreeSize != nil {
		c.MetricTreeSize.Set(float64(tree.Size()))
	}
	if c.MetricTreeHeight != nil {
		c.MetricTreeHeight.Set(float64(height))
	}

	c.Log.Info().
		Int("size", tree.Size()).
		Int("height", height).
		Int64("seed", gen.Seed).
		Msg("tree built")

	return tree, nil
}
