package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Kennaoui/COMP272-Spring2026/bench"
	"github.com/Kennaoui/COMP272-Spring2026/stack"
)

func main() {
	root := &cobra.Command{
		Use:   "treebench",
		Short: "Exercises the tree ADTs in this repository.",
	}
	root.AddCommand(genCommand(), parenCommand())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func genCommand() *cobra.Command {
	var (
		seed        int64
		nodes       int
		maxChildren int
		progress    int
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Builds a deterministic random tree and reports its shape.",
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for the tree generator.")
	cmd.Flags().IntVar(&nodes, "nodes", 100_000, "Number of nodes to generate.")
	cmd.Flags().IntVar(&maxChildren, "max-children", 0, "Branching cap per node. 0 means unbounded.")
	cmd.Flags().IntVar(&progress, "progress", 10_000, "Inserts between progress log lines. 0 disables.")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().Timestamp().Logger()

		registry := prometheus.NewRegistry()
		added := prometheus.NewCounter(prometheus.CounterOpts{
			Name: "treebench_nodes_added",
			Help: "Total nodes added to the tree.",
		})
		size := prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "treebench_tree_size",
			Help: "Final size of the built tree.",
		})
		height := prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "treebench_tree_height",
			Help: "Final height of the built tree.",
		})
		registry.MustRegister(added, size, height)

		ctx := &bench.RunContext{
			Context:          cmd.Context(),
			Log:              log,
			ProgressInterval: progress,
			MetricNodesAdded: added,
			MetricTreeSize:   size,
			MetricTreeHeight: height,
		}
		if ctx.Context == nil {
			ctx.Context = context.Background()
		}

		gen := bench.TreeGenerator{
			Seed:        seed,
			Nodes:       nodes,
			MaxChildren: maxChildren,
			LabelMean:   12,
			LabelStdDev: 4,
		}

		start := time.Now()
		tree, err := ctx.BuildTree(gen)
		if err != nil {
			return fmt.Errorf("error building tree: %w", err)
		}

		h, err := tree.Height(tree.Root())
		if err != nil {
			return err
		}
		leaves := 0
		for n := range tree.All() {
			if n.NumChildren() == 0 {
				leaves++
			}
		}
		log.Info().
			Int("size", tree.Size()).
			Int("height", h).
			Int("leaves", leaves).
			Dur("elapsed", time.Since(start)).
			Msg("done")
		return nil
	}
	return cmd
}

func parenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paren [expr...]",
		Short: "Checks expressions for balanced grouping symbols.",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		for _, expr := range args {
			fmt.Printf("%q: %v\n", expr, stack.ParenMatch(expr))
		}
		return nil
	}
	return cmd
}
