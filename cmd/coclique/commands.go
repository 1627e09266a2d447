package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/coclique/coclique"
	"github.com/katalvlaran/coclique/core"
	"github.com/katalvlaran/coclique/graphfile"
)

// app carries state resolved by the root command's PersistentPreRunE.
type app struct {
	graphPath string
	logLevel  string

	logger *slog.Logger
	graph  *core.Graph
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "coclique",
		Short:         "Check independent sets of a simple graph",
		Long:          `Loads an undirected simple graph from a YAML file and decides whether vertex sets are independent (pairwise non-adjacent).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVarP(&a.graphPath, "graph", "g", "", "path to the graph YAML file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	_ = root.MarkPersistentFlagRequired("graph")

	root.AddCommand(newCheckCmd(a), newEnumerateCmd(a), newComplementCmd(a))

	return root
}

func (a *app) setup(logOut io.Writer) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.logLevel)); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", a.logLevel, err)
	}
	a.logger = slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))

	g, err := graphfile.LoadFile(a.graphPath)
	if err != nil {
		return err
	}
	a.graph = g
	stats := g.Stats()
	a.logger.Info("graph loaded",
		"path", a.graphPath,
		"vertices", stats.VertexCount,
		"edges", stats.EdgeCount,
		"density", stats.Density(),
	)

	return nil
}

func newCheckCmd(a *app) *cobra.Command {
	var (
		size    int
		workers int
	)
	cmd := &cobra.Command{
		Use:   "check [vertex...]",
		Short: "Report whether the given vertices form an independent set",
		Long:  `Prints true when no two of the given vertices are adjacent. With --size, the set must also contain exactly that many distinct vertices. --size and --workers cannot be combined.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			var (
				ok  bool
				err error
			)
			switch {
			case size >= 0:
				ok, err = coclique.IsNIndependentSet(a.graph, args, size)
			case workers > 0:
				ok, err = coclique.IsIndependentSetConcurrent(cmd.Context(), a.graph, args, coclique.WithWorkers(workers))
			default:
				ok, err = coclique.IsIndependentSet(a.graph, args)
			}
			if err != nil {
				return err
			}
			a.logger.Debug("check finished",
				"candidates", len(args),
				"size", size,
				"workers", workers,
				"independent", ok,
				"elapsed", time.Since(start),
			)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), ok)

			return err
		},
	}
	cmd.Flags().IntVarP(&size, "size", "n", -1, "required number of distinct vertices (negative: any)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "shard the pair check across this many goroutines (0: sequential)")
	cmd.MarkFlagsMutuallyExclusive("size", "workers")

	return cmd
}

func newEnumerateCmd(a *app) *cobra.Command {
	var size int
	cmd := &cobra.Command{
		Use:   "enumerate",
		Short: "List every independent set with exactly --size vertices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sets, err := coclique.Enumerate(cmd.Context(), a.graph, size)
			if err != nil {
				return err
			}
			a.logger.Info("enumeration finished", "size", size, "found", len(sets))
			out := cmd.OutOrStdout()
			for _, s := range sets {
				if _, err = fmt.Fprintf(out, "{%s}\n", strings.Join(s, ", ")); err != nil {
					return err
				}
			}

			return nil
		},
	}
	cmd.Flags().IntVarP(&size, "size", "n", 0, "number of vertices per set")
	_ = cmd.MarkFlagRequired("size")

	return cmd
}

func newComplementCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "complement",
		Short: "Write the complement graph as YAML to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return graphfile.Save(cmd.OutOrStdout(), core.Complement(a.graph))
		},
	}
}
