// SPDX-License-Identifier: MIT
// Package: coclique/builder
//
// impl_bipartite.go — implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   • n1, n2 ≥ 1 (else ErrTooFewVertices).
//   • Left IDs "<left><i>", right IDs "<right><j>" (defaults "L", "R").
//   • Emits every cross pair in (i over left, j over right) order.
//
// Each side is an independent set; no independent set mixes both sides.

package builder

import (
	"fmt"

	"github.com/katalvlaran/coclique/core"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor for the complete bipartite graph K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}

		left := partitionIDs(cfg.leftPrefix, n1)
		right := partitionIDs(cfg.rightPrefix, n2)
		for _, id := range append(append([]string{}, left...), right...) {
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodCompleteBipartite, id, err)
			}
		}
		for _, u := range left {
			for _, v := range right {
				if err := addEdge(methodCompleteBipartite, g, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

func partitionIDs(prefix string, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("%s%d", prefix, i)
	}

	return ids
}
