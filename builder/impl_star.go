// SPDX-License-Identifier: MIT
// Package: coclique/builder
//
// impl_star.go — implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Hub has the fixed ID "Center"; leaves use cfg.idFn(1..n-1).
//   • Emits spokes Center - leaf in increasing leaf index.
//
// The leaves form the unique maximum independent set (for n ≥ 3).

package builder

import (
	"fmt"

	"github.com/katalvlaran/coclique/core"
)

const (
	methodStar     = "Star"
	minStarNodes   = 2
	centerVertexID = "Center"
)

// Star returns a Constructor that builds a star with hub "Center" and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := g.AddVertex(centerVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, centerVertexID, err)
		}
		for i := 1; i < n; i++ {
			if err := addEdge(methodStar, g, centerVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
