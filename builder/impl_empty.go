// SPDX-License-Identifier: MIT
// Package: coclique/builder
//
// impl_empty.go — implementation of Empty(n) constructor.
//
// Contract:
//   • n ≥ 0; n == 0 adds nothing.
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1), no edges.
//
// Every subset of the edgeless graph is independent.

package builder

import (
	"fmt"

	"github.com/katalvlaran/coclique/core"
)

const (
	methodEmpty   = "Empty"
	minEmptyNodes = 0
)

// Empty returns a Constructor that adds n isolated vertices.
func Empty(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minEmptyNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodEmpty, n, minEmptyNodes, ErrTooFewVertices)
		}
		_, err := addVertices(methodEmpty, g, cfg, n)

		return err
	}
}
