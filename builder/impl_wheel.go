// SPDX-License-Identifier: MIT
// Package: coclique/builder
//
// impl_wheel.go — implementation of Wheel(n) constructor.
//
// Wₙ = Cₙ₋₁ + "Center": a cycle of size n-1 plus a hub joined to every
// ring vertex. Therefore n ≥ 4.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices).
//   • Builds the ring with Cycle(n-1) using the same cfg.
//   • Emits spokes from "Center" in ring index order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/coclique/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds the wheel W_n.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodWheel, err)
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(methodWheel, g, centerVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
