// SPDX-License-Identifier: MIT
// Package coclique decides whether a vertex subset of a simple graph is an
// independent set (a coclique): no two distinct members are adjacent.
//
// Checks:
//
//	IsIndependentSet(g, S)                    // S pairwise non-adjacent
//	IsNIndependentSet(g, S, n)                // ... and |S| == n
//	IsIndependentSetViaComplement(g, S)       // clique test on the complement
//	IsIndependentSetConcurrent(ctx, g, S, …)  // row-sharded across goroutines
//	CanInsert(g, S, a)                        // a is non-adjacent to all of S
//
// Search:
//
//	Enumerate(ctx, g, n) // every n-independent set, lexicographic
//	Free(ctx, g, n)      // no n-independent set exists
//
// Candidate sets are []string treated as sets: order is irrelevant and
// duplicates collapse. Every member must be a vertex of g; otherwise the
// check fails with an error matching ErrInvalidVertex before any pair is
// examined. The empty set and singletons are always independent.
//
// Laws that hold for every graph g and set S (and that the tests exercise):
//
//	IsIndependentSet(g, S) == clique.IsClique(core.Complement(g), S)
//	core.IsSubgraphOf(g, h) && IsIndependentSet(h, S) ⇒ IsIndependentSet(g, S)
//	IsIndependentSet(g, S) ⇒ IsIndependentSet(core.Map(g, f), f(S))  // f injective
//	a ∉ S ⇒ IsIndependentSet(g, S ∪ {a}) == IsIndependentSet(g, S) && CanInsert(g, S, a)
//
// Complexity: O(|S|²) adjacency tests of O(1) each.
package coclique
