// Package coclique is the root of an in-memory toolkit for independent sets
// (cocliques) of simple graphs.
//
// What is in the box:
//
//	core/      — simple undirected Graph, complement / induced subgraph /
//	             relabeling views and the subgraph order
//	builder/   — deterministic fixtures: Empty, Path, Cycle, Star, Wheel,
//	             Complete, CompleteBipartite, seeded RandomSparse
//	clique/    — IsClique, IsNClique
//	coclique/  — IsIndependentSet, IsNIndependentSet, the complement-based
//	             cross-check, a row-sharded concurrent check, Enumerate, Free
//	graphfile/ — YAML load/save
//	cmd/coclique — CLI over the above
//
// Quick ASCII example:
//
//	1───2
//
//	3───4
//
// {1,3} is independent, {1,2} is not, and {1,3,4} is not an independent
// set of size 3 because 3 and 4 are adjacent.
//
//	go get github.com/katalvlaran/coclique
package coclique
