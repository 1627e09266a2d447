// Package builder provides deterministic "functional-options"-style graph
// constructors for fixtures, examples and property tests.
//
// The package offers:
//
//   - BuildGraph(gopts, bopts, cons...): one orchestrator that creates a
//     core.Graph, resolves the builder configuration and runs constructors in order.
//   - Topologies (Constructor factories):
//     – Empty(n):                 n isolated vertices.
//     – Path(n), Cycle(n):        P_n (n ≥ 2), C_n (n ≥ 3).
//     – Star(n), Wheel(n):        hub "Center" plus leaves / ring.
//     – Complete(n):              K_n.
//     – CompleteBipartite(n1,n2): K_{n1,n2} with "L"/"R" prefixed IDs.
//     – RandomSparse(n, p):       Erdős–Rényi G(n, p), seeded.
//   - Vertex-ID schemes (IDFn): DefaultIDFn ("0","1",…), ExcelColumnIDFn
//     ("A",…,"Z","AA",…), SymbolNumberIDFn(prefix) ("v0","v1",…).
//   - Options: WithIDScheme, WithSeed, WithRand, WithPartitionPrefix,
//     WithSymbNumb, WithExcelColumnIDs.
//
// Guarantees:
//
//   - Determinism: same inputs, options, seed and constructor order yield
//     identical graphs.
//   - Idempotent composition: running the same constructor twice on g does
//     not duplicate vertices or edges (core.Graph ignores repeats).
//   - Invalid build parameters return wrapped sentinels (ErrTooFewVertices,
//     ErrInvalidProbability, ErrNeedRandSource); invalid option values panic
//     in the option constructor.
//
// Example:
//
//	g, err := builder.BuildGraph(nil,
//		[]builder.BuilderOption{builder.WithSeed(42)},
//		builder.RandomSparse(10, 0.3))
package builder
