package coclique

import "errors"

var (
	// ErrInvalidVertex indicates a candidate vertex is not in the graph's
	// vertex set. The wrapped chain also matches core.ErrVertexNotFound.
	ErrInvalidVertex = errors.New("coclique: invalid vertex")

	// ErrInvalidSize indicates a negative target cardinality.
	ErrInvalidSize = errors.New("coclique: invalid size")
)

// errAdjacentPair stops sibling shards once one of them finds an edge.
var errAdjacentPair = errors.New("coclique: adjacent pair")
