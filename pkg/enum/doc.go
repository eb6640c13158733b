// Package enum enumerates independent sets, matchings and T-sets of a simple
// undirected graph, and filters T-sets by size proximity.
//
// # Overview
//
// Every function in this package is a pure, total function of its inputs:
// nothing returns an error, nothing mutates the graph, and empty results are
// ordinary values (always non-nil slices). The work is exhaustive and
// exponential in the number of vertices and edges; callers that accept
// untrusted sizes should guard before calling (see pkg/pipeline).
//
// The stages, in data-flow order:
//
//   - [IndependentSets]: every non-empty vertex subset with no internal edge
//   - [Matchings]: every non-empty edge subset with pairwise disjoint edges
//   - [Compose]: every (independent set, matching) pair of equal non-zero
//     size that is [Disjoint] and [NonIncident]
//   - [FilterByProximity]: the T-sets whose size lies within 1 of some other
//     T-set's size
//
// # Ordering
//
// Order is part of the contract. Independent sets and matchings are ordered by
// size, then lexicographically by position in the graph's vertex (or edge)
// sequence, as produced by [Combinations]. Compose iterates independent sets
// in the outer loop and matchings in the inner loop. [ComposeParallel] splits
// the outer loop into contiguous chunks and concatenates chunk results in
// order, so its output is identical to Compose.
//
// # Example
//
//	g := graph.Cycle(6)
//	sets := enum.IndependentSets(g)
//	matchings := enum.Matchings(g)
//	tsets := enum.Compose(g, sets, matchings)
//	kept := enum.FilterByProximity(tsets)
package enum
