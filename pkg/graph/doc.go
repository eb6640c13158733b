// Package graph provides the simple undirected graph consumed by the
// enumerators, together with standard builders and a JSON wire format.
//
// # Overview
//
// A [Graph] holds an ordered sequence of integer vertex labels and an ordered
// sequence of undirected edges. Both orders are insertion orders and are part
// of the contract: enumerators walk vertices and edges in exactly this order,
// so two graphs with the same vertices and edges inserted differently produce
// differently ordered (but equal as sets) results.
//
// Invariants enforced on construction:
//
//   - vertex labels are unique ([ErrDuplicateVertex])
//   - edge endpoints exist ([ErrUnknownVertex])
//   - no self-loops ([ErrSelfLoop])
//   - adding an existing edge, in either orientation, is a no-op
//
// # Builders
//
//	g := graph.Cycle(6)             // 0-1-2-3-4-5-0
//	g := graph.Path(4)              // 0-1-2-3
//	g := graph.Complete(3)          // triangle
//	g, err := graph.Build("cycle", 6)
//
// Cycle(n) adds edges (i, i+1 mod n) for i = 0..n-1. For n = 2 the closing
// edge duplicates the first, leaving a single edge; for n = 1 the closing edge
// would be a self-loop and is omitted.
//
// # Serialization
//
// Graphs use a node-link JSON format:
//
//	{
//	  "vertices": [0, 1, 2],
//	  "edges": [{"u": 0, "v": 1}, {"u": 1, "v": 2}]
//	}
//
// Common operations:
//
//	g, _ := graph.ReadGraphFile("c6.json")   // File → Graph
//	graph.WriteGraphFile(g, "out.json")      // Graph → File
//	data, _ := graph.MarshalGraph(g)         // Graph → []byte
//	parsed, _ := graph.UnmarshalGraph(data)  // []byte → Graph
//
// # Concurrency
//
// A Graph is safe for concurrent reads once construction is finished. It is
// not safe for concurrent writes.
package graph
