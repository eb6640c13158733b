// Package report formats pipeline results for people and for tools.
//
// [WriteText] prints the listing of independent sets, matchings and filtered
// T-sets with sorted labels:
//
//	Independent sets V_i (|V_i| ≥ 1):
//	V_0: [0]
//	...
//	Matchings E_i (|E_i| ≥ 1):
//	E_0: [(0, 1)]
//	...
//	Filtered T_i = V_i ∪ E_i where |V_i| = |E_i| ≥ 1, disjoint and non-incident (12 total):
//	T_0: V_0 ∪ E_2 = {Vertices: [0], Edges: [(2, 3)]}
//
// [WriteJSON] encodes the same data, plus the graph and the unfiltered
// T-sets, as indented JSON.
package report
