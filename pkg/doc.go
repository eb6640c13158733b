// Package pkg holds the tsets libraries.
//
// # Overview
//
// tsets enumerates the independent sets and matchings of a small graph,
// pairs them into T-sets and filters those by size proximity. The packages,
// leaf first:
//
//  1. [graph] - Undirected simple graph, builders (cycle, path, complete) and JSON I/O
//  2. [enum] - Independent sets, matchings, T-set composition, proximity filter
//  3. [cache] - Result cache backends (file, Redis, null)
//  4. [pipeline] - Size guard, staged run, cached runner, rendering entry point
//  5. [report] - Text and JSON listings of a pipeline result
//  6. [render/nodelink] - Graphviz drawing with T-set highlighting
//  7. [config] - TOML configuration file
//
// Supporting packages: [errors] (coded errors and validators),
// [observability] (stage and cache hooks), [buildinfo] (version strings).
//
// # Quick Start
//
//	g := graph.Cycle(6)
//	result, err := pipeline.Run(ctx, g, 1)
//	if err != nil {
//	    return err
//	}
//	report.WriteText(os.Stdout, result, report.TextOptions{})
//
// The core can also be used directly:
//
//	sets := enum.IndependentSets(g)
//	matchings := enum.Matchings(g)
//	tsets := enum.Compose(g, sets, matchings)
//	filtered := enum.FilterByProximity(tsets)
package pkg
