// Package pkg holds the libraries behind the clustermap command.
//
// clustermap arranges priced items into clusters and super-clusters and
// computes the offsets and connectors needed to draw them side by side.
// Packages, leaves first:
//
//   - [dsu]: generic disjoint-set store
//   - [cluster]: horizontal clusters, breadth-first price ordering, ranking
//   - [group]: vertical super-clusters and chain-strength ordering
//   - [connect]: cross-cluster link index
//   - [align]: offset solver and connector resolver
//   - [palette]: per-cluster hue seeds
//   - [pipeline]: stage chaining, options and cached execution
//   - [graph]: input and layout documents
//   - [cache], [observability], [errors], [buildinfo]: host support
//
// The data flow is strictly forward:
//
//	items + horizontal pairs
//	         ↓
//	    [cluster] (build, order, rank)
//	         ↓  + vertical pairs
//	    [group] → [connect]
//	         ↓
//	    [align] (offsets, connectors) + [palette]
//	         ↓
//	    [graph].Layout
//
// Quick start:
//
//	in, _ := graph.ReadInputFile("items.json")
//	res := pipeline.Compute(pipeline.FromDocument(in), pipeline.Options{})
//	layout := res.Export(graph.LayoutID("example"))
//	_ = graph.WriteLayoutFile(layout, "items.layout.json")
//
// [dsu]: github.com/matzehuels/clustermap/pkg/dsu
// [cluster]: github.com/matzehuels/clustermap/pkg/cluster
// [group]: github.com/matzehuels/clustermap/pkg/group
// [connect]: github.com/matzehuels/clustermap/pkg/connect
// [align]: github.com/matzehuels/clustermap/pkg/align
// [palette]: github.com/matzehuels/clustermap/pkg/palette
// [pipeline]: github.com/matzehuels/clustermap/pkg/pipeline
// [graph]: github.com/matzehuels/clustermap/pkg/graph
// [cache]: github.com/matzehuels/clustermap/pkg/cache
// [observability]: github.com/matzehuels/clustermap/pkg/observability
// [errors]: github.com/matzehuels/clustermap/pkg/errors
// [buildinfo]: github.com/matzehuels/clustermap/pkg/buildinfo
package pkg
