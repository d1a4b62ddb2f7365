// Package cluster groups priced items into clusters connected by horizontal
// relation pairs and orders them for layout.
//
// # Overview
//
// A cluster is a connected component of items under the horizontal relation.
// Clusters are produced in three steps:
//
//  1. [Build] unions every horizontal pair in a [dsu.Set] and buckets item ids
//     by representative, in first-seen order.
//  2. [Order] walks each bucket breadth-first from its most expensive item,
//     visiting cheaper neighbors later.
//  3. [Rank] sorts clusters by their most expensive member.
//
// [Arrange] chains all three. Every step is deterministic: identical input
// always produces identical output, including on price ties.
//
// # Degenerate Input
//
// Pairs that name an unknown item id are ignored. Items that never appear in
// a horizontal pair are excluded unless [Options.IncludeIsolated] is set, in
// which case each becomes a singleton cluster.
//
// [dsu.Set]: github.com/matzehuels/clustermap/pkg/dsu
package cluster
