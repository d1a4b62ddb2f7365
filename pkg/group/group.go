// Package group joins clusters into super-clusters over the vertical
// relation and orders the clusters inside each one.
//
// Clusters are nodes here, not items: every vertical pair whose endpoints
// resolve to known clusters unions the two cluster indices in a
// [dsu.Set]. Inside each resulting bucket, clusters are ordered either by
// index ([Positional]) or as a greedy chain following the strongest
// connections ([Chain], the default).
//
// [dsu.Set]: github.com/matzehuels/clustermap/pkg/dsu
package group

import (
	"fmt"
	"slices"

	"github.com/matzehuels/clustermap/pkg/cluster"
	"github.com/matzehuels/clustermap/pkg/dsu"
)

// Strategy selects how clusters are ordered inside a super-cluster.
type Strategy string

const (
	// Chain orders clusters as a path grown from the most connected cluster.
	Chain Strategy = "chain"
	// Positional keeps clusters in ascending ranked index order.
	Positional Strategy = "positional"
)

// DefaultStrategy is used when no strategy is given.
const DefaultStrategy = Chain

// ParseStrategy converts a name into a Strategy. The empty string maps to
// [DefaultStrategy].
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case "":
		return DefaultStrategy, nil
	case Chain, Positional:
		return Strategy(s), nil
	}
	return "", fmt.Errorf("unknown grouping strategy %q (must be chain or positional)", s)
}

// SuperCluster is an ordered list of cluster indices.
type SuperCluster []int

// Build partitions the ranked clusters into super-clusters.
//
// Vertical pairs with an endpoint outside every cluster are ignored.
// Super-clusters are sorted by their lowest member index, so with no
// vertical pairs the result is one singleton per cluster in ranked order.
func Build(clusters []cluster.Cluster, vertical []cluster.Pair, strategy Strategy) []SuperCluster {
	if len(clusters) == 0 {
		return nil
	}
	of := cluster.IndexOf(clusters)

	set := dsu.New[int]()
	for _, p := range vertical {
		a, okA := of[p.A]
		b, okB := of[p.B]
		if okA && okB {
			set.Union(a, b)
		}
	}

	var groups []SuperCluster
	bucket := make(map[int]int)
	for i := range clusters {
		root := set.Find(i)
		g, ok := bucket[root]
		if !ok {
			g = len(groups)
			bucket[root] = g
			groups = append(groups, nil)
		}
		groups[g] = append(groups[g], i)
	}

	if strategy == "" {
		strategy = DefaultStrategy
	}
	if strategy == Chain {
		w := newWeights(of, vertical)
		for i, g := range groups {
			if len(g) > 1 {
				groups[i] = chainOrder(g, clusters, w)
			}
		}
	}

	slices.SortStableFunc(groups, func(a, b SuperCluster) int {
		return slices.Min(a) - slices.Min(b)
	})
	return groups
}
