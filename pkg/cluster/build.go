package cluster

import "github.com/matzehuels/clustermap/pkg/dsu"

// Options controls cluster construction.
type Options struct {
	// IncludeIsolated emits items that appear in no horizontal pair as
	// singleton clusters. By default such items are excluded.
	IncludeIsolated bool
}

// Build groups item ids into connected components over the horizontal pairs.
//
// Pairs with an endpoint missing from catalog are ignored. Groups are
// returned in the order their representative is first seen while scanning
// pairs, and ids inside a group keep first-seen order. With
// opts.IncludeIsolated, items that appear in no usable pair follow as
// singleton groups in items order.
func Build(items []Item, pairs []Pair, catalog Catalog, opts Options) [][]string {
	valid := knownPairs(pairs, catalog)

	set := dsu.New[string]()
	for _, p := range valid {
		set.Union(p.A, p.B)
	}

	var groups [][]string
	bucket := make(map[string]int)
	placed := make(map[string]bool)
	place := func(id string) {
		if placed[id] {
			return
		}
		placed[id] = true
		root := set.Find(id)
		i, ok := bucket[root]
		if !ok {
			i = len(groups)
			bucket[root] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], id)
	}
	for _, p := range valid {
		place(p.A)
		place(p.B)
	}

	if opts.IncludeIsolated {
		for _, it := range items {
			if placed[it.ID] {
				continue
			}
			placed[it.ID] = true
			groups = append(groups, []string{it.ID})
		}
	}
	return groups
}

func knownPairs(pairs []Pair, catalog Catalog) []Pair {
	out := make([]Pair, 0, len(pairs))
	for _, p := range pairs {
		if catalog.Knows(p) {
			out = append(out, p)
		}
	}
	return out
}

// Arrange builds, orders and ranks clusters in one call.
func Arrange(items []Item, horizontal []Pair, opts Options) []Cluster {
	catalog := NewCatalog(items)
	groups := Build(items, horizontal, catalog, opts)
	clusters := make([]Cluster, len(groups))
	for i, ids := range groups {
		clusters[i] = Order(ids, horizontal, catalog)
	}
	return Rank(clusters)
}
