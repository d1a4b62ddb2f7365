package cluster

import "slices"

// Order returns the items of one cluster in breadth-first order.
//
// Traversal starts at the item with the strictly highest price (the first
// one in ids on ties). Only pairs with both endpoints in ids are edges.
// When a node is dequeued its unvisited neighbors are sorted by descending
// price, keeping discovery order on ties, before they are enqueued.
//
// Ids missing from catalog are skipped. Members that cannot be reached from
// the start item are appended afterwards in ids order; this does not happen
// for groups produced by [Build].
func Order(ids []string, pairs []Pair, catalog Catalog) Cluster {
	members := make([]string, 0, len(ids))
	in := make(map[string]bool, len(ids))
	for _, id := range ids {
		if _, ok := catalog[id]; ok && !in[id] {
			in[id] = true
			members = append(members, id)
		}
	}
	if len(members) == 0 {
		return Cluster{}
	}

	adj := make(map[string][]string, len(members))
	for _, p := range pairs {
		if p.A == p.B || !in[p.A] || !in[p.B] {
			continue
		}
		adj[p.A] = append(adj[p.A], p.B)
		adj[p.B] = append(adj[p.B], p.A)
	}

	start := members[0]
	for _, id := range members[1:] {
		if catalog[id].Price > catalog[start].Price {
			start = id
		}
	}

	out := make(Cluster, 0, len(members))
	seen := map[string]bool{start: true}
	queue := []string{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		out = append(out, catalog[cur])

		var next []Item
		for _, n := range adj[cur] {
			if seen[n] {
				continue
			}
			seen[n] = true
			next = append(next, catalog[n])
		}
		slices.SortStableFunc(next, byPriceDesc)
		for _, it := range next {
			queue = append(queue, it.ID)
		}
	}

	for _, id := range members {
		if !seen[id] {
			out = append(out, catalog[id])
		}
	}
	return out
}

func byPriceDesc(a, b Item) int {
	switch {
	case a.Price > b.Price:
		return -1
	case a.Price < b.Price:
		return 1
	}
	return 0
}
