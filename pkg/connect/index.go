// Package connect indexes vertical links between items that live in
// different clusters.
package connect

import (
	"slices"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/matzehuels/clustermap/pkg/cluster"
)

// Index is a symmetric item id -> linked item ids map. Only links that cross
// a cluster boundary are recorded; repeated links collapse to one entry.
type Index struct {
	links map[string]mapset.Set[string]
}

// Build indexes every vertical pair whose endpoints resolve to two different
// clusters. Pairs inside one cluster or naming an unknown id are dropped.
func Build(clusters []cluster.Cluster, vertical []cluster.Pair) *Index {
	of := cluster.IndexOf(clusters)
	x := &Index{links: make(map[string]mapset.Set[string])}
	for _, p := range vertical {
		a, okA := of[p.A]
		b, okB := of[p.B]
		if !okA || !okB || a == b {
			continue
		}
		x.add(p.A, p.B)
		x.add(p.B, p.A)
	}
	return x
}

func (x *Index) add(from, to string) {
	s, ok := x.links[from]
	if !ok {
		s = mapset.NewThreadUnsafeSet[string]()
		x.links[from] = s
	}
	s.Add(to)
}

// Links returns the ids linked to id, sorted ascending.
func (x *Index) Links(id string) []string {
	s, ok := x.links[id]
	if !ok {
		return nil
	}
	out := s.ToSlice()
	slices.Sort(out)
	return out
}

// Linked reports whether a and b are linked.
func (x *Index) Linked(a, b string) bool {
	s, ok := x.links[a]
	return ok && s.Contains(b)
}

// Has reports whether id has at least one link.
func (x *Index) Has(id string) bool {
	_, ok := x.links[id]
	return ok
}

// Len returns the number of items with at least one link.
func (x *Index) Len() int { return len(x.links) }

// Items returns every linked item id, sorted ascending.
func (x *Index) Items() []string {
	out := make([]string, 0, len(x.links))
	for id := range x.links {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}
