package align

import (
	"github.com/matzehuels/clustermap/pkg/cluster"
	"github.com/matzehuels/clustermap/pkg/connect"
	"github.com/matzehuels/clustermap/pkg/group"
)

// Offsets maps a cluster index to its horizontal displacement relative to
// the first cluster of its super-cluster.
type Offsets map[int]float64

// Anchor is the item pair that aligns two adjacent clusters.
type Anchor struct {
	SourceIdx int // position in the predecessor
	TargetIdx int // position in the aligned cluster
}

// FindAnchor scans from in order and returns the first item linked into to.
// When that item links to several members of to, the lowest position wins.
func FindAnchor(from, to cluster.Cluster, idx *connect.Index) (Anchor, bool) {
	for s, it := range from {
		best := -1
		for _, id := range idx.Links(it.ID) {
			if t := to.Position(id); t >= 0 && (best < 0 || t < best) {
				best = t
			}
		}
		if best >= 0 {
			return Anchor{SourceIdx: s, TargetIdx: best}, true
		}
	}
	return Anchor{}, false
}

// Solve computes the offset of every cluster referenced by groups.
func Solve(clusters []cluster.Cluster, groups []group.SuperCluster, idx *connect.Index, m Metrics) Offsets {
	out := make(Offsets, len(clusters))
	step := m.Step()
	for _, g := range groups {
		if len(g) == 0 {
			continue
		}
		out[g[0]] = 0
		for i := 1; i < len(g); i++ {
			prev, cur := g[i-1], g[i]
			off := out[prev]
			if a, ok := FindAnchor(clusters[prev], clusters[cur], idx); ok {
				off += float64(a.SourceIdx-a.TargetIdx) * step
			}
			out[cur] = off
		}
	}
	return out
}
