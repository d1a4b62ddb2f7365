package group

import (
	"slices"
	"strings"

	"github.com/matzehuels/clustermap/pkg/cluster"
)

// edge is an unordered cluster index pair with lo < hi.
type edge struct{ lo, hi int }

func newEdge(a, b int) edge {
	if a > b {
		a, b = b, a
	}
	return edge{a, b}
}

// weights counts vertical pairs between distinct clusters.
type weights map[edge]int

func newWeights(of map[string]int, vertical []cluster.Pair) weights {
	w := make(weights)
	for _, p := range vertical {
		a, okA := of[p.A]
		b, okB := of[p.B]
		if !okA || !okB || a == b {
			continue
		}
		w[newEdge(a, b)]++
	}
	return w
}

func (w weights) between(a, b int) int {
	if a == b {
		return 0
	}
	return w[newEdge(a, b)]
}

// chainOrder arranges the clusters of one bucket as a path.
//
// The path starts at the cluster with the highest total weight to the rest
// of the bucket. Each step picks the unplaced cluster with the strongest
// single connection to any placed cluster and attaches it to the front of
// the path if it is tied more strongly to the front than to the back,
// otherwise to the back. Ties at every step go to the cluster whose first
// item id sorts lowest. Clusters left unconnected are appended sorted by
// first item id.
func chainOrder(members []int, clusters []cluster.Cluster, w weights) SuperCluster {
	firstID := func(i int) string { return clusters[i].FirstID() }
	better := func(score, best, cand, cur int) bool {
		if score != best {
			return score > best
		}
		return strings.Compare(firstID(cand), firstID(cur)) < 0
	}

	start, bestTotal := members[0], -1
	for _, m := range members {
		total := 0
		for _, o := range members {
			total += w.between(m, o)
		}
		if bestTotal < 0 || better(total, bestTotal, m, start) {
			start, bestTotal = m, total
		}
	}

	placed := map[int]bool{start: true}
	path := []int{start}
	for len(path) < len(members) {
		pick, pickScore := -1, 0
		for _, m := range members {
			if placed[m] {
				continue
			}
			score := 0
			for _, p := range path {
				score = max(score, w.between(m, p))
			}
			if score == 0 {
				continue
			}
			if pick < 0 || better(score, pickScore, m, pick) {
				pick, pickScore = m, score
			}
		}
		if pick < 0 {
			break
		}
		placed[pick] = true
		if w.between(pick, path[0]) > w.between(pick, path[len(path)-1]) {
			path = slices.Insert(path, 0, pick)
		} else {
			path = append(path, pick)
		}
	}

	if len(path) < len(members) {
		var rest []int
		for _, m := range members {
			if !placed[m] {
				rest = append(rest, m)
			}
		}
		slices.SortStableFunc(rest, func(a, b int) int {
			return strings.Compare(firstID(a), firstID(b))
		})
		path = append(path, rest...)
	}
	return path
}
