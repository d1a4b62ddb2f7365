package cluster

import "slices"

// Rank returns clusters sorted by maximum member price, highest first.
// The sort is stable, so ties keep their input order. The input slice is
// not modified.
func Rank(clusters []Cluster) []Cluster {
	out := slices.Clone(clusters)
	slices.SortStableFunc(out, func(a, b Cluster) int {
		pa, pb := a.MaxPrice(), b.MaxPrice()
		switch {
		case pa > pb:
			return -1
		case pa < pb:
			return 1
		}
		return 0
	})
	return out
}
