package pipeline

import (
	"fmt"
	"math/rand"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/clustermap/pkg/cluster"
)

// randomInput builds a reproducible input from seed: up to 30 items with a
// few repeated prices, horizontal and vertical pairs that include unknown
// ids, self pairs and duplicates.
func randomInput(seed int64) Input {
	rng := rand.New(rand.NewSource(seed))
	n := rng.Intn(30)
	in := Input{Items: make([]cluster.Item, n)}
	for i := range in.Items {
		in.Items[i] = cluster.Item{ID: fmt.Sprintf("i%02d", i), Price: float64(rng.Intn(8))}
	}
	id := func() string {
		if n == 0 || rng.Intn(10) == 0 {
			return "ghost"
		}
		return in.Items[rng.Intn(n)].ID
	}
	for range rng.Intn(2 * (n + 1)) {
		in.Horizontal = append(in.Horizontal, cluster.Pair{A: id(), B: id()})
	}
	for range rng.Intn(n + 1) {
		in.Vertical = append(in.Vertical, cluster.Pair{A: id(), B: id()})
	}
	return in
}

func TestRandomInputReproducible(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		require.Equal(t, randomInput(seed), randomInput(seed), "seed %d", seed)
	}
}

func TestLayoutProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("every paired item is in exactly one cluster", prop.ForAll(
		func(seed int64) bool {
			in := randomInput(seed)
			catalog := cluster.NewCatalog(in.Items)
			count := map[string]int{}
			for _, c := range Compute(in, Options{}).Clusters {
				for _, it := range c {
					count[it.ID]++
				}
			}
			for _, p := range in.Horizontal {
				if !catalog.Knows(p) {
					continue
				}
				if count[p.A] != 1 || count[p.B] != 1 {
					return false
				}
			}
			for _, n := range count {
				if n != 1 {
					return false
				}
			}
			return true
		},
		gen.Int64(),
	))

	properties.Property("cluster head has the maximum price", prop.ForAll(
		func(seed int64) bool {
			for _, c := range Compute(randomInput(seed), Options{}).Clusters {
				if len(c) == 0 || c[0].Price != c.MaxPrice() {
					return false
				}
			}
			return true
		},
		gen.Int64(),
	))

	properties.Property("ranking is non-increasing by max price", prop.ForAll(
		func(seed int64) bool {
			cs := Compute(randomInput(seed), Options{}).Clusters
			for i := 1; i < len(cs); i++ {
				if cs[i].MaxPrice() > cs[i-1].MaxPrice() {
					return false
				}
			}
			return true
		},
		gen.Int64(),
	))

	properties.Property("super-clusters partition the cluster indices", prop.ForAll(
		func(seed int64, positional bool) bool {
			opts := Options{}
			if positional {
				opts.Strategy = "positional"
			}
			res := Compute(randomInput(seed), opts)
			seen := make([]bool, len(res.Clusters))
			for _, g := range res.Groups {
				if len(g) == 0 || res.Offsets[g[0]] != 0 {
					return false
				}
				for _, c := range g {
					if c < 0 || c >= len(seen) || seen[c] {
						return false
					}
					seen[c] = true
				}
			}
			for _, ok := range seen {
				if !ok {
					return false
				}
			}
			return true
		},
		gen.Int64(),
		gen.Bool(),
	))

	properties.Property("no vertical pairs gives singleton super-clusters", prop.ForAll(
		func(seed int64) bool {
			in := randomInput(seed)
			in.Vertical = nil
			res := Compute(in, Options{})
			if len(res.Groups) != len(res.Clusters) {
				return false
			}
			for i, g := range res.Groups {
				if len(g) != 1 || g[0] != i {
					return false
				}
			}
			return true
		},
		gen.Int64(),
	))

	properties.Property("connectors join clusters of the same super-cluster", prop.ForAll(
		func(seed int64) bool {
			res := Compute(randomInput(seed), Options{})
			for _, k := range res.Connectors {
				if res.GroupOf(k.SourceCluster) != res.GroupOf(k.TargetCluster) {
					return false
				}
				if !res.Index.Linked(res.Clusters[k.SourceCluster][k.SourcePos].ID, res.Clusters[k.TargetCluster][k.TargetPos].ID) {
					return false
				}
			}
			return true
		},
		gen.Int64(),
	))

	properties.Property("compute is idempotent", prop.ForAll(
		func(seed int64) bool {
			a := Compute(randomInput(seed), Options{IncludeIsolated: true})
			b := Compute(randomInput(seed), Options{IncludeIsolated: true})
			a.Options.Logger, b.Options.Logger = nil, nil
			return reflect.DeepEqual(a, b)
		},
		gen.Int64(),
	))

	properties.TestingRun(t)
}
