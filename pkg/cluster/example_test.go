package cluster_test

import (
	"fmt"

	"github.com/matzehuels/clustermap/pkg/cluster"
)

func ExampleArrange() {
	items := []cluster.Item{
		{ID: "A", Price: 5},
		{ID: "B", Price: 3},
		{ID: "C", Price: 1},
		{ID: "D", Price: 4},
		{ID: "E", Price: 2},
	}
	horizontal := []cluster.Pair{{A: "C", B: "B"}, {A: "B", B: "A"}, {A: "E", B: "D"}}

	for i, c := range cluster.Arrange(items, horizontal, cluster.Options{}) {
		fmt.Println(i, c.IDs())
	}
	// Output:
	// 0 [A B C]
	// 1 [D E]
}

func ExampleOrder() {
	catalog := cluster.NewCatalog([]cluster.Item{
		{ID: "hub", Price: 10},
		{ID: "cheap", Price: 1},
		{ID: "pricey", Price: 8},
	})
	pairs := []cluster.Pair{{A: "hub", B: "cheap"}, {A: "hub", B: "pricey"}}

	fmt.Println(cluster.Order([]string{"cheap", "hub", "pricey"}, pairs, catalog).IDs())
	// Output:
	// [hub pricey cheap]
}
