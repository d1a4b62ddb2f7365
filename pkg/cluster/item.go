package cluster

// Payload is opaque display data carried alongside an item.
// The engine never reads or modifies it.
type Payload map[string]any

// Item is a priced entity placed by the layout engine.
type Item struct {
	ID      string
	Price   float64
	Payload Payload
}

// Pair is an unordered relation between two item ids.
type Pair struct {
	A, B string
}

// Cluster is an ordered sequence of items.
type Cluster []Item

// MaxPrice returns the highest price in the cluster, or 0 for an empty cluster.
func (c Cluster) MaxPrice() float64 {
	if len(c) == 0 {
		return 0
	}
	m := c[0].Price
	for _, it := range c[1:] {
		if it.Price > m {
			m = it.Price
		}
	}
	return m
}

// IDs returns the item ids in cluster order.
func (c Cluster) IDs() []string {
	ids := make([]string, len(c))
	for i, it := range c {
		ids[i] = it.ID
	}
	return ids
}

// Position returns the index of id within the cluster, or -1.
func (c Cluster) Position(id string) int {
	for i, it := range c {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// FirstID returns the id of the first item, or "" for an empty cluster.
func (c Cluster) FirstID() string {
	if len(c) == 0 {
		return ""
	}
	return c[0].ID
}

// Catalog maps item ids to items.
type Catalog map[string]Item

// NewCatalog indexes items by id. When an id repeats, the first occurrence wins.
func NewCatalog(items []Item) Catalog {
	c := make(Catalog, len(items))
	for _, it := range items {
		if _, ok := c[it.ID]; !ok {
			c[it.ID] = it
		}
	}
	return c
}

// Knows reports whether both endpoints of p are in the catalog.
func (c Catalog) Knows(p Pair) bool {
	_, okA := c[p.A]
	_, okB := c[p.B]
	return okA && okB
}

// IndexOf maps every item id to the index of the cluster that contains it.
func IndexOf(clusters []Cluster) map[string]int {
	idx := make(map[string]int)
	for i, c := range clusters {
		for _, it := range c {
			idx[it.ID] = i
		}
	}
	return idx
}
