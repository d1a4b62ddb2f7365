package graph

import "github.com/matzehuels/clustermap/pkg/cluster"

// Input formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Input is the document consumed by the layout engine.
type Input struct {
	Items      []Item `json:"items" yaml:"items"`
	Horizontal []Pair `json:"horizontal,omitempty" yaml:"horizontal,omitempty"`
	Vertical   []Pair `json:"vertical,omitempty" yaml:"vertical,omitempty"`
}

// Item is a priced entity with an opaque display payload.
type Item struct {
	ID      string         `json:"id" yaml:"id"`
	Price   float64        `json:"price" yaml:"price"`
	Payload map[string]any `json:"payload,omitempty" yaml:"payload,omitempty"`
}

// Pair is an unordered relation between two item ids, written as a
// two-element array.
type Pair []string

// ToItems converts the document items to engine items, in document order.
func (in Input) ToItems() []cluster.Item {
	out := make([]cluster.Item, len(in.Items))
	for i, it := range in.Items {
		out[i] = cluster.Item{ID: it.ID, Price: it.Price, Payload: cluster.Payload(it.Payload)}
	}
	return out
}

// HorizontalPairs converts the horizontal relation to engine pairs.
func (in Input) HorizontalPairs() []cluster.Pair { return toPairs(in.Horizontal) }

// VerticalPairs converts the vertical relation to engine pairs.
func (in Input) VerticalPairs() []cluster.Pair { return toPairs(in.Vertical) }

// toPairs skips malformed pairs; Validate reports them.
func toPairs(ps []Pair) []cluster.Pair {
	out := make([]cluster.Pair, 0, len(ps))
	for _, p := range ps {
		if len(p) == 2 {
			out = append(out, cluster.Pair{A: p[0], B: p[1]})
		}
	}
	return out
}
