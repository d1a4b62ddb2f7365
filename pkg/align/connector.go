package align

import (
	"github.com/matzehuels/clustermap/pkg/cluster"
	"github.com/matzehuels/clustermap/pkg/connect"
	"github.com/matzehuels/clustermap/pkg/group"
)

// Connector is a resolved edge between two card positions in two clusters
// of the same super-cluster. Source is always the earlier cluster.
type Connector struct {
	SourceCluster int
	SourcePos     int
	SourceOffset  float64
	TargetCluster int
	TargetPos     int
	TargetOffset  float64

	// Span counts the clusters skipped between source and target.
	Span int
	// Lane numbers connectors landing on the same target cluster.
	Lane int
}

// Nudge is the horizontal micro-offset applied to avoid collinear lines.
func (c Connector) Nudge(m Metrics) float64 {
	return float64(c.Lane) * m.LaneSpacing
}

// Endpoints returns the x coordinates of both ends of the connector.
func (c Connector) Endpoints(m Metrics) (x1, x2 float64) {
	n := c.Nudge(m)
	return m.CardCenter(c.SourceOffset, c.SourcePos) + n, m.CardCenter(c.TargetOffset, c.TargetPos) + n
}

type connectorKey struct {
	source, sourcePos, targetPos int
}

// Resolve lists the connectors of every super-cluster in group order.
//
// For each non-first cluster, every earlier cluster of the same
// super-cluster is scanned in order for links into it. Links are
// deduplicated per (earlier cluster, earlier position, current position).
func Resolve(clusters []cluster.Cluster, groups []group.SuperCluster, idx *connect.Index, offsets Offsets) []Connector {
	var out []Connector
	for _, g := range groups {
		for i := 1; i < len(g); i++ {
			cur := g[i]
			seen := make(map[connectorKey]bool)
			lane := 0
			for j := 0; j < i; j++ {
				src := g[j]
				for s, it := range clusters[src] {
					for _, id := range idx.Links(it.ID) {
						t := clusters[cur].Position(id)
						if t < 0 {
							continue
						}
						k := connectorKey{src, s, t}
						if seen[k] {
							continue
						}
						seen[k] = true
						out = append(out, Connector{
							SourceCluster: src,
							SourcePos:     s,
							SourceOffset:  offsets[src],
							TargetCluster: cur,
							TargetPos:     t,
							TargetOffset:  offsets[cur],
							Span:          i - j - 1,
							Lane:          lane,
						})
						lane++
					}
				}
			}
		}
	}
	return out
}
