package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/clustermap/pkg/align"
	"github.com/matzehuels/clustermap/pkg/cluster"
	"github.com/matzehuels/clustermap/pkg/connect"
	"github.com/matzehuels/clustermap/pkg/graph"
	"github.com/matzehuels/clustermap/pkg/group"
	"github.com/matzehuels/clustermap/pkg/observability"
	"github.com/matzehuels/clustermap/pkg/palette"
)

// Input is the engine input: items in document order and both relations.
type Input struct {
	Items      []cluster.Item
	Horizontal []cluster.Pair
	Vertical   []cluster.Pair
}

// FromDocument converts a validated input document.
func FromDocument(in graph.Input) Input {
	return Input{
		Items:      in.ToItems(),
		Horizontal: in.HorizontalPairs(),
		Vertical:   in.VerticalPairs(),
	}
}

// Result is the complete arrangement computed by [Compute].
type Result struct {
	Clusters   []cluster.Cluster
	Groups     []group.SuperCluster
	Index      *connect.Index
	Offsets    align.Offsets
	Connectors []align.Connector
	Hues       []int

	// Options are the defaulted options the result was computed with.
	Options Options
}

// Compute runs every layout stage. It performs no I/O and never fails.
func Compute(in Input, opts Options) Result {
	return ComputeContext(context.Background(), in, opts)
}

// ComputeContext is Compute with a context for the observability hooks.
func ComputeContext(ctx context.Context, in Input, opts Options) Result {
	opts.SetDefaults()
	hooks := observability.Pipeline()
	logger := opts.Logger

	start := time.Now()
	hooks.OnLayoutStart(ctx, len(in.Items), len(in.Horizontal)+len(in.Vertical))

	mark := time.Now()
	stage := func(s observability.Stage, kv ...any) {
		d := time.Since(mark)
		logger.Debug("stage complete", append([]any{"stage", s, "duration", d}, kv...)...)
		hooks.OnStageComplete(ctx, s, d)
		mark = time.Now()
	}

	res := Result{Options: opts}

	res.Clusters = cluster.Arrange(in.Items, in.Horizontal, cluster.Options{IncludeIsolated: opts.IncludeIsolated})
	stage(observability.StageCluster, "clusters", len(res.Clusters))

	res.Groups = group.Build(res.Clusters, in.Vertical, opts.GroupStrategy())
	stage(observability.StageGroup, "groups", len(res.Groups), "strategy", opts.GroupStrategy())

	res.Index = connect.Build(res.Clusters, in.Vertical)
	stage(observability.StageIndex, "linked_items", res.Index.Len())

	res.Offsets = align.Solve(res.Clusters, res.Groups, res.Index, opts.Metrics())
	stage(observability.StageAlign)

	res.Connectors = align.Resolve(res.Clusters, res.Groups, res.Index, res.Offsets)
	stage(observability.StageConnect, "connectors", len(res.Connectors))

	res.Hues = palette.Hues(len(res.Clusters))
	stage(observability.StagePalette)

	hooks.OnLayoutComplete(ctx, observability.LayoutStats{
		Clusters:      len(res.Clusters),
		SuperClusters: len(res.Groups),
		Connectors:    len(res.Connectors),
	}, time.Since(start), nil)
	return res
}

// GroupOf returns the position in Groups of the super-cluster holding
// cluster c, or -1.
func (r Result) GroupOf(c int) int {
	for gi, g := range r.Groups {
		for _, m := range g {
			if m == c {
				return gi
			}
		}
	}
	return -1
}

// Export converts the result into a layout document with the given id.
func (r Result) Export(id string) graph.Layout {
	m := r.Options.Metrics()
	l := graph.Layout{
		ID:              id,
		Strategy:        r.Options.Strategy,
		IncludeIsolated: r.Options.IncludeIsolated,
		Metrics: graph.Metrics{
			CardWidth:      m.CardWidth,
			CardGap:        m.CardGap,
			ConnectorWidth: m.ConnectorWidth,
			LaneSpacing:    m.LaneSpacing,
		},
		Clusters:   make([]graph.Cluster, len(r.Clusters)),
		Groups:     make([][]int, len(r.Groups)),
		Connectors: make([]graph.Connector, len(r.Connectors)),
	}

	for i, c := range r.Clusters {
		items := make([]graph.Item, len(c))
		for j, it := range c {
			items[j] = graph.Item{ID: it.ID, Price: it.Price, Payload: it.Payload}
		}
		l.Clusters[i] = graph.Cluster{
			Index:  i,
			Group:  r.GroupOf(i),
			Hue:    r.Hues[i],
			Color:  palette.Hex(i),
			Offset: r.Offsets[i],
			Items:  items,
		}
	}
	for i, g := range r.Groups {
		l.Groups[i] = append([]int(nil), g...)
	}
	for i, k := range r.Connectors {
		x1, x2 := k.Endpoints(m)
		l.Connectors[i] = graph.Connector{
			Source: graph.Endpoint{
				Cluster:  k.SourceCluster,
				Position: k.SourcePos,
				Item:     r.Clusters[k.SourceCluster][k.SourcePos].ID,
				X:        x1,
			},
			Target: graph.Endpoint{
				Cluster:  k.TargetCluster,
				Position: k.TargetPos,
				Item:     r.Clusters[k.TargetCluster][k.TargetPos].ID,
				X:        x2,
			},
			Span: k.Span,
			Lane: k.Lane,
		}
	}
	return l
}
