package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/clustermap/pkg/graph"
)

// inspectCommand creates the inspect command.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		flags  layoutFlagSet
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "inspect <input>",
		Short: "Print the clusters, super-clusters and connectors of an input",
		Long: `Print the clusters, super-clusters and connectors of an input document.

The input is either an input document (JSON or YAML), which is laid out
without touching the cache, or a layout document produced by 'layout'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.resolveConfig(cmd, &flags)
			if err != nil {
				return err
			}
			layout, err := c.loadLayout(cmd.Context(), args[0], cfg)
			if err != nil {
				return err
			}
			if asJSON {
				return graph.WriteLayout(layout, stdout)
			}
			printLayout(layout)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the layout document as JSON")
	return cmd
}

// loadLayout reads a layout document, or computes one from an input
// document.
func (c *CLI) loadLayout(ctx context.Context, path string, cfg Config) (graph.Layout, error) {
	if strings.HasSuffix(path, ".layout.json") {
		return graph.ReadLayoutFile(path)
	}
	in, err := graph.ReadInputFile(path)
	if err != nil {
		return graph.Layout{}, fmt.Errorf("load input %s: %w", path, err)
	}
	runner, err := c.newRunner(ctx, cfg.Cache, true)
	if err != nil {
		return graph.Layout{}, err
	}
	defer runner.Close()
	return runner.GenerateLayout(ctx, in, cfg.Layout)
}

// printLayout prints one block per super-cluster followed by the connectors.
func printLayout(l graph.Layout) {
	printKeyValue("Layout", l.ID)
	printKeyValue("Strategy", l.Strategy)
	printKeyValue("Step", formatPx(l.Metrics.CardWidth+l.Metrics.CardGap+l.Metrics.ConnectorWidth))
	printStats(len(l.Clusters), len(l.Groups), len(l.Connectors), false)

	for gi, g := range l.Groups {
		printNewline()
		printTitle(fmt.Sprintf("Super-cluster %d", gi))
		for _, ci := range g {
			cl := l.Clusters[ci]
			items := make([]string, len(cl.Items))
			for i, it := range cl.Items {
				items[i] = it.ID + StyleDim.Render("("+strconv.FormatFloat(it.Price, 'f', -1, 64)+")")
			}
			fmt.Fprintf(stdout, "  %s %s %s %s\n",
				swatch(cl.Color),
				StyleNumber.Render(fmt.Sprintf("#%-3d", cl.Index)),
				StyleDim.Render(fmt.Sprintf("offset %7s", formatPx(cl.Offset))),
				strings.Join(items, " "))
		}
	}

	if len(l.Connectors) == 0 {
		return
	}
	printNewline()
	printTitle("Connectors")
	for _, k := range l.Connectors {
		printDetail("%d:%d %s %s %d:%d %s  span %d lane %d  x %s %s %s",
			k.Source.Cluster, k.Source.Position, k.Source.Item, iconArrow,
			k.Target.Cluster, k.Target.Position, k.Target.Item,
			k.Span, k.Lane,
			formatPx(k.Source.X), iconArrow, formatPx(k.Target.X))
	}
}

func formatPx(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
