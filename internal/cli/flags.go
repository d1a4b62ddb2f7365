package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/clustermap/pkg/pipeline"
)

// layoutFlagSet holds the layout options given on the command line. Only
// flags the user actually set override the config file.
type layoutFlagSet struct {
	opts           pipeline.Options
	cardGap        float64
	connectorWidth float64
	laneSpacing    float64
	cacheURL       string
}

func (f *layoutFlagSet) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.opts.Strategy, "strategy", pipeline.DefaultStrategy, "super-cluster ordering: chain, positional")
	fl.BoolVar(&f.opts.IncludeIsolated, "include-isolated", false, "keep items without horizontal pairs as singleton clusters")
	fl.Float64Var(&f.opts.CardWidth, "card-width", pipeline.DefaultCardWidth, "card width in pixels")
	fl.Float64Var(&f.cardGap, "card-gap", pipeline.DefaultCardGap, "gap between cards in pixels")
	fl.Float64Var(&f.connectorWidth, "connector-width", pipeline.DefaultConnectorWidth, "connector width in pixels")
	fl.Float64Var(&f.laneSpacing, "lane-spacing", pipeline.DefaultLaneSpacing, "connector lane spacing in pixels")

	_ = cmd.RegisterFlagCompletionFunc("strategy", cobra.FixedCompletions(
		[]string{"chain", "positional"}, cobra.ShellCompDirectiveNoFileComp))
}

// resolveConfig loads the config file and applies the flags that were set.
func (c *CLI) resolveConfig(cmd *cobra.Command, f *layoutFlagSet) (Config, error) {
	cfg, err := loadConfig(c.configPath)
	if err != nil {
		return Config{}, err
	}

	changed := cmd.Flags().Changed
	if changed("strategy") {
		cfg.Layout.Strategy = f.opts.Strategy
	}
	if changed("include-isolated") {
		cfg.Layout.IncludeIsolated = f.opts.IncludeIsolated
	}
	if changed("card-width") {
		cfg.Layout.CardWidth = f.opts.CardWidth
	}
	if changed("card-gap") {
		cfg.Layout.CardGap = pipeline.Px(f.cardGap)
	}
	if changed("connector-width") {
		cfg.Layout.ConnectorWidth = pipeline.Px(f.connectorWidth)
	}
	if changed("lane-spacing") {
		cfg.Layout.LaneSpacing = pipeline.Px(f.laneSpacing)
	}
	if cmd.Flags().Lookup("cache") != nil && changed("cache") {
		cfg.Cache.URL = f.cacheURL
	}

	cfg.Layout.Logger = c.Logger
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
