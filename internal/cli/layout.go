package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/clustermap/pkg/errors"
	"github.com/matzehuels/clustermap/pkg/graph"
	"github.com/matzehuels/clustermap/pkg/observability"
	"github.com/matzehuels/clustermap/pkg/pipeline"
)

type layoutOptions struct {
	output      string
	noCache     bool
	watch       bool
	metricsFile string
}

// layoutCommand creates the layout command.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		flags layoutFlagSet
		lo    layoutOptions
	)

	cmd := &cobra.Command{
		Use:   "layout <input>",
		Short: "Compute a layout document from an input document",
		Long: `Compute a layout document from an input document.

The input is a JSON or YAML file with "items", "horizontal" and "vertical"
keys. The output is a JSON layout document holding the ranked clusters,
super-clusters, offsets and connectors.

Layouts are cached locally (or in Redis/MongoDB when [cache] url is set),
keyed by the input content and every layout option.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.resolveConfig(cmd, &flags)
			if err != nil {
				return err
			}
			return c.runLayout(cmd.Context(), args[0], cfg, lo)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&flags.cacheURL, "cache", "", "cache URL (redis://, rediss://, mongodb://, mongodb+srv://)")
	cmd.Flags().StringVarP(&lo.output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&lo.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVarP(&lo.watch, "watch", "w", false, "recompute whenever the input changes")
	cmd.Flags().StringVar(&lo.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile after each run")

	return cmd
}

// runLayout computes the layout once, or repeatedly in watch mode.
func (c *CLI) runLayout(ctx context.Context, input string, cfg Config, lo layoutOptions) error {
	if err := errs.ValidatePath(input); err != nil {
		return err
	}

	var hooks *promHooks
	if lo.metricsFile != "" {
		hooks = newPromHooks()
		hooks.install()
		defer observability.Reset()
	}

	runner, err := c.newRunner(ctx, cfg.Cache, lo.noCache)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}
	defer runner.Close()
	runner.TTL = cfg.Cache.TTLDuration()

	outputPath := lo.output
	if outputPath == "" {
		outputPath = strings.TrimSuffix(input, filepath.Ext(input)) + ".layout.json"
	}

	run := func() error {
		if err := c.layoutOnce(ctx, runner, input, outputPath, cfg.Layout); err != nil {
			return err
		}
		if hooks != nil {
			if err := hooks.writeTextfile(lo.metricsFile); err != nil {
				return fmt.Errorf("write metrics %s: %w", lo.metricsFile, err)
			}
		}
		return nil
	}

	if !lo.watch {
		if err := run(); err != nil {
			return err
		}
		printNewline()
		printNextStep("Inspect", appName+" inspect "+input)
		return nil
	}

	if err := run(); err != nil {
		printError("%v", err)
	}
	printInfo("Watching %s (Ctrl-C to stop)", input)
	err = watchFile(ctx, input, func() {
		if err := run(); err != nil {
			printError("%v", err)
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (c *CLI) layoutOnce(ctx context.Context, runner *pipeline.Runner, input, outputPath string, opts pipeline.Options) error {
	prog := newProgress(c.Logger)

	in, err := graph.ReadInputFile(input)
	if err != nil {
		return fmt.Errorf("load input %s: %w", input, err)
	}

	out, err := runner.Execute(ctx, in, opts)
	if err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}

	if err := graph.WriteLayoutFile(out.Layout, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}
	prog.done("Layout written")

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(len(out.Layout.Clusters), len(out.Layout.Groups), len(out.Layout.Connectors), out.CacheHit)
	return nil
}
