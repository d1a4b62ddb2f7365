// Package pipeline chains the layout stages and memoizes their result.
//
// The engine turns priced items and two relation sets into a complete
// arrangement in six stages:
//
//  1. Cluster: union horizontal pairs, order each cluster breadth-first by
//     price, rank clusters by their most expensive item
//  2. Group: union clusters linked by vertical pairs into super-clusters and
//     order each one (chain strength or positional)
//  3. Index: record cross-cluster item links
//  4. Align: compute each cluster's horizontal offset
//  5. Connect: resolve connectors between earlier and later clusters
//  6. Palette: assign a hue to every cluster
//
// [Compute] runs the stages in memory and never fails. A [Runner] adds
// option validation, document conversion and caching on top:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	out, err := runner.Execute(ctx, input, pipeline.Options{Strategy: "chain"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	graph.WriteLayoutFile(out.Layout, "items.layout.json")
package pipeline

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/clustermap/pkg/align"
	"github.com/matzehuels/clustermap/pkg/cache"
	errs "github.com/matzehuels/clustermap/pkg/errors"
	"github.com/matzehuels/clustermap/pkg/group"
)

// Default layout values, shared by the CLI and the config file.
const (
	DefaultCardWidth      = align.DefaultCardWidth
	DefaultCardGap        = align.DefaultCardGap
	DefaultConnectorWidth = align.DefaultConnectorWidth
	DefaultLaneSpacing    = align.DefaultLaneSpacing
	DefaultStrategy       = string(group.DefaultStrategy)
)

// Options configures one layout run. Unset fields take the defaults above.
// CardGap, ConnectorWidth and LaneSpacing are nil when unset, so an
// explicit 0 is kept; use [Px] to set one.
type Options struct {
	CardWidth       float64  `json:"card_width,omitempty" toml:"card_width" validate:"gt=0"`
	CardGap         *float64 `json:"card_gap,omitempty" toml:"card_gap" validate:"omitnil,gte=0"`
	ConnectorWidth  *float64 `json:"connector_width,omitempty" toml:"connector_width" validate:"omitnil,gte=0"`
	LaneSpacing     *float64 `json:"lane_spacing,omitempty" toml:"lane_spacing" validate:"omitnil,gte=0"`
	Strategy        string   `json:"strategy,omitempty" toml:"strategy" validate:"oneof=chain positional"`
	IncludeIsolated bool     `json:"include_isolated,omitempty" toml:"include_isolated"`

	// Logger receives per-stage debug lines. Defaults to a discarding logger.
	Logger *log.Logger `json:"-" toml:"-" validate:"-"`
}

// Px returns a pointer to v, for the optional pixel fields of [Options].
func Px(v float64) *float64 { return &v }

var validate = validator.New(validator.WithRequiredStructEnabled())

// SetDefaults fills a zero CardWidth, nil pixel fields and an empty
// strategy with their defaults.
func (o *Options) SetDefaults() {
	if o.CardWidth == 0 {
		o.CardWidth = DefaultCardWidth
	}
	if o.CardGap == nil {
		o.CardGap = Px(DefaultCardGap)
	}
	if o.ConnectorWidth == nil {
		o.ConnectorWidth = Px(DefaultConnectorWidth)
	}
	if o.LaneSpacing == nil {
		o.LaneSpacing = Px(DefaultLaneSpacing)
	}
	if o.Strategy == "" {
		o.Strategy = DefaultStrategy
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate applies defaults and checks every field. Violations are reported
// as INVALID_CONFIG errors naming the offending field.
func (o *Options) Validate() error {
	o.SetDefaults()
	err := validate.Struct(o)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errs.Wrap(errs.ErrCodeInternal, err, "validate options")
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		msgs[i] = describe(fe)
	}
	return errs.New(errs.ErrCodeInvalidConfig, "invalid options: %s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s (got %q)", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "), fe.Value())
	default:
		return fmt.Sprintf("%s fails %s", fe.Field(), fe.Tag())
	}
}

// Metrics returns the pixel constants of o. Nil fields read as their
// defaults.
func (o Options) Metrics() align.Metrics {
	return align.Metrics{
		CardWidth:      o.CardWidth,
		CardGap:        pxOr(o.CardGap, DefaultCardGap),
		ConnectorWidth: pxOr(o.ConnectorWidth, DefaultConnectorWidth),
		LaneSpacing:    pxOr(o.LaneSpacing, DefaultLaneSpacing),
	}
}

func pxOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

// GroupStrategy returns the super-cluster ordering strategy. Unknown names
// fall back to the default.
func (o Options) GroupStrategy() group.Strategy {
	s, err := group.ParseStrategy(o.Strategy)
	if err != nil {
		return group.DefaultStrategy
	}
	return s
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	m := o.Metrics()
	return cache.LayoutKeyOpts{
		CardWidth:       m.CardWidth,
		CardGap:         m.CardGap,
		ConnectorWidth:  m.ConnectorWidth,
		LaneSpacing:     m.LaneSpacing,
		Strategy:        o.Strategy,
		IncludeIsolated: o.IncludeIsolated,
	}
}
