package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/clustermap/pkg/cache"
	"github.com/matzehuels/clustermap/pkg/graph"
	"github.com/matzehuels/clustermap/pkg/observability"
)

// keyTypeLayout labels layout entries in cache hooks.
const keyTypeLayout = "layout"

// Runner executes the pipeline with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store layouts itself. Multiple goroutines can safely use the same
// Runner with different options when the cache allows it.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL is the expiry of stored layouts; zero means cache.TTLLayout.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Output is the outcome of one Execute call.
type Output struct {
	Layout    graph.Layout
	InputHash string
	CacheKey  string
	CacheHit  bool
	Duration  time.Duration
}

// Execute validates opts, then returns the layout of in from the cache or
// computes and stores it.
func (r *Runner) Execute(ctx context.Context, in graph.Input, opts Options) (*Output, error) {
	start := time.Now()
	layout, key, hash, hit, err := r.generate(ctx, in, opts)
	if err != nil {
		return nil, err
	}
	out := &Output{
		Layout:    layout,
		InputHash: hash,
		CacheKey:  key,
		CacheHit:  hit,
		Duration:  time.Since(start),
	}
	r.Logger.Info("computed layout",
		"clusters", len(layout.Clusters),
		"groups", len(layout.Groups),
		"connectors", len(layout.Connectors),
		"cached", hit,
		"duration", out.Duration)
	return out, nil
}

// GenerateLayoutWithCacheInfo generates a layout with caching and returns cache hit info.
func (r *Runner) GenerateLayoutWithCacheInfo(ctx context.Context, in graph.Input, opts Options) (graph.Layout, bool, error) {
	layout, _, _, hit, err := r.generate(ctx, in, opts)
	return layout, hit, err
}

// GenerateLayout is a convenience wrapper that calls GenerateLayoutWithCacheInfo and discards the cache hit info.
func (r *Runner) GenerateLayout(ctx context.Context, in graph.Input, opts Options) (graph.Layout, error) {
	layout, _, err := r.GenerateLayoutWithCacheInfo(ctx, in, opts)
	return layout, err
}

func (r *Runner) generate(ctx context.Context, in graph.Input, opts Options) (layout graph.Layout, key, hash string, hit bool, err error) {
	r.applyLogger(&opts)
	if err := opts.Validate(); err != nil {
		return graph.Layout{}, "", "", false, err
	}
	if err := in.Validate(); err != nil {
		return graph.Layout{}, "", "", false, err
	}
	if err := ctx.Err(); err != nil {
		return graph.Layout{}, "", "", false, err
	}

	data, err := graph.MarshalInput(in)
	if err != nil {
		return graph.Layout{}, "", "", false, fmt.Errorf("hash input: %w", err)
	}
	hash = cache.Hash(data)
	key = r.Keyer.LayoutKey(hash, opts.LayoutKeyOpts())
	hooks := observability.Cache()

	data, ok, err := r.Cache.Get(ctx, key)
	switch {
	case err != nil:
		r.Logger.Warn("cache read failed, recomputing", "error", err)
	case ok:
		cached, err := graph.UnmarshalLayout(data)
		if err == nil {
			hooks.OnCacheHit(ctx, keyTypeLayout)
			r.Logger.Debug("layout cache hit", "key", key)
			return cached, key, hash, true, nil
		}
		r.Logger.Warn("discarding unreadable cache entry", "key", key, "error", err)
	}
	hooks.OnCacheMiss(ctx, keyTypeLayout)

	res := ComputeContext(ctx, FromDocument(in), opts)
	layout = res.Export(graph.LayoutID(key))

	if data, err := graph.MarshalLayout(layout); err == nil {
		if err := r.Cache.Set(ctx, key, data, r.ttl()); err != nil {
			r.Logger.Warn("cache write failed", "error", err)
		} else {
			hooks.OnCacheSet(ctx, keyTypeLayout, len(data))
		}
	}
	return layout, key, hash, false, nil
}

func (r *Runner) ttl() time.Duration {
	if r.TTL > 0 {
		return r.TTL
	}
	return cache.TTLLayout
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
