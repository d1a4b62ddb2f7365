// Package observability lets the host attach metrics or tracing to the
// layout pipeline without the engine depending on any backend.
//
// Hooks are registered once by main and read by the pipeline and the cache
// runner. The defaults do nothing.
//
//	func main() {
//	    observability.SetPipelineHooks(newPromHooks(registry))
//	    observability.SetCacheHooks(newPromHooks(registry))
//	    // ... run application
//	}
//
// The pipeline emits:
//
//	observability.Pipeline().OnLayoutStart(ctx, items, pairs)
//	observability.Pipeline().OnStageComplete(ctx, observability.StageCluster, d)
//	observability.Pipeline().OnLayoutComplete(ctx, stats, d, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// Stage names a pipeline stage.
type Stage string

// Pipeline stages in execution order.
const (
	StageCluster Stage = "cluster"
	StageGroup   Stage = "group"
	StageIndex   Stage = "index"
	StageAlign   Stage = "align"
	StageConnect Stage = "connect"
	StagePalette Stage = "palette"
)

// Stages lists every stage in execution order.
var Stages = []Stage{StageCluster, StageGroup, StageIndex, StageAlign, StageConnect, StagePalette}

// LayoutStats summarizes a finished layout.
type LayoutStats struct {
	Clusters      int
	SuperClusters int
	Connectors    int
}

// PipelineHooks receives events from the layout pipeline.
type PipelineHooks interface {
	OnLayoutStart(ctx context.Context, items, pairs int)
	OnStageComplete(ctx context.Context, stage Stage, duration time.Duration)
	OnLayoutComplete(ctx context.Context, stats LayoutStats, duration time.Duration, err error)
}

// CacheHooks receives events from layout memoization.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLayoutStart(context.Context, int, int)                             {}
func (NoopPipelineHooks) OnStageComplete(context.Context, Stage, time.Duration)               {}
func (NoopPipelineHooks) OnLayoutComplete(context.Context, LayoutStats, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks. Nil is ignored.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetCacheHooks registers custom cache hooks. Nil is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	cacheHooks = NoopCacheHooks{}
}
