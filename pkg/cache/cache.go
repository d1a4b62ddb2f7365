// Package cache memoizes computed layouts.
//
// The layout engine is referentially transparent, so a layout can be reused
// whenever the input document and the layout options are unchanged. The
// [pipeline.Runner] derives a key from both with a [Keyer] and stores the
// serialized layout in a [Cache].
//
// # Backends
//
//   - [NullCache]: never stores anything (caching disabled)
//   - [MemoryCache]: in-process map, used by watch mode and tests
//   - [FileCache]: one JSON file per entry under the XDG cache directory
//   - [RedisCache]: shared cache for several hosts (redis:// URLs)
//   - [MongoCache]: shared cache with server-side expiry (mongodb:// URLs)
//
// Backends can be decorated with [Compressed] (snappy) and [Guarded]
// (circuit breaker that turns a failing remote backend into misses).
//
// [pipeline.Runner]: github.com/matzehuels/clustermap/pkg/pipeline
package cache

import (
	"context"
	"time"
)

// TTLLayout is how long a computed layout stays cached.
const TTLLayout = 7 * 24 * time.Hour

// Cache stores opaque byte payloads by key.
//
// Get reports a miss as (nil, false, nil); an error means the backend could
// not be queried. A zero ttl passed to Set means no expiry.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// LayoutKeyOpts holds every option that changes a computed layout.
type LayoutKeyOpts struct {
	CardWidth       float64 `json:"card_width"`
	CardGap         float64 `json:"card_gap"`
	ConnectorWidth  float64 `json:"connector_width"`
	LaneSpacing     float64 `json:"lane_spacing"`
	Strategy        string  `json:"strategy"`
	IncludeIsolated bool    `json:"include_isolated"`
}

// Keyer generates cache keys.
type Keyer interface {
	// LayoutKey returns the key for a layout of the input with the given hash.
	LayoutKey(inputHash string, opts LayoutKeyOpts) string
}

// DefaultKeyer generates unscoped keys of the form "layout:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer creates a DefaultKeyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// LayoutKey generates a key covering the input hash and all layout options.
func (DefaultKeyer) LayoutKey(inputHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", inputHash, opts)
}
