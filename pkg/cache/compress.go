package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/golang/snappy"
)

// CompressedCache snappy-compresses values before handing them to the
// wrapped backend. Layout documents are repetitive JSON and shrink well.
type CompressedCache struct {
	inner Cache
}

// Compressed wraps c so that stored values are snappy-encoded.
func Compressed(c Cache) *CompressedCache {
	return &CompressedCache{inner: c}
}

// Get fetches and decodes key. A value that fails to decode is reported as
// ErrCorrupt.
func (c *CompressedCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, ok, err := c.inner.Get(ctx, key)
	if err != nil || !ok {
		return nil, false, err
	}
	out, err := snappy.Decode(nil, data)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return out, true, nil
}

// Set encodes data and stores it.
func (c *CompressedCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return c.inner.Set(ctx, key, snappy.Encode(nil, data), ttl)
}

// Delete removes key from the wrapped backend.
func (c *CompressedCache) Delete(ctx context.Context, key string) error {
	return c.inner.Delete(ctx, key)
}

// Close closes the wrapped backend.
func (c *CompressedCache) Close() error {
	return c.inner.Close()
}

var _ Cache = (*CompressedCache)(nil)
