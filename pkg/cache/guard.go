package cache

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"
)

// GuardSettings tunes the circuit breaker of a GuardedCache.
type GuardSettings struct {
	// Name identifies the breaker in state-change callbacks.
	Name string
	// MaxFailures is the number of consecutive failures that open the breaker.
	MaxFailures uint32
	// Timeout is how long the breaker stays open before probing again.
	Timeout time.Duration
	// OnStateChange is called on every breaker transition. Optional.
	OnStateChange func(name string, from, to string)
}

// DefaultGuardSettings returns settings suitable for a remote cache.
func DefaultGuardSettings(name string) GuardSettings {
	return GuardSettings{
		Name:        name,
		MaxFailures: 3,
		Timeout:     30 * time.Second,
	}
}

// GuardedCache protects a remote backend with a circuit breaker. While the
// breaker is open every Get is a miss and every Set or Delete is dropped, so
// an unreachable cache degrades to recomputation instead of failing layouts.
type GuardedCache struct {
	inner Cache
	cb    *gobreaker.CircuitBreaker
}

// Guarded wraps c with a circuit breaker configured by s.
func Guarded(c Cache, s GuardSettings) *GuardedCache {
	if s.MaxFailures == 0 {
		s.MaxFailures = 3
	}
	settings := gobreaker.Settings{
		Name:    s.Name,
		Timeout: s.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= s.MaxFailures
		},
	}
	if s.OnStateChange != nil {
		settings.OnStateChange = func(name string, from, to gobreaker.State) {
			s.OnStateChange(name, from.String(), to.String())
		}
	}
	return &GuardedCache{inner: c, cb: gobreaker.NewCircuitBreaker(settings)}
}

// State reports the breaker state ("closed", "half-open" or "open").
func (c *GuardedCache) State() string {
	return c.cb.State().String()
}

type getResult struct {
	data []byte
	ok   bool
}

// Get fetches key through the breaker. Rejected calls are misses.
func (c *GuardedCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, err := c.cb.Execute(func() (any, error) {
		data, ok, err := c.inner.Get(ctx, key)
		return getResult{data, ok}, err
	})
	if rejected(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	r := v.(getResult)
	return r.data, r.ok, nil
}

// Set stores through the breaker. Rejected calls are dropped silently.
func (c *GuardedCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	_, err := c.cb.Execute(func() (any, error) {
		return nil, c.inner.Set(ctx, key, data, ttl)
	})
	if rejected(err) {
		return nil
	}
	return err
}

// Delete removes through the breaker. Rejected calls are dropped silently.
func (c *GuardedCache) Delete(ctx context.Context, key string) error {
	_, err := c.cb.Execute(func() (any, error) {
		return nil, c.inner.Delete(ctx, key)
	})
	if rejected(err) {
		return nil
	}
	return err
}

// Close closes the wrapped backend.
func (c *GuardedCache) Close() error {
	return c.inner.Close()
}

func rejected(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

var _ Cache = (*GuardedCache)(nil)
