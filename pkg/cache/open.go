package cache

import (
	"context"
	"fmt"
	"strings"
)

// Open returns the backend for url:
//
//	""                          FileCache in fallbackDir
//	redis://, rediss://         RedisCache
//	mongodb://, mongodb+srv://  MongoCache
//
// Remote backends are wrapped with Guarded.
func Open(ctx context.Context, url, fallbackDir string) (Cache, error) {
	switch {
	case url == "":
		return NewFileCache(fallbackDir)
	case strings.HasPrefix(url, "redis://"), strings.HasPrefix(url, "rediss://"):
		c, err := NewRedisCache(ctx, url)
		if err != nil {
			return nil, err
		}
		return Guarded(c, DefaultGuardSettings("redis")), nil
	case strings.HasPrefix(url, "mongodb://"), strings.HasPrefix(url, "mongodb+srv://"):
		c, err := NewMongoCache(ctx, url)
		if err != nil {
			return nil, err
		}
		return Guarded(c, DefaultGuardSettings("mongodb")), nil
	default:
		return nil, fmt.Errorf("unsupported cache url scheme: %q", url)
	}
}
