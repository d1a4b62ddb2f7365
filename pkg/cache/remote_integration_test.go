//go:build integration

package cache

import (
	"context"
	"os"
	"testing"
	"time"
)

// Run with: CLUSTERMAP_REDIS_URL=redis://localhost:6379/0 \
// CLUSTERMAP_MONGO_URL=mongodb://localhost:27017/clustermap_test \
// go test -tags integration ./pkg/cache

func exerciseBackend(t *testing.T, c Cache) {
	t.Helper()
	ctx := context.Background()
	key := "it:" + time.Now().Format(time.RFC3339Nano)

	if _, hit, err := c.Get(ctx, key); hit || err != nil {
		t.Fatalf("Get(new) = %v, %v, want miss", hit, err)
	}
	if err := c.Set(ctx, key, []byte("payload"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, hit, err := c.Get(ctx, key)
	if err != nil || !hit || string(got) != "payload" {
		t.Fatalf("Get = %q, %v, %v, want payload hit", got, hit, err)
	}
	if err := c.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, key); hit {
		t.Error("deleted key should miss")
	}
}

func TestRedisCacheIntegration(t *testing.T) {
	url := os.Getenv("CLUSTERMAP_REDIS_URL")
	if url == "" {
		t.Skip("CLUSTERMAP_REDIS_URL not set")
	}
	c, err := NewRedisCache(context.Background(), url)
	if err != nil {
		t.Fatalf("NewRedisCache: %v", err)
	}
	defer c.Close()
	exerciseBackend(t, c)
	exerciseBackend(t, Compressed(c))
}

func TestMongoCacheIntegration(t *testing.T) {
	url := os.Getenv("CLUSTERMAP_MONGO_URL")
	if url == "" {
		t.Skip("CLUSTERMAP_MONGO_URL not set")
	}
	c, err := NewMongoCache(context.Background(), url)
	if err != nil {
		t.Fatalf("NewMongoCache: %v", err)
	}
	defer c.Close()
	exerciseBackend(t, c)
}
