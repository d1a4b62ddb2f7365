package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/clustermap/pkg/cache"
	errs "github.com/matzehuels/clustermap/pkg/errors"
	"github.com/matzehuels/clustermap/pkg/pipeline"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, `
[layout]
card_width = 120.0
strategy = "positional"
include_isolated = true

[cache]
url = "redis://localhost:6379/0"
ttl = "1h"
compress = true
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Layout.CardWidth != 120 {
		t.Errorf("CardWidth = %v, want 120", cfg.Layout.CardWidth)
	}
	if cfg.Layout.Strategy != "positional" {
		t.Errorf("Strategy = %q, want positional", cfg.Layout.Strategy)
	}
	if !cfg.Layout.IncludeIsolated {
		t.Error("IncludeIsolated = false, want true")
	}
	if cfg.Cache.URL != "redis://localhost:6379/0" || !cfg.Cache.Compress {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
	if got := cfg.Cache.TTLDuration(); got != time.Hour {
		t.Errorf("TTLDuration() = %v, want 1h", got)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestLoadConfigExplicitZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "[layout]\ncard_gap = 0.0\nlane_spacing = 0.0\n")

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	m := cfg.Layout.Metrics()
	if m.CardGap != 0 || m.LaneSpacing != 0 {
		t.Errorf("Metrics() = %+v, want card_gap and lane_spacing kept at 0", m)
	}
	if m.ConnectorWidth != pipeline.DefaultConnectorWidth {
		t.Errorf("ConnectorWidth = %v, want default %v", m.ConnectorWidth, pipeline.DefaultConnectorWidth)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	unknown := filepath.Join(dir, "unknown.toml")
	writeFile(t, unknown, "[layout]\ncard_widht = 120.0\n")
	_, err := loadConfig(unknown)
	if !errs.Is(err, errs.ErrCodeInvalidConfig) {
		t.Errorf("unknown key: error = %v, want INVALID_CONFIG", err)
	} else if !strings.Contains(err.Error(), "layout.card_widht") {
		t.Errorf("unknown key: error = %v, want key name", err)
	}

	broken := filepath.Join(dir, "broken.toml")
	writeFile(t, broken, "[layout\n")
	if _, err := loadConfig(broken); !errs.Is(err, errs.ErrCodeInvalidConfig) {
		t.Errorf("syntax error: error = %v, want INVALID_CONFIG", err)
	}

	if _, err := loadConfig(filepath.Join(dir, "missing.toml")); !errs.Is(err, errs.ErrCodeFileNotFound) {
		t.Errorf("explicit missing file: error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestLoadConfigDefaultMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig(\"\") error: %v", err)
	}
	if cfg.Layout != (pipeline.Options{}) || cfg.Cache != (CacheConfig{}) {
		t.Errorf("loadConfig(\"\") = %+v, want zero config", cfg)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"zero", Config{}, false},
		{"redis url", Config{Cache: CacheConfig{URL: "rediss://cache:6380"}}, false},
		{"mongo url", Config{Cache: CacheConfig{URL: "mongodb+srv://cluster.example.com/db"}}, false},
		{"bad scheme", Config{Cache: CacheConfig{URL: "http://cache"}}, true},
		{"bad ttl", Config{Cache: CacheConfig{TTL: "soon"}}, true},
		{"negative ttl", Config{Cache: CacheConfig{TTL: "-1h"}}, true},
		{"bad strategy", Config{Layout: pipeline.Options{Strategy: "spiral"}}, true},
		{"negative gap", Config{Layout: pipeline.Options{CardGap: pipeline.Px(-1)}}, true},
		{"zero gap", Config{Layout: pipeline.Options{CardGap: pipeline.Px(0)}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errs.Is(err, errs.ErrCodeInvalidConfig) {
				t.Errorf("Validate() code = %q, want INVALID_CONFIG", errs.GetCode(err))
			}
		})
	}
}

func TestTTLDurationDefault(t *testing.T) {
	if got := (CacheConfig{}).TTLDuration(); got != cache.TTLLayout {
		t.Errorf("TTLDuration() = %v, want %v", got, cache.TTLLayout)
	}
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := writeDefaultConfig(path); err != nil {
		t.Fatalf("writeDefaultConfig() error: %v", err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() after writeDefaultConfig error: %v", err)
	}
	if cfg.Layout.CardWidth != pipeline.DefaultCardWidth {
		t.Errorf("CardWidth = %v, want %v", cfg.Layout.CardWidth, pipeline.DefaultCardWidth)
	}
	if cfg.Layout.Strategy != pipeline.DefaultStrategy {
		t.Errorf("Strategy = %q, want %q", cfg.Layout.Strategy, pipeline.DefaultStrategy)
	}
	if cfg.Cache.TTLDuration() != cache.TTLLayout {
		t.Errorf("TTL = %q, want %v", cfg.Cache.TTL, cache.TTLLayout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestRedactURL(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"redis://:secret@localhost:6379/0", "redis://:xxxxx@localhost:6379/0"},
		{"mongodb://user:pw@db:27017/layouts", "mongodb://user:xxxxx@db:27017/layouts"},
		{"redis://localhost:6379", "redis://localhost:6379"},
	}
	for _, tt := range tests {
		if got := redactURL(tt.in); got != tt.want {
			t.Errorf("redactURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
