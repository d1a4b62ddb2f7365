package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/clustermap/pkg/cache"
	errs "github.com/matzehuels/clustermap/pkg/errors"
	"github.com/matzehuels/clustermap/pkg/pipeline"
)

// configFileName is the config file looked up in configDir.
const configFileName = "config.toml"

// Config is the on-disk configuration. Command-line flags override it.
//
//	[layout]
//	card_width = 160
//	strategy = "chain"
//
//	[cache]
//	url = "redis://localhost:6379/0"
//	ttl = "24h"
//	compress = true
type Config struct {
	Layout pipeline.Options `toml:"layout"`
	Cache  CacheConfig      `toml:"cache"`
}

// CacheConfig selects and tunes the layout cache.
type CacheConfig struct {
	// URL of a remote backend; empty uses the local file cache.
	URL string `toml:"url"`
	// TTL is a Go duration string; empty uses cache.TTLLayout.
	TTL      string `toml:"ttl"`
	Compress bool   `toml:"compress"`
	Disabled bool   `toml:"disabled"`
}

// TTLDuration parses TTL. Validate has already rejected malformed values.
func (c CacheConfig) TTLDuration() time.Duration {
	if c.TTL == "" {
		return cache.TTLLayout
	}
	d, _ := time.ParseDuration(c.TTL)
	return d
}

// Validate checks the cache settings and the layout options.
func (c *Config) Validate() error {
	if c.Cache.URL != "" {
		if err := errs.ValidateCacheURL(c.Cache.URL); err != nil {
			return err
		}
	}
	if c.Cache.TTL != "" {
		d, err := time.ParseDuration(c.Cache.TTL)
		if err != nil || d < 0 {
			return errs.New(errs.ErrCodeInvalidConfig, "cache.ttl: invalid duration %q", c.Cache.TTL)
		}
	}
	return c.Layout.Validate()
}

// loadConfig reads the config file. An explicit path must exist; the
// default path is optional.
func loadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return Config{}, nil
		}
		path = filepath.Join(dir, configFileName)
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		if explicit {
			return Config{}, errs.Wrap(errs.ErrCodeFileNotFound, err, "config file %s not found", path)
		}
		return Config{}, nil
	}
	if err != nil {
		return Config{}, errs.Wrap(errs.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		slices.Sort(keys)
		return Config{}, errs.New(errs.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// writeDefaultConfig writes a config file with every default spelled out.
func writeDefaultConfig(path string) error {
	cfg := Config{Layout: pipeline.Options{}}
	cfg.Layout.SetDefaults()
	cfg.Cache.TTL = cache.TTLLayout.String()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		f.Close()
		return fmt.Errorf("encode config: %w", err)
	}
	return f.Close()
}

// redactURL hides the password of a cache URL for logging.
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<invalid url>"
	}
	return u.Redacted()
}
