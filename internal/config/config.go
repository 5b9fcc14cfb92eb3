package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/clyra-ai/wrkr-docs/internal/seo"
	"github.com/clyra-ai/wrkr-docs/internal/walker"
)

// EnvPrefix marks environment overrides. A double underscore separates
// nesting levels: WRKRDOCS_SITE__BASE_PATH sets site.base_path.
const EnvPrefix = "WRKRDOCS_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.Site.Name == "" {
		return fmt.Errorf("site.name is required")
	}
	if err := validateOrigin(c.Site.Origin); err != nil {
		return err
	}
	if strings.ContainsAny(c.Site.BasePath, "?# \t") || strings.Contains(c.Site.BasePath, "://") {
		return fmt.Errorf("invalid site.base_path %q: must be a plain path such as /wrkr", c.Site.BasePath)
	}

	if c.ContentDir == "" {
		return fmt.Errorf("content_dir is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if err := c.validateOutputDir(); err != nil {
		return err
	}
	if err := walker.ValidatePatterns(c.Include); err != nil {
		return fmt.Errorf("include: %w", err)
	}
	if err := walker.ValidatePatterns(c.Exclude); err != nil {
		return fmt.Errorf("exclude: %w", err)
	}

	if c.MaxConcurrency < 0 {
		return fmt.Errorf("max_concurrency must be non-negative")
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}

	return nil
}

// validateOutputDir rejects an output dir that shares a tree with the
// content or static dir, since builds write into it and --clean removes it.
func (c *Config) validateOutputDir() error {
	sources := []struct{ key, dir string }{
		{"content_dir", c.ContentDir},
		{"static_dir", c.StaticDir},
	}
	for _, src := range sources {
		if src.dir == "" {
			continue
		}
		overlap, err := walker.Overlaps(c.OutputDir, src.dir)
		if err != nil {
			return err
		}
		if overlap {
			return fmt.Errorf("output_dir %q overlaps %s %q", c.OutputDir, src.key, src.dir)
		}
	}
	return nil
}

func validateOrigin(origin string) error {
	if origin == "" {
		return fmt.Errorf("site.origin is required")
	}
	u, err := url.Parse(origin)
	if err != nil {
		return fmt.Errorf("invalid site.origin %q: %w", origin, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid site.origin %q: scheme must be http or https", origin)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid site.origin %q: missing host", origin)
	}
	if strings.Trim(u.Path, "/") != "" || u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("invalid site.origin %q: put the path in site.base_path", origin)
	}
	return nil
}

// SiteConfig returns the normalized deployment location.
func (c *Config) SiteConfig() seo.SiteConfig {
	return seo.NewSiteConfig(c.Site.Origin, c.Site.BasePath)
}
