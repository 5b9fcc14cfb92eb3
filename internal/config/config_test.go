package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Site.Origin != "https://clyra-ai.github.io" {
		t.Errorf("expected default origin, got %q", cfg.Site.Origin)
	}
	if cfg.Site.BasePath != "/wrkr" {
		t.Errorf("expected default base_path %q, got %q", "/wrkr", cfg.Site.BasePath)
	}
	if cfg.OutputDir != "out" {
		t.Errorf("expected default output_dir %q, got %q", "out", cfg.OutputDir)
	}
	if cfg.MaxConcurrency != 8 {
		t.Errorf("expected default max_concurrency 8, got %d", cfg.MaxConcurrency)
	}
}

func TestDefaultConfigExcludesAreCopied(t *testing.T) {
	a := DefaultConfig()
	a.Exclude[0] = "changed"
	if DefaultExcludes[0] == "changed" {
		t.Error("DefaultConfig shares its exclude slice with DefaultExcludes")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.wrkr-docs.yml")

	original := DefaultConfig()
	original.Site.Origin = "https://docs.example.com"
	original.Site.BasePath = ""
	original.Include = []string{"docs/**/*.md", "guides/*.md"}
	original.OutputDir = "public"
	original.Server.Port = 9090

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Site.Origin != original.Site.Origin {
		t.Errorf("origin: got %q, want %q", loaded.Site.Origin, original.Site.Origin)
	}
	if loaded.Site.BasePath != "" {
		t.Errorf("base_path: got %q, want empty", loaded.Site.BasePath)
	}
	if loaded.OutputDir != original.OutputDir {
		t.Errorf("output_dir: got %q, want %q", loaded.OutputDir, original.OutputDir)
	}
	if loaded.Server.Port != 9090 {
		t.Errorf("server.port: got %d, want 9090", loaded.Server.Port)
	}
	if len(loaded.Include) != len(original.Include) {
		t.Fatalf("include length: got %d, want %d", len(loaded.Include), len(original.Include))
	}
	for i, v := range loaded.Include {
		if v != original.Include[i] {
			t.Errorf("include[%d]: got %q, want %q", i, v, original.Include[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Site.BasePath != "/wrkr" {
		t.Errorf("expected default base path, got %q", cfg.Site.BasePath)
	}
}

func TestLoadPartialFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yml")
	data := "site:\n  base_path: /docs\noutput_dir: dist\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Site.BasePath != "/docs" || cfg.OutputDir != "dist" {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Site.Origin != "https://clyra-ai.github.io" || cfg.ContentDir != "content" {
		t.Errorf("unset keys should keep their defaults: %+v", cfg)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(path, []byte("site: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("WRKRDOCS_OUTPUT_DIR", "build")
	t.Setenv("WRKRDOCS_SITE__BASE_PATH", "/preview")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.OutputDir != "build" {
		t.Errorf("env override failed: got %q, want %q", loaded.OutputDir, "build")
	}
	if loaded.Site.BasePath != "/preview" {
		t.Errorf("nested env override failed: got %q, want %q", loaded.Site.BasePath, "/preview")
	}
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"WRKRDOCS_OUTPUT_DIR", "output_dir"},
		{"WRKRDOCS_SITE__BASE_PATH", "site.base_path"},
		{"WRKRDOCS_SERVER__PORT", "server.port"},
	}
	for _, tt := range tests {
		if got := envKey(tt.in); got != tt.want {
			t.Errorf("envKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty name", func(c *Config) { c.Site.Name = "" }},
		{"empty origin", func(c *Config) { c.Site.Origin = "" }},
		{"origin without scheme", func(c *Config) { c.Site.Origin = "clyra-ai.github.io" }},
		{"ftp origin", func(c *Config) { c.Site.Origin = "ftp://example.com" }},
		{"origin with path", func(c *Config) { c.Site.Origin = "https://clyra-ai.github.io/wrkr" }},
		{"base path with query", func(c *Config) { c.Site.BasePath = "/wrkr?x=1" }},
		{"base path url", func(c *Config) { c.Site.BasePath = "https://x/wrkr" }},
		{"empty content dir", func(c *Config) { c.ContentDir = "" }},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }},
		{"output is content", func(c *Config) { c.OutputDir = c.ContentDir }},
		{"output is content spelled differently", func(c *Config) { c.ContentDir, c.OutputDir = "content", "./content/" }},
		{"output contains content", func(c *Config) { c.OutputDir = "." }},
		{"output inside content", func(c *Config) { c.OutputDir = "content/out" }},
		{"output is static", func(c *Config) { c.OutputDir = "static" }},
		{"invalid include glob", func(c *Config) { c.Include = []string{"docs/[a-"} }},
		{"invalid exclude glob", func(c *Config) { c.Exclude = []string{"{drafts"} }},
		{"negative concurrency", func(c *Config) { c.MaxConcurrency = -1 }},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestValidateAcceptsRootDeployment(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Site.Origin = "http://localhost:8080/"
	cfg.Site.BasePath = ""
	if err := cfg.Validate(); err != nil {
		t.Errorf("root deployment should be valid: %v", err)
	}
}

func TestSiteConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Site.Origin = "https://clyra-ai.github.io/"
	cfg.Site.BasePath = "wrkr/"

	site := cfg.SiteConfig()
	if site.Origin != "https://clyra-ai.github.io" || site.BasePath != "/wrkr" {
		t.Errorf("SiteConfig() = %+v", site)
	}
	if got := site.CanonicalURL("/docs/"); got != "https://clyra-ai.github.io/wrkr/docs/" {
		t.Errorf("CanonicalURL = %q", got)
	}
}

func TestDetectContentDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	if got := detectContentDir(); got != "content" {
		t.Errorf("empty dir: got %q, want content", got)
	}
	if err := os.Mkdir("docs", 0755); err != nil {
		t.Fatal(err)
	}
	if got := detectContentDir(); got != "docs" {
		t.Errorf("got %q, want docs", got)
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"**/*.md", []string{"**/*.md"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}
