package config

import "github.com/clyra-ai/wrkr-docs/internal/seo"

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = ".wrkr-docs.yml"

// DefaultExcludes are glob patterns never treated as content.
var DefaultExcludes = []string{
	".git/**",
	"node_modules/**",
	"**/_drafts/**",
	"**/README.md",
}

// DefaultConfig returns the configuration of the published Wrkr docs.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteSettings{
			Name:        "Wrkr",
			Description: "Wrkr evaluates AI dev tool configurations across GitHub repo/org against policy.",
			Origin:      seo.DefaultOrigin,
			BasePath:    seo.DefaultBasePath,
			Repository:  seo.WrkrRepository,
		},
		ContentDir:     "content",
		StaticDir:      "static",
		OutputDir:      "out",
		Include:        []string{"**/*.md"},
		Exclude:        append([]string(nil), DefaultExcludes...),
		MaxConcurrency: 8,
		LogLevel:       "info",
		LogFormat:      "text",
		Server: ServerConfig{
			Port:    8080,
			Metrics: true,
		},
	}
}
