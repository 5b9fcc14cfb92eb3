package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/clyra-ai/wrkr-docs/internal/config"
	"github.com/clyra-ai/wrkr-docs/internal/logger"
	"github.com/clyra-ai/wrkr-docs/internal/nav"
	"github.com/clyra-ai/wrkr-docs/internal/progress"
	"github.com/clyra-ai/wrkr-docs/internal/seo"
	"github.com/clyra-ai/wrkr-docs/internal/site"
)

// loadConfig loads and validates the config, providing a user-friendly
// error, and reinstalls the default logger with the configured level.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `wrkr-docs init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	logger.SetDefault(appName, Version, level, logger.ParseFormat(cfg.LogFormat))
	return cfg, nil
}

// application returns the JSON-LD facts for the configured site.
func application(cfg *config.Config) seo.Application {
	app := seo.WrkrApplication(cfg.SiteConfig())
	if cfg.Site.Name != "" {
		app.Name = cfg.Site.Name
	}
	if cfg.Site.Description != "" {
		app.Description = cfg.Site.Description
	}
	if cfg.Site.Repository != "" {
		app.Repository = cfg.Site.Repository
	}
	return app
}

// newGenerator wires a site generator from cfg. Progress goes to w.
func newGenerator(cfg *config.Config, w io.Writer, quiet bool) *site.Generator {
	gen := site.NewGenerator(site.Options{
		ContentDir:     cfg.ContentDir,
		StaticDir:      cfg.StaticDir,
		OutputDir:      cfg.OutputDir,
		Include:        cfg.Include,
		Exclude:        cfg.Exclude,
		MaxConcurrency: cfg.MaxConcurrency,
		SiteName:       cfg.Site.Name,
		Site:           cfg.SiteConfig(),
		Tree:           nav.Default(),
		App:            application(cfg),
		FAQ:            seo.WrkrFAQ(),
	})
	gen.Logger = slog.Default()
	gen.Reporter = progress.NewReporter(w, quiet)
	return gen
}
