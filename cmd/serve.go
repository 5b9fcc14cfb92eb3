package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/clyra-ai/wrkr-docs/internal/metric"
	"github.com/clyra-ai/wrkr-docs/internal/server"
	"github.com/clyra-ai/wrkr-docs/internal/watch"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Build the site and preview it locally",
	Long: `Builds the static export and serves it under the configured base path,
with the export's 404 page for unknown routes. With --watch, changes to
the content or static directories trigger a rebuild, and open pages reload
once it finishes.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port for the preview server (overrides config)")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	serveCmd.Flags().Bool("watch", false, "rebuild when content or static files change")
	serveCmd.Flags().Bool("skip-build", false, "serve the existing output directory as-is")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		cfg.Server.Port = port
	}

	watching, _ := cmd.Flags().GetBool("watch")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(server.Config{
		Port:     cfg.Server.Port,
		Dir:      cfg.OutputDir,
		BasePath: cfg.Site.BasePath,
		Metrics:  cfg.Server.Metrics,
		// Open pages reload after each watch rebuild.
		LiveReload: watching,
	}, slog.Default())
	if err != nil {
		return err
	}

	gen := newGenerator(cfg, cmd.ErrOrStderr(), true)
	if cfg.Server.Metrics {
		pages, err := metric.NewCounter(srv.Registry(),
			"wrkr_docs_pages_rendered_total",
			"Pages rendered by kind.",
			"kind")
		if err != nil {
			return err
		}
		gen.Pages = pages
	}

	if skip, _ := cmd.Flags().GetBool("skip-build"); !skip {
		if _, err := gen.Generate(ctx); err != nil {
			return fmt.Errorf("building site: %w", err)
		}
	}

	url := fmt.Sprintf("http://localhost:%d%s/", cfg.Server.Port, cfg.SiteConfig().BasePath)
	fmt.Fprintf(cmd.OutOrStdout(), "Serving %s at %s (press Ctrl+C to stop)\n", cfg.OutputDir, url)
	if open, _ := cmd.Flags().GetBool("open"); open {
		go openBrowser(url)
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Serve(gCtx)
	})
	if watching {
		w := &watch.Watcher{
			Dirs: []string{cfg.ContentDir, cfg.StaticDir},
			Rebuild: func(ctx context.Context) error {
				if _, err := gen.Generate(ctx); err != nil {
					return err
				}
				slog.Debug("reloading preview pages", "pages", srv.Reload())
				return nil
			},
			Logger: slog.Default(),
		}
		g.Go(func() error {
			return w.Run(gCtx)
		})
	}
	return g.Wait()
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
