package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/clyra-ai/wrkr-docs/internal/config"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the static documentation site",
	Long: `Converts the markdown content into the static export: one index.html per
route under the output directory, plus the 404 page, static assets,
llms.txt, llms-full.txt, robots.txt, sitemap.xml, ai-sitemap.xml and the
search index.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().Bool("clean", false, "remove the output directory before building")
	buildCmd.Flags().Bool("quiet", false, "do not report progress")
	buildCmd.Flags().Bool("check", false, "check navigation links after building")
	buildCmd.Flags().String("output", "", "override the output directory")
	buildCmd.Flags().Int("concurrency", 0, "max pages rendered in parallel (overrides config)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	start := time.Now()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	output, _ := cmd.Flags().GetString("output")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	if err := applyBuildFlags(cfg, output, concurrency); err != nil {
		return err
	}
	quiet, _ := cmd.Flags().GetBool("quiet")

	gen := newGenerator(cfg, cmd.ErrOrStderr(), quiet)
	gen.Clean, _ = cmd.Flags().GetBool("clean")

	result, err := gen.Generate(cmd.Context())
	if err != nil {
		return fmt.Errorf("building site: %w", err)
	}

	slog.Debug("build finished", "duration", time.Since(start), "resources", result.Resources)
	fmt.Fprintf(cmd.OutOrStdout(), "Built %d pages into %s (%d assets copied, %d unchanged) in %s\n",
		len(result.Pages), cfg.OutputDir, result.Assets, result.Skipped, time.Since(start).Round(time.Millisecond))

	if check, _ := cmd.Flags().GetBool("check"); check {
		return reportLinks(cmd.OutOrStdout(), cfg.OutputDir, "text")
	}
	return nil
}

// applyBuildFlags overlays the build flags on cfg and validates the result
// again, since --output never went through the config checks.
func applyBuildFlags(cfg *config.Config, output string, concurrency int) error {
	if output != "" {
		cfg.OutputDir = output
	}
	if concurrency > 0 {
		cfg.MaxConcurrency = concurrency
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid build flags: %w", err)
	}
	return nil
}
