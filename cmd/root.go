package cmd

import (
	"github.com/spf13/cobra"

	"github.com/clyra-ai/wrkr-docs/internal/config"
	"github.com/clyra-ai/wrkr-docs/internal/logger"
)

const appName = "wrkr-docs"

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Static documentation site builder for Wrkr",
	Long: `wrkr-docs builds the Wrkr documentation site: markdown pages wrapped in
the docs navigation, canonical URLs under the deployment base path,
JSON-LD descriptors and machine-readable discovery files for assistants
and crawlers. The export can be previewed locally, link-checked, and
queried by AI agents over MCP.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := "info"
		if verbose {
			level = "debug"
		}
		logger.SetDefault(appName, Version, level, logger.FormatText)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultFileName, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
