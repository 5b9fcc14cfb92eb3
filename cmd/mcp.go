package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	mcpserver "github.com/clyra-ai/wrkr-docs/internal/mcp"
	"github.com/clyra-ai/wrkr-docs/internal/nav"
	"github.com/clyra-ai/wrkr-docs/internal/seo"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing the docs routes, canonical URLs, menu state and FAQ to AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		site := cfg.SiteConfig()
		slog.Info("MCP server started on stdio", "origin", site.Origin, "base_path", site.BasePath)

		srv := mcpserver.NewServer(site, nav.Default(), seo.WrkrFAQ())
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
