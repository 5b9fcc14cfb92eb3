package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/clyra-ai/wrkr-docs/internal/nav"
	"github.com/clyra-ai/wrkr-docs/internal/site"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that every navigation link resolves in the built site",
	Long: `Verifies that each internal link emitted by the sidebar, the built-in
pages and the footer has a page or file behind it in the output
directory. Exits non-zero when any link dangles.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		return reportLinks(cmd.OutOrStdout(), cfg.OutputDir, format)
	},
}

func init() {
	checkCmd.Flags().String("format", "text", "output format: text or json")
	rootCmd.AddCommand(checkCmd)
}

// reportLinks runs the link check and prints dangling links to w.
func reportLinks(w io.Writer, outputDir, format string) error {
	err := site.CheckLinks(outputDir, site.SiteLinks(nav.Default()))

	var dangling *site.DanglingLinksError
	if err != nil && !errors.As(err, &dangling) {
		return err
	}

	switch format {
	case "json":
		links := []site.DanglingLink{}
		if dangling != nil {
			links = dangling.Links
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if encErr := enc.Encode(links); encErr != nil {
			return encErr
		}
	case "text", "":
		if dangling == nil {
			fmt.Fprintln(w, "All links resolve.")
			return nil
		}
		for _, l := range dangling.Links {
			fmt.Fprintf(w, "dangling: %s (%s / %s)\n", l.Href, l.Section, l.Title)
		}
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	return err
}
