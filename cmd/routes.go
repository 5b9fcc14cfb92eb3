package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/clyra-ai/wrkr-docs/internal/nav"
	"github.com/clyra-ai/wrkr-docs/internal/seo"
)

// routeEntry is one navigation link as printed by the routes command.
type routeEntry struct {
	Section string `json:"section" yaml:"section"`
	Title   string `json:"title" yaml:"title"`
	Href    string `json:"href" yaml:"href"`
	URL     string `json:"url" yaml:"url"`
	Active  bool   `json:"active,omitempty" yaml:"active,omitempty"`
}

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the navigation routes and their canonical URLs",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		current, _ := cmd.Flags().GetString("current")
		section, _ := cmd.Flags().GetString("section")

		tree := nav.Default()
		if section != "" {
			item, ok := tree.Section(section)
			if !ok {
				return fmt.Errorf("unknown section %q", section)
			}
			tree = nav.Tree{item}
		}
		return printRoutes(cmd.OutOrStdout(), routeEntries(tree, cfg.SiteConfig(), current), format)
	},
}

func init() {
	routesCmd.Flags().String("format", "text", "output format: text, json or yaml")
	routesCmd.Flags().String("current", "", "mark the links active on this path")
	routesCmd.Flags().String("section", "", "only list links under this section")
	rootCmd.AddCommand(routesCmd)
}

func routeEntries(tree nav.Tree, site seo.SiteConfig, current string) []routeEntry {
	links := tree.Links()
	entries := make([]routeEntry, len(links))
	for i, l := range links {
		entries[i] = routeEntry{
			Section: l.Section,
			Title:   l.Title,
			Href:    l.Href,
			URL:     site.PageURL(l.Href),
			Active:  current != "" && nav.IsActive(current, l.Href),
		}
	}
	return entries
}

func printRoutes(w io.Writer, entries []routeEntry, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "SECTION\tTITLE\tHREF\tURL")
		for _, e := range entries {
			title := e.Title
			if e.Active {
				title = "* " + title
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Section, title, e.Href, e.URL)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
