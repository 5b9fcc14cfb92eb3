package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/clyra-ai/wrkr-docs/internal/seo"
)

// Version is set via ldflags at build time.
var Version = "dev"

type versionInfo struct {
	Version   string `json:"version"`
	Revision  string `json:"revision,omitempty"`
	GoVersion string `json:"go_version"`
	// SiteURL is where the built-in defaults publish the docs.
	SiteURL string `json:"site_url"`
}

func currentVersion() versionInfo {
	info := versionInfo{
		Version:   Version,
		GoVersion: runtime.Version(),
		SiteURL:   seo.Default().CanonicalURL("/"),
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" && len(s.Value) >= 12 {
				info.Revision = s.Value[:12]
			}
		}
	}
	return info
}

func printVersion(w io.Writer, info versionInfo, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	case "", "text":
		rev := ""
		if info.Revision != "" {
			rev = " (" + info.Revision + ")"
		}
		_, err := fmt.Fprintf(w, "%s %s%s %s\ndefault site: %s\n", appName, info.Version, rev, info.GoVersion, info.SiteURL)
		return err
	default:
		return fmt.Errorf("unknown format %q (want text or json)", format)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the wrkr-docs version and the site it publishes by default",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		return printVersion(cmd.OutOrStdout(), currentVersion(), format)
	},
}

func init() {
	versionCmd.Flags().String("format", "text", "output format: text or json")
	rootCmd.AddCommand(versionCmd)
}
