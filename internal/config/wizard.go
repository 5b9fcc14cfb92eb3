package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
)

// contentDirCandidates are directories checked, in order, for existing
// markdown content.
var contentDirCandidates = []string{"content", "docs", "site/content"}

// detectContentDir returns the first candidate directory that exists.
func detectContentDir() string {
	for _, dir := range contentDirCandidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return "content"
}

// RunWizard asks for the deployment settings interactively, saves the
// result to path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to wrkr-docs! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()
	cfg.ContentDir = detectContentDir()

	namePrompt := promptui.Prompt{
		Label:   "Site name",
		Default: cfg.Site.Name,
	}
	name, err := namePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site name: %w", err)
	}
	cfg.Site.Name = strings.TrimSpace(name)

	originPrompt := promptui.Prompt{
		Label:   "Site origin (scheme and host)",
		Default: cfg.Site.Origin,
		Validate: func(s string) error {
			return validateOrigin(strings.TrimRight(strings.TrimSpace(s), "/"))
		},
	}
	origin, err := originPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site origin: %w", err)
	}
	cfg.Site.Origin = strings.TrimRight(strings.TrimSpace(origin), "/")

	deployPrompt := promptui.Select{
		Label: "Where is the site deployed?",
		Items: []string{
			"under a sub-path (project pages, e.g. /wrkr)",
			"at the domain root",
		},
	}
	deployIdx, _, err := deployPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("deployment selection: %w", err)
	}
	cfg.Site.BasePath = ""
	if deployIdx == 0 {
		basePrompt := promptui.Prompt{
			Label:   "Base path",
			Default: "/wrkr",
		}
		base, err := basePrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("base path: %w", err)
		}
		cfg.Site.BasePath = strings.TrimSpace(base)
	}

	contentPrompt := promptui.Prompt{
		Label:   "Markdown content directory",
		Default: cfg.ContentDir,
	}
	if cfg.ContentDir, err = contentPrompt.Run(); err != nil {
		return nil, fmt.Errorf("content dir: %w", err)
	}

	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the static export",
		Default: cfg.OutputDir,
	}
	if cfg.OutputDir, err = outputPrompt.Run(); err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	excludePrompt := promptui.Prompt{
		Label:   "Extra exclude patterns (comma-separated, leave blank for defaults)",
		Default: "",
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}
	cfg.Exclude = append(cfg.Exclude, splitAndTrim(excludeStr)...)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and drops empty entries.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
