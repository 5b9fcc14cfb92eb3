package cmd

import (
	"strings"
	"testing"

	"github.com/clyra-ai/wrkr-docs/internal/config"
)

func TestApplyBuildFlags(t *testing.T) {
	cfg := config.DefaultConfig()
	if err := applyBuildFlags(cfg, "public", 3); err != nil {
		t.Fatalf("applyBuildFlags: %v", err)
	}
	if cfg.OutputDir != "public" || cfg.MaxConcurrency != 3 {
		t.Errorf("output/concurrency = %q/%d, want public/3", cfg.OutputDir, cfg.MaxConcurrency)
	}

	cfg = config.DefaultConfig()
	if err := applyBuildFlags(cfg, "", 0); err != nil {
		t.Fatalf("applyBuildFlags without flags: %v", err)
	}
	if cfg.OutputDir != "out" || cfg.MaxConcurrency != 8 {
		t.Errorf("defaults changed: %q/%d", cfg.OutputDir, cfg.MaxConcurrency)
	}
}

func TestApplyBuildFlagsRejectsSourceOutput(t *testing.T) {
	for _, output := range []string{".", "./content", "content/site", "static"} {
		cfg := config.DefaultConfig()
		err := applyBuildFlags(cfg, output, 0)
		if err == nil || !strings.Contains(err.Error(), "overlaps") {
			t.Errorf("--output %s: err = %v, want overlap error", output, err)
		}
	}
}
