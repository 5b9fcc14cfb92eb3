package walker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// skipDirs are never descended into: VCS metadata, dependency trees, build
// caches and editor state. Keys are lower case.
var skipDirs = map[string]bool{
	".git":         true,
	".hg":          true,
	".svn":         true,
	"node_modules": true,
	".next":        true,
	".wrkr-docs":   true,
	".idea":        true,
	".vscode":      true,
}

// skipFiles are never published from a content or static tree.
var skipFiles = map[string]bool{
	".ds_store":   true,
	"thumbs.db":   true,
	"desktop.ini": true,
	".gitignore":  true,
}

func shouldExcludeDir(name string) bool {
	return skipDirs[strings.ToLower(name)]
}

// isScratchFile reports OS metadata and editor swap or backup files, which
// show up in content trees while pages are being edited.
func isScratchFile(name string) bool {
	if skipFiles[strings.ToLower(name)] {
		return true
	}
	switch {
	case strings.HasPrefix(name, ".#"), strings.HasSuffix(name, "~"):
		return true
	}
	switch filepath.Ext(name) {
	case ".swp", ".swo", ".tmp", ".bak":
		return true
	}
	return false
}

// MatchesInclude reports whether relPath matches one of patterns. No
// patterns means everything is included.
func MatchesInclude(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	return matchesAny(relPath, patterns)
}

// MatchesExclude reports whether relPath matches one of patterns.
func MatchesExclude(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	return matchesAny(relPath, patterns)
}

// matchesAny tries each pattern against the whole slash path, then against
// the file name alone so "*.md" matches at any depth.
func matchesAny(relPath string, patterns []string) bool {
	normalized := filepath.ToSlash(relPath)
	base := filepath.Base(normalized)

	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if matched, err := doublestar.Match(pattern, normalized); err == nil && matched {
			return true
		}
		if matched, err := doublestar.Match(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}

// ValidatePatterns rejects include or exclude globs doublestar cannot parse.
func ValidatePatterns(patterns []string) error {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(filepath.ToSlash(p)) {
			return fmt.Errorf("invalid glob pattern %q", p)
		}
	}
	return nil
}

// Overlaps reports whether dirs a and b are the same directory or one is
// nested inside the other. Paths are compared cleaned and absolute, with
// symlinks resolved.
func Overlaps(a, b string) (bool, error) {
	absA, err := resolveDir(a)
	if err != nil {
		return false, err
	}
	absB, err := resolveDir(b)
	if err != nil {
		return false, err
	}
	return within(absA, absB) || within(absB, absA), nil
}

// within reports whether child is parent or below it.
func within(parent, child string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// resolveDir returns dir as an absolute path with symlinks resolved in the
// longest prefix that exists.
func resolveDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}
	existing, rest := abs, ""
	for {
		if _, err := os.Lstat(existing); err == nil {
			break
		}
		parent := filepath.Dir(existing)
		if parent == existing {
			return abs, nil
		}
		rest = filepath.Join(filepath.Base(existing), rest)
		existing = parent
	}
	resolved, err := filepath.EvalSymlinks(existing)
	if err != nil {
		return abs, nil
	}
	return filepath.Join(resolved, rest), nil
}
