package site

import (
	"encoding/json"
	"os"

	"github.com/clyra-ai/wrkr-docs/internal/seo"
)

// maxSearchContent caps the text stored per page.
const maxSearchContent = 2000

// SearchEntry represents a single searchable page in the documentation.
type SearchEntry struct {
	Path    string `json:"path"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Content string `json:"content"`
}

// BuildSearchIndex turns rendered pages into search entries whose paths are
// hrefs under the deployment base path.
func BuildSearchIndex(pages []Page, site seo.SiteConfig) []SearchEntry {
	entries := make([]SearchEntry, 0, len(pages))
	for _, p := range pages {
		content := p.Text
		if len(content) > maxSearchContent {
			content = truncateUTF8(content, maxSearchContent)
		}
		entries = append(entries, SearchEntry{
			Path:    site.Href(p.Route),
			Title:   p.Title,
			Summary: p.Description,
			Content: content,
		})
	}
	return entries
}

// truncateUTF8 cuts s to at most n bytes without splitting a rune.
func truncateUTF8(s string, n int) string {
	if n >= len(s) {
		return s
	}
	for n > 0 && s[n]&0xC0 == 0x80 {
		n--
	}
	return s[:n]
}

// WriteSearchIndex writes the search index as JSON to the given path.
func WriteSearchIndex(entries []SearchEntry, outputPath string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}
