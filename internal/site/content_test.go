package site

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yuin/goldmark/text"

	"github.com/clyra-ai/wrkr-docs/internal/seo"
	"github.com/clyra-ai/wrkr-docs/internal/walker"
)

func TestRouteFor(t *testing.T) {
	tests := []struct {
		relPath string
		want    string
	}{
		{"docs/faq.md", "/docs/faq"},
		{"docs/_index.md", "/docs"},
		{"_index.md", "/"},
		{"docs/commands/index.md", "/docs/commands/index"},
		{"docs/intent/scan-org.markdown", "/docs/intent/scan-org"},
		{`docs\trust\release-integrity.md`, "/docs/trust/release-integrity"},
		{"./docs/../docs/faq.md", "/docs/faq"},
	}
	for _, tt := range tests {
		if got := RouteFor(tt.relPath); got != tt.want {
			t.Errorf("RouteFor(%q) = %q, want %q", tt.relPath, got, tt.want)
		}
	}
}

func TestTitleFromSlug(t *testing.T) {
	tests := []struct {
		slug, want string
	}{
		{"scan", "Scan"},
		{"adopt_in_one_pr", "Adopt In One Pr"},
		{"detect-headless-agent-risk", "Detect Headless Agent Risk"},
		{"/", "Home"},
		{"", "Home"},
	}
	for _, tt := range tests {
		if got := titleFromSlug(tt.slug); got != tt.want {
			t.Errorf("titleFromSlug(%q) = %q, want %q", tt.slug, got, tt.want)
		}
	}
}

func TestExtractText(t *testing.T) {
	src := []byte("# Title\n\nFirst *para* and\ncontinues.\n\n- one\n- two\n\n```sh\nwrkr scan\n```\n")
	md := newMarkdown(seo.Default(), nil)
	doc := md.Parser().Parse(text.NewReader(src))

	plain, summary := extractText(doc, src)
	if summary != "First para and continues." {
		t.Errorf("summary = %q", summary)
	}
	want := "Title\nFirst para and continues.\none two\nwrkr scan"
	if plain != want {
		t.Errorf("plain =\n%q\nwant\n%q", plain, want)
	}
	if got := extractTitle(doc, src); got != "Title" {
		t.Errorf("extractTitle = %q", got)
	}
}

func writeContent(t *testing.T, dir, rel, body string) walker.FileInfo {
	t.Helper()
	p := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return walker.FileInfo{Path: p, RelPath: rel, Kind: walker.KindMarkdown}
}

func TestLoadPage(t *testing.T) {
	dir := t.TempDir()
	md := newMarkdown(seo.Default(), map[string]bool{"/docs/faq": true})

	tests := []struct {
		name        string
		rel, body   string
		title, desc string
		showTitle   bool
	}{
		{
			name:  "front matter wins",
			rel:   "docs/a.md",
			body:  "---\ntitle: From FM\ndescription: Desc\n---\n\n# Heading\n\nBody text.\n",
			title: "From FM", desc: "Desc",
		},
		{
			name:  "heading fallback",
			rel:   "docs/b.md",
			body:  "# Heading B\n\nFirst paragraph.\n",
			title: "Heading B", desc: "First paragraph.",
		},
		{
			name:  "slug fallback",
			rel:   "docs/release-integrity.md",
			body:  "Only a paragraph.\n",
			title: "Release Integrity", desc: "Only a paragraph.", showTitle: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := loadPage(md, writeContent(t, dir, tt.rel, tt.body))
			if err != nil {
				t.Fatalf("loadPage: %v", err)
			}
			if p.Title != tt.title || p.Description != tt.desc {
				t.Errorf("title/desc = %q/%q, want %q/%q", p.Title, p.Description, tt.title, tt.desc)
			}
			if p.ShowTitle != tt.showTitle {
				t.Errorf("ShowTitle = %v, want %v", p.ShowTitle, tt.showTitle)
			}
			if p.Route != RouteFor(tt.rel) || p.Builtin() {
				t.Errorf("route = %q, builtin = %v", p.Route, p.Builtin())
			}
			if strings.Contains(string(p.Body), "---") {
				t.Error("front matter leaked into the body")
			}
		})
	}
}

func TestLoadPageRewritesLinks(t *testing.T) {
	dir := t.TempDir()
	md := newMarkdown(seo.Default(), map[string]bool{"/docs/faq": true})
	body := "[faq](/docs/faq.md#top) [raw](/llm/product.md) [rel](../x) [ext](https://example.com/a.md) ![img](/og.svg)\n"

	p, err := loadPage(md, writeContent(t, dir, "docs/links.md", body))
	if err != nil {
		t.Fatalf("loadPage: %v", err)
	}
	html := string(p.Body)
	for _, want := range []string{
		`href="/wrkr/docs/faq/#top"`,
		`href="/wrkr/llm/product.md"`,
		`href="../x"`,
		`href="https://example.com/a.md"`,
		`src="/wrkr/og.svg"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("body missing %s:\n%s", want, html)
		}
	}
}

func TestLinkRewriterRootDeployment(t *testing.T) {
	r := &linkRewriter{site: seo.NewSiteConfig("https://docs.example.com", ""), routes: map[string]bool{"/a": true}}
	tests := []struct {
		in, want string
	}{
		{"/a.md", "/a/"},
		{"/a", "/a/"},
		{"/b.md", "/b.md"},
		{"//cdn.example.com/x.js", "//cdn.example.com/x.js"},
		{"#frag", "#frag"},
	}
	for _, tt := range tests {
		if got := r.rewrite(tt.in); got != tt.want {
			t.Errorf("rewrite(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
