package site

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/clyra-ai/wrkr-docs/internal/nav"
	"github.com/clyra-ai/wrkr-docs/internal/seo"
)

func touch(t *testing.T, dir, rel string) {
	t.Helper()
	p := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, nil, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCheckLinks(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "index.html")
	touch(t, dir, "docs/index.html")
	touch(t, dir, "docs/faq/index.html")
	touch(t, dir, "docs/legacy.html")
	touch(t, dir, "llms.txt")
	if err := os.MkdirAll(filepath.Join(dir, "docs", "empty"), 0o755); err != nil {
		t.Fatal(err)
	}

	links := []nav.Link{
		{Section: "A", Title: "Home", Href: "/"},
		{Section: "A", Title: "Docs", Href: "/docs/"},
		{Section: "A", Title: "FAQ", Href: "/docs/faq#scope"},
		{Section: "A", Title: "Legacy", Href: "/docs/legacy"},
		{Section: "B", Title: "llms", Href: "/llms.txt"},
		{Section: "B", Title: "GitHub", Href: "https://github.com/Clyra-AI/wrkr"},
		{Section: "B", Title: "Top", Href: "#top"},
	}
	if err := CheckLinks(dir, links); err != nil {
		t.Fatalf("CheckLinks: %v", err)
	}

	links = append(links,
		nav.Link{Section: "C", Title: "Missing", Href: "/docs/missing"},
		nav.Link{Section: "C", Title: "Empty", Href: "/docs/empty"},
		nav.Link{Section: "C", Title: "Ai", Href: "/ai-sitemap.xml"},
	)
	err := CheckLinks(dir, links)
	var dangling *DanglingLinksError
	if !errors.As(err, &dangling) {
		t.Fatalf("err = %v, want *DanglingLinksError", err)
	}
	var hrefs []string
	for _, l := range dangling.Links {
		hrefs = append(hrefs, l.Href)
	}
	if got := strings.Join(hrefs, " "); got != "/docs/missing /docs/empty /ai-sitemap.xml" {
		t.Errorf("dangling = %s", got)
	}
	if err.Error() != "3 dangling links" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestCheckLinksHomeRoute(t *testing.T) {
	dir := t.TempDir()
	home := []nav.Link{{Section: "Home", Title: "Home", Href: "/"}}
	if err := CheckLinks(dir, home); err == nil {
		t.Error("home should dangle before index.html exists")
	}
	touch(t, dir, "index.html")
	if err := CheckLinks(dir, home); err != nil {
		t.Errorf("home with index.html: %v", err)
	}
}

func TestCheckLinksSingleError(t *testing.T) {
	err := CheckLinks(t.TempDir(), []nav.Link{{Section: "Start Here", Title: "FAQ", Href: "/docs/faq"}})
	if err == nil || err.Error() != "dangling link /docs/faq (Start Here / FAQ)" {
		t.Errorf("err = %v", err)
	}
}

func TestCheckLinksMissingDir(t *testing.T) {
	err := CheckLinks(filepath.Join(t.TempDir(), "out"), nil)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want not-exist", err)
	}
}

func TestCheckLinksAfterGenerate(t *testing.T) {
	opts := testOptions(t)
	if _, err := NewGenerator(opts).Generate(t.Context()); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	err := CheckLinks(opts.OutputDir, SiteLinks(opts.Tree))
	var dangling *DanglingLinksError
	if !errors.As(err, &dangling) {
		t.Fatalf("err = %v, want dangling links for pages not in testdata", err)
	}
	missing := map[string]bool{}
	for _, l := range dangling.Links {
		missing[l.Href] = true
	}
	for _, ok := range []string{"/docs", "/docs/faq", "/llms", "/llms.txt", "/ai-sitemap.xml", "/robots.txt", "/llm/product.md", "/docs/commands/index"} {
		if missing[ok] {
			t.Errorf("%s was generated but reported dangling", ok)
		}
	}
	for _, gone := range []string{"/docs/adopt_in_one_pr", "/llm/security.md"} {
		if !missing[gone] {
			t.Errorf("%s should be dangling", gone)
		}
	}
}

func TestSiteLinksIncludesBuiltins(t *testing.T) {
	links := SiteLinks(nav.Default())
	sections := map[string]bool{}
	for _, l := range links {
		sections[l.Section] = true
		if seo.IsExternal(l.Href) && l.Section == "Footer" {
			t.Errorf("external footer link %s should not be checked", l.Href)
		}
	}
	for _, want := range []string{"Start Here", "Home", "Track 1: First Deterministic Scan", "LLM Context", "Footer"} {
		if !sections[want] {
			t.Errorf("section %q missing", want)
		}
	}
}

func TestTruncateUTF8(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"", 4, ""},
		{"hello", 0, ""},
		{"hello", 3, "hel"},
		{"héllo", 2, "h"},
		{"héllo", 3, "hé"},
		{"日本語", 4, "日"},
	}
	for _, tt := range tests {
		got := truncateUTF8(tt.in, tt.n)
		if got != tt.want || !utf8.ValidString(got) {
			t.Errorf("truncateUTF8(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestBuildSearchIndexTruncates(t *testing.T) {
	long := strings.Repeat("é", maxSearchContent)
	entries := BuildSearchIndex([]Page{{Route: "/docs/long", Title: "Long", Text: long}}, seo.Default())
	if len(entries) != 1 {
		t.Fatalf("entries = %d", len(entries))
	}
	e := entries[0]
	if e.Path != "/wrkr/docs/long/" || len(e.Content) > maxSearchContent || !utf8.ValidString(e.Content) {
		t.Errorf("entry = %q, %d bytes", e.Path, len(e.Content))
	}
}
