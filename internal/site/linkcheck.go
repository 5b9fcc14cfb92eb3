package site

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/clyra-ai/wrkr-docs/internal/nav"
	"github.com/clyra-ai/wrkr-docs/internal/seo"
)

// DanglingLink is an internal href with nothing behind it in the export.
type DanglingLink struct {
	Section string `json:"section"`
	Title   string `json:"title"`
	Href    string `json:"href"`
}

// DanglingLinksError reports every dangling link found by CheckLinks.
type DanglingLinksError struct {
	Links []DanglingLink
}

func (e *DanglingLinksError) Error() string {
	if len(e.Links) == 1 {
		l := e.Links[0]
		return fmt.Sprintf("dangling link %s (%s / %s)", l.Href, l.Section, l.Title)
	}
	return fmt.Sprintf("%d dangling links", len(e.Links))
}

// SiteLinks returns every internal link the rendered site emits outside
// page content: the navigation tree, the built-in pages and the footer.
func SiteLinks(tree nav.Tree) []nav.Link {
	return append(tree.Links(), BuiltinLinks()...)
}

// CheckLinks verifies that each link resolves to a file in outputDir. It
// returns a *DanglingLinksError listing every miss, in input order.
// External links are not checked.
func CheckLinks(outputDir string, links []nav.Link) error {
	info, err := os.Stat(outputDir)
	if err != nil {
		return fmt.Errorf("checking links: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("checking links: %s is not a directory", outputDir)
	}

	var dangling []DanglingLink
	for _, l := range links {
		if seo.IsExternal(l.Href) || strings.HasPrefix(l.Href, "#") {
			continue
		}
		if !resolves(outputDir, l.Href) {
			dangling = append(dangling, DanglingLink{Section: l.Section, Title: l.Title, Href: l.Href})
		}
	}
	if len(dangling) > 0 {
		return &DanglingLinksError{Links: dangling}
	}
	return nil
}

// resolves reports whether route is served from outputDir: as a file for
// file routes, otherwise as route/index.html or route.html.
func resolves(outputDir, route string) bool {
	if i := strings.IndexAny(route, "#?"); i >= 0 {
		route = route[:i]
	}
	route = "/" + strings.Trim(route, "/")

	var candidates []string
	if seo.IsFileRoute(route) {
		candidates = []string{route}
	} else {
		candidates = []string{OutputPath(route), route + ".html"}
	}
	for _, c := range candidates {
		if fi, err := os.Stat(filepath.Join(outputDir, filepath.FromSlash(strings.TrimPrefix(c, "/")))); err == nil && !fi.IsDir() {
			return true
		}
	}
	return false
}
